// Package logfile builds the process-wide logger: a log file shared across
// invocations plus console echo controlled by verbosity.
package logfile

import (
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/archex/archex/logging"
)

// DefaultLogFile is where log entries go unless overridden.
const DefaultLogFile = "archextract.log"

const (
	logFileMaxSizeMB  = 32
	logFileMaxBackups = 3
)

// Options configure the logger. Verbosity 0 suppresses console echo of
// non-error messages, 1 echoes them to stdout, 2 additionally lowers the
// file threshold to debug. Errors always reach stderr.
type Options struct {
	LogFile   string
	Verbosity int
}

var errorTag = color.New(color.FgHiRed)

// Initialize builds the logger factory for the given options and returns
// it along with a flush function to call before process exit.
func Initialize(opt Options) (logging.LoggerForModuleFunc, func()) {
	if opt.LogFile == "" {
		opt.LogFile = DefaultLogFile
	}

	fileLevel := zapcore.InfoLevel
	if opt.Verbosity >= 2 {
		fileLevel = zapcore.DebugLevel
	}

	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(messageOnlyEncoderConfig(plainErrorTag)),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.LogFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
		}),
		fileLevel,
	)

	stdoutCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(messageOnlyEncoderConfig(plainErrorTag)),
		zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return opt.Verbosity >= 1 && l < zapcore.ErrorLevel
		}),
	)

	stderrCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(messageOnlyEncoderConfig(coloredErrorTag)),
		zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel
		}),
	)

	root := zap.New(zapcore.NewTee(fileCore, stdoutCore, stderrCore))

	return func(module string) logging.Logger {
			return root.Named(module).Sugar()
		}, func() {
			root.Sync() //nolint:errcheck
		}
}

// messageOnlyEncoderConfig reproduces the log format consumers of the log
// file expect: the bare message, with error lines prefixed by "ERROR:".
func messageOnlyEncoderConfig(tag func(zapcore.Level, zapcore.PrimitiveArrayEncoder)) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "m",
		LevelKey:         "l",
		EncodeLevel:      tag,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	}
}

func plainErrorTag(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l >= zapcore.ErrorLevel {
		enc.AppendString("ERROR:")
	}
}

func coloredErrorTag(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l >= zapcore.ErrorLevel {
		enc.AppendString(errorTag.Sprint("ERROR:"))
	}
}
