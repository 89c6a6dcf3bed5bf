// Package cli implements the archex command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/archex/archex/internal/logfile"
	"github.com/archex/archex/logging"
)

var (
	app = kingpin.New("archex", "Extracts ARCH archives and reverses payload transforms.")

	logFileName = app.Flag("log-file", "Override log file.").Default(logfile.DefaultLogFile).String()
	verbosity   = app.Flag("verbose", "Console verbosity (0, 1 or 2).").Short('v').Default("1").Int()
)

var (
	rootContext = context.Background()
	flushLogs   = func() {}
)

var log = logging.Module("cli")

func init() {
	app.UsageWriter(os.Stderr)
	app.ErrorWriter(os.Stderr)
	app.PreAction(initializeLogging)
}

// App returns the command-line application object.
func App() *kingpin.Application {
	return app
}

// initializeLogging runs after a command line has parsed successfully and
// before its action, so failed parses never touch the log file.
func initializeLogging(_ *kingpin.ParseContext) error {
	factory, flush := logfile.Initialize(logfile.Options{
		LogFile:   *logFileName,
		Verbosity: *verbosity,
	})

	rootContext = logging.WithLogger(context.Background(), factory)
	flushLogs = flush

	return nil
}

// Run parses and executes one invocation and returns the process exit code.
func Run(args []string) int {
	_, err := app.Parse(args)

	flushLogs()

	if err == nil {
		return 0
	}

	if !isReported(err) {
		// The command line itself was bad: the failure never reached the
		// log, so tell the user directly.
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", app.Name, err)
		app.Usage(args)
	}

	return 1
}
