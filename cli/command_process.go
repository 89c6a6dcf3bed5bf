package cli

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/archex/archex/internal/safewrite"
	"github.com/archex/archex/transform"
)

var (
	processCommand      = app.Command("process", "Reverse a single payload transform and validate its size.")
	processMethod       = processCommand.Arg("method", "Processing method (0: none, 1: zlib, 2: lzma, 3: fernet).").Required().Int()
	processInputFile    = processCommand.Arg("input", "Input file.").Required().String()
	processOutputFile   = processCommand.Arg("output", "Output file.").Required().String()
	processExpectedSize = processCommand.Arg("expected-size", "Expected size of the processed data in bytes.").Required().Int64()
)

func init() {
	processCommand.Action(runProcessCommand)
}

func runProcessCommand(_ *kingpin.ParseContext) error {
	ctx := rootContext

	if *processExpectedSize < 0 {
		return reportError(ctx, errors.Errorf("expected size must be non-negative, got %v", *processExpectedSize))
	}

	if *processMethod < 0 || *processMethod > 0xff {
		return reportError(ctx, errors.Wrapf(transform.ErrUnknownMethod, "method %v", *processMethod))
	}

	data, err := os.ReadFile(*processInputFile)
	if err != nil {
		return reportError(ctx, errors.Wrap(err, "unable to read input file"))
	}

	result, err := transform.Reverse(ctx, transform.Method(*processMethod), data, *processExpectedSize)
	if err != nil {
		return reportError(ctx, err)
	}

	if err := safewrite.WriteFile(*processOutputFile, result); err != nil {
		return reportError(ctx, errors.Wrapf(err, "failed to write output file %v", *processOutputFile))
	}

	return nil
}
