package cli

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/archex/archex/archive"
)

var (
	extractCommand   = app.Command("extract", "Extract all files from an ARCH archive dump.")
	extractInputFile = extractCommand.Flag("input", "Archive dump to extract (.hex or xxd .txt).").Short('i').Required().String()
	extractOutputDir = extractCommand.Flag("output-dir", "Directory to extract into.").Short('o').Default("./extracted").String()
)

func init() {
	extractCommand.Action(runExtractCommand)
}

func runExtractCommand(_ *kingpin.ParseContext) error {
	ctx := rootContext

	format, err := archive.DetectDumpFormat(*extractInputFile)
	if err != nil {
		return reportError(ctx, err)
	}

	f, err := os.Open(*extractInputFile)
	if err != nil {
		return reportError(ctx, errors.Wrap(err, "unable to open input file"))
	}
	defer f.Close() //nolint:errcheck

	opt := archive.ExtractOptions{OutputDir: *extractOutputDir}
	if err := archive.Extract(ctx, f, format, opt); err != nil {
		return reportError(ctx, err)
	}

	return nil
}
