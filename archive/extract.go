package archive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/archex/archex/internal/safewrite"
	"github.com/archex/archex/logging"
	"github.com/archex/archex/transform"
)

var log = logging.Module("archive")

const dirMode = 0o755

// ExtractOptions control extraction of an archive into a directory tree.
type ExtractOptions struct {
	// OutputDir receives the extracted files and the metadata report.
	OutputDir string
}

// Extract decodes the archive dump in input, reverses each entry's
// transform and writes the result under opt.OutputDir, along with a
// metadata report. Entries that fail to process are logged and skipped;
// structural corruption of the container stops the walk.
func Extract(ctx context.Context, input io.Reader, format DumpFormat, opt ExtractOptions) error {
	data, err := DecodeDump(input, format)
	if err != nil {
		return err
	}

	rd, err := NewReader(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opt.OutputDir, dirMode); err != nil {
		return errors.Wrap(err, "unable to create output directory")
	}

	log(ctx).Infof("Read version 0x%02x from archive", rd.Version())

	rep, err := NewReport(filepath.Join(opt.OutputDir, ReportFileName))
	if err != nil {
		return err
	}

	for {
		e, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			rep.Close() //nolint:errcheck
			return err
		}

		if err := extractEntry(ctx, e, opt.OutputDir, rep); err != nil {
			log(ctx).Errorf("%v", err)
			log(ctx).Infof("Continuing after error in file entry")
		}
	}

	return rep.Close()
}

func extractEntry(ctx context.Context, e *Entry, outputDir string, rep *Report) error {
	methodName, ok := transform.MethodName(e.Method)
	if !ok {
		return errors.Wrapf(transform.ErrUnknownMethod, "method 0x%02x for %v", byte(e.Method), e.Name)
	}

	if err := rep.Add(e, string(methodName)); err != nil {
		return err
	}

	log(ctx).Infof("Processing %s: method=%s, orig_size=%d, proc_size=%d", e.Name, methodName, e.OrigSize, e.ProcSize)

	if err := validateEntryName(e.Name); err != nil {
		return err
	}

	result, err := transform.Reverse(ctx, e.Method, e.Payload, int64(e.OrigSize))
	if err != nil {
		return errors.Wrapf(err, "unable to process %v", e.Name)
	}

	path := filepath.Join(outputDir, filepath.FromSlash(e.Name))
	if err := safewrite.WriteFile(path, result); err != nil {
		return errors.Wrapf(err, "unable to write %v", e.Name)
	}

	return nil
}

// validateEntryName rejects names that would escape the output directory.
func validateEntryName(name string) error {
	if name == "" {
		return errors.New("empty entry name")
	}

	if strings.HasPrefix(name, "/") || filepath.IsAbs(name) {
		return errors.Errorf("absolute entry name %q", name)
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return errors.Errorf("entry name %q escapes the output directory", name)
		}
	}

	return nil
}
