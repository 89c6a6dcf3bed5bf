package archive

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ReportFileName is the metadata report written next to extracted files.
const ReportFileName = "metadata.txt"

// Report accumulates the per-entry metadata lines written alongside
// extracted files.
type Report struct {
	f *os.File
	w *bufio.Writer
}

// NewReport creates or truncates the report file at path.
func NewReport(path string) (*Report, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open report file")
	}

	return &Report{f: f, w: bufio.NewWriter(f)}, nil
}

// Add appends one line: name, original size, processed size, method name.
func (r *Report) Add(e *Entry, methodName string) error {
	_, err := fmt.Fprintf(r.w, "%s\t%d\t%d\t%s\n", e.Name, e.OrigSize, e.ProcSize, methodName)

	return errors.Wrap(err, "unable to write report entry")
}

// Close flushes and closes the report file.
func (r *Report) Close() error {
	if err := r.w.Flush(); err != nil {
		r.f.Close() //nolint:errcheck
		return errors.Wrap(err, "unable to flush report")
	}

	return errors.Wrap(r.f.Close(), "unable to close report")
}
