// Package safewrite writes output files without ever exposing partial
// content.
package safewrite

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

const dirMode = 0o755

// WriteFile writes data to path atomically, creating parent directories as
// needed. On failure the destination is left untouched.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return errors.Wrap(err, "unable to create output directory")
		}
	}

	return errors.Wrap(atomic.WriteFile(path, bytes.NewReader(data)), "unable to write file")
}
