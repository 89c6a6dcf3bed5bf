package cli

import (
	"context"

	"github.com/pkg/errors"
)

// reportedError marks a failure already written to the log and the error
// stream, so Run does not print it a second time.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reportError logs err and marks it reported.
func reportError(ctx context.Context, err error) error {
	log(ctx).Errorf("%v", err)

	return reportedError{err}
}

func isReported(err error) bool {
	var re reportedError

	return errors.As(err, &re)
}
