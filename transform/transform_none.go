package transform

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
)

func init() {
	RegisterTransformer("none", noneTransformer{})
}

// noneTransformer passes the payload through unchanged.
type noneTransformer struct{}

func (noneTransformer) Method() Method {
	return None
}

func (noneTransformer) Reverse(ctx context.Context, output *bytes.Buffer, input []byte) error {
	_, err := output.Write(input)

	return errors.Wrap(err, "copy error")
}
