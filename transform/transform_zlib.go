package transform

import (
	"bytes"
	"context"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

func init() {
	RegisterTransformer("zlib", zlibTransformer{})
}

// zlibTransformer inflates a zlib stream.
type zlibTransformer struct{}

func (zlibTransformer) Method() Method {
	return Zlib
}

func (zlibTransformer) Reverse(ctx context.Context, output *bytes.Buffer, input []byte) error {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return errors.Wrapf(ErrDecompression, "unable to open zlib stream: %v", err)
	}
	defer r.Close() //nolint:errcheck

	if _, err := io.Copy(output, r); err != nil {
		return errors.Wrapf(ErrDecompression, "zlib decompression failed: %v", err)
	}

	return nil
}
