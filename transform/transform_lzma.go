package transform

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

func init() {
	RegisterTransformer("lzma", lzmaTransformer{})
}

// xzHeaderMagic begins every xz container. Payloads without it are decoded
// as legacy LZMA streams, matching the format auto-detection archive
// producers rely on.
var xzHeaderMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// lzmaTransformer decodes an xz or legacy LZMA stream.
type lzmaTransformer struct{}

func (lzmaTransformer) Method() Method {
	return LZMA
}

func (lzmaTransformer) Reverse(ctx context.Context, output *bytes.Buffer, input []byte) error {
	var (
		r   io.Reader
		err error
	)

	if bytes.HasPrefix(input, xzHeaderMagic) {
		r, err = xz.NewReader(bytes.NewReader(input))
	} else {
		r, err = lzma.NewReader(bytes.NewReader(input))
	}

	if err != nil {
		return errors.Wrapf(ErrDecompression, "unable to open lzma stream: %v", err)
	}

	if _, err := io.Copy(output, r); err != nil {
		return errors.Wrapf(ErrDecompression, "lzma decompression failed: %v", err)
	}

	return nil
}
