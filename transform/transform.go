// Package transform manages the reversal transforms applied to archive
// payloads: pass-through, zlib inflate, LZMA decode and Fernet decrypt.
package transform

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Method identifies the processing applied to a payload, as stored in the
// archive's method byte.
type Method byte

// Methods understood by the dispatcher.
const (
	None   Method = 0x00
	Zlib   Method = 0x01
	LZMA   Method = 0x02
	Fernet Method = 0x03
)

// Name is the name of a transformer.
type Name string

// Transformer reverses one processing method applied to a payload.
type Transformer interface {
	Method() Method
	Reverse(ctx context.Context, output *bytes.Buffer, input []byte) error
}

// maps of registered transformers by method byte and name.
var (
	ByMethod = map[Method]Transformer{}
	ByName   = map[Name]Transformer{}
)

// RegisterTransformer registers the provided transformer implementation.
func RegisterTransformer(name Name, t Transformer) {
	if ByMethod[t.Method()] != nil {
		panic(fmt.Sprintf("transformer with method %x already registered", t.Method()))
	}

	if ByName[name] != nil {
		panic(fmt.Sprintf("transformer with name %q already registered", name))
	}

	ByMethod[t.Method()] = t
	ByName[name] = t
}

// MethodName returns the registered name for the given method byte.
func MethodName(m Method) (Name, bool) {
	for name, t := range ByName {
		if t.Method() == m {
			return name, true
		}
	}

	return "", false
}

// Reverse dispatches data to the transformer registered for the given
// method and validates the result against expectedSize, which the caller
// knows from metadata parsed elsewhere. The length check is the sole
// acceptance criterion on every path; transformers are not trusted to
// carry their own.
func Reverse(ctx context.Context, method Method, data []byte, expectedSize int64) ([]byte, error) {
	t := ByMethod[method]
	if t == nil {
		return nil, errors.Wrapf(ErrUnknownMethod, "method 0x%02x", byte(method))
	}

	var output bytes.Buffer

	if err := t.Reverse(ctx, &output, data); err != nil {
		return nil, err
	}

	if int64(output.Len()) != expectedSize {
		name, _ := MethodName(method)
		return nil, errors.Wrapf(ErrSizeMismatch, "%v produced %v bytes, expected %v", name, output.Len(), expectedSize)
	}

	return output.Bytes(), nil
}
