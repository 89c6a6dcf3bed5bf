package archive

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/archex/archex/transform"
)

// Entry is one file stored in an archive.
type Entry struct {
	Name     string
	OrigSize uint64 // payload size after reversing the transform
	ProcSize uint64 // payload size as stored
	Method   transform.Method
	Payload  []byte
}

// Reader walks the entries of a decoded archive sequentially.
type Reader struct {
	data    []byte
	offset  int
	order   binary.ByteOrder
	version byte
}

// NewReader validates the archive header and determines the byte order of
// the integer fields from the magic.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < headerSize {
		return nil, errors.Wrap(ErrTruncated, "archive too small")
	}

	var order binary.ByteOrder

	switch {
	case binary.BigEndian.Uint32(data) == Magic:
		order = binary.BigEndian
	case binary.LittleEndian.Uint32(data) == Magic:
		order = binary.LittleEndian
	default:
		return nil, ErrInvalidMagic
	}

	return &Reader{data: data, offset: headerSize, order: order, version: data[4]}, nil
}

// Version returns the format version byte stored in the header.
func (r *Reader) Version() byte {
	return r.version
}

// ByteOrder returns the integer byte order the archive was written with.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// Next returns the next entry, or io.EOF after the last one. The payload
// aliases the underlying archive buffer.
func (r *Reader) Next() (*Entry, error) {
	if r.offset >= len(r.data) {
		return nil, io.EOF
	}

	rem := len(r.data) - r.offset
	if rem < 4 {
		return nil, errors.Wrap(ErrTruncated, "incomplete file entry header")
	}

	nameLen := int(r.order.Uint32(r.data[r.offset:]))
	if rem < 4+nameLen+entryFixedSize {
		return nil, errors.Wrap(ErrTruncated, "incomplete file entry")
	}

	off := r.offset + 4
	name := string(r.data[off : off+nameLen])
	off += nameLen

	origSize := r.order.Uint64(r.data[off:])
	off += 8

	procSize := r.order.Uint64(r.data[off:])
	off += 8

	method := transform.Method(r.data[off])
	off++

	if uint64(len(r.data)-off) < procSize {
		return nil, errors.Wrap(ErrTruncated, "processed data exceeds archive size")
	}

	payload := r.data[off : off+int(procSize)]
	r.offset = off + int(procSize)

	return &Entry{
		Name:     name,
		OrigSize: origSize,
		ProcSize: procSize,
		Method:   method,
		Payload:  payload,
	}, nil
}
