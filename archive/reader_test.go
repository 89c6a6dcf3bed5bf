package archive

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/archex/transform"
)

func buildArchive(order binary.ByteOrder, version byte, entries ...*Entry) []byte {
	var buf bytes.Buffer

	magic := make([]byte, 4)
	order.PutUint32(magic, Magic)
	buf.Write(magic)
	buf.WriteByte(version)

	for _, e := range entries {
		var scratch [8]byte

		order.PutUint32(scratch[:4], uint32(len(e.Name)))
		buf.Write(scratch[:4])
		buf.WriteString(e.Name)

		order.PutUint64(scratch[:], e.OrigSize)
		buf.Write(scratch[:])

		order.PutUint64(scratch[:], uint64(len(e.Payload)))
		buf.Write(scratch[:])

		buf.WriteByte(byte(e.Method))
		buf.Write(e.Payload)
	}

	return buf.Bytes()
}

func TestNewReaderDetectsByteOrder(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		data := buildArchive(order, 0x07)

		rd, err := NewReader(data)
		require.NoError(t, err)
		require.Equal(t, byte(0x07), rd.Version())
		require.Equal(t, order, rd.ByteOrder())
	}
}

func TestNewReaderRejectsBadHeader(t *testing.T) {
	_, err := NewReader([]byte{0x41, 0x52})
	require.ErrorIs(t, err, ErrTruncated)

	_, err = NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0x01})
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReaderWalksEntries(t *testing.T) {
	e1 := &Entry{Name: "a.txt", OrigSize: 11, Method: transform.None, Payload: []byte("hello world")}
	e2 := &Entry{Name: "sub/dir/b.bin", OrigSize: 3, Method: transform.Zlib, Payload: []byte{1, 2, 3, 4}}

	rd, err := NewReader(buildArchive(binary.LittleEndian, 1, e1, e2))
	require.NoError(t, err)

	got, err := rd.Next()
	require.NoError(t, err)
	require.Equal(t, "a.txt", got.Name)
	require.Equal(t, uint64(11), got.OrigSize)
	require.Equal(t, uint64(11), got.ProcSize)
	require.Equal(t, transform.None, got.Method)
	require.Equal(t, []byte("hello world"), got.Payload)

	got, err = rd.Next()
	require.NoError(t, err)
	require.Equal(t, "sub/dir/b.bin", got.Name)
	require.Equal(t, uint64(4), got.ProcSize)

	_, err = rd.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderTruncatedEntryHeader(t *testing.T) {
	data := buildArchive(binary.BigEndian, 1)
	data = append(data, 0x00, 0x00) // not enough for a name length

	rd, err := NewReader(data)
	require.NoError(t, err)

	_, err = rd.Next()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReaderTruncatedEntryBody(t *testing.T) {
	e := &Entry{Name: "a.txt", OrigSize: 11, Method: transform.None, Payload: []byte("hello world")}
	data := buildArchive(binary.BigEndian, 1, e)

	// cut into the fixed-size fields before the payload
	rd, err := NewReader(data[: len(data)-len(e.Payload)-5 : len(data)-len(e.Payload)-5])
	require.NoError(t, err)

	_, err = rd.Next()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReaderPayloadExceedingArchive(t *testing.T) {
	e := &Entry{Name: "a.txt", OrigSize: 11, Method: transform.None, Payload: []byte("hello world")}
	data := buildArchive(binary.BigEndian, 1, e)

	// drop the last payload byte only
	rd, err := NewReader(data[: len(data)-1 : len(data)-1])
	require.NoError(t, err)

	_, err = rd.Next()
	require.ErrorIs(t, err, ErrTruncated)
}
