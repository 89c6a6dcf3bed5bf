package archive

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// DumpFormat identifies the textual encoding of an archive dump.
type DumpFormat int

// Supported dump encodings.
const (
	// DumpRawHex carries one run of hex digits per line.
	DumpRawHex DumpFormat = iota

	// DumpXXD carries xxd output: offset column, hex columns, ascii gutter.
	DumpXXD
)

// ErrUnsupportedDump indicates an input file in neither dump encoding.
var ErrUnsupportedDump = errors.New("unsupported file format")

const maxDumpLine = 1024 * 1024

// DetectDumpFormat maps the input filename to its dump format: .hex files
// carry raw hex lines, .txt files carry xxd output.
func DetectDumpFormat(filename string) (DumpFormat, error) {
	switch {
	case strings.Contains(filename, ".hex"):
		return DumpRawHex, nil
	case strings.Contains(filename, ".txt"):
		return DumpXXD, nil
	default:
		return 0, errors.Wrap(ErrUnsupportedDump, filename)
	}
}

// DecodeDump decodes a textual hex dump into the raw archive bytes.
func DecodeDump(r io.Reader, format DumpFormat) ([]byte, error) {
	var out bytes.Buffer

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxDumpLine)

	for s.Scan() {
		line := strings.TrimSuffix(s.Text(), "\r")

		var err error

		switch format {
		case DumpXXD:
			err = decodeXXDLine(line, &out)
		default:
			err = decodeRawHexLine(line, &out)
		}

		if err != nil {
			return nil, err
		}
	}

	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read dump")
	}

	return out.Bytes(), nil
}

func decodeRawHexLine(line string, out *bytes.Buffer) error {
	if line == "" {
		return nil
	}

	if len(line)%2 != 0 {
		return errors.Errorf("invalid hex line length %v", len(line))
	}

	b, err := hex.DecodeString(line)
	if err != nil {
		return errors.Wrap(err, "invalid hex line")
	}

	out.Write(b)

	return nil
}

// decodeXXDLine extracts the hex columns between the offset prefix and the
// ascii gutter. Lines without an offset column carry no data.
func decodeXXDLine(line string, out *bytes.Buffer) error {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}

	rest = strings.TrimLeft(rest, " ")

	var b [1]byte

	for len(rest) >= 2 && isHexDigit(rest[0]) && isHexDigit(rest[1]) {
		if _, err := hex.Decode(b[:], []byte(rest[:2])); err != nil {
			return errors.Wrap(err, "invalid hex byte")
		}

		out.WriteByte(b[0])

		rest = rest[2:]
		if strings.HasPrefix(rest, " ") {
			rest = rest[1:]
		}
	}

	return nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
