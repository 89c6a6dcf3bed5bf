// Package archive reads the ARCH container format: a magic-prefixed
// sequence of file entries, each carrying a name, its original and
// processed sizes, a transform method byte and the processed payload.
// Archives arrive as textual hex dumps.
package archive

import "github.com/pkg/errors"

// Magic identifies an ARCH container ("ARCH" read big-endian). It is
// accepted in either byte order; the order that matches determines the
// byte order of every integer field that follows.
const Magic = 0x41524348

const (
	headerSize = 5 // magic + version byte

	// per entry, following the name: original size, processed size,
	// method byte
	entryFixedSize = 8 + 8 + 1
)

// Structural failures. Entries cannot be resynchronized past these.
var (
	ErrInvalidMagic = errors.New("invalid magic number")
	ErrTruncated    = errors.New("archive truncated")
)
