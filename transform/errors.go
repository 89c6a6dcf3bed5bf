package transform

import "github.com/pkg/errors"

// Failure categories returned by Reverse. Branches wrap these with the
// underlying library's error text; callers match with errors.Is.
var (
	// ErrUnknownMethod indicates a method byte with no registered transformer.
	ErrUnknownMethod = errors.New("unknown processing method")

	// ErrSizeMismatch indicates output whose length does not match the
	// caller-supplied expected size.
	ErrSizeMismatch = errors.New("output size mismatch")

	// ErrDecompression indicates a malformed or truncated compressed stream.
	ErrDecompression = errors.New("decompression failed")

	// ErrTruncatedInput indicates an encrypted payload too short to contain
	// its key token.
	ErrTruncatedInput = errors.New("input truncated")

	// ErrInvalidKey indicates a key token that is not well-formed.
	ErrInvalidKey = errors.New("invalid fernet key")

	// ErrDecryption indicates token verification or decryption failure.
	ErrDecryption = errors.New("decryption failed")
)
