package transform

import (
	"bytes"
	"context"
	"encoding/base64"

	"github.com/fernet/fernet-go"
	"github.com/pkg/errors"

	"github.com/archex/archex/logging"
)

func init() {
	RegisterTransformer("fernet", fernetTransformer{})
}

var log = logging.Module("transform")

// KeyTokenLength is the length of the base64url-encoded key token
// prepended to encrypted payloads.
const KeyTokenLength = 44

// fernetTransformer decrypts payloads that carry their own key: a 44-byte
// base64url key token followed by a fernet token (version byte, timestamp,
// IV, ciphertext and HMAC, verified by the fernet library).
type fernetTransformer struct{}

func (fernetTransformer) Method() Method {
	return Fernet
}

// ValidateKey reports whether key is base64url text decoding to 16, 24 or
// 32 raw bytes. Only 32-byte keys can actually open a token; shorter ones
// pass validation here and fail at decrypt time.
func ValidateKey(key []byte) bool {
	raw, err := base64.URLEncoding.DecodeString(string(key))
	if err != nil {
		return false
	}

	switch len(raw) {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}

func (fernetTransformer) Reverse(ctx context.Context, output *bytes.Buffer, input []byte) error {
	if len(input) < KeyTokenLength {
		return errors.Wrapf(ErrTruncatedInput, "payload of %v bytes is too short to contain a key", len(input))
	}

	keyToken := input[:KeyTokenLength]
	if !ValidateKey(keyToken) {
		return ErrInvalidKey
	}

	key, err := fernet.DecodeKey(string(keyToken))
	if err != nil {
		return errors.Wrapf(ErrDecryption, "unable to decode key: %v", err)
	}

	plaintext := fernet.VerifyAndDecrypt(input[KeyTokenLength:], 0, []*fernet.Key{key})
	if plaintext == nil {
		return errors.Wrap(ErrDecryption, "token verification failed")
	}

	// The extraction log records which key opened each payload. Note that
	// this puts key material in the log.
	log(ctx).Infof("Decrypted file with key: %s", keyToken)

	_, err = output.Write(plaintext)

	return errors.Wrap(err, "copy error")
}
