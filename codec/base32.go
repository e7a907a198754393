package codec

import (
	"github.com/multiformats/go-base32"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var b32Enc = base32.RawStdEncoding

// Encode32 returns the RFC 4648 base-32 text of b, uppercase and without
// padding.
func Encode32(b []byte) string {
	return b32Enc.EncodeToString(b)
}

// Decode32 decodes unpadded base-32 text; lowercase letters are accepted.
func Decode32(s string) ([]byte, error) {
	return decode32([]byte(s))
}

func decode32(src []byte) ([]byte, error) {
	// an unpadded tail of 1, 3 or 6 characters can not carry whole bytes
	switch len(src) % 8 {
	case 1, 3, 6:
		return nil, InvalidEncodingError.Newf("invalid length; length=%d", len(src))
	}

	for _, c := range src {
		if !isAlphabet(c) {
			return nil, InvalidEncodingError.Newf("invalid character; character=%q", c)
		}
	}

	raw := make([]byte, b32Enc.DecodedLen(len(src)))
	n, err := b32Enc.Decode(raw, src)
	if err != nil {
		wipe(raw)
		return nil, InvalidEncodingError.New(err)
	}

	return raw[:n], nil
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '2' && c <= '7':
		return true
	default:
		return false
	}
}

// wipe overwrites b with zeros in place.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
