package codec

import (
	"encoding/base64"
)

// EncodeGeneric encodes an arbitrary payload, like a nonce or a signature,
// with the generic marker. The payload length is not restricted.
func EncodeGeneric(b []byte) string {
	raw := make([]byte, 0, genericPrefixSize+len(b)+2)
	raw = append(raw, prefixByteGeneric)
	raw = append(raw, b...)

	return Encode32(appendChecksum(raw))
}

func DecodeGeneric(src string) ([]byte, error) {
	raw, err := Decode32(src)
	if err != nil {
		return nil, err
	}

	body, err := splitChecksum(raw)
	if err != nil {
		return nil, err
	}

	if body[0] != prefixByteGeneric {
		return nil, InvalidPrefixError.Newf("not generic prefix; class=%s", classOfPrefix(body[0]))
	}

	b := make([]byte, len(body)-genericPrefixSize)
	copy(b, body[genericPrefixSize:])

	return b, nil
}

// Encode is the text form signatures and nonces are exchanged in between
// implementations: standard, padded base64.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, InvalidEncodingError.New(err)
	}

	return b, nil
}
