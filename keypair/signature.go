package keypair

import "github.com/spikeekips/nkeys/codec"

type Signature []byte

func NewSignatureFromString(s string) (Signature, error) {
	b, err := codec.Decode(s)
	if err != nil {
		return nil, err
	}

	return Signature(b), nil
}

func (s Signature) String() string {
	return codec.Encode(s)
}
