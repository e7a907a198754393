package keypair

import (
	"io"

	"github.com/spikeekips/nkeys/codec"
)

// KeyPair is a role-typed identity. A pair made from a seed can sign; a pair
// made from a public key can only verify. After Clear, every method except
// Clear and IsCleared fails with ClearedPairError.
type KeyPair interface {
	Role() codec.Role
	Kind() Kind
	// Seed returns the encoded seed.
	Seed() ([]byte, error)
	PublicKey() (string, error)
	// PrivateKey returns the encoded private key.
	PrivateKey() ([]byte, error)
	Sign([]byte) (Signature, error)
	Verify([]byte, Signature) error
	Seal([]byte, string) ([]byte, error)
	SealWithRand([]byte, string, io.Reader) ([]byte, error)
	Open([]byte, string) ([]byte, error)
	Clear()
	IsCleared() bool
}

// CompatibleKeyPair checks kp has one of the given roles.
func CompatibleKeyPair(kp KeyPair, roles ...codec.Role) error {
	if kp.IsCleared() {
		return ClearedPairError.New(nil)
	}

	for _, r := range roles {
		if kp.Role() == r {
			return nil
		}
	}

	return IncompatibleKeyError.Newf("role=%s", kp.Role())
}

// wipe overwrites b with zeros in place.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
