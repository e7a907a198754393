package keypair

import (
	"io"
	"sync"

	"golang.org/x/crypto/ed25519"

	"github.com/spikeekips/nkeys/codec"
)

// kp is an ed25519 pair backed by its raw seed. The public and the expanded
// private key are derived on each use and wiped afterwards.
type kp struct {
	sync.RWMutex
	role    codec.Role
	seed    []byte
	cleared bool
}

// newKP takes ownership of seed.
func newKP(role codec.Role, seed []byte) *kp {
	return &kp{role: role, seed: seed}
}

func (k *kp) Role() codec.Role {
	return k.role
}

func (k *kp) Kind() Kind {
	return SeedKind
}

// privateKey must be wiped by the caller.
func (k *kp) privateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(k.seed)
}

func (k *kp) Seed() ([]byte, error) {
	k.RLock()
	defer k.RUnlock()

	if k.cleared {
		return nil, ClearedPairError.New(nil)
	}

	return codec.EncodeSeed(k.role, k.seed)
}

func (k *kp) PublicKey() (string, error) {
	k.RLock()
	defer k.RUnlock()

	if k.cleared {
		return "", ClearedPairError.New(nil)
	}

	priv := k.privateKey()
	defer wipe(priv)

	return codec.EncodePublicKey(k.role, priv[ed25519.SeedSize:])
}

func (k *kp) PrivateKey() ([]byte, error) {
	k.RLock()
	defer k.RUnlock()

	if k.cleared {
		return nil, ClearedPairError.New(nil)
	}

	priv := k.privateKey()
	defer wipe(priv)

	return codec.EncodePrivateKey(priv)
}

func (k *kp) Sign(input []byte) (Signature, error) {
	k.RLock()
	defer k.RUnlock()

	if k.cleared {
		return nil, ClearedPairError.New(nil)
	}

	priv := k.privateKey()
	defer wipe(priv)

	return Signature(ed25519.Sign(priv, input)), nil
}

func (k *kp) Verify(input []byte, sig Signature) error {
	k.RLock()
	defer k.RUnlock()

	if k.cleared {
		return ClearedPairError.New(nil)
	}

	priv := k.privateKey()
	defer wipe(priv)

	if !ed25519.Verify(ed25519.PublicKey(priv[ed25519.SeedSize:]), input, sig) {
		return SignatureVerificationFailedError.New(nil)
	}

	return nil
}

func (k *kp) Seal([]byte, string) ([]byte, error) {
	return nil, k.unsupported()
}

func (k *kp) SealWithRand([]byte, string, io.Reader) ([]byte, error) {
	return nil, k.unsupported()
}

func (k *kp) Open([]byte, string) ([]byte, error) {
	return nil, k.unsupported()
}

func (k *kp) unsupported() error {
	k.RLock()
	defer k.RUnlock()

	if k.cleared {
		return ClearedPairError.New(nil)
	}

	return InvalidKeyOperationError.Newf("role=%s", k.role)
}

func (k *kp) Clear() {
	k.Lock()
	defer k.Unlock()

	if k.cleared {
		return
	}

	wipe(k.seed)
	k.cleared = true

	log.Debug("key pair cleared", "role", k.role, "kind", SeedKind)
}

func (k *kp) IsCleared() bool {
	k.RLock()
	defer k.RUnlock()

	return k.cleared
}
