package keypair

import (
	"io"
	"sync"

	"golang.org/x/crypto/ed25519"

	"github.com/spikeekips/nkeys/codec"
)

// pub is a verify-only pair; it never holds a seed.
type pub struct {
	sync.RWMutex
	role    codec.Role
	key     []byte
	cleared bool
}

func (p *pub) Role() codec.Role {
	return p.role
}

func (p *pub) Kind() Kind {
	return PublicKeyKind
}

func (p *pub) PublicKey() (string, error) {
	p.RLock()
	defer p.RUnlock()

	if p.cleared {
		return "", ClearedPairError.New(nil)
	}

	return codec.EncodePublicKey(p.role, p.key)
}

func (p *pub) Seed() ([]byte, error) {
	return nil, p.publicOnly()
}

func (p *pub) PrivateKey() ([]byte, error) {
	return nil, p.publicOnly()
}

func (p *pub) Sign([]byte) (Signature, error) {
	return nil, p.publicOnly()
}

func (p *pub) publicOnly() error {
	p.RLock()
	defer p.RUnlock()

	if p.cleared {
		return ClearedPairError.New(nil)
	}

	return PublicKeyOnlyError.New(nil)
}

func (p *pub) Verify(input []byte, sig Signature) error {
	p.RLock()
	defer p.RUnlock()

	if p.cleared {
		return ClearedPairError.New(nil)
	}

	if p.role == codec.RoleCurve {
		return InvalidCurveKeyOperationError.Newf("verify")
	}

	if !ed25519.Verify(ed25519.PublicKey(p.key), input, sig) {
		return SignatureVerificationFailedError.New(nil)
	}

	return nil
}

func (p *pub) Seal([]byte, string) ([]byte, error) {
	return nil, p.cannotSeal()
}

func (p *pub) SealWithRand([]byte, string, io.Reader) ([]byte, error) {
	return nil, p.cannotSeal()
}

func (p *pub) Open([]byte, string) ([]byte, error) {
	return nil, p.cannotSeal()
}

func (p *pub) cannotSeal() error {
	p.RLock()
	defer p.RUnlock()

	switch {
	case p.cleared:
		return ClearedPairError.New(nil)
	case p.role == codec.RoleCurve:
		return PublicKeyOnlyError.New(nil)
	default:
		return InvalidKeyOperationError.Newf("role=%s", p.role)
	}
}

func (p *pub) Clear() {
	p.Lock()
	defer p.Unlock()

	if p.cleared {
		return
	}

	wipe(p.key)
	p.cleared = true

	log.Debug("key pair cleared", "role", p.role, "kind", PublicKeyKind)
}

func (p *pub) IsCleared() bool {
	p.RLock()
	defer p.RUnlock()

	return p.cleared
}
