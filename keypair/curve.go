package keypair

import (
	"bytes"
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"github.com/spikeekips/nkeys/codec"
)

const (
	curveVersionV1 = "xkv1"
	curveNonceSize = 24
)

// ckp is an X25519 pair. The seed is the raw private scalar; curve pairs
// seal and open messages instead of signing.
type ckp struct {
	sync.RWMutex
	seed    []byte
	cleared bool
}

func newCKP(seed []byte) *ckp {
	return &ckp{seed: seed}
}

func (c *ckp) Role() codec.Role {
	return codec.RoleCurve
}

func (c *ckp) Kind() Kind {
	return SeedKind
}

func (c *ckp) Seed() ([]byte, error) {
	c.RLock()
	defer c.RUnlock()

	if c.cleared {
		return nil, ClearedPairError.New(nil)
	}

	return codec.EncodeSeed(codec.RoleCurve, c.seed)
}

// private copies the seed into the array form curve25519 wants; the caller
// must wipe it.
func (c *ckp) private() *[32]byte {
	var priv [32]byte
	copy(priv[:], c.seed)

	return &priv
}

func (c *ckp) publicKey() [32]byte {
	priv := c.private()
	defer wipe(priv[:])

	var pub [32]byte
	curve25519.ScalarBaseMult(&pub, priv)

	return pub
}

func (c *ckp) PublicKey() (string, error) {
	c.RLock()
	defer c.RUnlock()

	if c.cleared {
		return "", ClearedPairError.New(nil)
	}

	pub := c.publicKey()

	return codec.EncodePublicKey(codec.RoleCurve, pub[:])
}

func (c *ckp) PrivateKey() ([]byte, error) {
	c.RLock()
	defer c.RUnlock()

	if c.cleared {
		return nil, ClearedPairError.New(nil)
	}

	return codec.EncodePrivateKey(c.seed)
}

func (c *ckp) Sign([]byte) (Signature, error) {
	return nil, c.cannotSign("sign")
}

func (c *ckp) Verify([]byte, Signature) error {
	return c.cannotSign("verify")
}

func (c *ckp) cannotSign(op string) error {
	c.RLock()
	defer c.RUnlock()

	if c.cleared {
		return ClearedPairError.New(nil)
	}

	return InvalidCurveKeyOperationError.Newf("%s", op)
}

// Seal encrypts input for the recipient curve public key.
func (c *ckp) Seal(input []byte, recipient string) ([]byte, error) {
	return c.SealWithRand(input, recipient, rand.Reader)
}

// SealWithRand is Seal with the nonce drawn from rr. The output is the
// version header, the nonce and the box.
func (c *ckp) SealWithRand(input []byte, recipient string, rr io.Reader) ([]byte, error) {
	c.RLock()
	defer c.RUnlock()

	if c.cleared {
		return nil, ClearedPairError.New(nil)
	}

	rpub, err := decodeCurvePublicKey(recipient)
	if err != nil {
		return nil, err
	}

	var nonce [curveNonceSize]byte
	if _, err := io.ReadFull(rr, nonce[:]); err != nil {
		return nil, InvalidSealedError.Wrapf(err, "failed to read nonce")
	}

	priv := c.private()
	defer wipe(priv[:])

	header := make([]byte, 0, len(curveVersionV1)+curveNonceSize+len(input)+box.Overhead)
	header = append(header, curveVersionV1...)
	header = append(header, nonce[:]...)

	return box.Seal(header, input, &nonce, rpub, priv), nil
}

// Open decrypts a message sealed by the sender curve public key.
func (c *ckp) Open(input []byte, sender string) ([]byte, error) {
	c.RLock()
	defer c.RUnlock()

	if c.cleared {
		return nil, ClearedPairError.New(nil)
	}

	if len(input) <= len(curveVersionV1)+curveNonceSize {
		return nil, InvalidSealedError.Newf("too short; length=%d", len(input))
	}

	if !bytes.Equal(input[:len(curveVersionV1)], []byte(curveVersionV1)) {
		return nil, InvalidSealedError.Newf("unknown version")
	}

	spub, err := decodeCurvePublicKey(sender)
	if err != nil {
		return nil, err
	}

	var nonce [curveNonceSize]byte
	copy(nonce[:], input[len(curveVersionV1):])

	priv := c.private()
	defer wipe(priv[:])

	decrypted, ok := box.Open(nil, input[len(curveVersionV1)+curveNonceSize:], &nonce, spub, priv)
	if !ok {
		return nil, InvalidSealedError.New(nil)
	}

	return decrypted, nil
}

func (c *ckp) Clear() {
	c.Lock()
	defer c.Unlock()

	if c.cleared {
		return
	}

	wipe(c.seed)
	c.cleared = true

	log.Debug("key pair cleared", "role", codec.RoleCurve, "kind", SeedKind)
}

func (c *ckp) IsCleared() bool {
	c.RLock()
	defer c.RUnlock()

	return c.cleared
}

func decodeCurvePublicKey(src string) (*[32]byte, error) {
	b, err := codec.DecodePublicKeyWithRole(codec.RoleCurve, src)
	if err != nil {
		return nil, err
	}

	var pub [32]byte
	copy(pub[:], b)

	return &pub, nil
}
