package keypair

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/nkeys/codec"
)

type testCurveKeyPair struct {
	suite.Suite
}

func (t *testCurveKeyPair) pair() (KeyPair, string) {
	kp, err := CreateCurve()
	t.NoError(err)

	publicKey, err := kp.PublicKey()
	t.NoError(err)

	return kp, publicKey
}

func (t *testCurveKeyPair) TestEncoding() {
	kp, publicKey := t.pair()
	t.Equal(codec.RoleCurve, kp.Role())
	t.Equal(byte('X'), publicKey[0])

	seed, err := kp.Seed()
	t.NoError(err)
	t.Equal("SX", string(seed[:2]))

	priv, err := kp.PrivateKey()
	t.NoError(err)
	t.Equal(byte('P'), priv[0])

	// the same pair comes back from the seed
	nkp, err := FromSeed(seed)
	t.NoError(err)
	npublicKey, err := nkp.PublicKey()
	t.NoError(err)
	t.Equal(publicKey, npublicKey)
}

func (t *testCurveKeyPair) TestSealOpen() {
	a, apub := t.pair()
	b, bpub := t.pair()

	input := []byte("findme")

	sealed, err := a.Seal(input, bpub)
	t.NoError(err)
	t.Equal(curveVersionV1, string(sealed[:len(curveVersionV1)]))

	opened, err := b.Open(sealed, apub)
	t.NoError(err)
	t.Equal(input, opened)

	// wrong sender
	_, cpub := t.pair()
	_, err = b.Open(sealed, cpub)
	t.True(xerrors.Is(err, InvalidSealedError))

	// tampered box
	sealed[len(sealed)-1] ^= 1
	_, err = b.Open(sealed, apub)
	t.True(xerrors.Is(err, InvalidSealedError))
}

func (t *testCurveKeyPair) TestSealWithRand() {
	a, apub := t.pair()
	b, bpub := t.pair()

	nonce := bytes.Repeat([]byte{7}, curveNonceSize)

	s0, err := a.SealWithRand([]byte("showme"), bpub, bytes.NewReader(nonce))
	t.NoError(err)
	s1, err := a.SealWithRand([]byte("showme"), bpub, bytes.NewReader(nonce))
	t.NoError(err)
	t.Equal(s0, s1)

	opened, err := b.Open(s0, apub)
	t.NoError(err)
	t.Equal("showme", string(opened))

	_, err = a.SealWithRand([]byte("showme"), bpub, bytes.NewReader(nil))
	t.True(xerrors.Is(err, InvalidSealedError))
}

func (t *testCurveKeyPair) TestInvalidInputs() {
	a, apub := t.pair()

	user, err := CreateUser()
	t.NoError(err)
	upub, err := user.PublicKey()
	t.NoError(err)

	// recipient must be a curve key
	_, err = a.Seal([]byte("a"), upub)
	t.True(xerrors.Is(err, codec.InvalidPrefixError))

	_, err = a.Open([]byte("short"), apub)
	t.True(xerrors.Is(err, InvalidSealedError))

	_, err = a.Open(append([]byte("xkv9"), make([]byte, 40)...), apub)
	t.True(xerrors.Is(err, InvalidSealedError))
}

func (t *testCurveKeyPair) TestCannotSign() {
	a, apub := t.pair()

	_, err := a.Sign([]byte("a"))
	t.True(xerrors.Is(err, InvalidCurveKeyOperationError))
	t.True(xerrors.Is(a.Verify([]byte("a"), make([]byte, 64)), InvalidCurveKeyOperationError))

	pk, err := FromPublicKey(apub)
	t.NoError(err)
	t.True(xerrors.Is(pk.Verify([]byte("a"), make([]byte, 64)), InvalidCurveKeyOperationError))

	_, err = pk.Seal([]byte("a"), apub)
	t.True(xerrors.Is(err, PublicKeyOnlyError))
}

func (t *testCurveKeyPair) TestClear() {
	a, apub := t.pair()
	buf := a.(*ckp).seed

	a.Clear()
	t.Equal(make([]byte, codec.SeedSize), buf)

	_, err := a.Seal([]byte("a"), apub)
	t.True(xerrors.Is(err, ClearedPairError))
	_, err = a.PublicKey()
	t.True(xerrors.Is(err, ClearedPairError))
	_, err = a.Sign([]byte("a"))
	t.True(xerrors.Is(err, ClearedPairError))

	a.Clear()
}

func TestCurveKeyPair(t *testing.T) {
	suite.Run(t, new(testCurveKeyPair))
}
