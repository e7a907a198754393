package keypair

import (
	"crypto/rand"
	"io"

	"github.com/spikeekips/nkeys/codec"
)

// CreatePair generates a new pair of the role from crypto/rand.
func CreatePair(role codec.Role) (KeyPair, error) {
	return CreatePairWithRand(role, rand.Reader)
}

// CreatePairWithRand generates a new pair of the role, drawing the seed from
// rr.
func CreatePairWithRand(role codec.Role, rr io.Reader) (KeyPair, error) {
	if err := role.IsValid(); err != nil {
		return nil, err
	}

	seed := make([]byte, codec.SeedSize)
	if _, err := io.ReadFull(rr, seed); err != nil {
		wipe(seed)
		return nil, RandomSourceError.New(err)
	}

	k := newPair(role, seed)

	log.Debug("key pair created", "role", role)

	return k, nil
}

func CreateOperator() (KeyPair, error) {
	return CreatePair(codec.RoleOperator)
}

func CreateAccount() (KeyPair, error) {
	return CreatePair(codec.RoleAccount)
}

func CreateUser() (KeyPair, error) {
	return CreatePair(codec.RoleUser)
}

func CreateCluster() (KeyPair, error) {
	return CreatePair(codec.RoleCluster)
}

func CreateServer() (KeyPair, error) {
	return CreatePair(codec.RoleServer)
}

func CreateCurve() (KeyPair, error) {
	return CreatePair(codec.RoleCurve)
}

// FromSeed makes a signing pair from an encoded seed. The role comes from the
// seed.
func FromSeed(src []byte) (KeyPair, error) {
	role, seed, err := codec.DecodeSeed(src)
	if err != nil {
		return nil, err
	}

	return newPair(role, seed), nil
}

func FromSeedString(src string) (KeyPair, error) {
	return FromSeed([]byte(src))
}

// FromRawSeed makes a signing pair from a raw 32-byte seed. raw is copied;
// the caller still owns it.
func FromRawSeed(role codec.Role, raw []byte) (KeyPair, error) {
	if err := role.IsValid(); err != nil {
		return nil, err
	}

	if len(raw) != codec.SeedSize {
		return nil, codec.InvalidSeedLenError.Newf("length=%d", len(raw))
	}

	seed := make([]byte, codec.SeedSize)
	copy(seed, raw)

	return newPair(role, seed), nil
}

// FromPublicKey makes a verify-only pair.
func FromPublicKey(src string) (KeyPair, error) {
	role, b, err := codec.DecodePublicKey(src)
	if err != nil {
		return nil, err
	}

	return &pub{role: role, key: b}, nil
}

func newPair(role codec.Role, seed []byte) KeyPair {
	if role == codec.RoleCurve {
		return newCKP(seed)
	}

	return newKP(role, seed)
}
