package main

import (
	"io/ioutil"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/nkeys/codec"
	"github.com/spikeekips/nkeys/common"
	"github.com/spikeekips/nkeys/keypair"
)

type inspected struct {
	Role      codec.Role   `json:"role" yaml:"role"`
	Kind      keypair.Kind `json:"kind" yaml:"kind"`
	PublicKey string       `json:"public_key" yaml:"public_key"`
	JWT       string       `json:"jwt,omitempty" yaml:"jwt,omitempty"`
}

func newInspected(kp keypair.KeyPair, jwt string) (inspected, error) {
	pk, err := kp.PublicKey()
	if err != nil {
		return inspected{}, err
	}

	return inspected{
		Role:      kp.Role(),
		Kind:      kp.Kind(),
		PublicKey: pk,
		JWT:       jwt,
	}, nil
}

func (i inspected) format(f string) ([]byte, error) {
	switch f {
	case "json":
		return common.EncodeJSON(i, true, false)
	case "yaml", "":
		return yaml.Marshal(i)
	default:
		return nil, xerrors.Errorf("unknown output format: %q", f)
	}
}

// loadSeedFile reads a seed from a plain or decorated file.
func loadSeedFile(f string) (keypair.KeyPair, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return nil, err
	}
	defer wipeBytes(b)

	return keypair.ParseDecoratedNKey(b)
}

func loadCredsFile(f string) (keypair.KeyPair, string, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return nil, "", err
	}
	defer wipeBytes(b)

	jwt, err := keypair.ParseDecoratedJWT(b)
	if err != nil {
		return nil, "", err
	}

	kp, err := keypair.ParseDecoratedUserNKey(b)
	if err != nil {
		return nil, "", err
	}

	return kp, jwt, nil
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
