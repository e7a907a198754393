package keypair

import (
	"encoding/json"
)

// Kind tells a signing-capable pair from a verify-only one.
type Kind uint

const (
	SeedKind Kind = iota + 1
	PublicKeyKind
)

func (k Kind) String() string {
	switch k {
	case SeedKind:
		return "seed"
	case PublicKeyKind:
		return "public"
	}

	return ""
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case SeedKind.String():
		*k = SeedKind
		return nil
	case PublicKeyKind.String():
		*k = PublicKeyKind
		return nil
	default:
		return UnknownKindError.Newf("kind=%q", string(b))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
