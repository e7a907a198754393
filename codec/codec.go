package codec

const (
	SeedSize             = 32
	PublicKeySize        = 32
	PrivateKeySize       = 64
	CurvePrivateKeySize  = 32
	seedPrefixSize       = 2
	publicKeyPrefixSize  = 1
	privateKeyPrefixSize = 1
	genericPrefixSize    = 1
)

// Class is the kind of payload an encoded string carries, told apart by its
// prefix.
type Class uint

const (
	ClassUnknown Class = iota
	ClassSeed
	ClassPublicKey
	ClassPrivateKey
	ClassGeneric
)

func (c Class) String() string {
	switch c {
	case ClassSeed:
		return "seed"
	case ClassPublicKey:
		return "public"
	case ClassPrivateKey:
		return "private"
	case ClassGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// EncodeSeed encodes a raw seed of the given role; the result starts with 'S'
// followed by the role character.
func EncodeSeed(role Role, seed []byte) ([]byte, error) {
	if err := role.IsValid(); err != nil {
		return nil, err
	}

	if len(seed) != SeedSize {
		return nil, InvalidSeedLenError.Newf("length=%d", len(seed))
	}

	// the 5 bits of the role are split over the 2 prefix bytes, so the role
	// character follows 'S' in the text form.
	raw := make([]byte, 0, seedPrefixSize+SeedSize+2)
	raw = append(raw, prefixByteSeed|(byte(role)>>5), (byte(role)&31)<<3)
	raw = append(raw, seed...)
	raw = appendChecksum(raw)
	defer wipe(raw)

	encoded := make([]byte, b32Enc.EncodedLen(len(raw)))
	b32Enc.Encode(encoded, raw)

	return encoded, nil
}

// DecodeSeed returns the role and the raw 32-byte seed of an encoded seed.
func DecodeSeed(src []byte) (Role, []byte, error) {
	raw, err := decode32(src)
	if err != nil {
		return 0, nil, err
	}
	defer wipe(raw)

	body, err := splitChecksum(raw)
	if err != nil {
		return 0, nil, err
	}

	if len(body) < seedPrefixSize {
		return 0, nil, InvalidSeedLenError.Newf("length=%d", len(body))
	}

	if body[0]&248 != prefixByteSeed {
		return 0, nil, InvalidPrefixError.Newf("not seed prefix; class=%s", classOfPrefix(body[0]))
	}

	role, err := RoleFromByte((body[0]&7)<<5 | (body[1]&248)>>3)
	if err != nil {
		return 0, nil, err
	}

	if l := len(body) - seedPrefixSize; l != SeedSize {
		return 0, nil, InvalidSeedLenError.Newf("length=%d", l)
	}

	seed := make([]byte, SeedSize)
	copy(seed, body[seedPrefixSize:])

	return role, seed, nil
}

func EncodePublicKey(role Role, pub []byte) (string, error) {
	if err := role.IsValid(); err != nil {
		return "", err
	}

	if len(pub) != PublicKeySize {
		return "", InvalidPublicKeyError.Newf("invalid length; length=%d", len(pub))
	}

	raw := make([]byte, 0, publicKeyPrefixSize+PublicKeySize+2)
	raw = append(raw, byte(role))
	raw = append(raw, pub...)

	return Encode32(appendChecksum(raw)), nil
}

// DecodePublicKey returns the role and the raw 32-byte public key.
func DecodePublicKey(src string) (Role, []byte, error) {
	raw, err := Decode32(src)
	if err != nil {
		return 0, nil, err
	}

	body, err := splitChecksum(raw)
	if err != nil {
		return 0, nil, err
	}

	role, err := RoleFromByte(body[0])
	if err != nil {
		return 0, nil, InvalidPrefixError.Newf("not public key prefix; class=%s", classOfPrefix(body[0]))
	}

	if l := len(body) - publicKeyPrefixSize; l != PublicKeySize {
		return 0, nil, InvalidPublicKeyError.Newf("invalid length; length=%d", l)
	}

	pub := make([]byte, PublicKeySize)
	copy(pub, body[publicKeyPrefixSize:])

	return role, pub, nil
}

// DecodePublicKeyWithRole is DecodePublicKey which also requires the role.
func DecodePublicKeyWithRole(role Role, src string) ([]byte, error) {
	r, pub, err := DecodePublicKey(src)
	if err != nil {
		return nil, err
	}

	if r != role {
		return nil, InvalidPrefixError.Newf("unexpected role; expected=%s role=%s", role, r)
	}

	return pub, nil
}

// EncodePrivateKey encodes a 64-byte ed25519 private key or a 32-byte curve
// private key. Private keys carry no role.
func EncodePrivateKey(priv []byte) ([]byte, error) {
	if l := len(priv); l != PrivateKeySize && l != CurvePrivateKeySize {
		return nil, InvalidPrivateKeyError.Newf("invalid length; length=%d", l)
	}

	raw := make([]byte, 0, privateKeyPrefixSize+len(priv)+2)
	raw = append(raw, prefixBytePrivate)
	raw = append(raw, priv...)
	raw = appendChecksum(raw)
	defer wipe(raw)

	encoded := make([]byte, b32Enc.EncodedLen(len(raw)))
	b32Enc.Encode(encoded, raw)

	return encoded, nil
}

func DecodePrivateKey(src []byte) ([]byte, error) {
	raw, err := decode32(src)
	if err != nil {
		return nil, err
	}
	defer wipe(raw)

	body, err := splitChecksum(raw)
	if err != nil {
		return nil, err
	}

	if body[0] != prefixBytePrivate {
		return nil, InvalidPrefixError.Newf("not private key prefix; class=%s", classOfPrefix(body[0]))
	}

	l := len(body) - privateKeyPrefixSize
	if l != PrivateKeySize && l != CurvePrivateKeySize {
		return nil, InvalidPrivateKeyError.Newf("invalid length; length=%d", l)
	}

	priv := make([]byte, l)
	copy(priv, body[privateKeyPrefixSize:])

	return priv, nil
}

func classOfPrefix(b byte) Class {
	switch {
	case b&248 == prefixByteSeed:
		return ClassSeed
	case b == prefixBytePrivate:
		return ClassPrivateKey
	case b == prefixByteGeneric:
		return ClassGeneric
	}

	if _, found := roleByByte[b]; found {
		return ClassPublicKey
	}

	return ClassUnknown
}

// ClassOf guesses the class of an encoded string from its first decoded
// byte. The checksum is not validated; use the Decode functions for that.
func ClassOf(src string) Class {
	if len(src) < 2 {
		return ClassUnknown
	}

	// decode only the first 2 characters; enough for one prefix byte
	raw, err := Decode32(src[:2])
	if err != nil || len(raw) < 1 {
		return ClassUnknown
	}

	return classOfPrefix(raw[0])
}

// IsValidEncoding checks base-32 and the checksum, nothing else.
func IsValidEncoding(src string) bool {
	raw, err := Decode32(src)
	if err != nil {
		return false
	}
	defer wipe(raw)

	_, err = splitChecksum(raw)

	return err == nil
}

func IsValidPublicKey(src string) bool {
	_, _, err := DecodePublicKey(src)

	return err == nil
}

func IsValidPublicRoleKey(role Role, src string) bool {
	_, err := DecodePublicKeyWithRole(role, src)

	return err == nil
}
