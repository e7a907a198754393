package keypair

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/spikeekips/nkeys/codec"
)

// decoratedRE matches a value framed by dashed marker lines, as found in
// credential files.
var decoratedRE = regexp.MustCompile(`\s*(?:(?:-{3,}.*-{3,}\r?\n)([\w\-.=]+)(?:\r?\n-{3,}.*-{3,}(?:\r?\n|\z)))`)

const seedBanner = `************************* IMPORTANT *************************
NKEY Seed printed below can be used to sign and prove identity.
NKEYs are sensitive and should be treated as secrets.
`

// ParseDecoratedJWT returns the first decorated value of contents, or the
// trimmed contents when nothing is decorated.
func ParseDecoratedJWT(contents []byte) (string, error) {
	items := decoratedRE.FindAllSubmatch(contents, -1)
	if len(items) < 1 {
		return strings.TrimSpace(string(contents)), nil
	}

	return string(items[0][1]), nil
}

// ParseDecoratedNKey finds the first seed in contents and returns its pair.
// Decorated blocks are searched first, then plain lines.
func ParseDecoratedNKey(contents []byte) (KeyPair, error) {
	var seed []byte
	for _, item := range decoratedRE.FindAllSubmatch(contents, -1) {
		if codec.ClassOf(string(item[1])) == codec.ClassSeed {
			seed = item[1]
			break
		}
	}

	if seed == nil {
		for _, line := range bytes.Split(contents, []byte("\n")) {
			l := bytes.TrimSpace(line)
			if codec.ClassOf(string(l)) == codec.ClassSeed {
				seed = l
				break
			}
		}
	}

	if seed == nil {
		return nil, NoSeedFoundError.New(nil)
	}

	return FromSeed(seed)
}

// ParseDecoratedUserNKey is ParseDecoratedNKey for user seeds only.
func ParseDecoratedUserNKey(contents []byte) (KeyPair, error) {
	kp, err := ParseDecoratedNKey(contents)
	if err != nil {
		return nil, err
	}

	if err := CompatibleKeyPair(kp, codec.RoleUser); err != nil {
		kp.Clear()
		return nil, err
	}

	return kp, nil
}

// DecorateSeed frames an encoded seed with its role markers and the warning
// banner.
func DecorateSeed(seed []byte) ([]byte, error) {
	role, raw, err := codec.DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	wipe(raw)

	name := strings.ToUpper(role.String())

	var b bytes.Buffer
	b.WriteString(seedBanner)
	b.WriteString("\n")
	fmt.Fprintf(&b, "-----BEGIN %s NKEY SEED-----\n", name)
	b.Write(seed)
	fmt.Fprintf(&b, "\n------END %s NKEY SEED------\n", name)

	return b.Bytes(), nil
}

// DecorateJWT frames a JWT the way credential files carry it.
func DecorateJWT(jwt string) []byte {
	return []byte(fmt.Sprintf("-----BEGIN NATS USER JWT-----\n%s\n------END NATS USER JWT------\n", jwt))
}

// FormatUserConfig builds a credential file from a user JWT and a user seed.
func FormatUserConfig(jwt string, seed []byte) ([]byte, error) {
	role, raw, err := codec.DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	wipe(raw)

	if role != codec.RoleUser {
		return nil, IncompatibleKeyError.Newf("not user seed; role=%s", role)
	}

	d, err := DecorateSeed(seed)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.Write(DecorateJWT(jwt))
	b.WriteString("\n")
	b.Write(d)

	return b.Bytes(), nil
}
