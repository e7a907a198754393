package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testRole struct {
	suite.Suite
}

func (t *testRole) TestChars() {
	expected := map[Role]byte{
		RoleOperator: 'O',
		RoleAccount:  'A',
		RoleUser:     'U',
		RoleCluster:  'C',
		RoleServer:   'N',
		RoleCurve:    'X',
	}

	t.Equal(len(expected), len(Roles()))
	for _, r := range Roles() {
		t.Equal(expected[r], r.Char(), "role=%s", r)
	}
}

func (t *testRole) TestFromByte() {
	for _, r := range Roles() {
		n, err := RoleFromByte(r.Byte())
		t.NoError(err)
		t.Equal(r, n)
	}

	for _, b := range []byte{prefixByteSeed, prefixBytePrivate, prefixByteGeneric, 1, 255} {
		_, err := RoleFromByte(b)
		t.True(xerrors.Is(err, InvalidPrefixError), "byte=%d", b)
	}
}

func (t *testRole) TestFromName() {
	for _, s := range []string{"user", "USER", " User ", "u", "U"} {
		r, err := RoleFromName(s)
		t.NoError(err)
		t.Equal(RoleUser, r)
	}

	r, err := RoleFromName("n")
	t.NoError(err)
	t.Equal(RoleServer, r)

	_, err = RoleFromName("seed")
	t.True(xerrors.Is(err, InvalidRoleError))

	_, err = RoleFromName("s")
	t.True(xerrors.Is(err, InvalidRoleError))
}

func (t *testRole) TestJSON() {
	b, err := json.Marshal(RoleOperator)
	t.NoError(err)
	t.Equal(`"operator"`, string(b))

	var r Role
	t.NoError(json.Unmarshal(b, &r))
	t.Equal(RoleOperator, r)

	t.Error(json.Unmarshal([]byte(`"findme"`), &r))
}

func (t *testRole) TestUnknownString() {
	t.Equal("unknown", Role(prefixByteSeed).String())
	t.Error(Role(prefixByteSeed).IsValid())
}

func TestRole(t *testing.T) {
	suite.Run(t, new(testRole))
}
