package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestJSON() {
	v, err := NewVersion("0.1.2-proto+findme")
	t.NoError(err)

	b, err := json.Marshal(v)
	t.NoError(err)
	t.Equal(`"0.1.2-proto+findme"`, string(b))

	var nv Version
	t.NoError(json.Unmarshal(b, &nv))
	t.True(v.Equal(nv))
}

func (t *testVersion) TestInvalid() {
	_, err := NewVersion("not-version")
	t.True(xerrors.Is(err, InvalidVersionError))

	t.Panics(func() { MustParseVersion("a.b.c") })
}

func (t *testVersion) TestIsCompatible() {
	v := MustParseVersion("v1.2.0")

	t.True(v.IsCompatible(MustParseVersion("v1.0.0")))
	t.True(v.IsCompatible(MustParseVersion("v1.2.0")))
	t.False(v.IsCompatible(MustParseVersion("v1.3.0")))
	t.False(v.IsCompatible(MustParseVersion("v2.0.0")))
	t.False(v.IsCompatible(MustParseVersion("v0.9.0")))
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
