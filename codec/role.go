package codec

import (
	"encoding/json"
	"strings"
)

// Role is the entity type carried in every encoded public key and seed. The
// value is the prefix byte itself: a base-32 index shifted left by 3 bits, so
// the first character of an encoded public key is the role character.
type Role byte

const (
	RoleAccount  Role = 0       // A
	RoleCluster  Role = 2 << 3  // C
	RoleServer   Role = 13 << 3 // N
	RoleOperator Role = 14 << 3 // O
	RoleUser     Role = 20 << 3 // U
	RoleCurve    Role = 23 << 3 // X
)

// Class markers. They share the prefix byte space with the roles but never
// identify an entity.
const (
	prefixByteGeneric byte = 6 << 3  // G
	prefixBytePrivate byte = 15 << 3 // P
	prefixByteSeed    byte = 18 << 3 // S
)

type roleInfo struct {
	role Role
	name string
}

var roleTable = []roleInfo{
	{role: RoleOperator, name: "operator"},
	{role: RoleAccount, name: "account"},
	{role: RoleUser, name: "user"},
	{role: RoleCluster, name: "cluster"},
	{role: RoleServer, name: "server"},
	{role: RoleCurve, name: "curve"},
}

var roleByByte map[byte]roleInfo

func init() {
	roleByByte = map[byte]roleInfo{}
	for _, r := range roleTable {
		roleByByte[byte(r.role)] = r
	}
}

// Roles returns every known role.
func Roles() []Role {
	roles := make([]Role, len(roleTable))
	for i, r := range roleTable {
		roles[i] = r.role
	}

	return roles
}

func RoleFromByte(b byte) (Role, error) {
	r, found := roleByByte[b]
	if !found {
		return 0, InvalidPrefixError.Newf("unknown role byte; byte=%d", b)
	}

	return r.role, nil
}

// RoleFromName accepts the role name or the role character, in any case.
func RoleFromName(s string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for _, r := range roleTable {
		if n == r.name || (len(n) == 1 && n[0] == r.role.Char()+('a'-'A')) {
			return r.role, nil
		}
	}

	return 0, InvalidRoleError.Newf("unknown role name; name=%q", s)
}

func (r Role) Byte() byte {
	return byte(r)
}

// Char returns the base-32 character the role byte encodes to.
func (r Role) Char() byte {
	return alphabet[byte(r)>>3]
}

func (r Role) IsValid() error {
	if _, found := roleByByte[byte(r)]; !found {
		return InvalidRoleError.Newf("byte=%d", byte(r))
	}

	return nil
}

func (r Role) String() string {
	if i, found := roleByByte[byte(r)]; found {
		return i.name
	}

	return "unknown"
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	n, err := RoleFromName(s)
	if err != nil {
		return err
	}

	*r = n

	return nil
}

func (r Role) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}
