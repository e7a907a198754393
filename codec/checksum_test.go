package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testChecksum struct {
	suite.Suite
}

func (t *testChecksum) TestXModemCheckValue() {
	t.Equal(uint16(0x31C3), Checksum16([]byte("123456789")))
	t.Equal(uint16(0), Checksum16(nil))
}

func (t *testChecksum) TestAppendLittleEndian() {
	b := appendChecksum([]byte("123456789"))
	t.Equal(11, len(b))
	t.Equal(uint16(0x31C3), binary.LittleEndian.Uint16(b[9:]))
	t.Equal(byte(0xC3), b[9])
}

func (t *testChecksum) TestSplit() {
	b := appendChecksum([]byte("showme"))

	body, err := splitChecksum(b)
	t.NoError(err)
	t.Equal("showme", string(body))

	b[len(b)-1] ^= 1
	_, err = splitChecksum(b)
	t.True(xerrors.Is(err, InvalidChecksumError))

	_, err = splitChecksum([]byte{1, 2})
	t.True(xerrors.Is(err, InvalidEncodingError))
}

func TestChecksum(t *testing.T) {
	suite.Run(t, new(testChecksum))
}
