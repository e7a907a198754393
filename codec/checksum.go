package codec

import (
	"encoding/binary"

	"github.com/stellar/go/crc16"
)

// Checksum16 is CRC-16/XMODEM: polynomial 0x1021, initial value 0, no
// reflection.
func Checksum16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(crc16.Checksum(b))
}

// appendChecksum appends the little-endian checksum of b to b.
func appendChecksum(b []byte) []byte {
	return append(b, crc16.Checksum(b)...)
}

// splitChecksum validates the trailing 2-byte checksum of raw and returns the
// checked body. The body shares memory with raw.
func splitChecksum(raw []byte) ([]byte, error) {
	if len(raw) < 3 {
		return nil, InvalidEncodingError.Newf("too short; length=%d", len(raw))
	}

	body := raw[:len(raw)-2]
	if err := crc16.Validate(body, raw[len(raw)-2:]); err != nil {
		return nil, InvalidChecksumError.New(nil)
	}

	return body, nil
}
