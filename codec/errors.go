package codec

import "github.com/spikeekips/nkeys/common"

const (
	InvalidEncodingErrorCode common.ErrorCode = iota + 1
	InvalidChecksumErrorCode
	InvalidPrefixErrorCode
	InvalidSeedLenErrorCode
	InvalidPublicKeyErrorCode
	InvalidPrivateKeyErrorCode
	InvalidRoleErrorCode
)

var (
	InvalidEncodingError   = common.NewErrorType("codec", InvalidEncodingErrorCode, "invalid encoded key")
	InvalidChecksumError   = common.NewErrorType("codec", InvalidChecksumErrorCode, "invalid checksum")
	InvalidPrefixError     = common.NewErrorType("codec", InvalidPrefixErrorCode, "invalid prefix byte")
	InvalidSeedLenError    = common.NewErrorType("codec", InvalidSeedLenErrorCode, "invalid seed length")
	InvalidPublicKeyError  = common.NewErrorType("codec", InvalidPublicKeyErrorCode, "invalid public key")
	InvalidPrivateKeyError = common.NewErrorType("codec", InvalidPrivateKeyErrorCode, "invalid private key")
	InvalidRoleError       = common.NewErrorType("codec", InvalidRoleErrorCode, "invalid role")
)
