package keypair

import "github.com/spikeekips/nkeys/common"

const (
	PublicKeyOnlyErrorCode common.ErrorCode = iota + 1
	ClearedPairErrorCode
	SignatureVerificationFailedErrorCode
	InvalidKeyOperationErrorCode
	InvalidCurveKeyOperationErrorCode
	InvalidSealedErrorCode
	NoSeedFoundErrorCode
	IncompatibleKeyErrorCode
	UnknownKindErrorCode
	RandomSourceErrorCode
)

var (
	PublicKeyOnlyError = common.NewErrorType(
		"keypair",
		PublicKeyOnlyErrorCode,
		"no seed or private key available",
	)
	ClearedPairError = common.NewErrorType(
		"keypair",
		ClearedPairErrorCode,
		"key pair is cleared",
	)
	SignatureVerificationFailedError = common.NewErrorType(
		"keypair",
		SignatureVerificationFailedErrorCode,
		"signature verification failed",
	)
	InvalidKeyOperationError = common.NewErrorType(
		"keypair",
		InvalidKeyOperationErrorCode,
		"invalid operation for signing key",
	)
	InvalidCurveKeyOperationError = common.NewErrorType(
		"keypair",
		InvalidCurveKeyOperationErrorCode,
		"invalid operation for curve key",
	)
	InvalidSealedError = common.NewErrorType(
		"keypair",
		InvalidSealedErrorCode,
		"failed to open sealed message",
	)
	NoSeedFoundError = common.NewErrorType(
		"keypair",
		NoSeedFoundErrorCode,
		"no seed found",
	)
	IncompatibleKeyError = common.NewErrorType(
		"keypair",
		IncompatibleKeyErrorCode,
		"incompatible key",
	)
	UnknownKindError = common.NewErrorType(
		"keypair",
		UnknownKindErrorCode,
		"unknown key pair kind found",
	)
	RandomSourceError = common.NewErrorType(
		"keypair",
		RandomSourceErrorCode,
		"failed to read random seed",
	)
)
