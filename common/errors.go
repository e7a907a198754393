package common

const (
	_ ErrorCode = iota
	InvalidVersionErrorCode
)

var (
	InvalidVersionError = NewErrorType("common", InvalidVersionErrorCode, "invalid version")
)
