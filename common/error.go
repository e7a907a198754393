package common

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ErrorCode uint

// ErrorType is the comparable identity of an error kind. Errors created by
// New and Newf keep the identity, so callers can always branch with
// xerrors.Is(err, SomeErrorType).
type ErrorType struct {
	id      string
	code    ErrorCode
	message string
}

func NewErrorType(id string, code ErrorCode, message string) ErrorType {
	return ErrorType{id: id, code: code, message: message}
}

func (e ErrorType) Code() string {
	return fmt.Sprintf("%s-%d", e.id, e.code)
}

func (e ErrorType) Message() string {
	return e.message
}

func (e ErrorType) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    e.Code(),
		"message": e.message,
	}, false, false)
}

func (e ErrorType) Error() string {
	b, _ := e.MarshalJSON()

	return TerminalLogString(string(b))
}

func (e ErrorType) Is(err error) bool {
	switch t := err.(type) {
	case ErrorType:
		return e.id == t.id && e.code == t.code
	case *Error:
		return e.Is(t.kind)
	default:
		return false
	}
}

// New wraps the cause; nil cause is allowed.
func (e ErrorType) New(err error) error {
	return &Error{kind: e, err: err, frame: xerrors.Caller(1)}
}

func (e ErrorType) Newf(format string, args ...interface{}) error {
	return &Error{
		kind:   e,
		detail: fmt.Sprintf(format, args...),
		frame:  xerrors.Caller(1),
	}
}

func (e ErrorType) Wrapf(err error, format string, args ...interface{}) error {
	return &Error{
		kind:   e,
		detail: fmt.Sprintf(format, args...),
		err:    err,
		frame:  xerrors.Caller(1),
	}
}

type Error struct {
	kind   ErrorType
	detail string
	err    error
	frame  xerrors.Frame
}

func (e *Error) Kind() ErrorType {
	return e.kind
}

func (e *Error) message() string {
	m := e.kind.message
	if len(e.detail) > 0 {
		m = fmt.Sprintf("%s; %s", m, e.detail)
	}

	return m
}

func (e *Error) fullMessage() string {
	m := e.message()
	if e.err != nil {
		m = fmt.Sprintf("%s; %s", m, e.err.Error())
	}

	return m
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    e.kind.Code(),
		"message": e.fullMessage(),
	}, false, false)
}

func (e *Error) Error() string {
	b, _ := e.MarshalJSON()

	return TerminalLogString(string(b))
}

func (e *Error) Is(err error) bool {
	return e.kind.Is(err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Format(s fmt.State, v rune) {
	xerrors.FormatError(e, s, v)
}

func (e *Error) FormatError(p xerrors.Printer) error {
	p.Printf("%s: %s", e.kind.Code(), e.message())
	e.frame.Format(p)

	return e.err
}
