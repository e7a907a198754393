package common

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testError struct {
	suite.Suite
}

func (t *testError) TestEscapeMessage() {
	err := NewErrorType("t", 0, "1 < 2")
	t.Equal("{'code':'t-0','message':'1 < 2'}", strings.TrimSpace(err.Error()))
}

func (t *testError) TestNewf() {
	et := NewErrorType("t", 1, "showme")
	err := et.Newf("length=%d", 3)

	t.True(xerrors.Is(err, et))
	t.Equal("{'code':'t-1','message':'showme; length=3'}", err.Error())
}

func (t *testError) TestNewWithCause() {
	et := NewErrorType("t", 1, "showme")
	cause := xerrors.New("findme")
	err := et.New(cause)

	t.True(xerrors.Is(err, et))
	t.True(xerrors.Is(err, cause))
	t.Contains(err.Error(), "findme")
}

func (t *testError) TestDifferentKinds() {
	a := NewErrorType("t", 1, "a")
	b := NewErrorType("t", 2, "b")
	c := NewErrorType("u", 1, "c")

	err := a.Newf("x")
	t.False(xerrors.Is(err, b))
	t.False(xerrors.Is(err, c))
	t.False(xerrors.Is(b.New(nil), a))
}

func (t *testError) TestWrappedByOthers() {
	et := NewErrorType("t", 1, "showme")
	err := xerrors.Errorf("outer: %w", et.Newf("inner"))

	t.True(xerrors.Is(err, et))

	var e *Error
	t.True(xerrors.As(err, &e))
	t.Equal("t-1", e.Kind().Code())
}

func (t *testError) TestFormat() {
	et := NewErrorType("t", 1, "showme")
	err := et.Newf("inner")

	t.Equal("t-1: showme; inner", fmt.Sprintf("%v", err))
	t.Contains(fmt.Sprintf("%+v", err), "error_test.go")
}

func TestError(t *testing.T) {
	suite.Run(t, new(testError))
}
