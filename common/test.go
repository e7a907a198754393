// +build test

package common

import (
	"github.com/inconshreveable/log15"
)

func init() {
	InTest = true
}

// SetTestLogger makes logger print every record as json to stderr.
func SetTestLogger(logger log15.Logger) {
	handler, _ := LogHandler(LogFormatter("json"), "")
	logger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, handler))
}
