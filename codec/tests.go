// +build test

package codec

import (
	"github.com/spikeekips/nkeys/common"
)

func init() {
	common.SetTestLogger(Log())
}
