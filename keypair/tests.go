// +build test

package keypair

import (
	"github.com/spikeekips/nkeys/common"
)

func init() {
	common.SetTestLogger(Log())
}
