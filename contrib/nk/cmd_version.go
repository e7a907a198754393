package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spikeekips/nkeys/common"
)

var version common.Version = common.MustParseVersion("v0.1.0")

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
