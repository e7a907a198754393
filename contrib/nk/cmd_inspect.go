package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeekips/nkeys/keypair"
)

var (
	flagInspectSeed   string
	flagInspectCreds  string
	flagInspectPublic string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "print role and public key of seed, creds or public key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var kp keypair.KeyPair
		var jwt string
		var err error

		switch {
		case len(flagInspectSeed) > 0:
			kp, err = loadSeedFile(flagInspectSeed)
		case len(flagInspectCreds) > 0:
			kp, jwt, err = loadCredsFile(flagInspectCreds)
		case len(flagInspectPublic) > 0:
			kp, err = keypair.FromPublicKey(flagInspectPublic)
		default:
			cmd.Println("Error: one of --seed, --creds or --public is required")
			os.Exit(1)
		}
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}
		defer kp.Clear()

		i, err := newInspected(kp, jwt)
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}

		b, err := i.format(flagOutputFormat.f)
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	},
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectSeed, "seed", "", "seed file")
	inspectCmd.Flags().StringVar(&flagInspectCreds, "creds", "", "creds file")
	inspectCmd.Flags().StringVar(&flagInspectPublic, "public", "", "encoded public key")
	inspectCmd.Flags().Var(&flagOutputFormat, "format", "output format: {yaml json}")
}
