package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spikeekips/nkeys/keypair"
)

var (
	flagVerifySeed   string
	flagVerifyPublic string
	flagVerifyInput  string
	flagVerifySig    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "verify signature of input file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var kp keypair.KeyPair
		var err error

		switch {
		case len(flagVerifySeed) > 0:
			kp, err = loadSeedFile(flagVerifySeed)
		case len(flagVerifyPublic) > 0:
			kp, err = keypair.FromPublicKey(flagVerifyPublic)
		default:
			cmd.Println("Error: one of --seed or --public is required")
			os.Exit(1)
		}
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}
		defer kp.Clear()

		if err := verifyFiles(kp, flagVerifyInput, flagVerifySig); err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Verified OK")
	},
}

func verifyFiles(kp keypair.KeyPair, inputFile, sigFile string) error {
	input, err := ioutil.ReadFile(inputFile)
	if err != nil {
		return err
	}

	b, err := ioutil.ReadFile(sigFile)
	if err != nil {
		return err
	}

	sig, err := keypair.NewSignatureFromString(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}

	return kp.Verify(input, sig)
}

func init() {
	verifyCmd.Flags().StringVar(&flagVerifySeed, "seed", "", "seed file")
	verifyCmd.Flags().StringVar(&flagVerifyPublic, "public", "", "encoded public key")
	verifyCmd.Flags().StringVar(&flagVerifyInput, "input", "", "input file")
	verifyCmd.Flags().StringVar(&flagVerifySig, "sig", "", "signature file")
	_ = verifyCmd.MarkFlagRequired("input")
	_ = verifyCmd.MarkFlagRequired("sig")
}
