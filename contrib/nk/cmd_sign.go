package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSignSeed  string
	flagSignInput string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "sign input file with seed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		kp, err := loadSeedFile(flagSignSeed)
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}
		defer kp.Clear()

		input, err := ioutil.ReadFile(flagSignInput)
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}

		sig, err := kp.Sign(input)
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}

		log.Debug("signed", "role", kp.Role(), "input", flagSignInput, "length", len(input))

		fmt.Fprintln(cmd.OutOrStdout(), sig.String())
	},
}

func init() {
	signCmd.Flags().StringVar(&flagSignSeed, "seed", "", "seed file")
	signCmd.Flags().StringVar(&flagSignInput, "input", "", "input file")
	_ = signCmd.MarkFlagRequired("seed")
	_ = signCmd.MarkFlagRequired("input")
}
