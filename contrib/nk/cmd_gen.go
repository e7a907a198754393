package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spikeekips/nkeys/codec"
	"github.com/spikeekips/nkeys/keypair"
)

var (
	flagGenPubOut  bool
	flagGenPrefix  string
	flagGenWorkers int = runtime.NumCPU()
)

var genCmd = &cobra.Command{
	Use:   "gen <role>",
	Short: "generate new key pair",
	Long:  "generate new key pair; role is one of operator, account, user, cluster, server and curve",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		role, err := codec.RoleFromName(args[0])
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}

		var kp keypair.KeyPair
		if len(flagGenPrefix) > 0 {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				select {
				case <-sigc:
					cancel()
				case <-ctx.Done():
				}
			}()

			kp, err = findVanity(ctx, role, flagGenPrefix, flagGenWorkers)
		} else {
			kp, err = keypair.CreatePair(role)
		}
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}
		defer kp.Clear()

		seed, err := kp.Seed()
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(seed))

		if flagGenPubOut {
			pk, err := kp.PublicKey()
			if err != nil {
				cmd.Println("Error:", err.Error())
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pk)
		}

		log.Debug("key pair generated", "role", role)
	},
}

func init() {
	genCmd.Flags().BoolVar(&flagGenPubOut, "pubout", false, "print public key")
	genCmd.Flags().StringVar(&flagGenPrefix, "prefix", "", "vanity prefix of public key")
	genCmd.Flags().IntVar(&flagGenWorkers, "workers", flagGenWorkers, "number of vanity workers")
}
