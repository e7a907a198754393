package main

import (
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/spikeekips/nkeys/codec"
	"github.com/spikeekips/nkeys/common"
	"github.com/spikeekips/nkeys/keypair"
)

var rootCmd = &cobra.Command{
	Use:   "nk",
	Short: "nk generates, inspects and uses role-typed keys",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if len(flagConfig) > 0 {
			config, err := loadConfig(flagConfig)
			if err != nil {
				cmd.Println("Error:", err.Error())
				os.Exit(1)
			}

			if err := config.apply(cmd); err != nil {
				cmd.Println("Error:", err.Error())
				os.Exit(1)
			}
		}

		handler, err := common.LogHandler(common.LogFormatter(flagLogFormat.f), flagLogOut)
		if err != nil {
			cmd.Println("Error:", err.Error())
			os.Exit(1)
		}
		handler = log15.CallerFileHandler(handler)

		logs := []log15.Logger{
			log,
			codec.Log(),
			common.Log(),
			keypair.Log(),
		}
		for _, l := range logs {
			common.SetLogger(l, flagLogLevel.lvl, handler)
		}

		log.Debug("parsed flags", "command", cmd.Name(), "config", flagConfig)
	},
}

func main() {
	rootCmd.PersistentFlags().Var(&flagLogLevel, "log-level", "log level: {debug error warn info crit}")
	rootCmd.PersistentFlags().Var(&flagLogFormat, "log-format", "log format: {json terminal}")
	rootCmd.PersistentFlags().StringVar(&flagLogOut, "log-out", "", "log output file; default is stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "yaml config file")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
