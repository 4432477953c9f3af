package main

import (
	"os"

	"github.com/konstantinfoerster/card-stacks-go/internal/config"
	logger "github.com/konstantinfoerster/card-stacks-go/internal/log"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfgPath string
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:           "stacks",
	Short:         "Manage stacks of trading cards",
	Long:          `Stacks reads and writes deck lists and collection exports, applies set-like operations across them and enriches cards with catalog data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath != "" {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		return logger.SetLogLevel(cfg.Logging.LevelOrDefault())
	},
}

func init() {
	logger.SetupConsoleLogger()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the config file")

	rootCmd.AddCommand(newOperationCommands()...)
	rootCmd.AddCommand(operationsCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(filterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
