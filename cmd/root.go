package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"greenearth.GO/config"
	"greenearth.GO/core/logging"
)

var rootCmd = &cobra.Command{
	Use:   "greenearth",
	Short: "GreenEarth storefront maintenance commands",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if config.AppConfig == nil {
			if err := config.LoadAppConfig(); err != nil {
				return err
			}
		}
		logging.Setup(config.AppConfig.Log.Level, config.AppConfig.Log.Format)
		if err := config.InitRedis(config.AppConfig.Redis); err != nil {
			log.WithError(err).Warn("Redis not reachable, sessions kept in memory")
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute adds registered commands and runs the root command.
func Execute() error {
	Apply()
	return rootCmd.ExecuteContext(context.Background())
}
