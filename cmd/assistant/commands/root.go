// cmd/assistant/commands/root.go

// Package commands holds the cobra command tree of the assistant binary.
package commands

import (
	"inventory-assistant/internal/common/config"
	"inventory-assistant/internal/common/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

func SetVersion(v string) {
	version = v
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Multilingual inventory question answering",
		Long: `Answers natural language questions about a shop's inventory in
English, Hindi, Marathi, Tamil and Telugu, and forwards supplier demand
requests by email or SMS.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (default: configs/config.yaml)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewLanguagesCmd())
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format).With(map[string]interface{}{
		"service": cfg.App.Name,
		"version": version,
	})
}
