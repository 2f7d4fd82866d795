// cmd/assistant/commands/ask.go
package commands

import (
	"context"
	"fmt"
	"strings"

	"inventory-assistant/internal/assistant/pipeline"

	"github.com/spf13/cobra"
)

var (
	askLanguage string
	askTenant   string
)

func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer one question and print the reply",
		Long: `Runs a single question through the full pipeline against the
configured store.

Examples:
  assistant ask "rice stock" --tenant t1
  assistant ask "चावल कितना है" --lang hi-IN --tenant t1`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVarP(&askLanguage, "lang", "l", "", "Reply language (default: languages.default)")
	cmd.Flags().StringVarP(&askTenant, "tenant", "t", "", "Tenant (business) id")
	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, log, nil, 1)
	if err != nil {
		return err
	}
	defer a.Close()

	resp := a.pipeline.Handle(ctx, pipeline.Request{
		Message:  strings.Join(args, " "),
		Language: askLanguage,
		TenantID: askTenant,
	})
	fmt.Fprintln(cmd.OutOrStdout(), resp.Reply)
	return nil
}
