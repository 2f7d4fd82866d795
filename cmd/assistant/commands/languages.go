// cmd/assistant/commands/languages.go
package commands

import (
	"fmt"
	"text/tabwriter"

	"inventory-assistant/internal/assistant/renderer"

	"github.com/spf13/cobra"
)

func NewLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported reply languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := renderer.NewCatalog("en-US", renderer.DefaultProfiles()...)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, code := range catalog.Codes() {
				fmt.Fprintf(w, "%s\t%s\n", code, catalog.Lookup(code).Name)
			}
			return w.Flush()
		},
	}
}
