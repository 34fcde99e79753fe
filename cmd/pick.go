package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/config"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/picker"
	"github.com/timvw/pane-pilot/internal/result"
)

var flagTheme string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a pane",
	Long: `Open a filterable full-screen list of every pane and print the chosen
pane's session identifier and canonical shorthand as JSON. Cancelling
prints nothing and exits 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "pick", func(ctx context.Context, h host.Host) (any, error) {
			snap, err := takeSnapshot(ctx, h)
			if err != nil {
				return nil, err
			}

			theme := flagTheme
			if theme == "" {
				if cfg, err := config.Load(); err == nil {
					theme = cfg.Theme
				}
			}

			currentID, _ := h.CurrentSessionID()
			item, ok, err := picker.Run(snap, currentID, theme)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, nil
			}
			return result.Pick{SessionID: item.SessionID, Shorthand: item.Shorthand}, nil
		})
	},
}

func init() {
	pickCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light")
	rootCmd.AddCommand(pickCmd)
}
