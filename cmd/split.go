package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/locate"
	"github.com/timvw/pane-pilot/internal/result"
)

var flagVertical bool

var splitCmd = &cobra.Command{
	Use:   "split <session>",
	Short: "Split a pane",
	Long: `Ask the multiplexer to create a pane adjacent to the one identified by
a shorthand address or long-form session identifier. --vertical puts the
new pane side by side with the original; the default stacks them.

Only the new pane's identifier is reported: its coordinates would
require a fresh snapshot taken after the layout changed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "split", func(ctx context.Context, h host.Host) (any, error) {
			return runSplit(ctx, h, args[0], flagVertical)
		})
	},
}

func runSplit(ctx context.Context, h host.Host, token string, vertical bool) (result.Split, error) {
	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.Split{}, err
	}

	r, err := locate.Locate(snap, token)
	if err != nil {
		return result.Split{}, err
	}

	newID, err := h.Split(ctx, r.Pane.ID, vertical)
	if err != nil {
		return result.Split{}, result.Errorf(result.KindSplitFailed, "failed to split pane: %v", err)
	}

	direction := "horizontal"
	if vertical {
		direction = "vertical"
	}

	return result.Split{
		Success:           true,
		OriginalSessionID: r.Pane.ID,
		OriginalShorthand: r.Shorthand,
		NewSessionID:      newID,
		SplitDirection:    direction,
	}, nil
}

func init() {
	splitCmd.Flags().BoolVar(&flagVertical, "vertical", false,
		"split with a vertical divider (new pane to the side)")
	rootCmd.AddCommand(splitCmd)
}
