package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/locate"
	"github.com/timvw/pane-pilot/internal/result"
)

var sidePaneCmd = &cobra.Command{
	Use:   "side-pane",
	Short: "Pick the neighboring pane in the caller's tab",
	Long: `Find the pane adjacent to the one this process runs in. The pane at
the next higher position in the same tab is preferred ("right"); the last
pane of a tab falls back to the one before it ("left"). A tab with a
single pane has no side pane.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "side-pane", func(ctx context.Context, h host.Host) (any, error) {
			return runSidePane(ctx, h)
		})
	},
}

func runSidePane(ctx context.Context, h host.Host) (result.SidePane, error) {
	currentID, err := ambientSessionID(h)
	if err != nil {
		return result.SidePane{}, err
	}

	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.SidePane{}, err
	}

	neighbor, current, position, err := locate.SideNeighbor(snap, currentID)
	if err != nil {
		return result.SidePane{}, err
	}

	return result.SidePane{
		SessionID:        neighbor.Pane.ID,
		Shorthand:        neighbor.Shorthand,
		Name:             neighbor.Pane.Name,
		CWD:              neighbor.Pane.CWD,
		Job:              neighbor.Pane.Job,
		Position:         position,
		CurrentShorthand: current.Shorthand,
		Location:         locationOf(neighbor.Coord),
	}, nil
}

func init() {
	rootCmd.AddCommand(sidePaneCmd)
}
