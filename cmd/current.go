package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/locate"
	"github.com/timvw/pane-pilot/internal/result"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Describe the pane this process runs in",
	Long: `Resolve the ambient session identifier the multiplexer puts into the
environment of every pane and report that pane's identifier, canonical
shorthand, display attributes and 1-based location.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "current", func(ctx context.Context, h host.Host) (any, error) {
			return runCurrent(ctx, h)
		})
	},
}

func runCurrent(ctx context.Context, h host.Host) (result.Current, error) {
	currentID, err := ambientSessionID(h)
	if err != nil {
		return result.Current{}, err
	}

	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.Current{}, err
	}

	r, err := locate.Locate(snap, currentID)
	if err != nil {
		return result.Current{}, err
	}

	return result.Current{
		SessionID: r.Pane.ID,
		Shorthand: r.Shorthand,
		Name:      r.Pane.Name,
		TTY:       r.Pane.TTY,
		CWD:       r.Pane.CWD,
		Job:       r.Pane.Job,
		Location:  locationOf(r.Coord),
	}, nil
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
