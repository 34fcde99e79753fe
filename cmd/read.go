package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/locate"
	"github.com/timvw/pane-pilot/internal/result"
	"github.com/timvw/pane-pilot/internal/screen"
)

var readCmd = &cobra.Command{
	Use:   "read <session>",
	Short: "Read the visible contents of a pane",
	Long: `Read the visible buffer of the pane identified by a shorthand address
(e.g. "t1p2", "w2t1p1") or a long-form session identifier. NUL padding
and trailing whitespace are stripped; only the trailing run of blank
lines is removed, interior blank lines are preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "read", func(ctx context.Context, h host.Host) (any, error) {
			return runRead(ctx, h, args[0])
		})
	},
}

func runRead(ctx context.Context, h host.Host, token string) (result.Read, error) {
	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.Read{}, err
	}

	r, err := locate.Locate(snap, token)
	if err != nil {
		return result.Read{}, err
	}

	contents, err := screen.Capture(ctx, h, r.Pane.ID)
	if err != nil {
		return result.Read{}, err
	}

	return result.Read{
		SessionID: r.Pane.ID,
		Shorthand: r.Shorthand,
		Name:      r.Pane.Name,
		CWD:       r.Pane.CWD,
		Contents:  contents,
	}, nil
}

func init() {
	rootCmd.AddCommand(readCmd)
}
