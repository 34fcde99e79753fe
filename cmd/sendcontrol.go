package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/control"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/locate"
	"github.com/timvw/pane-pilot/internal/result"
)

var sendControlCmd = &cobra.Command{
	Use:   "send-control <session> <symbol>",
	Short: "Send a control character to a pane",
	Long: `Send a control character to the pane identified by a shorthand address
or long-form session identifier. The symbol is one of a fixed set:

  c  interrupt (Ctrl+C)
  d  end of input (Ctrl+D)
  z  suspend (Ctrl+Z)
  l  clear screen (Ctrl+L)

Anything else is rejected before any input reaches the pane.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "send-control", func(ctx context.Context, h host.Host) (any, error) {
			return runSendControl(ctx, h, args[0], args[1])
		})
	},
}

func runSendControl(ctx context.Context, h host.Host, token, symbol string) (result.SendControl, error) {
	// Validate the symbol first: an invalid symbol must fail before any
	// host I/O, including the snapshot.
	if _, err := control.Lookup(symbol); err != nil {
		return result.SendControl{}, err
	}

	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.SendControl{}, err
	}

	r, err := locate.Locate(snap, token)
	if err != nil {
		return result.SendControl{}, err
	}

	s, err := control.SendControl(ctx, h, r.Pane.ID, symbol)
	if err != nil {
		return result.SendControl{}, err
	}

	return result.SendControl{
		Success:     true,
		SessionID:   r.Pane.ID,
		Shorthand:   r.Shorthand,
		Control:     symbol,
		Description: s.Description,
	}, nil
}

func init() {
	rootCmd.AddCommand(sendControlCmd)
}
