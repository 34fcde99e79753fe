package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/control"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/locate"
	"github.com/timvw/pane-pilot/internal/result"
)

var flagNoNewline bool

var sendTextCmd = &cobra.Command{
	Use:   "send-text <session> <text>",
	Short: "Type text into a pane",
	Long: `Deliver text verbatim as input to the pane identified by a shorthand
address or long-form session identifier. A newline is appended by
default so the text is typed and executed; pass --no-newline to only
type it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "send-text", func(ctx context.Context, h host.Host) (any, error) {
			return runSendText(ctx, h, args[0], args[1], !flagNoNewline)
		})
	},
}

func runSendText(ctx context.Context, h host.Host, token, text string, newline bool) (result.SendText, error) {
	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.SendText{}, err
	}

	r, err := locate.Locate(snap, token)
	if err != nil {
		return result.SendText{}, err
	}

	if err := control.SendText(ctx, h, r.Pane.ID, text, newline); err != nil {
		return result.SendText{}, err
	}

	return result.SendText{
		Success:   true,
		SessionID: r.Pane.ID,
		Shorthand: r.Shorthand,
		TextSent:  text,
		Newline:   newline,
	}, nil
}

func init() {
	sendTextCmd.Flags().BoolVar(&flagNoNewline, "no-newline", false,
		"do not append a newline (type the text without executing it)")
	rootCmd.AddCommand(sendTextCmd)
}
