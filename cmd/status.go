package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/result"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check multiplexer availability",
	Long: `Report whether the multiplexer binary is installed, whether a server
is running, and whether this process runs inside a pane. Always exits 0;
the payload carries the readiness details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(os.Stdout, runStatus())
	},
}

func runStatus() result.Status {
	found, running := host.ProbeTmux()
	currentID, inSession := host.NewTmux().CurrentSessionID()

	return result.Status{
		Multiplexer:      "tmux",
		BinaryFound:      found,
		ServerRunning:    running,
		InSession:        inSession,
		CurrentSessionID: currentID,
		Ready:            found && running,
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
