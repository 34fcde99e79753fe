package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pilot/internal/address"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/result"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all windows, tabs and panes",
	Long: `List the full window→tab→pane hierarchy with 1-based positions,
identifiers, canonical shorthands and display attributes. The pane the
caller runs in, if any, is flagged is_current and echoed as
current_session_id / current_shorthand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, "list", func(ctx context.Context, h host.Host) (any, error) {
			payload, err := runList(ctx, h)
			if err != nil {
				return nil, err
			}
			return payload, nil
		})
	},
}

func runList(ctx context.Context, h host.Host) (result.List, error) {
	snap, err := takeSnapshot(ctx, h)
	if err != nil {
		return result.List{}, err
	}

	currentID, _ := h.CurrentSessionID()
	payload := result.List{
		Windows:          []result.WindowEntry{},
		CurrentSessionID: currentID,
	}

	for _, w := range snap.Windows {
		windowEntry := result.WindowEntry{Position: w.Position, ID: w.ID, Tabs: []result.TabEntry{}}
		for _, tab := range w.Tabs {
			tabEntry := result.TabEntry{Position: tab.Position, ID: tab.ID, Sessions: []result.SessionEntry{}}
			for _, pane := range tab.Panes {
				shorthand := address.Format(w.Position, tab.Position, pane.Position)
				isCurrent := currentID != "" && pane.ID == currentID
				if isCurrent {
					payload.CurrentShorthand = shorthand
				}
				tabEntry.Sessions = append(tabEntry.Sessions, result.SessionEntry{
					Position:  pane.Position,
					ID:        pane.ID,
					Shorthand: shorthand,
					Name:      pane.Name,
					TTY:       pane.TTY,
					CWD:       pane.CWD,
					Job:       pane.Job,
					IsCurrent: isCurrent,
				})
			}
			windowEntry.Tabs = append(windowEntry.Tabs, tabEntry)
		}
		payload.Windows = append(payload.Windows, windowEntry)
	}

	return payload, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
