package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/timvw/pane-pilot/internal/config"
	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/layout"
	telem "github.com/timvw/pane-pilot/internal/otel"
	"github.com/timvw/pane-pilot/internal/result"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var flagMux string

var rootCmd = &cobra.Command{
	Use:   "pane-pilot",
	Short: "Inspect and drive terminal multiplexer panes from automations",
	Long: `pane-pilot lets an external controller inspect and drive the panes of a
terminal multiplexer: enumerate windows, tabs and panes, read a pane's
visible buffer, send keystrokes or control bytes, split panes, and pick
the neighboring pane of the caller's own pane.

Panes are addressed either by a compact shorthand of 1-based positions
([wN]tMpP, window defaulting to 1, e.g. "t4p2" or "w2t1p3") or by the
multiplexer's long-form pane identifier. Addresses are resolved against a
snapshot taken at the start of the command; they are not guaranteed to
stay valid once panes are created, closed, or reordered.

Every command prints a JSON payload to stdout and exits 0 on success or
1 on any reported error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Failures are reported as the shared
// {"error": KIND, "message": ...} payload on stdout before the process
// exits 1 — even a failure to reach the multiplexer produces a payload.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = emit(os.Stdout, result.PayloadFor(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", "",
		"terminal multiplexer: tmux (default: auto-detect)")
}

// runWith wires config, telemetry and the host backend around one
// resolve-then-act cycle and emits the resulting payload as indented JSON.
func runWith(cmd *cobra.Command, name string, fn func(ctx context.Context, h host.Host) (any, error)) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telem.Version = Version
	tel, err := telem.Init(ctx, telem.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
		tel = nil
	}
	if tel != nil {
		defer tel.Shutdown(ctx)
	}

	h, err := getHost(cfg)
	if err != nil {
		return result.Errorf(result.KindConnectionFailed, "%v", err)
	}

	if tel != nil {
		h = telem.InstrumentHost(h, tel.Metrics)
		var span trace.Span
		ctx, span = tel.Tracer.Start(ctx, "pane-pilot."+name)
		defer span.End()
	}

	start := time.Now()
	payload, err := fn(ctx, h)
	if tel != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		tel.Metrics.RecordCommand(ctx, name, outcome, time.Since(start))
	}
	if err != nil {
		return err
	}
	// A nil payload means the command finished without anything to report
	// (e.g. a cancelled picker).
	if payload == nil {
		return nil
	}
	return emit(os.Stdout, payload)
}

// getHost returns the configured or auto-detected multiplexer backend.
func getHost(cfg *config.Config) (host.Host, error) {
	name := flagMux
	if name == "" {
		name = cfg.Mux
	}
	if name != "" {
		return host.FromName(name)
	}
	return host.Detect()
}

// takeSnapshot obtains the one hierarchy snapshot an invocation works with.
func takeSnapshot(ctx context.Context, h host.Host) (*layout.Snapshot, error) {
	snap, err := h.Snapshot(ctx)
	if err != nil {
		return nil, result.Errorf(result.KindConnectionFailed,
			"failed to connect to %s: %v", h.Name(), err)
	}
	return snap, nil
}

// ambientSessionID returns the identifier of the pane the process itself
// runs in, failing when the environment does not carry one.
func ambientSessionID(h host.Host) (string, error) {
	id, ok := h.CurrentSessionID()
	if !ok {
		return "", result.Errorf(result.KindNotInMux,
			"not running inside a %s pane (no session identifier in the environment)", h.Name())
	}
	return id, nil
}

func emit(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func locationOf(c layout.Coord) result.Location {
	return result.Location{Window: c.Window, Tab: c.Tab, Pane: c.Pane}
}
