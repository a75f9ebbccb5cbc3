package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/preset"
	"github.com/xtding233/enemy-scaling/internal/report"
)

// app is the state shared by every subcommand.
type app struct {
	configDir string
	logLevel  string
	preset    string
	over      overrideFlags

	log    *slog.Logger
	loader *preset.Loader
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "scalecalc",
		Short: "Warframe enemy scaling calculator",
		Long: "scalecalc evaluates enemy health, shield, armor, overguard and damage\n" +
			"against ability scaling damage for a level range.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configDir, "config-dir", ".", "Directory containing presets/")
	f.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVarP(&a.preset, "preset", "p", preset.DefaultName, "Preset name")
	a.over.register(root)

	root.AddCommand(
		newSummaryCmd(a),
		newSeriesCmd(a),
		newCompareCmd(a),
		newABCmd(a),
		newPresetCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
	a.loader = preset.NewLoader(a.configDir, a.log)
	return nil
}

// resolve merges the selected preset with the override flags.
func (a *app) resolve(cmd *cobra.Command) (preset.RawPreset, preset.Resolved, error) {
	raw, res, err := a.loader.Resolve(a.preset, a.over.overrides(cmd))
	if err != nil {
		return preset.RawPreset{}, preset.Resolved{}, fmt.Errorf("resolve preset %q: %w", a.preset, err)
	}
	a.log.Debug("preset resolved", "name", res.Name, "version", res.Version, "mode", res.Params.Mode())
	return raw, res, nil
}

// output is a --format value: a table mode or JSON.
type output struct {
	json bool
	mode report.Mode
}

func parseOutput(s string) (output, error) {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return output{json: true}, nil
	}
	m, err := report.ParseMode(s)
	if err != nil {
		return output{}, err
	}
	return output{mode: m}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
