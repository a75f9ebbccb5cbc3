package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/preset"
	"github.com/xtding233/enemy-scaling/internal/report"
	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func newABCmd(a *app) *cobra.Command {
	var abFlags struct {
		a, b    string
		metric  string
		samples int
		format  string
	}
	cmd := &cobra.Command{
		Use:   "ab",
		Short: "Overlay two presets on one metric",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseOutput(abFlags.format)
			if err != nil {
				return err
			}
			m, err := scaling.ParseMetric(abFlags.metric)
			if err != nil {
				return err
			}
			_, active, err := a.resolve(cmd)
			if err != nil {
				return err
			}

			var named []scaling.NamedParams
			for i, name := range []string{abFlags.a, abFlags.b} {
				_, res, err := a.loader.Resolve(name, preset.Overrides{})
				if err != nil {
					return fmt.Errorf("resolve preset %q: %w", name, err)
				}
				np := res.Named()
				np.Name = string(rune('A' + i))
				named = append(named, np)
			}

			c, _ := scaling.BuildPresetComparison(active.Params, named, m, abFlags.samples, scaling.AxisState{})
			if out.json {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Comparison(c, out.mode))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&abFlags.a, "a", "", "Preset A (required)")
	f.StringVar(&abFlags.b, "b", "", "Preset B (required)")
	f.StringVarP(&abFlags.metric, "metric", "m", string(scaling.MetricEHP), "Metric: health, shield, damage, ehp, scaling")
	f.IntVarP(&abFlags.samples, "samples", "n", scaling.DefaultSamples, "Sample count (80-600)")
	f.StringVarP(&abFlags.format, "format", "f", "table", "Output: table, markdown, csv, json")

	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}
