package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/preset"
	"github.com/xtding233/enemy-scaling/internal/report"
	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		metric      string
		factions    []string
		eximusDef   bool
		eximusNoDef bool
		noBase      bool
		samples     int
		format      string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare one metric across factions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseOutput(format)
			if err != nil {
				return err
			}
			m, err := scaling.ParseMetric(metric)
			if err != nil {
				return err
			}
			opts := scaling.ComparisonOptions{
				Metric:      m,
				Base:        !noBase,
				EximusDef:   eximusDef,
				EximusNoDef: eximusNoDef,
				Samples:     samples,
			}
			for _, f := range factions {
				fac, err := preset.ParseFaction(f)
				if err != nil {
					return err
				}
				opts.Factions = append(opts.Factions, fac)
			}
			_, res, err := a.resolve(cmd)
			if err != nil {
				return err
			}

			c, _ := scaling.BuildComparison(res.Params, opts, scaling.AxisState{})
			if out.json {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Comparison(c, out.mode))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&metric, "metric", "m", string(scaling.MetricHealth), "Metric: health, shield, damage, ehp, scaling")
	f.StringSliceVar(&factions, "factions", nil, "Factions to compare (default: all comparison factions)")
	f.BoolVar(&eximusDef, "eximus-def", false, "Add eximus lines (with defenses)")
	f.BoolVar(&eximusNoDef, "eximus-nodef", false, "Add eximus lines (without defenses)")
	f.BoolVar(&noBase, "no-base", false, "Hide the base enemy lines")
	f.IntVarP(&samples, "samples", "n", scaling.DefaultSamples, "Sample count (80-600)")
	f.StringVarP(&format, "format", "f", "table", "Output: table, markdown, csv, json")
	return cmd
}
