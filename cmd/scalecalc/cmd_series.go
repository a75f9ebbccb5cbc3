package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/report"
	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func newSeriesCmd(a *app) *cobra.Command {
	var seriesFlags struct {
		samples int
		every   int
		format  string
		show    []string
	}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Sample every visible curve across the level range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseOutput(seriesFlags.format)
			if err != nil {
				return err
			}
			_, res, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			toggles := res.Toggles
			if cmd.Flags().Changed("show") {
				if toggles, err = parseToggles(seriesFlags.show); err != nil {
					return err
				}
			}

			s, _ := scaling.BuildSeries(res.Params, toggles, scaling.AxisState{}, scaling.SeriesOptions{Samples: seriesFlags.samples})
			a.log.Debug("series built", "samples", len(s.Samples), "start", s.Start, "end", s.End, "intersections", len(s.Intersections))
			if out.json {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, report.Series(s, out.mode, seriesFlags.every))
			if it := report.Intersections(s, out.mode); it != "" && out.mode != report.CSV {
				fmt.Fprintln(w)
				fmt.Fprintln(w, it)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&seriesFlags.samples, "samples", "n", scaling.DefaultSamples, "Sample count (80-600)")
	f.IntVar(&seriesFlags.every, "every", 0, "Print every Nth sample (0: about 20 rows)")
	f.StringVarP(&seriesFlags.format, "format", "f", "table", "Output: table, markdown, csv, json")
	f.StringSliceVar(&seriesFlags.show, "show", nil, "Curves: base, eximus_def, eximus_nodef, damage, scaling, ehp")
	return cmd
}

func parseToggles(names []string) (scaling.Toggles, error) {
	var t scaling.Toggles
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "base":
			t.Base = true
		case "eximus_def":
			t.EximusDef = true
		case "eximus_nodef":
			t.EximusNoDef = true
		case "damage":
			t.EnemyDamage = true
		case "scaling":
			t.ScalingDamage = true
		case "ehp":
			t.EHP = true
		default:
			return scaling.Toggles{}, fmt.Errorf("unknown curve %q", n)
		}
	}
	return t, nil
}
