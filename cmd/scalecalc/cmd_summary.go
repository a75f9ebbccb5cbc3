package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/report"
	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func newSummaryCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show every stat at the target level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseOutput(format)
			if err != nil {
				return err
			}
			_, res, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			s := scaling.Summarize(res.Params)
			if out.json {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary(s, out.mode))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output: table, markdown, csv, json")
	return cmd
}
