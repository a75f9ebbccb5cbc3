package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/preset"
	"github.com/xtding233/enemy-scaling/internal/report"
	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		interval time.Duration
		format   string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the summary whenever preset files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := parseOutput(format)
			if err != nil {
				return err
			}
			if out.json {
				return fmt.Errorf("watch does not support json output")
			}
			w := cmd.OutOrStdout()
			var mu sync.Mutex
			render := func() error {
				mu.Lock()
				defer mu.Unlock()
				_, res, err := a.resolve(cmd)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "# %s (%s)\n", res.Name, time.Now().Format(time.TimeOnly))
				fmt.Fprintln(w, report.Summary(scaling.Summarize(res.Params), out.mode))
				return nil
			}
			if err := render(); err != nil {
				return err
			}

			fw := preset.NewFileWatcher(a.loader.WatchPaths(a.preset), interval, func(path string) {
				a.log.Info("preset changed", "path", path)
				a.loader.Invalidate()
				if err := render(); err != nil {
					// keep watching; the next save may fix it
					a.log.Error("reload failed", "path", path, "err", err)
				}
			})
			fw.Start()
			defer fw.Stop()

			<-cmd.Context().Done()
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Poll interval")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output: table, markdown, csv")
	return cmd
}
