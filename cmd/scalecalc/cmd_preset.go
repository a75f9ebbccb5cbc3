package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/preset"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved presets",
	}
	cmd.AddCommand(newPresetSaveCmd(a), newPresetListCmd(a))
	return cmd
}

func newPresetSaveCmd(a *app) *cobra.Command {
	var label, notes string
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Write the resolved parameters as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			raw := preset.Encode(res.Params, res.Toggles)
			raw.Version = res.Version
			raw.Label = label
			raw.Notes = notes
			path, err := a.loader.Save(args[0], raw)
			if err != nil {
				return fmt.Errorf("save preset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Display label for comparisons")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.loader.List()
			if err != nil {
				return fmt.Errorf("list presets: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintf(out, "No presets in %s\n", a.loader.Paths().Dir())
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}
