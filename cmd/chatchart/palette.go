package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/midbel/chatcharts"
)

func newPaletteCmd(envfile *string) *cobra.Command {
	var (
		name  string
		steps int
	)
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the colors of a palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(*envfile)
			if err != nil {
				return err
			}
			if name == "" {
				name = cfg.Palette
			}
			p, ok := charts.PaletteByName(name)
			if !ok {
				return fmt.Errorf("%s: unknown palette", name)
			}
			out := cmd.OutOrStdout()
			for i, c := range p {
				rgb, _ := charts.ParseHex(c)
				fmt.Fprintf(out, "%2d %s %s\n", i, c, rgb)
			}
			if steps <= 1 {
				return nil
			}
			theme := charts.DefaultTheme()
			fmt.Fprintln(out)
			for i := 0; i < steps; i++ {
				f := float64(i) / float64(steps-1)
				fmt.Fprintf(out, "%.2f %s\n", f, charts.Interpolate(theme.Heatmap.Low, theme.Heatmap.High, f))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "palette name (widget, category, tableau)")
	cmd.Flags().IntVar(&steps, "ramp", 0, "also print the heatmap color ramp in that many steps")
	return cmd
}
