package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/chatcharts"
	"github.com/midbel/chatcharts/draw"
	"github.com/midbel/chatcharts/logging"
)

func newRenderCmd(envfile *string) *cobra.Command {
	var (
		outdir  string
		theme   string
		palette string
	)
	cmd := &cobra.Command{
		Use:   "render <chart.json>...",
		Short: "Render chart documents to SVG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(*envfile)
			if err != nil {
				return err
			}
			opts, err := themeOptions(cfg, theme, palette)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outdir, 0o755); err != nil {
				return err
			}
			figs := make([]charts.Figure, 0, len(args))
			for _, file := range args {
				reply, err := decodeFile(file)
				if err != nil {
					return err
				}
				fig := charts.DrawReply(reply, opts...)
				event := logging.Info()
				if fig.Diagnostic {
					event = logging.Warn()
				}
				event.With(
					logging.File(file),
					logging.Kind(fig.Kind.String()),
					logging.Shapes(len(fig.Shapes)),
				).Msg("chart computed")
				figs = append(figs, fig)
			}
			open := func(i int, _ charts.Figure) (io.WriteCloser, error) {
				return os.Create(outputName(outdir, args[i]))
			}
			return draw.RenderAll(cmdContext(cmd), figs, open)
		},
	}
	cmd.Flags().StringVarP(&outdir, "output", "o", ".", "directory receiving the SVG files")
	cmd.Flags().StringVar(&theme, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&palette, "palette", "", "builtin palette (widget, category, tableau)")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
