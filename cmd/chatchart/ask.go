package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/midbel/chatcharts"
	"github.com/midbel/chatcharts/analytics"
	"github.com/midbel/chatcharts/draw"
)

func newAskCmd(envfile *string) *cobra.Command {
	var (
		session string
		output  string
		theme   string
		palette string
		quiet   bool
	)
	cmd := &cobra.Command{
		Use:   "ask <prompt>...",
		Short: "Ask a question to the analytics service",
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
			client := analytics.New(analytics.Config{
				Endpoint:   cfg.Endpoint,
				Timeout:    cfg.Timeout,
				Retries:    cfg.Retries,
				RetryDelay: cfg.RetryDelay,
			})

			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = " Analyzing..."
				s.Start()
			}
			ans, err := client.Ask(cmdContext(cmd), strings.Join(args, " "), session)
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}
			if ans.SessionID != "" {
				fmt.Fprintf(os.Stderr, "session: %s\n", ans.SessionID)
			}
			if !ans.IsChart() {
				fmt.Fprintln(cmd.OutOrStdout(), ans.Text)
				return nil
			}
			fig := charts.DrawReply(*ans.Chart, opts...)
			if ans.Chart.Analysis != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ans.Chart.Analysis)
			}
			if output == "" {
				return draw.Render(cmd.OutOrStdout(), fig)
			}
			w, err := os.Create(output)
			if err != nil {
				return err
			}
			err = draw.Render(w, fig)
			if e := w.Close(); err == nil {
				err = e
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&session, "session", "s", "", "session to continue")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file receiving the chart (stdout by default)")
	cmd.Flags().StringVar(&theme, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&palette, "palette", "", "builtin palette (widget, category, tableau)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
