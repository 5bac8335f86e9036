package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/chatcharts/analytics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, analytics.Message(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envfile string

	rootCmd := &cobra.Command{
		Use:           "chatchart",
		Short:         "Draw the charts answered by the repository analytics service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envfile, "env", "", "dotenv file with CHATCHART_* settings")

	rootCmd.AddCommand(newRenderCmd(&envfile))
	rootCmd.AddCommand(newAskCmd(&envfile))
	rootCmd.AddCommand(newPaletteCmd(&envfile))
	return rootCmd
}
