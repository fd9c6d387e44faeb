package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals()...)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "opinet",
		Short: "Opinion dynamics on a rewiring scale-free network",
		Long: `opinet simulates agents holding opinions in [0,1] on a Barabási–Albert
network. Connected agents interact pairwise, converging when their opinions
are close and repelling otherwise, and discordant ties are rewired to
random strangers. Each run reports the final opinion distribution and
network structure.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ~/.opinet/config.yaml if present)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
