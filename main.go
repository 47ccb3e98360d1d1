package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/cmd"
	update "github.com/dhabedank/vibedoc/internal/version"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "vibedoc",
		Short:   "Turn product ideas into repaired, editable development plans",
		Version: version,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if c.Name() != "setup" && update.IsFirstRun() {
				update.PrintFirstRunNotice(c.ErrOrStderr())
			}
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			if os.Getenv("VIBEDOC_NO_UPDATE_CHECK") != "" {
				return
			}
			ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
			defer cancel()
			update.PrintUpdateNotice(c.ErrOrStderr(), update.NewChecker().CheckForUpdate(ctx, version))
		},
	}

	rootCmd.AddCommand(
		cmd.GenerateCmd,
		cmd.OptimizeCmd,
		cmd.FixCmd,
		cmd.ScoreCmd,
		cmd.EditCmd,
		cmd.SetupCmd,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
