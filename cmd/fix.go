package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/internal/content"
	"github.com/dhabedank/vibedoc/internal/logging"
	"github.com/dhabedank/vibedoc/internal/output"
	"github.com/dhabedank/vibedoc/internal/tui"
)

var fixWrite bool

// FixCmd represents the fix command
var FixCmd = &cobra.Command{
	Use:   "fix <plan-file>",
	Short: "Run the repair pipeline over an existing plan",
	Long: `Repair diagram syntax, fake links, stale dates and broken formatting in a
markdown plan. The repaired plan is printed unless --write is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	addConfigFlags(FixCmd)
	FixCmd.Flags().BoolVarP(&fixWrite, "write", "w", false, "Write the repaired plan back to the file")
}

func runFix(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	plan, err := output.ReadPlanFile(args[0])
	if err != nil {
		return err
	}

	pipeline := content.NewPipeline(content.WithLogger(logger))
	fixed, report := pipeline.Process(plan.Body)

	status := cmd.ErrOrStderr()
	fmt.Fprintln(status, tui.RenderScores(report.QualityBefore, report.QualityAfter))
	fmt.Fprintln(status, tui.RenderFixes(report.Applied()))

	if !fixWrite {
		fmt.Fprint(cmd.OutOrStdout(), fixed)
		return nil
	}

	if plan.HasMeta {
		plan.Meta.QualityAfter = report.QualityAfter
		plan.Meta.Fixes = mergeFixes(plan.Meta.Fixes, report.Applied())
	}
	if err := output.WritePlanFile(plan, fixed); err != nil {
		return err
	}
	fmt.Fprintf(status, "%s Wrote %s\n", tui.SuccessStyle.Render("✓"), plan.Path)
	return nil
}

func mergeFixes(existing, applied []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, f := range existing {
		seen[f] = true
	}
	for _, f := range applied {
		if !seen[f] {
			existing = append(existing, f)
			seen[f] = true
		}
	}
	return existing
}
