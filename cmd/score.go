package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/internal/content"
	"github.com/dhabedank/vibedoc/internal/output"
	"github.com/dhabedank/vibedoc/internal/tui"
)

// ScoreCmd represents the score command
var ScoreCmd = &cobra.Command{
	Use:   "score <plan-file>...",
	Short: "Print the quality score of plans",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	scorer := content.NewQualityScorer()
	out := cmd.OutOrStdout()

	for _, path := range args {
		plan, err := output.ReadPlanFile(path)
		if err != nil {
			return err
		}

		score := scorer.Score(plan.Body)
		fmt.Fprintf(out, "%s  %s\n", tui.ScoreStyle(score).Render(fmt.Sprintf("%3d/%d", score, content.MaxScore)), path)

		var issues []string
		if content.ContainsFakeLink(plan.Body) {
			issues = append(issues, "fabricated links")
		}
		if content.HasStaleDate(plan.Body) {
			issues = append(issues, "stale dates")
		}
		if content.HasDiagramCorruption(plan.Body) {
			issues = append(issues, "broken diagram syntax")
		}
		for _, issue := range issues {
			fmt.Fprintf(out, "       %s %s\n", tui.WarningStyle.Render("!"), issue)
		}
	}
	return nil
}
