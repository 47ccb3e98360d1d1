package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/internal/core"
	"github.com/dhabedank/vibedoc/internal/llm"
	"github.com/dhabedank/vibedoc/internal/logging"
	"github.com/dhabedank/vibedoc/internal/output"
	"github.com/dhabedank/vibedoc/internal/tui"
)

var (
	referenceURL  string
	knowledgeFile string
	outputFormat  string
	outputDir     string
	dryRun        bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <idea>",
	Short: "Generate a development plan from a product idea",
	Long: `Turn a short product idea into a development plan with AI coding prompts.

The model answer is post-processed before it is saved:
- diagram syntax is repaired
- fabricated links are replaced by plain-text attributions
- stale dates are moved to the current year
- broken headings and tables are fixed

Example:
  vibedoc generate "A habit tracker for remote teams with streaks and nudges"
  vibedoc generate "Recipe sharing app" --output html --output-dir plans/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	addConfigFlags(GenerateCmd)
	addLLMFlags(GenerateCmd)

	GenerateCmd.Flags().StringVar(&referenceURL, "reference-url", "", "Reference URL recorded with the plan")
	GenerateCmd.Flags().StringVar(&knowledgeFile, "knowledge", "", "File with reference material to include in the prompt")

	GenerateCmd.Flags().StringVarP(&outputFormat, "output", "o", "markdown", "Output format (markdown/html/json)")
	GenerateCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the generated file")
	GenerateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan instead of writing a file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		outputFormat = cfg.Output
	}
	if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
		outputDir = cfg.OutputDir
	}

	req := core.PlanRequest{
		Idea:         strings.Join(args, " "),
		ReferenceURL: referenceURL,
	}
	if knowledgeFile != "" {
		if req.Knowledge, err = readInput(knowledgeFile); err != nil {
			return err
		}
	}
	// Fail on a bad idea before any model call.
	if err := core.ValidateIdea(req); err != nil {
		return err
	}

	writer, err := output.NewWriter(outputFormat)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	adapter, err := createLLMAdapter(cfg, llmModel)
	if err != nil {
		return fmt.Errorf("failed to create LLM adapter: %w", err)
	}
	model := llm.ModelOf(adapter)
	fmt.Fprintf(cmd.ErrOrStderr(), "Using LLM: %s\n", adapter.Name())

	planner := core.NewPlanner(adapter, model, core.WithPlannerLogger(logger))
	plan, elapsed, err := runStep(cmd.Context(), cmd, "Generating plan", model,
		func(ctx context.Context) (*core.Plan, error) {
			return planner.Generate(ctx, req)
		})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	prompt := core.BuildSystemPrompt(plan.GeneratedAt) + core.BuildUserPrompt(req.Idea, req.Knowledge)
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, tui.RenderUsage(tui.EstimateUsage(model, prompt, plan.Content, elapsed)))
	fmt.Fprintln(out, tui.RenderScores(plan.QualityBefore, plan.QualityAfter))
	fmt.Fprintln(out, tui.RenderFixes(plan.AppliedFixes()))

	path, err := output.Save(writer, plan, output.Config{Dir: outputDir, DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	if path != "" {
		fmt.Fprintf(out, "\n%s Plan written to %s\n", tui.SuccessStyle.Render("✓"), path)
	}
	return nil
}
