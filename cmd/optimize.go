package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/internal/core"
	"github.com/dhabedank/vibedoc/internal/llm"
	"github.com/dhabedank/vibedoc/internal/logging"
	"github.com/dhabedank/vibedoc/internal/tui"
)

var optimizeJSON bool

// OptimizeCmd represents the optimize command
var OptimizeCmd = &cobra.Command{
	Use:   "optimize <idea>",
	Short: "Expand a short idea into a fuller product description",
	Long: `Ask the model to rewrite a short idea with core functionality, target users,
usage scenarios, technical features and business value.

The optimizer model from the config (optimizer_model) is used unless --model is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOptimize,
}

func init() {
	addConfigFlags(OptimizeCmd)
	addLLMFlags(OptimizeCmd)
	OptimizeCmd.Flags().BoolVar(&optimizeJSON, "json", false, "Print the result as JSON")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	model := llmModel
	if !cmd.Flags().Changed("model") && cfg.OptimizerModel != "" {
		model = cfg.OptimizerModel
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	adapter, err := createLLMAdapter(cfg, model)
	if err != nil {
		return fmt.Errorf("failed to create LLM adapter: %w", err)
	}

	idea := strings.Join(args, " ")
	optimizer := core.NewIdeaOptimizer(adapter, logger)
	result, _, err := runStep(cmd.Context(), cmd, "Optimizing idea", llm.ModelOf(adapter),
		func(ctx context.Context) (*core.OptimizationResult, error) {
			return optimizer.Optimize(ctx, idea)
		})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if optimizeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.TitleStyle.Render("Optimized idea"))
	fmt.Fprintln(out, result.OptimizedIdea)

	if len(result.KeyImprovements) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.SubtitleStyle.Render("Key improvements"))
		for _, item := range result.KeyImprovements {
			fmt.Fprintf(out, "  • %s\n", item)
		}
	}
	if result.Suggestions != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.SubtitleStyle.Render("Suggestions"))
		fmt.Fprintln(out, result.Suggestions)
	}
	return nil
}
