package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dhabedank/vibedoc/internal/config"
	"github.com/dhabedank/vibedoc/internal/llm"
	"github.com/dhabedank/vibedoc/internal/logging"
	"github.com/dhabedank/vibedoc/internal/tui"
)

// Flags shared by several commands.
var (
	configFile  string
	logMode     string
	llmProvider string
	llmModel    string
)

var errCancelled = errors.New("cancelled")

func addConfigFlags(c *cobra.Command) {
	c.Flags().StringVar(&configFile, "config", "", "Config file (default: .vibedoc.yaml)")
	c.Flags().StringVar(&logMode, "log", "quiet", "Log output (quiet/dev/prod)")
}

func addLLMFlags(c *cobra.Command) {
	c.Flags().StringVarP(&llmProvider, "llm", "l", "auto", "LLM provider (auto/claude-cli/codex-cli/anthropic-api)")
	c.Flags().StringVarP(&llmModel, "model", "m", "", "Model to use (provider-specific)")
}

// loadConfig reads the config file and environment, then applies config
// values to flags the user did not set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded config from: %s\n", cfg.Path)
	}

	if !cmd.Flags().Changed("llm") && cfg.LLM != "" {
		llmProvider = cfg.LLM
	}
	if !cmd.Flags().Changed("model") && cfg.Model != "" {
		llmModel = cfg.Model
	}
	if !cmd.Flags().Changed("log") && cfg.Log != "" {
		logMode = cfg.Log
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	return logging.New(logMode)
}

// createLLMAdapter builds the adapter selected by --llm for model.
func createLLMAdapter(cfg *config.Config, model string) (llm.Adapter, error) {
	llmConfig := llm.DefaultConfig().WithModel(model)
	llmConfig.APIKey = cfg.APIKey
	if cfg.MaxTokens > 0 {
		llmConfig.MaxTokens = cfg.MaxTokens
	}
	temperature := cfg.Temperature
	llmConfig.Temperature = &temperature

	adapter, err := llm.NewAdapter(llmProvider, llmConfig)
	if err != nil {
		return nil, err
	}

	if !adapter.IsAvailable() {
		switch llmProvider {
		case llm.ProviderClaudeCLI:
			return nil, fmt.Errorf("Claude CLI not available - install Claude Code")
		case llm.ProviderCodexCLI:
			return nil, fmt.Errorf("Codex CLI not available - install Codex")
		}
	}
	return adapter, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// runStep runs fn behind a spinner on terminals and plain status lines
// otherwise. Ctrl+C in the spinner cancels fn's context.
func runStep[T any](ctx context.Context, cmd *cobra.Command, label, model string, fn func(context.Context) (T, error)) (T, time.Duration, error) {
	var zero T
	out := cmd.ErrOrStderr()
	start := time.Now()

	if !isTerminal(out) {
		fmt.Fprintln(out, tui.RenderStepStart(label, model))
		v, err := fn(ctx)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintln(out, tui.RenderStepFailed(label, err))
			return zero, elapsed, err
		}
		fmt.Fprintln(out, tui.RenderStepComplete(label, elapsed))
		return v, elapsed, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		v   T
		err error
	}
	done := make(chan outcome, 1)

	p := tea.NewProgram(tui.NewStatus(label, model), tea.WithOutput(out))
	go func() {
		v, err := fn(ctx)
		done <- outcome{v, err}
		p.Send(tui.DoneMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return zero, time.Since(start), fmt.Errorf("status display failed: %w", err)
	}
	if status, ok := final.(tui.Status); ok && status.Cancelled {
		return zero, time.Since(start), errCancelled
	}

	res := <-done
	return res.v, time.Since(start), res.err
}

func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
