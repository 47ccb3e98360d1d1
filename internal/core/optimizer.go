package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// MinOptimizeLength is the shortest input the optimizer will rewrite.
const MinOptimizeLength = 5

const unstructuredSuggestion = "The model returned suggestions, but not in the expected format"

// OptimizationResult is the optimizer's answer.
type OptimizationResult struct {
	OptimizedIdea   string   `json:"optimized_idea"`
	KeyImprovements []string `json:"key_improvements"`
	Suggestions     string   `json:"suggestions"`
}

const optimizationPromptTemplate = `You are a professional product manager and technical consultant, skilled at expanding short ideas into detailed product descriptions.

Original user input:
%s

Rewrite this idea so it is more detailed, specific and professional. Cover:

1. **Core Functionality**: the main features and value of the product
2. **Target Users**: who the product is for
3. **Usage Scenarios**: typical situations where it is used
4. **Technical Features**: key technical capabilities it needs
5. **Business Value**: market value and competitive advantages

Answer with JSON only:
{
    "optimized_idea": "the optimized product description",
    "key_improvements": ["improvement 1", "improvement 2", "improvement 3"],
    "suggestions": "further suggestions"
}

Requirements:
- Keep the core of the original idea
- Professional but easy-to-understand language
- 200 to 400 words
- Highlight what is innovative and practical`

const optimizerSystemPrompt = "You improve product idea descriptions. Output only the requested JSON object."

// IdeaOptimizer rewrites a short idea into a fuller product description.
type IdeaOptimizer struct {
	generator TextGenerator
	logger    *zap.Logger
}

// NewIdeaOptimizer creates an optimizer. A nil logger disables logging.
func NewIdeaOptimizer(generator TextGenerator, logger *zap.Logger) *IdeaOptimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdeaOptimizer{generator: generator, logger: logger}
}

// BuildOptimizationPrompt creates the user prompt for idea optimization.
func BuildOptimizationPrompt(idea string) string {
	return fmt.Sprintf(optimizationPromptTemplate, strings.TrimSpace(idea))
}

// Optimize asks the model for a better description of idea.
func (o *IdeaOptimizer) Optimize(ctx context.Context, idea string) (*OptimizationResult, error) {
	if len([]rune(strings.TrimSpace(idea))) < MinOptimizeLength {
		return nil, &ValidationError{Field: "idea", Message: "input too short to optimize"}
	}

	output, err := o.generator.Generate(ctx, optimizerSystemPrompt, BuildOptimizationPrompt(idea))
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}

	result := ParseOptimizationResult(output)
	o.logger.Info("idea optimized",
		zap.Int("input_length", len(idea)),
		zap.Int("output_length", len(result.OptimizedIdea)),
		zap.Int("improvements", len(result.KeyImprovements)),
	)
	return result, nil
}

// ParseOptimizationResult reads the model answer. Answers without a usable
// JSON object become the optimized idea verbatim.
func ParseOptimizationResult(output string) *OptimizationResult {
	fallback := &OptimizationResult{
		OptimizedIdea: strings.TrimSpace(output),
		Suggestions:   unstructuredSuggestion,
	}

	jsonStr, err := extractJSONObject(output)
	if err != nil {
		return fallback
	}

	var result OptimizationResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return fallback
	}
	if strings.TrimSpace(result.OptimizedIdea) == "" {
		return fallback
	}
	return &result
}

// extractJSONObject finds the JSON object in LLM output, unwrapping the
// claude CLI JSON envelope and markdown fences.
func extractJSONObject(output string) (string, error) {
	output = strings.TrimSpace(output)

	// Handle CLI wrapper
	if strings.HasPrefix(output, "{\"type\":") {
		var wrapper struct {
			Result string `json:"result"`
		}
		if err := json.Unmarshal([]byte(output), &wrapper); err == nil && wrapper.Result != "" {
			output = strings.TrimSpace(wrapper.Result)
		}
	}

	// Remove markdown fences
	if strings.HasPrefix(output, "```") {
		output = strings.TrimPrefix(output, "```json")
		output = strings.TrimPrefix(output, "```")
		output = strings.TrimSuffix(output, "```")
		output = strings.TrimSpace(output)
	}

	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON found in response")
	}
	return output[start : end+1], nil
}
