// Package llm provides an optional example-sentence generator for looked-up
// words. It is strictly additive: lookups never depend on it and any failure
// here degrades to "no examples".
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/slowko/slowko/internal/model"
)

// Config holds provider settings for the generator
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}

// Generator produces Polish example sentences for a headword
type Generator struct {
	client *openai.Client
	config Config
}

// defaultOllamaBaseURL is Ollama's OpenAI-compatible endpoint
const defaultOllamaBaseURL = "http://localhost:11434/v1"

// NewGenerator creates a generator for the configured provider. An empty
// provider returns (nil, nil): examples are disabled. Ollama is driven
// through its OpenAI-compatible endpoint, so both providers share one client.
func NewGenerator(config Config) (*Generator, error) {
	switch strings.ToLower(config.Provider) {
	case "":
		return nil, nil
	case "openai":
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
	case "ollama":
		if config.BaseURL == "" {
			config.BaseURL = defaultOllamaBaseURL
		}
		if config.APIKey == "" {
			config.APIKey = "ollama" // the endpoint ignores it, the client requires it
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// IsEnabled reports whether the generator can be used
func (g *Generator) IsEnabled() bool {
	return g != nil && g.client != nil
}

const exampleCount = 3

var numberedLineRe = regexp.MustCompile(`^\s*\d+[.)]\s*`)

// Examples asks the model for a few example sentences using the word in the
// senses given. The definitions anchor the prompt so the model does not
// drift to a homonym.
func (g *Generator) Examples(ctx context.Context, word string, definitions []string) ([]string, error) {
	if !g.IsEnabled() {
		return nil, nil
	}

	modelName := g.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	maxTokens := g.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}
	timeout := time.Duration(g.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := buildPrompt(word, definitions)
	req := openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Jesteś lektorem języka polskiego. Piszesz krótkie, naturalne zdania przykładowe.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	resp, err := g.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return nil, fmt.Errorf("LLM API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from LLM")
	}
	return parseExamples(resp.Choices[0].Message.Content), nil
}

func buildPrompt(word string, definitions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Napisz %d zdania przykładowe ze słowem %q.\n", exampleCount, word)
	if len(definitions) > 0 {
		b.WriteString("Znaczenia:\n")
		for i, def := range definitions {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "- %s\n", def)
		}
	}
	b.WriteString("Odpowiedz wyłącznie ponumerowaną listą zdań, bez komentarza.")
	return b.String()
}

// parseExamples splits the completion into clean sentences
func parseExamples(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(numberedLineRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) >= exampleCount {
			break
		}
	}
	return out
}
