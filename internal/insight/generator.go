package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator produces narrative text for a prompt. Failures are recovered
// by the caller with fallback content; they never surface to the client.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const systemInstruction = "You are a relationship coach with expertise in psychology and interpersonal dynamics. " +
	"Provide thoughtful, personalized insights based on the user's relationship data. " +
	"Be empathetic, specific, and actionable in your advice. " +
	"Avoid generic platitudes and focus on practical guidance tailored to their unique situation."

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

type GeminiGeneratorOption = func(g *GeminiGenerator) error

func NewGeminiGenerator(ctx context.Context, apiKey string, opts ...GeminiGeneratorOption) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	g := &GeminiGenerator{
		client: client,
		model:  "gemini-2.5-flash",
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return g, nil
}

func WithModel(model string) GeminiGeneratorOption {
	return func(g *GeminiGenerator) error {
		g.model = model
		return nil
	}
}

func (g *GeminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}
