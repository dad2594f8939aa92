// Package ai は生成AIを使った問題作成・例文生成・添削を扱います。
package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Generator はプロンプトからテキストを生成します
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured は APIキー未設定時に返します
var ErrNotConfigured = errors.New("ai generator is not configured")

// GeminiGenerator は Gemini API を使う Generator です
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GeminiGenerator.Generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("GeminiGenerator.Generate: empty response")
	}
	return text, nil
}

// UnavailableGenerator はキー未設定時に使う実装です
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
