// Package translate は外部翻訳サービスへのアダプタです。
package translate

import (
	"context"
	"errors"
	"fmt"
	"html"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"langy/internal/model"
)

// Translator はテキストを source から target へ翻訳します
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// ErrNotConfigured は APIキー未設定時に返します
var ErrNotConfigured = errors.New("translator is not configured")

// IsSupported は対応言語コードで、かつBCP 47として解釈できるかを返します
func IsSupported(code string) bool {
	if !model.IsSupportedLanguage(code) {
		return false
	}
	_, err := language.Parse(code)
	return err == nil
}

// GoogleTranslator は Cloud Translation (v2, APIキー認証) を使います
type GoogleTranslator struct {
	client *gtranslate.Client
}

func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := gtranslate.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("translate.NewClient: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parse target language %q: %w", target, err)
	}
	opts := &gtranslate.Options{Format: gtranslate.Text}
	if source != "" {
		sourceTag, err := language.Parse(source)
		if err != nil {
			return "", fmt.Errorf("parse source language %q: %w", source, err)
		}
		opts.Source = sourceTag
	}

	resp, err := g.client.Translate(ctx, []string{text}, targetTag, opts)
	if err != nil {
		return "", fmt.Errorf("GoogleTranslator.Translate: %w", err)
	}
	if len(resp) == 0 {
		return "", errors.New("GoogleTranslator.Translate: empty response")
	}
	// Format: Text でも実体参照が残ることがある
	return html.UnescapeString(resp[0].Text), nil
}

func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}

// UnavailableTranslator はキー未設定時に使う実装で、常に ErrNotConfigured を返します
type UnavailableTranslator struct{}

func (UnavailableTranslator) Translate(context.Context, string, string, string) (string, error) {
	return "", ErrNotConfigured
}
