package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SeedFile は seed コマンドが読み込む TOML ファイルの構造です。
type SeedFile struct {
	Categories []CategorySeed `toml:"categories"`
}

type CategorySeed struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Color       string `toml:"color"`
	Icon        string `toml:"icon"`
}

// DefaultCategories はシードファイルが無い場合に投入するカテゴリです。
var DefaultCategories = []CategorySeed{
	{Name: "Verbs", Description: "Action words and verbs", Color: "#3B82F6", Icon: "🏃"},
	{Name: "Nouns", Description: "People, places, and things", Color: "#10B981", Icon: "📦"},
	{Name: "Adjectives", Description: "Descriptive words", Color: "#F59E0B", Icon: "🎨"},
	{Name: "Food & Dining", Description: "Food and restaurant vocabulary", Color: "#EF4444", Icon: "🍕"},
	{Name: "Travel", Description: "Travel and transportation", Color: "#8B5CF6", Icon: "✈️"},
	{Name: "Daily Life", Description: "Everyday vocabulary", Color: "#EC4899", Icon: "🏠"},
	{Name: "Business", Description: "Professional vocabulary", Color: "#14B8A6", Icon: "💼"},
	{Name: "Nature", Description: "Animals, plants, and weather", Color: "#22C55E", Icon: "🌿"},
}

// LoadSeedFile は TOML のシードファイルを読み込みます。
// ファイルが存在しない場合はエラーにせず DefaultCategories を返します。
func LoadSeedFile(path string) (SeedFile, error) {
	if path == "" {
		return SeedFile{Categories: DefaultCategories}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SeedFile{Categories: DefaultCategories}, nil
		}
		return SeedFile{}, fmt.Errorf("failed to stat seed file: %w", err)
	}
	var seed SeedFile
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if len(seed.Categories) == 0 {
		seed.Categories = DefaultCategories
	}
	return seed, nil
}
