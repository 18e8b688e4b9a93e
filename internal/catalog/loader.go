package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// catalogFile is the TOML shape of a custom catalog:
//
//	[interests]
//	Gaming = ["Gaming Mouse", "Mechanical Keyboard"]
//
//	[categories]
//	Gaming = ["Gaming Mouse", "Mechanical Keyboard"]
type catalogFile struct {
	Interests  map[string][]string `toml:"interests"`
	Categories map[string][]string `toml:"categories"`
}

// Load reads a catalog from a TOML file. An interest with no categories
// entry falls back to its candidate products for purchase categorization.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Interests) == 0 {
		return nil, fmt.Errorf("catalog %s defines no interests", path)
	}

	if file.Categories == nil {
		file.Categories = make(map[string][]string)
	}
	for interest, products := range file.Interests {
		if _, ok := file.Categories[interest]; !ok {
			file.Categories[interest] = products
		}
	}

	return New(file.Interests, file.Categories), nil
}

// LoadOrDefault loads a custom catalog when a path is configured, the
// built-in catalog otherwise.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
