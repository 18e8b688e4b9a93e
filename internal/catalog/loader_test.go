package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `
[interests]
Cycling = ["Helmet", "Bike Lock"]

[categories]
Cycling = ["Bicycle", "Helmet", "Bike Lock"]
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	products := cat.ProductsFor("Cycling")
	if len(products) != 2 || products[0] != "Helmet" {
		t.Errorf("ProductsFor(Cycling) = %v, want [Helmet Bike Lock]", products)
	}

	if got, ok := cat.CategoryOf("Bicycle"); !ok || got != "Cycling" {
		t.Errorf("CategoryOf(Bicycle) = %q, %v; want Cycling, true", got, ok)
	}
}

func TestLoad_CategoriesDefaultToInterests(t *testing.T) {
	path := writeCatalog(t, `
[interests]
Cycling = ["Helmet"]
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, ok := cat.CategoryOf("Helmet"); !ok || got != "Cycling" {
		t.Errorf("CategoryOf(Helmet) = %q, %v; want Cycling, true", got, ok)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.toml")},
		{name: "invalid toml", path: writeCatalog(t, "not [valid")},
		{name: "no interests", path: writeCatalog(t, "[categories]\nTech = [\"Laptop\"]\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cat, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") error = %v", err)
	}
	if len(cat.Interests()) != 10 {
		t.Errorf("LoadOrDefault(\"\") returned %d interests, want built-in 10", len(cat.Interests()))
	}
}
