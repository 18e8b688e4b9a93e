package catalog

import (
	"sort"
	"testing"
)

func TestDefault_ProductsFor(t *testing.T) {
	cat := Default()

	tests := []struct {
		interest string
		want     []string
	}{
		{interest: "Gaming", want: []string{"Gaming Mouse", "Mechanical Keyboard"}},
		{interest: "Travel", want: []string{"Travel Insurance", "Currency Exchange Card"}},
		{interest: "Underwater Basket Weaving", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.interest, func(t *testing.T) {
			got := cat.ProductsFor(tt.interest)
			if len(got) != len(tt.want) {
				t.Fatalf("ProductsFor(%q) = %v, want %v", tt.interest, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ProductsFor(%q)[%d] = %q, want %q", tt.interest, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDefault_Interests(t *testing.T) {
	got := Default().Interests()

	if len(got) != 10 {
		t.Fatalf("Interests() returned %d interests, want 10", len(got))
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("Interests() = %v, want sorted order", got)
	}
}

func TestDefault_CategoryOf(t *testing.T) {
	cat := Default()

	tests := []struct {
		product string
		want    string
		wantOK  bool
	}{
		{product: "Laptop", want: "Tech", wantOK: true},
		{product: "Gaming Mouse", want: "Gaming", wantOK: true},
		{product: "Silk Scarf", want: "Fashion", wantOK: true},
		{product: "Flying Carpet", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			got, ok := cat.CategoryOf(tt.product)
			if ok != tt.wantOK {
				t.Fatalf("CategoryOf(%q) ok = %v, want %v", tt.product, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("CategoryOf(%q) = %q, want %q", tt.product, got, tt.want)
			}
		})
	}
}

func TestPurchaseCategories(t *testing.T) {
	cat := Default()

	tests := []struct {
		name      string
		purchases []string
		want      []string
	}{
		{
			name:      "dedup keeps first-seen order",
			purchases: []string{"Laptop", "Mouse", "Silk Scarf"},
			want:      []string{"Tech", "Fashion"},
		},
		{
			name:      "unknown purchases ignored",
			purchases: []string{"Flying Carpet", "Camera"},
			want:      []string{"Photography"},
		},
		{
			name:      "empty history",
			purchases: []string{},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.PurchaseCategories(tt.purchases)
			if len(got) != len(tt.want) {
				t.Fatalf("PurchaseCategories(%v) = %v, want %v", tt.purchases, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("PurchaseCategories(%v)[%d] = %q, want %q", tt.purchases, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	interests := map[string][]string{"Tech": {"Widget"}}
	categories := map[string][]string{"Tech": {"Widget", "Gizmo"}}
	cat := New(interests, categories)

	interests["Tech"][0] = "Mutated"

	if got := cat.ProductsFor("Tech")[0]; got != "Widget" {
		t.Errorf("ProductsFor(Tech)[0] = %q after caller mutation, want Widget", got)
	}
}
