// Package catalog holds the static interest catalog: which candidate
// products an interest maps to, and which interest category a known product
// belongs to. Built once at startup and read-only afterwards, so it is safe
// to share across concurrent recommendation requests without locking.
package catalog

import "sort"

// Catalog is the immutable interest-to-product mapping
type Catalog struct {
	interests  map[string][]string
	categories map[string][]string
	// product -> owning interest category, derived from categories
	productCategory map[string]string
	// interest names in a stable order for listing
	names []string
}

// New builds a catalog from an interest->candidate-products map and an
// interest->known-products categorization map. The categorization map is
// what classifies a customer's past purchases; it is a superset of the
// candidate map (it also knows base products like "Laptop" that are never
// recommended themselves).
func New(interests, categories map[string][]string) *Catalog {
	c := &Catalog{
		interests:       make(map[string][]string, len(interests)),
		categories:      make(map[string][]string, len(categories)),
		productCategory: make(map[string]string),
	}
	for name, products := range interests {
		c.interests[name] = append([]string(nil), products...)
	}
	for name, products := range categories {
		c.categories[name] = append([]string(nil), products...)
		for _, p := range products {
			c.productCategory[p] = name
		}
	}
	for name := range c.interests {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// Default returns the built-in catalog
func Default() *Catalog {
	return New(defaultInterests, defaultCategories)
}

// ProductsFor returns the candidate products for an interest, or nil when
// the interest is unknown. Interest names match exactly (the ingestion
// layer normalizes casing).
func (c *Catalog) ProductsFor(interest string) []string {
	return c.interests[interest]
}

// Interests returns all interest names in sorted order
func (c *Catalog) Interests() []string {
	return c.names
}

// CategoryOf returns the interest category a known product belongs to
func (c *Catalog) CategoryOf(product string) (string, bool) {
	cat, ok := c.productCategory[product]
	return cat, ok
}

// PurchaseCategories derives the interest categories implied by a purchase
// history, in first-seen order.
func (c *Catalog) PurchaseCategories(purchases []string) []string {
	var cats []string
	seen := make(map[string]bool)
	for _, p := range purchases {
		cat, ok := c.productCategory[p]
		if !ok || seen[cat] {
			continue
		}
		seen[cat] = true
		cats = append(cats, cat)
	}
	return cats
}

// defaultInterests maps each interest to the products recommended for it
var defaultInterests = map[string][]string{
	"Tech":        {"Wireless Keyboard", "External SSD"},
	"Gaming":      {"Gaming Mouse", "Mechanical Keyboard"},
	"Fashion":     {"Designer Watch", "Silk Scarf"},
	"Winter Wear": {"Winter Boots", "Wool Gloves"},
	"Mobile":      {"Phone Stand", "Screen Protector"},
	"Accessories": {"Smart Watch", "Wireless Earbuds"},
	"Photography": {"Camera Bag", "Lens Cleaner"},
	"Gadgets":     {"Smart Speaker", "Fitness Tracker"},
	"Luxury":      {"Premium Credit Card", "Investment Portfolio"},
	"Travel":      {"Travel Insurance", "Currency Exchange Card"},
}

// defaultCategories maps each interest to every product known to belong to
// it, including base products that only ever appear in purchase histories
var defaultCategories = map[string][]string{
	"Tech":        {"Laptop", "Mouse", "Wireless Keyboard", "External SSD"},
	"Gaming":      {"Gaming Mouse", "Mechanical Keyboard"},
	"Fashion":     {"Shoes", "Jacket", "Designer Watch", "Silk Scarf"},
	"Winter Wear": {"Winter Boots", "Wool Gloves"},
	"Mobile":      {"Phone", "Phone Stand", "Screen Protector"},
	"Accessories": {"Earbuds", "Smart Watch", "Wireless Earbuds"},
	"Photography": {"Camera", "Tripod", "Camera Bag", "Lens Cleaner"},
	"Gadgets":     {"Smart Speaker", "Fitness Tracker"},
	"Luxury":      {"Watch", "Sunglasses", "Premium Credit Card", "Investment Portfolio"},
	"Travel":      {"Travel Insurance", "Currency Exchange Card"},
}
