package domain

import "encoding/json"

// Product is a catalog record. The catalog is seeded at startup and never
// mutated afterwards; row order is the "featured" order.
type Product struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Price         float64 `db:"price"`
	OriginalPrice float64 `db:"original_price"` // 0 means no discount shown
	Category      string  `db:"category"`
	Material      string  `db:"material"`
	SizesJSON     string  `db:"sizes_json"`
	ColorsJSON    string  `db:"colors_json"`
	Image         string  `db:"image"`
	ImagesJSON    string  `db:"images_json"`
	Rating        float64 `db:"rating"`
	Reviews       int     `db:"reviews"`
	IsNew         bool    `db:"is_new"`
	IsSale        bool    `db:"is_sale"`
	Description   string  `db:"description"`
	CreatedAt     string  `db:"created_at"`
}

func parseList(raw string) []string {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// Sizes and Colors are stored as JSON arrays; template accessors.
func (p Product) Sizes() []string   { return parseList(p.SizesJSON) }
func (p Product) Colors() []string  { return parseList(p.ColorsJSON) }
func (p Product) Gallery() []string { return parseList(p.ImagesJSON) }

// Selections offered by the shop sidebar. "All" disables the predicate.
var (
	Categories = []string{"All", "Dresses", "Outerwear", "Shirts", "Pants", "Accessories"}
	Materials  = []string{"All", "Kente Silk", "Ankara Cotton", "Mudcloth", "Brass"}
)

// Sort keys accepted by the shop page.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// FilterCriteria is the transient filter state of one shop-page request.
type FilterCriteria struct {
	Query    string
	Category string
	Material string
	MinPrice float64
	MaxPrice float64
	OnSale   bool
	NewOnly  bool
	Sort     string
}

// DefaultMaxPrice matches the upper bound of the shop price slider.
const DefaultMaxPrice = 500

func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: "All",
		Material: "All",
		MaxPrice: DefaultMaxPrice,
		Sort:     SortFeatured,
	}
}
