// Package menu assembles the public read model of a café: the nested,
// ordered, availability-filtered document the menu page renders. The document
// is a pure projection — recomputed on every read, never stored or cached.
package menu

import "time"

// Document is one café's public-facing menu projection.
type Document struct {
	CafeID     uint64     `json:"cafe_id"`
	CafeName   string     `json:"cafe_name"`
	CafeSlug   string     `json:"cafe_slug"`
	LogoURL    *string    `json:"logo_url,omitempty"`
	Location   *string    `json:"location,omitempty"`
	Timings    *string    `json:"timings,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Categories []Category `json:"categories"`
}

// Category is one menu section carrying only its available items.
type Category struct {
	CategoryID   uint64 `json:"category_id"`
	CategoryName string `json:"category_name"`
	OrderIndex   int    `json:"order_index"`
	Items        []Item `json:"items"`
}

// Item is one priced entry. Price is an integer in the smallest currency
// unit. IsAvailable is always true in documents built by this package; the
// field is kept so the wire shape matches what renderers expect.
type Item struct {
	ItemID      uint64  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
	OrderIndex  int     `json:"order_index"`
	IsAvailable bool    `json:"is_available"`
}
