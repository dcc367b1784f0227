package menu

import (
	"context"
	"database/sql"
	"sort"

	"github.com/lazlle/menu-builder/internal/repository"
)

// CafeStore is the slice of the café repository the builder needs. Lookups by
// slug return repository.ErrCafeNotFound when no tenant matches; any other
// error is a storage fault and propagates unchanged.
type CafeStore interface {
	GetBySlug(ctx context.Context, slug string) (*repository.Cafe, error)
}

// MenuStore loads a café's category tree in arrival order.
type MenuStore interface {
	ListByCafe(ctx context.Context, cafeID uint64) ([]repository.CategoryWithItems, error)
}

// Builder turns a tenant slug into a renderable Document. Both stores are
// injected so tests can substitute in-memory fakes.
type Builder struct {
	Cafes CafeStore
	Menus MenuStore
}

// NewBuilder constructs a Builder over the given stores.
func NewBuilder(cafes CafeStore, menus MenuStore) *Builder {
	return &Builder{Cafes: cafes, Menus: menus}
}

// Build resolves the slug to a café and assembles its menu document:
// categories sorted by order_index ascending, items filtered to available
// then sorted by order_index ascending. Both sorts are stable, so rows with
// equal order_index keep their storage arrival order and the projection is
// deterministic. Categories whose every item is unavailable stay in the
// document with an empty item list; a café with zero categories yields a
// valid document with an empty categories list, distinct from not-found.
func (b *Builder) Build(ctx context.Context, slug string) (*Document, error) {
	cafe, err := b.Cafes.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err // ErrCafeNotFound or a storage fault
	}

	tree, err := b.Menus.ListByCafe(ctx, cafe.ID)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		CafeID:     cafe.ID,
		CafeName:   cafe.Name,
		CafeSlug:   cafe.Slug,
		LogoURL:    nullableString(cafe.LogoURL),
		Location:   nullableString(cafe.Location),
		Timings:    nullableString(cafe.Timings),
		CreatedAt:  cafe.CreatedAt,
		Categories: make([]Category, 0, len(tree)),
	}

	for _, cat := range tree {
		out := Category{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			OrderIndex:   cat.OrderIndex,
			Items:        make([]Item, 0, len(cat.Items)),
		}
		for _, it := range cat.Items {
			if !it.Available {
				continue
			}
			out.Items = append(out.Items, Item{
				ItemID:      it.ID,
				ItemName:    it.Name,
				Description: nullableString(it.Description),
				Price:       it.Price,
				OrderIndex:  it.OrderIndex,
				IsAvailable: true,
			})
		}
		sort.SliceStable(out.Items, func(i, j int) bool {
			return out.Items[i].OrderIndex < out.Items[j].OrderIndex
		})
		doc.Categories = append(doc.Categories, out)
	}
	sort.SliceStable(doc.Categories, func(i, j int) bool {
		return doc.Categories[i].OrderIndex < doc.Categories[j].OrderIndex
	})
	return doc, nil
}

// nullableString maps a NULL column to a nil pointer so optional fields drop
// out of the JSON document entirely instead of rendering as "".
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
