// This file defines the Category and Item models and the repository that
// loads a café's full category tree for the public read model. Rows are
// returned in storage arrival order (ordered by primary key); display
// ordering by order_index is the read-model builder's job, keeping arrival
// order available as the documented tie-break.
package repository

import (
	"context"
	"database/sql"
)

// Category represents one menu section belonging to a café.
type Category struct {
	ID         uint64 // categories.id
	CafeID     uint64 // categories.cafe_id
	Name       string // categories.name
	OrderIndex int    // categories.order_index
}

// Item represents one priced entry within a category. Price is an integer in
// the smallest currency unit; it is positive for every row written through
// the creation flow.
type Item struct {
	ID          uint64         // menu_items.id
	CategoryID  uint64         // menu_items.category_id
	Name        string         // menu_items.name
	Description sql.NullString // menu_items.description
	Price       int64          // menu_items.price
	OrderIndex  int            // menu_items.order_index
	Available   bool           // menu_items.is_available
}

// CategoryWithItems bundles a category with its items so callers get the
// nested shape in one call.
type CategoryWithItems struct {
	Category
	Items []Item
}

// MenuRepo encapsulates read queries over a café's categories and items.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo constructs a MenuRepo with the provided DB handle.
func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

// ListByCafe returns every category of the café, each with all of its items
// (including unavailable ones — filtering is a presentation concern). Both
// levels are ordered by primary key, i.e. arrival order. A café with no
// categories yields an empty slice, not an error.
func (r *MenuRepo) ListByCafe(ctx context.Context, cafeID uint64) ([]CategoryWithItems, error) {
	const qCategories = `SELECT id, cafe_id, name, order_index
	                     FROM categories WHERE cafe_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, qCategories, cafeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryWithItems
	index := make(map[uint64]int) // category id -> position in out
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.CafeID, &c.Name, &c.OrderIndex); err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, CategoryWithItems{Category: c, Items: []Item{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []CategoryWithItems{}, nil
	}

	// One join query for all items of the café keeps this at two round trips
	// regardless of category count.
	const qItems = `SELECT i.id, i.category_id, i.name, i.description, i.price, i.order_index, i.is_available
	                FROM menu_items i
	                JOIN categories c ON c.id = i.category_id
	                WHERE c.cafe_id = ? ORDER BY i.id`
	irows, err := r.db.QueryContext(ctx, qItems, cafeID)
	if err != nil {
		return nil, err
	}
	defer irows.Close()

	for irows.Next() {
		var it Item
		if err := irows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.OrderIndex, &it.Available); err != nil {
			return nil, err
		}
		if pos, ok := index[it.CategoryID]; ok {
			out[pos].Items = append(out[pos].Items, it)
		}
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
