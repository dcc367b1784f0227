// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Cafe model and repository methods for slug lookup,
// slug existence checks and the atomic creation of a café together with its
// category tree. A Cafe represents one tenant: its slug doubles as the
// subdomain label under which the public menu is served.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel error values
	"strings"      // strings is used to detect duplicate-key violations
	"time"         // time holds the creation timestamp
)

// Cafe represents a café tenant persisted in the database. The Slug field is
// derived once from the name at creation time and is immutable thereafter; it
// is globally unique and used as the subdomain label. Optional presentation
// fields use sql.NullString so absent values survive the round trip as NULL.
type Cafe struct {
	ID        uint64         // cafes.id
	Name      string         // cafes.name
	Slug      string         // cafes.slug
	LogoURL   sql.NullString // cafes.logo_url
	Location  sql.NullString // cafes.location
	Timings   sql.NullString // cafes.timings
	CreatedAt time.Time      // cafes.created_at
}

// CategoryInput describes one category of a café at creation time, after
// admin-side validation. Items arrive in display order; order_index values
// are assigned from their positions.
type CategoryInput struct {
	Name  string
	Items []ItemInput
}

// ItemInput describes one menu item at creation time. Price is an integer in
// the smallest currency unit.
type ItemInput struct {
	Name        string
	Description string
	Price       int64
	Available   bool
}

// CafeRepo encapsulates all database queries related to cafés. It depends on
// a sql.DB connection which should be configured elsewhere.
type CafeRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewCafeRepo constructs a CafeRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup. There is no initialization logic beyond assigning the field.
func NewCafeRepo(db *sql.DB) *CafeRepo {
	return &CafeRepo{db: db}
}

// GetBySlug fetches a café by its exact slug. Slugs are generated lowercase
// at creation, so the match is case-sensitive by contract. It returns
// ErrCafeNotFound if no row is found; any other error is a storage fault.
func (r *CafeRepo) GetBySlug(ctx context.Context, slug string) (*Cafe, error) {
	const q = `SELECT id, name, slug, logo_url, location, timings, created_at
	           FROM cafes WHERE slug = ?`
	var c Cafe
	if err := r.db.QueryRowContext(ctx, q, slug).
		Scan(&c.ID, &c.Name, &c.Slug, &c.LogoURL, &c.Location, &c.Timings, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return &c, nil
}

// SlugExists reports whether a café with the given slug already exists. It is
// used by the creation flow and the admin form's live availability check.
func (r *CafeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM cafes WHERE slug = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateWithMenu inserts a café together with its categories and items in a
// single transaction: either every row is written or none is, so a reader can
// never observe a café with a partially written category tree. On success the
// café's ID and CreatedAt fields are populated. A unique-key violation on the
// slug column is reported as ErrDuplicateSlug.
//
// order_index values for both categories and items are assigned from the
// slice positions of the input; readers must treat them as the sole ordering
// signal and never assume contiguity.
func (r *CafeRepo) CreateWithMenu(ctx context.Context, c *Cafe, categories []CategoryInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	const qCafe = `INSERT INTO cafes (name, slug, logo_url, location, timings)
	               VALUES (?, ?, ?, ?, ?)`
	var res sql.Result
	res, err = tx.ExecContext(ctx, qCafe, c.Name, c.Slug, c.LogoURL, c.Location, c.Timings)
	if err != nil {
		// MySQL error 1062 = duplicate entry for the unique slug key.
		if strings.Contains(err.Error(), "1062") {
			err = ErrDuplicateSlug
		}
		return err
	}
	var cafeID int64
	cafeID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(cafeID)

	const qCategory = `INSERT INTO categories (cafe_id, name, order_index) VALUES (?, ?, ?)`
	const qItem = `INSERT INTO menu_items (category_id, name, description, price, order_index, is_available)
	               VALUES (?, ?, ?, ?, ?, ?)`
	for ci, cat := range categories {
		res, err = tx.ExecContext(ctx, qCategory, c.ID, cat.Name, ci)
		if err != nil {
			return err
		}
		var catID int64
		catID, err = res.LastInsertId()
		if err != nil {
			return err
		}
		for ii, item := range cat.Items {
			desc := sql.NullString{String: item.Description, Valid: item.Description != ""}
			if _, err = tx.ExecContext(ctx, qItem, catID, item.Name, desc, item.Price, ii, item.Available); err != nil {
				return err
			}
		}
	}

	// Follow-up SELECT to populate the DB-assigned creation timestamp.
	err = tx.QueryRowContext(ctx, `SELECT created_at FROM cafes WHERE id = ?`, c.ID).Scan(&c.CreatedAt)
	return err
}
