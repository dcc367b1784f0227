package menu

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lazlle/menu-builder/internal/repository"
)

type fakeCafeStore struct {
	cafe *repository.Cafe
	err  error
}

func (f *fakeCafeStore) GetBySlug(_ context.Context, slug string) (*repository.Cafe, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.cafe == nil || f.cafe.Slug != slug {
		return nil, repository.ErrCafeNotFound
	}
	return f.cafe, nil
}

type fakeMenuStore struct {
	tree []repository.CategoryWithItems
	err  error
}

func (f *fakeMenuStore) ListByCafe(_ context.Context, _ uint64) ([]repository.CategoryWithItems, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tree, nil
}

func testCafe() *repository.Cafe {
	return &repository.Cafe{
		ID:        7,
		Name:      "Acme Coffee",
		Slug:      "acme",
		Location:  sql.NullString{String: "Main St 1", Valid: true},
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func cat(id uint64, name string, order int, items ...repository.Item) repository.CategoryWithItems {
	return repository.CategoryWithItems{
		Category: repository.Category{ID: id, CafeID: 7, Name: name, OrderIndex: order},
		Items:    items,
	}
}

func item(id uint64, name string, order int, available bool) repository.Item {
	return repository.Item{ID: id, Name: name, Price: 450, OrderIndex: order, Available: available}
}

func TestBuildNotFound(t *testing.T) {
	b := NewBuilder(&fakeCafeStore{}, &fakeMenuStore{})
	_, err := b.Build(context.Background(), "nope")
	if !errors.Is(err, repository.ErrCafeNotFound) {
		t.Fatalf("Build on unknown slug: err = %v, want ErrCafeNotFound", err)
	}
}

func TestBuildPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")

	b := NewBuilder(&fakeCafeStore{err: boom}, &fakeMenuStore{})
	if _, err := b.Build(context.Background(), "acme"); !errors.Is(err, boom) {
		t.Errorf("cafe store fault: err = %v, want %v", err, boom)
	}

	b = NewBuilder(&fakeCafeStore{cafe: testCafe()}, &fakeMenuStore{err: boom})
	if _, err := b.Build(context.Background(), "acme"); !errors.Is(err, boom) {
		t.Errorf("menu store fault: err = %v, want %v", err, boom)
	}
}

func TestBuildOrdersCategoriesByOrderIndex(t *testing.T) {
	tree := []repository.CategoryWithItems{
		cat(2, "Mains", 2),
		cat(1, "Starters", 1),
	}
	b := NewBuilder(&fakeCafeStore{cafe: testCafe()}, &fakeMenuStore{tree: tree})
	doc, err := b.Build(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(doc.Categories))
	}
	if doc.Categories[0].CategoryName != "Starters" || doc.Categories[1].CategoryName != "Mains" {
		t.Errorf("category order = [%s %s], want [Starters Mains]",
			doc.Categories[0].CategoryName, doc.Categories[1].CategoryName)
	}
}

func TestBuildCategoryOrderTieBreakIsArrivalOrder(t *testing.T) {
	tree := []repository.CategoryWithItems{
		cat(10, "First", 5),
		cat(11, "Second", 5),
		cat(12, "Third", 5),
	}
	b := NewBuilder(&fakeCafeStore{cafe: testCafe()}, &fakeMenuStore{tree: tree})
	doc, err := b.Build(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	for i, w := range want {
		if doc.Categories[i].CategoryName != w {
			t.Errorf("categories[%d] = %s, want %s", i, doc.Categories[i].CategoryName, w)
		}
	}
}

func TestBuildFiltersUnavailableItems(t *testing.T) {
	tree := []repository.CategoryWithItems{
		cat(1, "Drinks", 0,
			item(1, "Espresso", 1, true),
			item(2, "Seasonal Special", 0, false),
			item(3, "Latte", 0, true),
		),
	}
	b := NewBuilder(&fakeCafeStore{cafe: testCafe()}, &fakeMenuStore{tree: tree})
	doc, err := b.Build(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	items := doc.Categories[0].Items
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (unavailable filtered)", len(items))
	}
	// Latte (order 0) sorts before Espresso (order 1) after filtering.
	if items[0].ItemName != "Latte" || items[1].ItemName != "Espresso" {
		t.Errorf("item order = [%s %s], want [Latte Espresso]", items[0].ItemName, items[1].ItemName)
	}
	for _, it := range items {
		if !it.IsAvailable {
			t.Errorf("item %s rendered with is_available=false", it.ItemName)
		}
	}
}

func TestBuildKeepsEmptiedCategories(t *testing.T) {
	tree := []repository.CategoryWithItems{
		cat(1, "Sold Out Corner", 0,
			item(1, "Gone", 0, false),
			item(2, "Also Gone", 1, false),
		),
	}
	b := NewBuilder(&fakeCafeStore{cafe: testCafe()}, &fakeMenuStore{tree: tree})
	doc, err := b.Build(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Categories) != 1 {
		t.Fatalf("category with only unavailable items was dropped")
	}
	if got := doc.Categories[0].Items; len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
	if doc.Categories[0].Items == nil {
		t.Error("items must serialize as [], not null")
	}
}

func TestBuildEmptyMenuIsNotAnError(t *testing.T) {
	b := NewBuilder(&fakeCafeStore{cafe: testCafe()}, &fakeMenuStore{tree: []repository.CategoryWithItems{}})
	doc, err := b.Build(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Build on empty menu: %v", err)
	}
	if doc.Categories == nil || len(doc.Categories) != 0 {
		t.Errorf("categories = %v, want empty non-nil slice", doc.Categories)
	}
}

func TestBuildMapsCafeFields(t *testing.T) {
	cafe := testCafe()
	cafe.LogoURL = sql.NullString{String: "https://cdn.example/acme.png", Valid: true}
	b := NewBuilder(&fakeCafeStore{cafe: cafe}, &fakeMenuStore{})
	doc, err := b.Build(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if doc.CafeID != 7 || doc.CafeName != "Acme Coffee" || doc.CafeSlug != "acme" {
		t.Errorf("cafe fields mismatched: %+v", doc)
	}
	if doc.LogoURL == nil || *doc.LogoURL != "https://cdn.example/acme.png" {
		t.Errorf("logo_url not mapped: %v", doc.LogoURL)
	}
	if doc.Location == nil || *doc.Location != "Main St 1" {
		t.Errorf("location not mapped: %v", doc.Location)
	}
	if doc.Timings != nil {
		t.Errorf("timings should be nil when the column is NULL, got %v", *doc.Timings)
	}
	if !doc.CreatedAt.Equal(cafe.CreatedAt) {
		t.Errorf("created_at = %v, want %v", doc.CreatedAt, cafe.CreatedAt)
	}
}
