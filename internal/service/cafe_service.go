// Package service implements the admin-side café creation workflow: slug
// derivation, duplicate checks, menu validation and the atomic write, plus
// the side effects of a successful go-live (QR URL, published event).
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lazlle/menu-builder/internal/queue"
	"github.com/lazlle/menu-builder/internal/repository"
	"github.com/lazlle/menu-builder/internal/utils"
)

// ValidationError reports creation-time input problems to the admin user with
// a field-specific message. It never corresponds to a partially persisted
// state: validation happens strictly before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// CreateMenuInput is the admin form payload: the café's presentation fields
// and its category tree in display order. Optional fields are empty strings
// when absent.
type CreateMenuInput struct {
	Name       string         `json:"name"`
	LogoURL    string         `json:"logo_url"`
	Location   string         `json:"location"`
	Timings    string         `json:"timings"`
	Categories []CategoryForm `json:"categories"`
}

// CategoryForm is one category as entered in the form.
type CategoryForm struct {
	Name  string     `json:"name"`
	Items []ItemForm `json:"items"`
}

// ItemForm is one item as entered in the form. Price is an integer in the
// smallest currency unit.
type ItemForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// Store is the slice of the café repository the service needs. It is an
// interface so tests can substitute an in-memory fake.
type Store interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateWithMenu(ctx context.Context, c *repository.Cafe, categories []repository.CategoryInput) error
}

// CafeService coordinates café creation. The Redis client is optional: when
// nil the slug reservation guard is skipped and creation relies on the
// database's unique key alone.
type CafeService struct {
	store        Store
	rdb          *redis.Client
	publicDomain string
}

// NewCafeService constructs a CafeService.
func NewCafeService(store Store, rdb *redis.Client, publicDomain string) *CafeService {
	return &CafeService{store: store, rdb: rdb, publicDomain: publicDomain}
}

// slugReserveTTL bounds how long a slug stays reserved when a creation
// attempt dies between the reservation and the insert.
const slugReserveTTL = 2 * time.Minute

// Create validates the form input, derives the slug, verifies it is unused
// and writes the café with its menu in one transaction. On success it returns
// the persisted café and its public URL, and publishes a menu.published event
// in the background.
//
// Failure taxonomy: *ValidationError for bad input (nothing persisted),
// repository.ErrDuplicateSlug when the name collides with an existing café,
// anything else is a storage fault the admin may retry.
func (s *CafeService) Create(ctx context.Context, in CreateMenuInput) (*repository.Cafe, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", &ValidationError{Field: "name", Message: "cafe name is required"}
	}
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, "", &ValidationError{Field: "name", Message: "cafe name must contain letters or digits"}
	}

	categories := filterCategories(in.Categories)
	if len(categories) == 0 {
		return nil, "", &ValidationError{Field: "categories", Message: "add at least one category with valid menu items"}
	}

	// Duplicate names fail closed before any write.
	exists, err := s.store.SlugExists(ctx, slug)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", repository.ErrDuplicateSlug
	}

	// Reserve the slug so two concurrent submissions of the same name cannot
	// both pass the existence check. The DB unique key is the hard backstop;
	// the reservation just turns the race into a clean conflict response.
	if !s.reserveSlug(ctx, slug) {
		return nil, "", repository.ErrDuplicateSlug
	}

	cafe := &repository.Cafe{
		Name:     name,
		Slug:     slug,
		LogoURL:  nullable(in.LogoURL),
		Location: nullable(in.Location),
		Timings:  nullable(in.Timings),
	}
	if err := s.store.CreateWithMenu(ctx, cafe, categories); err != nil {
		s.releaseSlug(slug)
		return nil, "", err
	}

	url := s.PublicURL(slug)

	// Fire-and-forget: a broker outage must not fail a creation that already
	// committed. Errors are logged inside the publisher.
	itemCount := 0
	for _, c := range categories {
		itemCount += len(c.Items)
	}
	ev := queue.MenuPublishedEvent{
		CafeID:        cafe.ID,
		CafeName:      cafe.Name,
		Slug:          cafe.Slug,
		PublicURL:     url,
		CategoryCount: len(categories),
		ItemCount:     itemCount,
		PublishedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.PublishMenuPublished(pctx, ev)
	}()

	return cafe, url, nil
}

// CheckSlug derives the slug for a candidate café name and reports whether it
// is still available. It backs the admin form's live availability check.
func (s *CafeService) CheckSlug(ctx context.Context, name string) (string, bool, error) {
	slug := utils.Slugify(name)
	if slug == "" {
		return "", false, &ValidationError{Field: "name", Message: "cafe name must contain letters or digits"}
	}
	exists, err := s.store.SlugExists(ctx, slug)
	if err != nil {
		return "", false, err
	}
	return slug, !exists, nil
}

// PublicURL returns the canonical public address of a tenant's menu.
func (s *CafeService) PublicURL(slug string) string {
	return "https://" + slug + "." + s.publicDomain
}

// filterCategories applies the creation-time validity rules: categories with
// blank names are dropped; items with blank names or non-positive prices are
// dropped; categories left without items are dropped. Arrival order is
// preserved so order_index assignment matches what the admin saw in the form.
func filterCategories(forms []CategoryForm) []repository.CategoryInput {
	out := make([]repository.CategoryInput, 0, len(forms))
	for _, f := range forms {
		catName := strings.TrimSpace(f.Name)
		if catName == "" {
			continue
		}
		items := make([]repository.ItemInput, 0, len(f.Items))
		for _, it := range f.Items {
			itemName := strings.TrimSpace(it.Name)
			if itemName == "" || it.Price <= 0 {
				continue
			}
			items = append(items, repository.ItemInput{
				Name:        itemName,
				Description: strings.TrimSpace(it.Description),
				Price:       it.Price,
				Available:   true,
			})
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, repository.CategoryInput{Name: catName, Items: items})
	}
	return out
}

// reserveSlug takes a short-lived Redis lock on the slug. With no Redis
// client the guard is disabled and creation proceeds on the database's
// unique key alone.
func (s *CafeService) reserveSlug(ctx context.Context, slug string) bool {
	if s.rdb == nil {
		return true
	}
	ok, err := s.rdb.SetNX(ctx, "slug:reserve:"+slug, 1, slugReserveTTL).Result()
	if err != nil {
		// Redis being down must not block creation; log and fall through.
		log.Printf("slug-guard: reserve %s failed: %v", slug, err)
		return true
	}
	return ok
}

// releaseSlug frees a reservation after a failed creation so the admin can
// correct the input and resubmit without waiting out the TTL.
func (s *CafeService) releaseSlug(slug string) {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.rdb.Del(ctx, "slug:reserve:"+slug).Err(); err != nil {
		log.Printf("slug-guard: release %s failed: %v", slug, err)
	}
}

// nullable maps an optional form field to its nullable column value.
func nullable(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}
