// Package queue defines message payloads exchanged over the message broker.
package queue

// MenuPublishedEvent is published when a café and its menu are successfully
// created and the menu goes live on its subdomain. It carries enough
// information for downstream consumers to log, notify, or trigger analytics
// without querying the primary database.
type MenuPublishedEvent struct {
	CafeID        uint64 `json:"cafe_id"`
	CafeName      string `json:"cafe_name"`
	Slug          string `json:"slug"`
	PublicURL     string `json:"public_url"`
	CategoryCount int    `json:"category_count"`
	ItemCount     int    `json:"item_count"`
	PublishedAt   string `json:"published_at"`
}
