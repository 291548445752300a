package database

import (
	"time"
)

// Category is one node of the product category taxonomy. The taxonomy forms
// a forest: a node with Parent == 0 is a root.
type Category struct {
	ID     int64
	Name   string
	Parent int64
}

// ProductRow is one row of the catalog query. It covers both top-level
// products (ParentID == 0) and variations (ParentID != 0); a variation
// inherits name, description, category and image from its parent row.
type ProductRow struct {
	ID         int64
	ParentID   int64
	PostType   string
	PostStatus string
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CategoryID int64 // resolved term_taxonomy_id, 0 when uncategorized
}

// FeedRecord is one shop registration. The hash is the per-shop secret the
// crawler presents to read the feed; only the active record grants access.
type FeedRecord struct {
	ID        int64
	Domain    string
	Name      string
	FeedURL   string
	Phone     string
	Email     string
	Hash      string
	Active    bool
	CreatedAt time.Time
}
