package database

import (
	"database/sql"
	"fmt"
)

// FeedRepo handles database operations for shop feed registrations
type FeedRepo struct {
	db *DB
}

var _ FeedRepository = (*FeedRepo)(nil)

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *DB) *FeedRepo {
	return &FeedRepo{db: db}
}

// GetActiveFeed returns the most recent active registration, or nil when
// the feed has never been activated or has been reset.
func (r *FeedRepo) GetActiveFeed() (*FeedRecord, error) {
	var feed FeedRecord
	err := r.db.QueryRow(`
		SELECT id, domain, name, feed_url, phone, email, hash, active, created_at
		FROM shop_feeds
		WHERE active = 1
		ORDER BY id DESC
		LIMIT 1
	`).Scan(
		&feed.ID, &feed.Domain, &feed.Name, &feed.FeedURL, &feed.Phone,
		&feed.Email, &feed.Hash, &feed.Active, &feed.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active feed: %w", err)
	}

	return &feed, nil
}

// GetFeedByHash returns the active registration matching the given hash
func (r *FeedRepo) GetFeedByHash(hash string) (*FeedRecord, error) {
	var feed FeedRecord
	err := r.db.QueryRow(`
		SELECT id, domain, name, feed_url, phone, email, hash, active, created_at
		FROM shop_feeds
		WHERE active = 1 AND hash = ?
		ORDER BY id DESC
		LIMIT 1
	`, hash).Scan(
		&feed.ID, &feed.Domain, &feed.Name, &feed.FeedURL, &feed.Phone,
		&feed.Email, &feed.Hash, &feed.Active, &feed.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed by hash: %w", err)
	}

	return &feed, nil
}

// CreateFeed stores a new registration with its issued hash and activates it
func (r *FeedRepo) CreateFeed(domain, name, feedURL, phone, email, hash string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO shop_feeds (domain, name, feed_url, phone, email, hash, active)
		VALUES (?, ?, ?, ?, ?, ?, 1)
	`, domain, name, feedURL, phone, email, hash)
	if err != nil {
		return 0, fmt.Errorf("failed to create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get feed id: %w", err)
	}

	return id, nil
}

// DeactivateAll revokes every registration. Previously issued hashes stop
// granting feed access immediately.
func (r *FeedRepo) DeactivateAll() error {
	_, err := r.db.Exec(`UPDATE shop_feeds SET active = 0 WHERE active = 1`)
	if err != nil {
		return fmt.Errorf("failed to deactivate feeds: %w", err)
	}
	return nil
}

// GetFeedCount returns the total number of registrations
func (r *FeedRepo) GetFeedCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM shop_feeds").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get feed count: %w", err)
	}
	return count, nil
}
