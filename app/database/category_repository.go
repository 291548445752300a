package database

import (
	"fmt"
)

// CategoryRepo handles database operations for the product category taxonomy
type CategoryRepo struct {
	db *DB
}

var _ CategoryRepository = (*CategoryRepo)(nil)

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetCategories returns every product category node. Ordering by parent
// ascending guarantees that a parent row is returned before any of its
// children, which the breadcrumb build relies on.
func (r *CategoryRepo) GetCategories() ([]Category, error) {
	rows, err := r.db.Query(`
		SELECT tt.term_taxonomy_id, COALESCE(t.name, ''), tt.parent
		FROM term_taxonomy AS tt
		INNER JOIN terms AS t ON t.term_id = tt.term_id
		WHERE tt.taxonomy = 'product_cat'
		ORDER BY tt.parent ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Parent); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

// GetCategoryCount returns the number of product category nodes
func (r *CategoryRepo) GetCategoryCount() (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM term_taxonomy WHERE taxonomy = 'product_cat'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get category count: %w", err)
	}
	return count, nil
}
