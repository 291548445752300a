package database

import (
	"fmt"
	"strings"
)

// ProductRepo handles database operations for catalog products
type ProductRepo struct {
	db *DB
}

var _ ProductRepository = (*ProductRepo)(nil)

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// GetProducts runs the catalog query: published products and product
// variations joined against their category assignment. When a product has
// multiple categories assigned, the highest term_taxonomy_id wins. Rows are
// ordered by (id, post_parent) so a top-level row is always encountered
// before the variation rows that reference it.
func (r *ProductRepo) GetProducts() ([]ProductRow, error) {
	rows, err := r.db.Query(`
		SELECT
			p.id,
			p.post_parent,
			p.post_type,
			p.post_status,
			COALESCE(p.post_title, ''),
			COALESCE(p.post_name, ''),
			COALESCE(p.post_excerpt, ''),
			COALESCE(p.post_content, ''),
			COALESCE(tr.term_taxonomy_id, 0)
		FROM posts AS p
		LEFT JOIN (
			SELECT object_id, MAX(term_taxonomy_id) AS term_taxonomy_id
			FROM term_relationships
			GROUP BY object_id
		) AS tr ON tr.object_id = p.id
		LEFT JOIN term_taxonomy AS tt ON tt.term_taxonomy_id = tr.term_taxonomy_id
		WHERE (p.post_type = 'product' OR p.post_type = 'product_variation')
		  AND p.post_status = 'publish'
		  AND (CASE WHEN p.post_type = 'product' THEN tt.taxonomy = 'product_cat' ELSE 1 END)
		ORDER BY p.id, p.post_parent ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	var products []ProductRow
	for rows.Next() {
		var product ProductRow
		err := rows.Scan(
			&product.ID, &product.ParentID, &product.PostType, &product.PostStatus,
			&product.Title, &product.Slug, &product.Excerpt, &product.Content,
			&product.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// GetProductMeta loads price, stock status and SKU meta for the given post
// ids in a single batched query, keyed by post id and meta key.
func (r *ProductRepo) GetProductMeta(ids []int64) (map[int64]map[string]string, error) {
	metas := make(map[int64]map[string]string, len(ids))
	if len(ids) == 0 {
		return metas, nil
	}

	query := fmt.Sprintf(`
		SELECT post_id, meta_key, meta_value
		FROM postmeta
		WHERE meta_key IN ('_price', '_stock_status', '_sku')
		  AND post_id IN (%s)
	`, placeholders(len(ids)))

	rows, err := r.db.Query(query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to get product meta: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID int64
		var key, value string
		if err := rows.Scan(&postID, &key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan meta row: %w", err)
		}
		if metas[postID] == nil {
			metas[postID] = make(map[string]string)
		}
		metas[postID][key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meta rows: %w", err)
	}

	return metas, nil
}

// GetThumbnailURLs resolves the product thumbnail attachment URL for the
// given post ids in one batched query. The _thumbnail_id meta points at an
// attachment post whose guid column carries the image URL.
func (r *ProductRepo) GetThumbnailURLs(ids []int64) (map[int64]string, error) {
	urls := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return urls, nil
	}

	query := fmt.Sprintf(`
		SELECT pm.post_id, COALESCE(a.guid, '')
		FROM postmeta AS pm
		INNER JOIN posts AS a ON a.id = CAST(pm.meta_value AS INTEGER)
		WHERE pm.meta_key = '_thumbnail_id'
		  AND pm.post_id IN (%s)
	`, placeholders(len(ids)))

	rows, err := r.db.Query(query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to get thumbnail URLs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID int64
		var url string
		if err := rows.Scan(&postID, &url); err != nil {
			return nil, fmt.Errorf("failed to scan thumbnail row: %w", err)
		}
		urls[postID] = url
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating thumbnail rows: %w", err)
	}

	return urls, nil
}

// GetProductCount returns the number of published top-level products
func (r *ProductRepo) GetProductCount() (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*)
		FROM posts
		WHERE post_type = 'product'
		  AND post_status = 'publish'
		  AND post_parent = 0
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get product count: %w", err)
	}
	return count, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func idArgs(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
