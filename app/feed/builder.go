package feed

import (
	"fmt"
	"log/slog"

	"github.com/shopsync/pricerunner-feed/app/database"
)

// Builder runs one complete feed build: categories, catalog rows, batched
// meta and thumbnails, then mapping. All state is scoped to a single Run
// call; nothing is cached across builds because the catalog can change
// between requests.
type Builder struct {
	categoryRepo database.CategoryRepository
	productRepo  database.ProductRepository
	mapper       *Mapper
}

// NewBuilder creates a feed builder
func NewBuilder(categoryRepo database.CategoryRepository,
	productRepo database.ProductRepository, mapper *Mapper) *Builder {
	return &Builder{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		mapper:       mapper,
	}
}

// Run loads the catalog and maps it into the feed product set. Variation
// rows are resolved into the row table so parents are available for
// inheritance, but they are not emitted as standalone products; re-enabling
// variation emission only means removing that final filter.
func (b *Builder) Run() ([]Product, error) {
	categories, err := b.categoryRepo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryPaths := BuildCategoryPaths(categories)

	rows, err := b.productRepo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	rowsByID := make(map[int64]database.ProductRow, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		rowsByID[row.ID] = row
		ids = append(ids, row.ID)
	}

	metas, err := b.productRepo.GetProductMeta(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load product meta: %w", err)
	}

	imageURLs, err := b.productRepo.GetThumbnailURLs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load thumbnail URLs: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		if row.ParentID != 0 {
			if _, ok := rowsByID[row.ParentID]; !ok {
				slog.Warn("Variation references a parent missing from the catalog, skipping",
					"product", row.ID, "parent", row.ParentID)
			}
			continue
		}

		products = append(products, b.mapper.Map(row, rowsByID, categoryPaths, metas, imageURLs))
	}

	return products, nil
}
