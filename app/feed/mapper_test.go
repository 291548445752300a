package feed

import (
	"testing"

	"github.com/shopsync/pricerunner-feed/app/database"
)

func TestMapSkuFallback(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	row := database.ProductRow{ID: 42, Title: "Camera", Slug: "camera", CategoryID: 1}
	rows := map[int64]database.ProductRow{42: row}
	paths := map[int64]string{1: "Electronics"}

	// No _sku meta: the numeric id becomes the SKU
	product := mapper.Map(row, rows, paths, map[int64]map[string]string{}, nil)
	if product.Sku != "42" {
		t.Errorf("Expected SKU '42', got '%s'", product.Sku)
	}

	// With _sku meta the meta value wins
	metas := map[int64]map[string]string{42: {"_sku": "ABC-1"}}
	product = mapper.Map(row, rows, paths, metas, nil)
	if product.Sku != "ABC-1" {
		t.Errorf("Expected SKU 'ABC-1', got '%s'", product.Sku)
	}
}

func TestMapStockStatus(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	row := database.ProductRow{ID: 1, Title: "Camera", Slug: "camera"}
	rows := map[int64]database.ProductRow{1: row}

	product := mapper.Map(row, rows, nil, map[int64]map[string]string{1: {"_stock_status": "instock"}}, nil)
	if product.StockStatus != "In Stock" {
		t.Errorf("Expected 'In Stock', got '%s'", product.StockStatus)
	}

	product = mapper.Map(row, rows, nil, map[int64]map[string]string{1: {"_stock_status": "outofstock"}}, nil)
	if product.StockStatus != "Out of Stock" {
		t.Errorf("Expected 'Out of Stock', got '%s'", product.StockStatus)
	}

	// Missing meta leaves the field unset
	product = mapper.Map(row, rows, nil, map[int64]map[string]string{}, nil)
	if product.StockStatus != "" {
		t.Errorf("Expected unset stock status, got '%s'", product.StockStatus)
	}
}

func TestMapPrice(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	row := database.ProductRow{ID: 1, Title: "Camera", Slug: "camera"}
	rows := map[int64]database.ProductRow{1: row}

	product := mapper.Map(row, rows, nil, map[int64]map[string]string{1: {"_price": "1333.37"}}, nil)
	if product.Price != "1333.37" {
		t.Errorf("Expected price '1333.37', got '%s'", product.Price)
	}

	product = mapper.Map(row, rows, nil, map[int64]map[string]string{}, nil)
	if product.Price != "" {
		t.Errorf("Expected empty price, got '%s'", product.Price)
	}
}

func TestMapVariationInheritsParentIdentity(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	parent := database.ProductRow{
		ID: 1, Title: "Camera", Slug: "camera", Excerpt: "A fine camera",
		CategoryID: 3,
	}
	variation := database.ProductRow{
		ID: 2, ParentID: 1, Title: "Camera - Black", Slug: "camera-black",
	}
	rows := map[int64]database.ProductRow{1: parent, 2: variation}
	paths := map[int64]string{3: "Electronics > Cameras"}
	images := map[int64]string{1: "https://shop.example.com/images/camera.jpg"}
	metas := map[int64]map[string]string{
		1: {"_price": "100"},
		2: {"_price": "110", "_sku": "CAM-B"},
	}

	product := mapper.Map(variation, rows, paths, metas, images)

	if product.ProductName != "Camera" {
		t.Errorf("Variation should inherit parent name, got '%s'", product.ProductName)
	}
	if product.CategoryName != "Electronics > Cameras" {
		t.Errorf("Variation should inherit parent category, got '%s'", product.CategoryName)
	}
	if product.Description != "A fine camera" {
		t.Errorf("Variation should inherit parent description, got '%s'", product.Description)
	}
	if product.ImageURL != "https://shop.example.com/images/camera.jpg" {
		t.Errorf("Variation should use parent image, got '%s'", product.ImageURL)
	}

	// Own meta stays the variation's
	if product.Price != "110" {
		t.Errorf("Variation should keep its own price, got '%s'", product.Price)
	}
	if product.Sku != "CAM-B" {
		t.Errorf("Variation should keep its own SKU, got '%s'", product.Sku)
	}

	// The link still points at the variation's own slug
	if product.ProductURL != "https://shop.example.com/?product=camera-black" {
		t.Errorf("Unexpected product URL: '%s'", product.ProductURL)
	}
}

func TestMapDescriptionFallback(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	row := database.ProductRow{
		ID: 1, Title: "Camera", Slug: "camera",
		Excerpt: "", Content: "Full body text",
	}
	rows := map[int64]database.ProductRow{1: row}

	product := mapper.Map(row, rows, nil, nil, nil)
	if product.Description != "Full body text" {
		t.Errorf("Expected content fallback, got '%s'", product.Description)
	}

	row.Excerpt = "Short excerpt"
	rows[1] = row
	product = mapper.Map(row, rows, nil, nil, nil)
	if product.Description != "Short excerpt" {
		t.Errorf("Expected excerpt to win, got '%s'", product.Description)
	}
}

func TestMapConstantFields(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	row := database.ProductRow{ID: 1, Title: "Camera", Slug: "camera"}
	rows := map[int64]database.ProductRow{1: row}

	product := mapper.Map(row, rows, nil, nil, nil)

	if product.ProductState != "New" {
		t.Errorf("Expected product state 'New', got '%s'", product.ProductState)
	}

	for field, value := range map[string]string{
		"shipping cost":    product.ShippingCost,
		"manufacturer SKU": product.ManufacturerSku,
		"manufacturer":     product.Manufacturer,
		"EAN":              product.Ean,
		"delivery time":    product.DeliveryTime,
		"retailer message": product.RetailerMessage,
	} {
		if value != "" {
			t.Errorf("Expected empty %s, got '%s'", field, value)
		}
	}
}

func TestMapDescriptionSanitized(t *testing.T) {
	mapper := NewMapper("https://shop.example.com")
	row := database.ProductRow{
		ID: 1, Title: "Camera", Slug: "camera",
		Excerpt: "<p>A <strong>fine</strong> camera &amp; more</p>",
	}
	rows := map[int64]database.ProductRow{1: row}

	product := mapper.Map(row, rows, nil, nil, nil)
	if product.Description != "A fine camera & more" {
		t.Errorf("Expected sanitized description, got '%s'", product.Description)
	}
}
