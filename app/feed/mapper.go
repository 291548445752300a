package feed

import (
	"strconv"

	"github.com/shopsync/pricerunner-feed/app/database"
)

// Mapper turns raw catalog rows into canonical feed products
type Mapper struct {
	shopURL string
}

// NewMapper creates a mapper building product links against the given shop
// base URL
func NewMapper(shopURL string) *Mapper {
	return &Mapper{shopURL: shopURL}
}

// Map resolves one catalog row into a feed product. For a variation row the
// identity fields (name, description, category, image) come from the parent
// row looked up in the id-indexed row table; price, stock and SKU meta stay
// the variation's own. The returned product has every field set, empty
// string where the catalog carries no data.
func (m *Mapper) Map(row database.ProductRow, rowsByID map[int64]database.ProductRow,
	categoryPaths map[int64]string, metas map[int64]map[string]string,
	imageURLs map[int64]string) Product {

	identity := row
	if row.ParentID != 0 {
		if parent, ok := rowsByID[row.ParentID]; ok {
			identity = parent
		}
	}

	product := Product{
		ProductState: "New",
	}

	meta := metas[row.ID]

	if sku := meta["_sku"]; sku != "" {
		product.Sku = sku
	} else {
		product.Sku = strconv.FormatInt(row.ID, 10)
	}

	if price, ok := meta["_price"]; ok {
		product.Price = price
	}

	if stock, ok := meta["_stock_status"]; ok {
		if stock == "instock" {
			product.StockStatus = "In Stock"
		} else {
			product.StockStatus = "Out of Stock"
		}
	}

	product.CategoryName = categoryPaths[identity.CategoryID]
	product.ProductName = identity.Title

	description := identity.Excerpt
	if description == "" {
		description = identity.Content
	}
	product.Description = XMLReadyString(description)

	// Variations never carry their own thumbnail
	product.ImageURL = imageURLs[identity.ID]

	product.ProductURL = m.shopURL + "/?product=" + row.Slug

	// The catalog has no source for these fields
	product.ShippingCost = ""
	product.ManufacturerSku = ""
	product.Manufacturer = ""
	product.Ean = ""
	product.DeliveryTime = ""
	product.RetailerMessage = ""

	return product
}
