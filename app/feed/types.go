package feed

// Product is the canonical feed record in the shape Pricerunner expects.
// Every field is a string and defaults to empty: the feed schema treats a
// field as required-but-blank rather than omitted, so no field is ever
// absent from the rendered document.
type Product struct {
	Sku             string
	ProductName     string
	CategoryName    string
	Price           string
	ShippingCost    string
	ProductURL      string
	ManufacturerSku string
	Manufacturer    string
	Ean             string
	Description     string
	ImageURL        string
	StockStatus     string
	DeliveryTime    string
	RetailerMessage string
	ProductState    string
}

// Identifier returns the label validation errors are grouped under
func (p Product) Identifier() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	return "SKU " + p.Sku
}

// ProductError is a single field rule failure for one product. Errors are
// advisory: they are surfaced through the test report and never remove a
// product from the live feed.
type ProductError struct {
	Identifier string
	Field      string
	Message    string
}
