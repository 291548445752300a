package feed

import (
	"bytes"
	"encoding/xml"
)

// Generator serializes the mapped product set into the Pricerunner XML feed
// format
type Generator struct{}

// NewGenerator creates a new feed generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the complete feed document. Every product element carries
// every schema field in fixed order; an empty field renders as an empty
// element, never an omitted one.
func (g *Generator) Run(products []Product) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n<products>\n")

	for _, product := range products {
		g.writeProduct(&buf, product)
	}

	buf.WriteString("</products>\n")

	return buf.String(), nil
}

func (g *Generator) writeProduct(buf *bytes.Buffer, product Product) {
	buf.WriteString("  <product>\n")

	g.writeElement(buf, "SKU", product.Sku)
	g.writeElement(buf, "ProductName", product.ProductName)
	g.writeElement(buf, "CategoryName", product.CategoryName)
	g.writeElement(buf, "Price", product.Price)
	g.writeElement(buf, "ShippingCost", product.ShippingCost)
	g.writeElement(buf, "ProductURL", product.ProductURL)
	g.writeElement(buf, "ManufacturerSKU", product.ManufacturerSku)
	g.writeElement(buf, "Manufacturer", product.Manufacturer)
	g.writeElement(buf, "EAN", product.Ean)
	g.writeElement(buf, "Description", product.Description)
	g.writeElement(buf, "ImageURL", product.ImageURL)
	g.writeElement(buf, "StockStatus", product.StockStatus)
	g.writeElement(buf, "DeliveryTime", product.DeliveryTime)
	g.writeElement(buf, "RetailerMessage", product.RetailerMessage)
	g.writeElement(buf, "ProductState", product.ProductState)

	buf.WriteString("  </product>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string) {
	buf.WriteString("    <")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
