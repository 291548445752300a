package feed

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

var feedElements = []string{
	"SKU", "ProductName", "CategoryName", "Price", "ShippingCost",
	"ProductURL", "ManufacturerSKU", "Manufacturer", "EAN", "Description",
	"ImageURL", "StockStatus", "DeliveryTime", "RetailerMessage", "ProductState",
}

func TestGenerateFeed(t *testing.T) {
	generator := NewGenerator()

	products := []Product{
		{
			Sku:          "ABC-1",
			ProductName:  "Camera",
			CategoryName: "Electronics > Cameras",
			Price:        "1333.37",
			ProductURL:   "https://shop.example.com/?product=camera",
			Description:  "A fine camera",
			ImageURL:     "https://shop.example.com/images/camera.jpg",
			StockStatus:  "In Stock",
			ProductState: "New",
		},
	}

	document, err := generator.Run(products)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(document, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("Feed should contain the XML declaration")
	}
	if !strings.Contains(document, "<products>") || !strings.Contains(document, "</products>") {
		t.Error("Feed should contain the products wrapper")
	}
	if !strings.Contains(document, "<SKU>ABC-1</SKU>") {
		t.Error("Feed should contain the SKU")
	}
	if !strings.Contains(document, "<ProductName>Camera</ProductName>") {
		t.Error("Feed should contain the product name")
	}
	if !strings.Contains(document, "<CategoryName>Electronics &gt; Cameras</CategoryName>") {
		t.Error("Feed should contain the escaped category breadcrumb")
	}
	if !strings.Contains(document, "<Price>1333.37</Price>") {
		t.Error("Feed should contain the price")
	}
	if !strings.Contains(document, "<StockStatus>In Stock</StockStatus>") {
		t.Error("Feed should contain the stock status")
	}

	// Fields with no data still render as empty elements
	if !strings.Contains(document, "<Manufacturer></Manufacturer>") {
		t.Error("Empty manufacturer should render as an empty element")
	}
	if !strings.Contains(document, "<EAN></EAN>") {
		t.Error("Empty EAN should render as an empty element")
	}
}

func TestGenerateFeedAllFieldsPresent(t *testing.T) {
	generator := NewGenerator()

	blank, err := generator.Run([]Product{{}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	populated, err := generator.Run([]Product{{
		Sku: "ABC-1", ProductName: "Camera", CategoryName: "Electronics",
		Price: "100", ShippingCost: "5", ProductURL: "https://shop.example.com/?product=camera",
		ManufacturerSku: "EOS-1", Manufacturer: "Canon", Ean: "8714574585567",
		Description: "A camera", ImageURL: "https://shop.example.com/c.jpg",
		StockStatus: "In Stock", DeliveryTime: "5-7 days",
		RetailerMessage: "Free shipping", ProductState: "New",
	}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, element := range feedElements {
		open := "<" + element + ">"
		if strings.Count(blank, open) != 1 {
			t.Errorf("Blank product should render exactly one %s element", element)
		}
		if strings.Count(populated, open) != 1 {
			t.Errorf("Populated product should render exactly one %s element", element)
		}
	}

	// Both documents are well-formed XML
	for _, document := range []string{blank, populated} {
		decoder := xml.NewDecoder(strings.NewReader(document))
		for {
			_, err := decoder.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("Feed should be well-formed XML: %v", err)
				break
			}
		}
	}
}

func TestGenerateFeedEscaping(t *testing.T) {
	generator := NewGenerator()

	document, err := generator.Run([]Product{{
		ProductName: `Cables & "Adapters" <new>`,
	}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(document, "Cables &amp; &#34;Adapters&#34; &lt;new&gt;") {
		t.Errorf("Product name should be XML-escaped, got:\n%s", document)
	}
}

func TestGenerateEmptyFeed(t *testing.T) {
	generator := NewGenerator()

	document, err := generator.Run(nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if strings.Contains(document, "<product>") {
		t.Error("Empty feed should contain no product elements")
	}
	if !strings.Contains(document, "<products>") {
		t.Error("Empty feed should still contain the wrapper")
	}
}
