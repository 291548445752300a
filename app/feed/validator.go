package feed

import (
	"fmt"
	"regexp"
)

// Validator checks mapped products against marketplace field rules. Errors
// are collected per product and never abort or filter the feed build.
type Validator interface {
	Validate(products []Product) map[string][]ProductError
}

// NewValidator selects the validator for the configured product source
// integration
func NewValidator(integration string) Validator {
	switch integration {
	case "woocommerce":
		return NewWooCommerceValidator()
	default:
		return NewBaseValidator()
	}
}

var (
	priceFormat = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)
	eanFormat   = regexp.MustCompile(`^([0-9]{8}|[0-9]{12,13})$`)
	urlFormat   = regexp.MustCompile(`^https?://`)
)

// fieldRule is one marketplace field check. It returns a message when the
// product violates the rule.
type fieldRule struct {
	field string
	check func(p Product) string
}

// BaseValidator runs the universally required marketplace field rules
type BaseValidator struct {
	rules []fieldRule
}

var _ Validator = (*BaseValidator)(nil)

// NewBaseValidator creates a validator with the marketplace-wide field rules
func NewBaseValidator() *BaseValidator {
	return &BaseValidator{rules: []fieldRule{
		{"category", func(p Product) string {
			if p.CategoryName == "" {
				return "Category name is required."
			}
			return ""
		}},
		{"product name", func(p Product) string {
			if p.ProductName == "" {
				return "Product name is required."
			}
			return ""
		}},
		{"SKU", func(p Product) string {
			if p.Sku == "" {
				return "SKU is required."
			}
			return ""
		}},
		{"price", func(p Product) string {
			if p.Price == "" {
				return "Price is required."
			}
			if !priceFormat.MatchString(p.Price) {
				return fmt.Sprintf("Price '%s' is not a valid amount.", p.Price)
			}
			return ""
		}},
		{"product URL", func(p Product) string {
			if p.ProductURL == "" {
				return "Product URL is required."
			}
			if !urlFormat.MatchString(p.ProductURL) {
				return fmt.Sprintf("Product URL '%s' must start with http:// or https://.", p.ProductURL)
			}
			return ""
		}},
		{"stock status", func(p Product) string {
			switch p.StockStatus {
			case "", "In Stock", "Out of Stock", "Preorder":
				return ""
			}
			return fmt.Sprintf("Stock status '%s' is not recognized.", p.StockStatus)
		}},
		{"product state", func(p Product) string {
			switch p.ProductState {
			case "", "New", "Used", "Refurbished", "Open Box":
				return ""
			}
			return fmt.Sprintf("Product state '%s' is not recognized.", p.ProductState)
		}},
		{"retailer message", func(p Product) string {
			if len(p.RetailerMessage) > 125 {
				return "Retailer message exceeds 125 characters."
			}
			return ""
		}},
	}}
}

// Validate runs every field rule against every product. Rules do not short
// circuit: a single product can accumulate multiple errors.
func (v *BaseValidator) Validate(products []Product) map[string][]ProductError {
	errors := make(map[string][]ProductError)
	for _, product := range products {
		for _, e := range v.validateProduct(product) {
			errors[e.Identifier] = append(errors[e.Identifier], e)
		}
	}
	return errors
}

func (v *BaseValidator) validateProduct(product Product) []ProductError {
	var errors []ProductError
	for _, rule := range v.rules {
		if message := rule.check(product); message != "" {
			errors = append(errors, ProductError{
				Identifier: product.Identifier(),
				Field:      rule.field,
				Message:    message,
			})
		}
	}
	return errors
}

// WooCommerceValidator adds the WooCommerce-specific collection rules on top
// of the base field rules: EAN format and uniqueness, SKU uniqueness.
type WooCommerceValidator struct {
	*BaseValidator
}

var _ Validator = (*WooCommerceValidator)(nil)

// NewWooCommerceValidator creates the validator used for WooCommerce shops
func NewWooCommerceValidator() *WooCommerceValidator {
	return &WooCommerceValidator{BaseValidator: NewBaseValidator()}
}

// Validate runs the base field rules plus the collection-wide EAN and SKU
// checks
func (v *WooCommerceValidator) Validate(products []Product) map[string][]ProductError {
	errors := v.BaseValidator.Validate(products)

	skuCount := make(map[string]int, len(products))
	eanCount := make(map[string]int)
	for _, product := range products {
		if product.Sku != "" {
			skuCount[product.Sku]++
		}
		if product.Ean != "" {
			eanCount[product.Ean]++
		}
	}

	for _, product := range products {
		for _, e := range v.validateAgainstCollection(product, skuCount, eanCount) {
			errors[e.Identifier] = append(errors[e.Identifier], e)
		}
	}

	return errors
}

func (v *WooCommerceValidator) validateAgainstCollection(product Product,
	skuCount, eanCount map[string]int) []ProductError {
	var errors []ProductError

	if product.Ean != "" {
		if !eanFormat.MatchString(product.Ean) {
			errors = append(errors, ProductError{
				Identifier: product.Identifier(),
				Field:      "EAN",
				Message:    fmt.Sprintf("EAN '%s' is not a valid EAN or UPC code.", product.Ean),
			})
		}
		if eanCount[product.Ean] > 1 {
			errors = append(errors, ProductError{
				Identifier: product.Identifier(),
				Field:      "EAN",
				Message:    fmt.Sprintf("EAN '%s' is shared by %d products.", product.Ean, eanCount[product.Ean]),
			})
		}
	}

	if product.Sku != "" && skuCount[product.Sku] > 1 {
		errors = append(errors, ProductError{
			Identifier: product.Identifier(),
			Field:      "SKU",
			Message:    fmt.Sprintf("SKU '%s' is shared by %d products.", product.Sku, skuCount[product.Sku]),
		})
	}

	return errors
}
