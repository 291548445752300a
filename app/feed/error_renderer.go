package feed

import (
	"bytes"
	"fmt"
	"sort"
)

// ErrorRenderer turns the validation result into the human-readable report
// served in test mode
type ErrorRenderer struct{}

// NewErrorRenderer creates a new error report renderer
func NewErrorRenderer() *ErrorRenderer {
	return &ErrorRenderer{}
}

// Run renders one section per offending product with its accumulated error
// messages. Sections are sorted by product identifier so the report is
// stable across builds.
func (r *ErrorRenderer) Run(errors map[string][]ProductError, productCount int) string {
	var buf bytes.Buffer

	buf.WriteString("Product feed validation report\n")
	buf.WriteString("==============================\n")
	fmt.Fprintf(&buf, "Products checked: %d\n", productCount)
	fmt.Fprintf(&buf, "Products with errors: %d\n", len(errors))

	if len(errors) == 0 {
		buf.WriteString("\nAll products passed validation.\n")
		return buf.String()
	}

	identifiers := make([]string, 0, len(errors))
	for identifier := range errors {
		identifiers = append(identifiers, identifier)
	}
	sort.Strings(identifiers)

	for _, identifier := range identifiers {
		fmt.Fprintf(&buf, "\n%s\n", identifier)
		for _, e := range errors[identifier] {
			fmt.Fprintf(&buf, "  - %s: %s\n", e.Field, e.Message)
		}
	}

	return buf.String()
}
