package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// XMLReadyString reduces shop-entered markup to plain text safe for an XML
// text node: HTML tags are dropped, entities decoded, runes outside the XML
// 1.0 character range removed and whitespace collapsed.
func XMLReadyString(s string) string {
	if s == "" {
		return ""
	}

	text := s
	if strings.ContainsAny(s, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			text = doc.Text()
		}
	}

	text, _, err := transform.String(runes.Remove(runes.Predicate(isInvalidXMLRune)), text)
	if err != nil {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// isInvalidXMLRune reports runes outside the XML 1.0 Char production
func isInvalidXMLRune(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return false
	case r >= 0x20 && r <= 0xD7FF:
		return false
	case r >= 0xE000 && r <= 0xFFFD:
		return false
	case r >= 0x10000 && r <= 0x10FFFF:
		return false
	}
	return true
}
