package page

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

// FilterProducts shows only the product cards whose text content contains
// the query, case-insensitively. An empty query shows everything. Cards are
// hidden rather than removed, so a later broader query brings them back.
func FilterProducts(doc *html.Node, query string) {
	grid := dom.ByClass(doc, "product-grid")
	if grid == nil {
		return
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for _, card := range dom.AllByClass(grid, "product-card") {
		if q == "" || strings.Contains(strings.ToLower(dom.Text(card)), q) {
			dom.SetStyle(card, "display", "block")
		} else {
			dom.SetStyle(card, "display", "none")
		}
	}
}
