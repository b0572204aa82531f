package page

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

// fallbackTitle keeps the title-uniqueness invariant when a card exposes no
// readable title.
const fallbackTitle = "Product"

var nonPrice = regexp.MustCompile(`[^0-9.]`)

// ParsePrice turns a displayed price string into a number by stripping
// everything that is not a digit or decimal point. Text with no usable
// number ("Free", "") parses to 0.
func ParsePrice(text string) float64 {
	cleaned := nonPrice.ReplaceAllString(text, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// ExtractLine reads a cart line from a rendered product card: title text,
// displayed price, first image source.
func ExtractLine(card *html.Node) (title string, price float64, image string) {
	title = fallbackTitle
	if el := dom.ByClass(card, "product-title"); el != nil {
		if t := strings.TrimSpace(dom.Text(el)); t != "" {
			title = t
		}
	}
	if el := dom.ByClass(card, "product-price"); el != nil {
		price = ParsePrice(dom.Text(el))
	}
	if img := dom.ByTag(card, "img"); img != nil {
		image = dom.Attr(img, "src")
	}
	return title, price, image
}

// Click is the document-level delegated handler for add-to-cart. The target
// may be any node inside the control; the nearest enclosing button and
// product card are resolved from it. Clicks that resolve to neither are
// ignored.
func (e *Enhancer) Click(target *html.Node) {
	btn := dom.ClosestClass(target, "add-to-cart-btn")
	if btn == nil {
		return
	}
	card := dom.ClosestClass(btn, "product-card")
	if card == nil {
		return
	}

	title, price, image := ExtractLine(card)
	e.cart.Add(title, price, image)
	if e.toast != nil {
		e.toast.Notify(title + " added to cart")
	}
}
