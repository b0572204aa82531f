package page

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/cart/domain"
	"github.com/petalwhisper/storefront/internal/dom"
)

// Badge reflects the cart's total unit count into the navigation. The badge
// element is created once on the cart anchor and reused afterwards; with a
// total of zero it stays in the tree but hidden, so the layout never
// shifts.
type Badge struct {
	doc *html.Node
}

func NewBadge(doc *html.Node) *Badge {
	return &Badge{doc: doc}
}

// Render recomputes the total and updates the badge element. Without a
// badge element or a cart anchor to hang one on, it is a no-op.
func (b *Badge) Render(cart domain.Cart) {
	el := dom.ByClass(b.doc, "cart-badge")
	if el == nil {
		anchor := cartAnchor(b.doc)
		if anchor == nil {
			return
		}
		el = dom.NewElement("span", "class", "cart-badge")
		anchor.AppendChild(el)
	}

	if total := cart.Total(); total > 0 {
		dom.SetText(el, strconv.Itoa(total))
		dom.SetStyle(el, "display", "inline-block")
	} else {
		dom.SetText(el, "")
		dom.SetStyle(el, "display", "none")
	}
}

// cartAnchor finds the navigation link pointing at the cart page.
func cartAnchor(doc *html.Node) *html.Node {
	nav := dom.ByTag(doc, "nav")
	if nav == nil {
		return nil
	}
	return dom.Find(nav, func(n *html.Node) bool {
		return n.Data == "a" && strings.Contains(dom.Attr(n, "href"), "cart")
	})
}
