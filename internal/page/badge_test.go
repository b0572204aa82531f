package page

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/cart/domain"
	"github.com/petalwhisper/storefront/internal/dom"
)

const navDoc = `<html><body>
<nav><ul>
  <li><a href="/products">Shop</a></li>
  <li><a href="/cart">Cart</a></li>
</ul></nav>
</body></html>`

func parseDoc(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := dom.ParseString(s)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func TestBadgeRender(t *testing.T) {
	t.Run("creates badge on the cart anchor", func(t *testing.T) {
		doc := parseDoc(t, navDoc)
		NewBadge(doc).Render(domain.Cart{{Title: "Rose", Quantity: 3}})

		el := dom.ByClass(doc, "cart-badge")
		if el == nil {
			t.Fatal("badge not created")
		}
		if dom.Text(el) != "3" {
			t.Fatalf("expected text 3, got %q", dom.Text(el))
		}
		anchor := el.Parent
		if anchor == nil || anchor.Data != "a" || dom.Attr(anchor, "href") != "/cart" {
			t.Fatal("badge attached to the wrong element")
		}
	})

	t.Run("render is idempotent", func(t *testing.T) {
		doc := parseDoc(t, navDoc)
		b := NewBadge(doc)
		cart := domain.Cart{{Title: "Rose", Quantity: 2}}
		b.Render(cart)
		b.Render(cart)

		badges := dom.AllByClass(doc, "cart-badge")
		if len(badges) != 1 {
			t.Fatalf("expected 1 badge, got %d", len(badges))
		}
		if dom.Text(badges[0]) != "2" {
			t.Fatalf("expected text 2, got %q", dom.Text(badges[0]))
		}
	})

	t.Run("zero total hides but keeps the badge", func(t *testing.T) {
		doc := parseDoc(t, navDoc)
		b := NewBadge(doc)
		b.Render(domain.Cart{{Title: "Rose", Quantity: 1}})
		b.Render(domain.Cart{})

		el := dom.ByClass(doc, "cart-badge")
		if el == nil {
			t.Fatal("badge removed instead of hidden")
		}
		if dom.Style(el, "display") != "none" {
			t.Fatalf("expected display none, got %q", dom.Style(el, "display"))
		}
		if dom.Text(el) != "" {
			t.Fatalf("expected empty text, got %q", dom.Text(el))
		}
	})

	t.Run("missing quantity counts as zero", func(t *testing.T) {
		doc := parseDoc(t, navDoc)
		NewBadge(doc).Render(domain.Cart{{Title: "Rose"}, {Title: "Lily", Quantity: 2}})
		if got := dom.Text(dom.ByClass(doc, "cart-badge")); got != "2" {
			t.Fatalf("expected 2, got %q", got)
		}
	})

	t.Run("no cart anchor -> no-op", func(t *testing.T) {
		doc := parseDoc(t, `<html><body><nav><ul><li><a href="/about">About</a></li></ul></nav></body></html>`)
		NewBadge(doc).Render(domain.Cart{{Title: "Rose", Quantity: 1}})
		if dom.ByClass(doc, "cart-badge") != nil {
			t.Fatal("badge should not be created without a cart anchor")
		}
	})
}
