package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const sample = `<html><body>
<nav><ul><li><a href="/cart.html" id="cart-link">Cart</a></li></ul></nav>
<div class="product-card featured">
  <h3 class="product-title"> Rose Bouquet </h3>
  <span class="product-price">R 149.99</span>
  <button class="add-to-cart-btn"><i class="fas fa-plus"></i></button>
</div>
</body></html>`

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := ParseString(s)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func TestLookup(t *testing.T) {
	doc := mustParse(t, sample)

	t.Run("ByID", func(t *testing.T) {
		if n := ByID(doc, "cart-link"); n == nil || n.Data != "a" {
			t.Fatalf("ByID failed: %v", n)
		}
		if ByID(doc, "missing") != nil {
			t.Fatal("expected nil for missing id")
		}
	})

	t.Run("ByClass matches one of several classes", func(t *testing.T) {
		if n := ByClass(doc, "featured"); n == nil || n.Data != "div" {
			t.Fatalf("ByClass failed: %v", n)
		}
	})

	t.Run("Closest walks ancestors including self", func(t *testing.T) {
		icon := ByClass(doc, "fas")
		card := ClosestClass(icon, "product-card")
		if card == nil || card.Data != "div" {
			t.Fatalf("ClosestClass failed: %v", card)
		}
		btn := ByClass(doc, "add-to-cart-btn")
		if ClosestClass(btn, "add-to-cart-btn") != btn {
			t.Fatal("Closest should include the starting node")
		}
		if ClosestClass(icon, "nope") != nil {
			t.Fatal("expected nil for absent ancestor class")
		}
	})
}

func TestClasses(t *testing.T) {
	doc := mustParse(t, `<div class="a b"></div>`)
	div := ByTag(doc, "div")

	if !HasClass(div, "a") || !HasClass(div, "b") || HasClass(div, "ab") {
		t.Fatal("HasClass misbehaves")
	}

	AddClass(div, "a")
	if Attr(div, "class") != "a b" {
		t.Fatalf("AddClass duplicated: %q", Attr(div, "class"))
	}

	RemoveClass(div, "a")
	if HasClass(div, "a") || !HasClass(div, "b") {
		t.Fatalf("RemoveClass failed: %q", Attr(div, "class"))
	}

	if on := ToggleClass(div, "c"); !on || !HasClass(div, "c") {
		t.Fatal("ToggleClass on failed")
	}
	if on := ToggleClass(div, "c"); on || HasClass(div, "c") {
		t.Fatal("ToggleClass off failed")
	}
}

func TestTextAndStyle(t *testing.T) {
	doc := mustParse(t, sample)

	t.Run("Text concatenates descendants", func(t *testing.T) {
		card := ByClass(doc, "product-card")
		if got := Text(card); !strings.Contains(got, "Rose Bouquet") {
			t.Fatalf("Text missing title: %q", got)
		}
	})

	t.Run("SetText replaces children", func(t *testing.T) {
		a := ByID(doc, "cart-link")
		SetText(a, "Basket")
		if Text(a) != "Basket" {
			t.Fatalf("SetText failed: %q", Text(a))
		}
	})

	t.Run("SetStyle keeps unrelated properties", func(t *testing.T) {
		div := ByClass(doc, "product-card")
		SetStyle(div, "display", "none")
		SetStyle(div, "opacity", "0.5")
		SetStyle(div, "display", "block")
		if Style(div, "display") != "block" || Style(div, "opacity") != "0.5" {
			t.Fatalf("SetStyle failed: %q", Attr(div, "style"))
		}
	})
}

func TestInsert(t *testing.T) {
	doc := mustParse(t, `<div><span id="ref"></span></div>`)
	ref := ByID(doc, "ref")

	before := NewElement("em", "id", "before")
	InsertBefore(ref, before)
	after := NewElement("strong", "id", "after")
	InsertAfter(ref, after)

	if ref.PrevSibling != before || ref.NextSibling != after {
		t.Fatal("insertion order wrong")
	}
}
