package page

import (
	"testing"

	"github.com/petalwhisper/storefront/internal/cart/app"
	"github.com/petalwhisper/storefront/internal/cart/infra/localstore"
	"github.com/petalwhisper/storefront/internal/dom"
)

const storefrontDoc = `<html><body>
<nav><ul><li><a href="/cart">Cart</a></li></ul></nav>
<div class="product-grid">
  <div class="product-card">
    <h3 class="product-title">Lavender Soap</h3>
    <p class="product-price">R59.00</p>
    <img src="/img/soap.png" alt="Lavender Soap">
    <button class="add-to-cart-btn"><i class="btn-icon"></i>Add to cart</button>
  </div>
  <div class="product-card">
    <h3 class="product-title">Rose Bouquet</h3>
    <p class="product-price">R 149.99</p>
    <img src="/img/rose.png" alt="Rose Bouquet">
    <button class="add-to-cart-btn">Add to cart</button>
  </div>
</div>
<button id="outside" class="add-to-cart-btn">stray</button>
</body></html>`

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R 149.99", 149.99},
		{"R59.00", 59},
		{"Free", 0},
		{"", 0},
		{"  1 250.50 ZAR", 1250.50},
		{"R1.2.3", 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParsePrice(tc.in); got != tc.want {
				t.Fatalf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractLine(t *testing.T) {
	t.Run("full card", func(t *testing.T) {
		doc := parseDoc(t, storefrontDoc)
		card := dom.AllByClass(doc, "product-card")[1]
		title, price, image := ExtractLine(card)
		if title != "Rose Bouquet" || price != 149.99 || image != "/img/rose.png" {
			t.Fatalf("got (%q, %v, %q)", title, price, image)
		}
	})

	t.Run("bare card falls back", func(t *testing.T) {
		doc := parseDoc(t, `<div class="product-card"><button class="add-to-cart-btn"></button></div>`)
		card := dom.ByClass(doc, "product-card")
		title, price, image := ExtractLine(card)
		if title != "Product" || price != 0 || image != "" {
			t.Fatalf("got (%q, %v, %q)", title, price, image)
		}
	})
}

// newTestEnhancer wires a full page with an in-memory store, the way the
// server wires a real one.
func newTestEnhancer(t *testing.T, markup string, store *localstore.Memory) (*Enhancer, *app.Repository, *Toaster) {
	t.Helper()
	doc := parseDoc(t, markup)
	badge := NewBadge(doc)
	repo := app.NewRepository(store, badge, nil)
	toast := NewToaster(doc)
	enh := NewEnhancer(doc, repo, toast, badge, nil)
	enh.Apply()
	return enh, repo, toast
}

func TestClick(t *testing.T) {
	t.Run("click inside the control resolves the card", func(t *testing.T) {
		store := localstore.NewMemory()
		enh, repo, toast := newTestEnhancer(t, storefrontDoc, store)

		icon := dom.ByClass(enh.doc, "btn-icon")
		enh.Click(icon)

		cart := repo.Load()
		if len(cart) != 1 || cart[0].Title != "Lavender Soap" || cart[0].Quantity != 1 {
			t.Fatalf("unexpected cart: %+v", cart)
		}
		if cart[0].Price != 59 || cart[0].Image != "/img/soap.png" {
			t.Fatalf("unexpected line: %+v", cart[0])
		}
		if got := toast.Message(); got != "Lavender Soap added to cart" {
			t.Fatalf("unexpected toast: %q", got)
		}
	})

	t.Run("control without an enclosing card is ignored", func(t *testing.T) {
		store := localstore.NewMemory()
		enh, repo, _ := newTestEnhancer(t, storefrontDoc, store)

		enh.Click(dom.ByID(enh.doc, "outside"))
		if got := repo.Load(); len(got) != 0 {
			t.Fatalf("stray click changed the cart: %+v", got)
		}
	})

	t.Run("click outside any control is ignored", func(t *testing.T) {
		store := localstore.NewMemory()
		enh, repo, _ := newTestEnhancer(t, storefrontDoc, store)

		enh.Click(dom.ByClass(enh.doc, "product-title"))
		if got := repo.Load(); len(got) != 0 {
			t.Fatalf("unrelated click changed the cart: %+v", got)
		}
	})
}

func TestAddToCartEndToEnd(t *testing.T) {
	store := localstore.NewMemory()
	enh, repo, _ := newTestEnhancer(t, storefrontDoc, store)

	buttons := dom.AllByClass(enh.doc, "add-to-cart-btn")
	soapBtn := buttons[0]

	enh.Click(soapBtn)

	cart := repo.Load()
	if len(cart) != 1 {
		t.Fatalf("expected 1 line, got %+v", cart)
	}
	line := cart[0]
	if line.Title != "Lavender Soap" || line.Price != 59 || line.Image != "/img/soap.png" || line.Quantity != 1 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if got := dom.Text(dom.ByClass(enh.doc, "cart-badge")); got != "1" {
		t.Fatalf("expected badge 1, got %q", got)
	}

	enh.Click(soapBtn)

	cart = repo.Load()
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", cart)
	}
	if got := dom.Text(dom.ByClass(enh.doc, "cart-badge")); got != "2" {
		t.Fatalf("expected badge 2, got %q", got)
	}
	badges := dom.AllByClass(enh.doc, "cart-badge")
	if len(badges) != 1 {
		t.Fatalf("expected a single badge element, got %d", len(badges))
	}
}
