// Package page applies the storefront's client-side behaviors to a parsed
// HTML document: cart badge, add-to-cart intake, toast notifications, form
// validation, menu toggle, product filtering, lightbox and map container
// setup. The document is a golang.org/x/net/html tree; every operation
// degrades to a no-op when its target markup is missing.
package page

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/cart/domain"
)

// CartService is the slice of the cart repository the page layer consumes.
type CartService interface {
	Load() domain.Cart
	Add(title string, price float64, image string) domain.Cart
}

// Enhancer wires the behaviors for one document.
type Enhancer struct {
	doc   *html.Node
	cart  CartService
	toast *Toaster
	badge *Badge
	log   *slog.Logger
}

func NewEnhancer(doc *html.Node, cart CartService, toast *Toaster, badge *Badge, log *slog.Logger) *Enhancer {
	if log == nil {
		log = slog.Default()
	}
	return &Enhancer{
		doc:   doc,
		cart:  cart,
		toast: toast,
		badge: badge,
		log:   log,
	}
}

// Apply runs the load-time setup: menu toggle, lightbox overlay, map
// container, and an initial badge render from the persisted cart.
func (e *Enhancer) Apply() {
	EnsureMenuToggle(e.doc)
	EnsureLightbox(e.doc)
	InitMap(e.doc)
	if e.badge != nil && e.cart != nil {
		e.badge.Render(e.cart.Load())
	}
}

// Filter narrows the product grid to cards matching the query.
func (e *Enhancer) Filter(query string) {
	FilterProducts(e.doc, query)
}
