package page

import (
	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

// EnsureLightbox creates the shared image overlay once and returns it. A
// document without a body gets none.
func EnsureLightbox(doc *html.Node) *html.Node {
	if lb := dom.ByID(doc, "lightbox"); lb != nil {
		return lb
	}
	body := dom.Body(doc)
	if body == nil {
		return nil
	}

	lb := dom.NewElement("div", "id", "lightbox")
	dom.SetStyle(lb, "display", "none")
	lb.AppendChild(dom.NewElement("img", "id", "lightbox-image"))
	body.AppendChild(lb)
	return lb
}

// OpenLightbox shows the given image in the overlay.
func OpenLightbox(doc *html.Node, img *html.Node) {
	lb := EnsureLightbox(doc)
	if lb == nil || img == nil {
		return
	}
	target := dom.ByID(lb, "lightbox-image")
	if target == nil {
		return
	}
	dom.SetAttr(target, "src", dom.Attr(img, "src"))
	dom.SetAttr(target, "alt", dom.Attr(img, "alt"))
	dom.SetStyle(lb, "display", "flex")
}

// CloseLightbox hides the overlay.
func CloseLightbox(doc *html.Node) {
	if lb := dom.ByID(doc, "lightbox"); lb != nil {
		dom.SetStyle(lb, "display", "none")
	}
}
