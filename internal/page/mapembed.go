package page

import (
	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

// Shop location rendered into the map container.
const (
	shopLat = "-26.2041"
	shopLng = "28.0473"
)

// InitMap marks the map container initialized and records the shop
// coordinates for the map widget to pick up. Repeat calls and documents
// without a container are no-ops.
func InitMap(doc *html.Node) {
	el := dom.ByID(doc, "leaflet-map")
	if el == nil || dom.Attr(el, "data-map-ready") == "true" {
		return
	}
	dom.SetAttr(el, "data-map-ready", "true")
	dom.SetAttr(el, "data-lat", shopLat)
	dom.SetAttr(el, "data-lng", shopLng)
}
