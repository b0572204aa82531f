package page

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

// EnsureMenuToggle inserts the mobile menu button ahead of the nav once and
// starts the menu closed. Documents without a nav list are left alone.
func EnsureMenuToggle(doc *html.Node) {
	nav := dom.ByTag(doc, "nav")
	if nav == nil {
		return
	}
	ul := dom.ByTag(nav, "ul")
	if ul == nil {
		return
	}

	btn := dom.ByClass(doc, "menu-toggle")
	if btn == nil {
		btn = dom.NewElement("button", "class", "menu-toggle", "type", "button")
		dom.SetText(btn, "Menu")
		dom.InsertBefore(nav, btn)
	}
	dom.SetAttr(btn, "aria-expanded", "false")
	dom.AddClass(ul, "nav-closed")
}

// ToggleMenu flips the nav open/closed and reports whether it is open
// afterwards.
func ToggleMenu(doc *html.Node) bool {
	nav := dom.ByTag(doc, "nav")
	if nav == nil {
		return false
	}
	ul := dom.ByTag(nav, "ul")
	if ul == nil {
		return false
	}

	closed := dom.ToggleClass(ul, "nav-closed")
	if btn := dom.ByClass(doc, "menu-toggle"); btn != nil {
		dom.SetAttr(btn, "aria-expanded", strconv.FormatBool(!closed))
	}
	return !closed
}
