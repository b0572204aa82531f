// Package dom holds small helpers over golang.org/x/net/html node trees:
// lookup by id/class/tag, ancestor resolution, class and inline-style
// manipulation. The page enhancers treat a parsed document the way a
// browser script treats the live DOM.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses a full HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString parses a full HTML document from a string.
func ParseString(s string) (*html.Node, error) {
	return html.Parse(strings.NewReader(s))
}

// Render serializes the tree back to HTML.
func Render(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Find returns the first element under root (in document order, root
// included) matching pred, or nil.
func Find(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && pred(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := Find(c, pred); n != nil {
			return n
		}
	}
	return nil
}

// FindAll returns every element under root matching pred, in document order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByID returns the element with the given id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	return Find(root, func(n *html.Node) bool { return Attr(n, "id") == id })
}

// ByClass returns the first element carrying the given class, or nil.
func ByClass(root *html.Node, class string) *html.Node {
	return Find(root, func(n *html.Node) bool { return HasClass(n, class) })
}

// AllByClass returns every element carrying the given class.
func AllByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool { return HasClass(n, class) })
}

// ByTag returns the first element with the given tag name, or nil.
func ByTag(root *html.Node, tag string) *html.Node {
	return Find(root, func(n *html.Node) bool { return n.Data == tag })
}

// Closest walks from n up through its ancestors (n included) and returns
// the first element matching pred, or nil. It is the ancestor counterpart
// of a delegated event handler's target resolution.
func Closest(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && pred(n) {
			return n
		}
	}
	return nil
}

// ClosestClass returns the nearest ancestor of n (n included) carrying the
// given class, or nil.
func ClosestClass(n *html.Node, class string) *html.Node {
	return Closest(n, func(e *html.Node) bool { return HasClass(e, class) })
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether n carries the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds the class if not already present.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	existing := Attr(n, "class")
	if existing == "" {
		SetAttr(n, "class", class)
		return
	}
	SetAttr(n, "class", existing+" "+class)
}

// RemoveClass removes the class if present.
func RemoveClass(n *html.Node, class string) {
	fields := strings.Fields(Attr(n, "class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != class {
			kept = append(kept, c)
		}
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ToggleClass flips the class and reports whether it is present afterwards.
func ToggleClass(n *html.Node, class string) bool {
	if HasClass(n, class) {
		RemoveClass(n, class)
		return false
	}
	AddClass(n, class)
	return true
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return sb.String()
}

// SetText replaces n's children with a single text node.
func SetText(n *html.Node, s string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Style returns the value of one inline style property, or "".
func Style(n *html.Node, prop string) string {
	for _, decl := range strings.Split(Attr(n, "style"), ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(k) == prop {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// SetStyle sets or replaces one inline style property, keeping the rest of
// the style attribute intact.
func SetStyle(n *html.Node, prop, val string) {
	var decls []string
	for _, decl := range strings.Split(Attr(n, "style"), ";") {
		k, _, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(k) == prop || strings.TrimSpace(decl) == "" {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	decls = append(decls, prop+": "+val)
	SetAttr(n, "style", strings.Join(decls, "; "))
}

// NewElement creates a detached element node. Attrs come in key/value
// pairs.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		SetAttr(n, attrs[i], attrs[i+1])
	}
	return n
}

// InsertBefore places child immediately before ref under ref's parent.
func InsertBefore(ref, child *html.Node) {
	if ref.Parent != nil {
		ref.Parent.InsertBefore(child, ref)
	}
}

// InsertAfter places child immediately after ref under ref's parent.
func InsertAfter(ref, child *html.Node) {
	if ref.Parent == nil {
		return
	}
	if ref.NextSibling != nil {
		ref.Parent.InsertBefore(child, ref.NextSibling)
		return
	}
	ref.Parent.AppendChild(child)
}

// Body returns the document's body element, or nil.
func Body(doc *html.Node) *html.Node {
	return ByTag(doc, "body")
}
