package page

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

// InvalidFormMessage is toasted when a submit fails validation.
const InvalidFormMessage = "Please correct the highlighted errors in the form."

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	phonePattern = regexp.MustCompile(`^(?:\+27|0)?[0-9]{9,10}$`)
)

// Field describes one validated input: the input element's id, whether a
// value is mandatory, and an optional pattern with its error message. An
// empty optional value always passes and clears any earlier error.
type Field struct {
	ID       string
	Required bool
	Pattern  *regexp.Regexp
	Message  string
}

// SubscribeFields are the newsletter form's rules: required first name,
// required valid email, optional South African phone number.
func SubscribeFields() []Field {
	return []Field{
		{ID: "first_name", Required: true},
		{ID: "email", Required: true, Pattern: emailPattern, Message: "Please enter a valid email address."},
		{ID: "telephone", Pattern: phonePattern, Message: "Please enter a valid 10-digit phone number (e.g., 0821234567)."},
	}
}

// ContactFields are the contact form's rules.
func ContactFields() []Field {
	return []Field{
		{ID: "name", Required: true},
		{ID: "contact-email", Required: true, Pattern: emailPattern, Message: "Please enter a valid email address."},
		{ID: "subject", Required: true},
		{ID: "message", Required: true},
	}
}

// ValidateField checks one submitted value and reflects the outcome into
// the document: an error span next to the input (created once, reused) and
// the input-error class on the input. A field whose input is missing from
// the document passes. Reports whether the value is acceptable.
func ValidateField(doc *html.Node, f Field, value string) bool {
	input := dom.ByID(doc, f.ID)
	if input == nil {
		return true
	}
	errEl := ensureErrorEl(doc, input, f.ID)
	trimmed := strings.TrimSpace(value)

	if f.Required && trimmed == "" {
		dom.SetText(errEl, strings.ReplaceAll(labelText(doc, input, f.ID), ":", "")+" is required.")
		dom.AddClass(input, "input-error")
		return false
	}

	if trimmed != "" && f.Pattern != nil && !f.Pattern.MatchString(value) {
		dom.SetText(errEl, f.Message)
		dom.AddClass(input, "input-error")
		return false
	}

	dom.SetText(errEl, "")
	dom.RemoveClass(input, "input-error")
	return true
}

// ValidateForm checks every field against the submitted values. All fields
// are validated even after the first failure so every error is shown at
// once.
func ValidateForm(doc *html.Node, fields []Field, values map[string]string) bool {
	ok := true
	for _, f := range fields {
		if !ValidateField(doc, f, values[f.ID]) {
			ok = false
		}
	}
	return ok
}

// ensureErrorEl finds or creates the span#<id>-error for an input. It lands
// in the input's enclosing table cell when there is one, directly after the
// input otherwise.
func ensureErrorEl(doc *html.Node, input *html.Node, id string) *html.Node {
	errID := id + "-error"
	if el := dom.ByID(doc, errID); el != nil {
		return el
	}
	el := dom.NewElement("span", "id", errID, "class", "validation-error")
	if td := dom.Closest(input, func(n *html.Node) bool { return n.Data == "td" }); td != nil {
		td.AppendChild(el)
	} else {
		dom.InsertAfter(input, el)
	}
	return el
}

// labelText resolves the human name for an input: its label, else its name
// attribute, else its id.
func labelText(doc *html.Node, input *html.Node, id string) string {
	label := dom.Find(doc, func(n *html.Node) bool {
		return n.Data == "label" && dom.Attr(n, "for") == id
	})
	if label != nil {
		if t := strings.TrimSpace(dom.Text(label)); t != "" {
			return t
		}
	}
	if name := dom.Attr(input, "name"); name != "" {
		return name
	}
	if id != "" {
		return id
	}
	return "This field"
}
