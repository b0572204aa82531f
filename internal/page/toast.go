package page

import (
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/dom"
)

const (
	defaultToastHold = 1800 * time.Millisecond
	defaultToastFade = 250 * time.Millisecond
)

// Toaster shows a single transient message in a reused element appended to
// the document body. A second notification while one is visible replaces
// the text and restarts the timer; messages never stack. Display is purely
// cosmetic, so a document without a body silently drops the message.
type Toaster struct {
	mu   sync.Mutex
	doc  *html.Node
	el   *html.Node
	hold time.Duration
	fade time.Duration

	holdTimer *time.Timer
	fadeTimer *time.Timer
}

func NewToaster(doc *html.Node) *Toaster {
	return &Toaster{
		doc:  doc,
		hold: defaultToastHold,
		fade: defaultToastFade,
	}
}

// WithTiming overrides the hold and fade durations. Tests use short ones.
func (t *Toaster) WithTiming(hold, fade time.Duration) *Toaster {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hold, t.fade = hold, fade
	return t
}

// Notify shows the message, holding it visible before fading out.
func (t *Toaster) Notify(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	el := t.ensureLocked()
	if el == nil {
		return
	}

	dom.SetText(el, message)
	dom.SetStyle(el, "visibility", "visible")
	dom.SetStyle(el, "opacity", "1")

	if t.fadeTimer != nil {
		t.fadeTimer.Stop()
	}
	if t.holdTimer == nil {
		t.holdTimer = time.AfterFunc(t.hold, t.startFade)
	} else {
		t.holdTimer.Reset(t.hold)
	}
}

func (t *Toaster) ensureLocked() *html.Node {
	if t.el != nil {
		return t.el
	}
	body := dom.Body(t.doc)
	if body == nil {
		return nil
	}
	el := dom.NewElement("div", "class", "pw-toast")
	dom.SetStyle(el, "visibility", "hidden")
	dom.SetStyle(el, "opacity", "0")
	body.AppendChild(el)
	t.el = el
	return el
}

func (t *Toaster) startFade() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.el == nil {
		return
	}
	dom.SetStyle(t.el, "opacity", "0")
	if t.fadeTimer == nil {
		t.fadeTimer = time.AfterFunc(t.fade, t.hide)
	} else {
		t.fadeTimer.Reset(t.fade)
	}
}

func (t *Toaster) hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.el != nil {
		dom.SetStyle(t.el, "visibility", "hidden")
	}
}

// Message returns the current toast text, or "" before the first
// notification.
func (t *Toaster) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.el == nil {
		return ""
	}
	return dom.Text(t.el)
}

// Visible reports whether the toast is currently shown.
func (t *Toaster) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.el != nil && dom.Style(t.el, "visibility") == "visible" && dom.Style(t.el, "opacity") == "1"
}
