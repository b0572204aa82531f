package main

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/petalwhisper/storefront/internal/cart/app"
	"github.com/petalwhisper/storefront/internal/cart/domain"
	"github.com/petalwhisper/storefront/internal/cart/infra/localstore"
	"github.com/petalwhisper/storefront/internal/dom"
	"github.com/petalwhisper/storefront/internal/page"
)

//go:embed web
var webFS embed.FS

const sessionCookie = "pw_sid"

// storeFactory yields the persistence adapter scoped to one visitor.
type storeFactory func(sid string) (app.Store, error)

type server struct {
	log    *slog.Logger
	stores storeFactory
	pages  map[string][]byte
}

func newServer(log *slog.Logger, stores storeFactory) (*server, error) {
	pages := make(map[string][]byte)
	for _, name := range []string{"index", "products", "contact", "cart"} {
		b, err := webFS.ReadFile("web/" + name + ".html")
		if err != nil {
			return nil, fmt.Errorf("load page %s: %w", name, err)
		}
		pages[name] = b
	}
	return &server{log: log, stores: stores, pages: pages}, nil
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		s.render(w, s.view(w, r, "index"))
	})
	mux.HandleFunc("GET /products", s.handleProducts)
	mux.HandleFunc("GET /contact", func(w http.ResponseWriter, r *http.Request) {
		s.render(w, s.view(w, r, "contact"))
	})
	mux.HandleFunc("GET /cart", s.handleCart)
	mux.HandleFunc("POST /cart/add", s.handleAddToCart)
	mux.HandleFunc("POST /subscribe", s.handleSubscribe)
	mux.HandleFunc("POST /contact", s.handleContact)
	return mux
}

// view bundles the per-request wiring: one parsed document plus the cart
// repository scoped to the visitor's session.
type view struct {
	doc   *html.Node
	repo  *app.Repository
	enh   *page.Enhancer
	toast *page.Toaster
}

func (s *server) view(w http.ResponseWriter, r *http.Request, name string) *view {
	sid := s.session(w, r)

	store, err := s.stores(sid)
	if err != nil {
		// Storage trouble degrades to a per-request cart, never to an
		// error page.
		s.log.Warn("cart store unavailable", slog.Any("err", err))
		store = localstore.NewMemory()
	}

	doc, err := dom.ParseString(string(s.pages[name]))
	if err != nil {
		// Embedded pages are parsed on every request; they cannot fail
		// unless the build shipped broken markup.
		s.log.Error("page parse failed", slog.String("page", name), slog.Any("err", err))
		doc = &html.Node{Type: html.DocumentNode}
	}

	badge := page.NewBadge(doc)
	repo := app.NewRepository(store, badge, s.log)
	toast := page.NewToaster(doc)
	enh := page.NewEnhancer(doc, repo, toast, badge, s.log)
	enh.Apply()

	return &view{doc: doc, repo: repo, enh: enh, toast: toast}
}

func (s *server) render(w http.ResponseWriter, v *view) {
	out, err := dom.Render(v.doc)
	if err != nil {
		s.log.Error("page render failed", slog.Any("err", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
	})
	return sid
}

func (s *server) handleProducts(w http.ResponseWriter, r *http.Request) {
	v := s.view(w, r, "products")
	if q := r.URL.Query().Get("q"); q != "" {
		v.enh.Filter(q)
		if input := dom.ByID(v.doc, "product-search"); input != nil {
			dom.SetAttr(input, "value", q)
		}
	}
	s.render(w, v)
}

func (s *server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	v := s.view(w, r, "products")
	title := strings.TrimSpace(r.FormValue("product"))

	if card := findCard(v.doc, title); card != nil {
		if btn := dom.ByClass(card, "add-to-cart-btn"); btn != nil {
			v.enh.Click(btn)
		}
	} else {
		s.log.Info("add-to-cart for unknown product ignored", slog.String("product", title))
	}
	s.render(w, v)
}

func (s *server) handleCart(w http.ResponseWriter, r *http.Request) {
	v := s.view(w, r, "cart")
	renderCartLines(v.doc, v.repo.Load())
	s.render(w, v)
}

func (s *server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	v := s.view(w, r, "index")
	values := formValues(r, "first_name", "email", "telephone")

	if page.ValidateForm(v.doc, page.SubscribeFields(), values) {
		s.log.Info("subscription accepted", slog.String("email", values["email"]))
		v.toast.Notify("Thank you for subscribing! We will keep you updated.")
	} else {
		repopulate(v.doc, values)
		v.toast.Notify(page.InvalidFormMessage)
	}
	s.render(w, v)
}

func (s *server) handleContact(w http.ResponseWriter, r *http.Request) {
	v := s.view(w, r, "contact")
	values := formValues(r, "name", "contact-email", "subject", "message")

	if page.ValidateForm(v.doc, page.ContactFields(), values) {
		s.log.Info("contact message accepted", slog.String("subject", values["subject"]))
		v.toast.Notify("Compiling your email...")
	} else {
		repopulate(v.doc, values)
		v.toast.Notify(page.InvalidFormMessage)
	}
	s.render(w, v)
}

// findCard locates the product card whose title matches exactly.
func findCard(doc *html.Node, title string) *html.Node {
	if title == "" {
		return nil
	}
	for _, card := range dom.AllByClass(doc, "product-card") {
		t := dom.ByClass(card, "product-title")
		if t != nil && strings.TrimSpace(dom.Text(t)) == title {
			return card
		}
	}
	return nil
}

// renderCartLines fills the cart table from the persisted cart.
func renderCartLines(doc *html.Node, cart domain.Cart) {
	tbody := dom.ByID(doc, "cart-lines")
	if tbody == nil {
		return
	}
	for _, line := range cart {
		tr := dom.NewElement("tr")
		for _, cell := range []string{
			line.Title,
			"R " + strconv.FormatFloat(line.Price, 'f', 2, 64),
			strconv.Itoa(line.Quantity),
		} {
			td := dom.NewElement("td")
			dom.SetText(td, cell)
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	if empty := dom.ByID(doc, "cart-empty"); empty != nil && len(cart) == 0 {
		dom.SetStyle(empty, "display", "block")
	}
}

func formValues(r *http.Request, ids ...string) map[string]string {
	values := make(map[string]string, len(ids))
	for _, id := range ids {
		values[id] = r.FormValue(id)
	}
	return values
}

// repopulate puts submitted values back into the inputs so the visitor can
// fix them in place.
func repopulate(doc *html.Node, values map[string]string) {
	for id, val := range values {
		input := dom.ByID(doc, id)
		if input == nil {
			continue
		}
		switch input.Data {
		case "textarea":
			dom.SetText(input, val)
		case "input":
			dom.SetAttr(input, "value", val)
		}
	}
}
