package app

import (
	"encoding/json"
	"log/slog"

	"github.com/petalwhisper/storefront/internal/cart/domain"
)

// Repository owns the cart's load/merge/save cycle on top of an injected
// Store. Persistence and presentation failures degrade: the in-memory cart
// the caller holds is always the source of truth for the current action.
type Repository struct {
	store Store
	badge BadgeRenderer
	log   *slog.Logger
}

func NewRepository(store Store, badge BadgeRenderer, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{
		store: store,
		badge: badge,
		log:   log,
	}
}

// Load reads and decodes the persisted cart. An absent value, a read error
// or malformed data all yield an empty cart; corruption must never break
// the page that asked for it.
func (r *Repository) Load() domain.Cart {
	raw, ok, err := r.store.Read()
	if err != nil {
		r.log.Warn("cart read failed", slog.Any("err", err))
		return domain.Cart{}
	}
	if !ok {
		return domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		r.log.Warn("discarding unreadable cart value", slog.Any("err", err))
		return domain.Cart{}
	}
	return cart
}

// Add merges one unit of the product into the persisted cart and saves the
// result. It returns the updated cart.
func (r *Repository) Add(title string, price float64, image string) domain.Cart {
	cart := r.Load().AddOrIncrement(title, price, image)
	r.Save(cart)
	return cart
}

// Save serializes the cart and writes it through the Store. A write failure
// is logged and swallowed. The badge is refreshed afterwards regardless of
// the write outcome.
func (r *Repository) Save(cart domain.Cart) {
	raw, err := json.Marshal(cart)
	if err != nil {
		r.log.Error("cart serialize failed", slog.Any("err", err))
	} else if err := r.store.Write(string(raw)); err != nil {
		r.log.Warn("cart write failed", slog.Any("err", err))
	}

	if r.badge != nil {
		r.badge.Render(cart)
	}
}
