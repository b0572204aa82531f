package app

import (
	"github.com/petalwhisper/storefront/internal/cart/domain"
)

// Store is the persistence port for the single serialized cart value.
// Read reports ok=false when the key was never written.
type Store interface {
	Read() (value string, ok bool, err error)
	Write(value string) error
}

// BadgeRenderer reflects cart state into whatever surface shows the count.
// It is invoked after every save, even when the underlying write failed, so
// the surface always tracks the user's latest action.
type BadgeRenderer interface {
	Render(cart domain.Cart)
}
