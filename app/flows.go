package app

import "shopfront/nav"

// modalFlow is the closed set of modal variants the storefront presents.
type modalFlow struct {
	id    string
	style nav.Style
}

func (f modalFlow) FlowID() string   { return f.id }
func (f modalFlow) Style() nav.Style { return f.style }

var (
	flowCart     = modalFlow{id: "cart", style: nav.StyleSheet}
	flowCheckout = modalFlow{id: "checkout", style: nav.StyleCover}
	flowSearch   = modalFlow{id: "search", style: nav.StyleOverlay}
)

// Screen variants for the shop coordinator's push stack. An empty path is
// the home screen (category list).
type categoryScreen struct {
	ID   string
	Name string
}

type productScreen struct {
	SKU string
}

// Screen variants for the checkout coordinator. An empty path is the
// address form.
type checkoutScreen int

const (
	checkoutConfirm checkoutScreen = iota
)
