// Package app assembles the engine: one store, one router, one controller per
// feature, and the page-to-refresh-routine table that keeps derived views in
// sync with the store.
package app

import (
	"strings"

	"utsav/admin"
	"utsav/auth"
	"utsav/cart"
	"utsav/checkout"
	"utsav/guests"
	"utsav/memberships"
	"utsav/models"
	"utsav/orders"
	"utsav/products"
	"utsav/requests"
	"utsav/state"
	"utsav/storage"
	"utsav/view"
)

// Config carries the engine's ambient configuration.
type Config struct {
	AdminID       string
	AdminPassword string
}

// App owns the whole engine. All access must come from a single execution
// context; the HTTP facade serializes calls with one mutex.
type App struct {
	State *state.Store
	Nav   *view.Router

	Auth        *auth.Controller
	Products    *products.Controller
	Cart        *cart.Controller
	Checkout    *checkout.Controller
	Orders      *orders.Controller
	Requests    *requests.Controller
	Guests      *guests.Controller
	Memberships *memberships.Controller
	Admin       *admin.Controller
}

// New loads persisted state, seeds defaults into empty collections, wires the
// controllers and refresh routines, and lands on the index page.
func New(kv storage.KV, cfg Config) *App {
	st := state.New(kv)
	st.Load()
	st.SetupDefaults()

	nav := view.NewRouter()

	a := &App{
		State: st,
		Nav:   nav,

		Auth: &auth.Controller{
			State:         st,
			Nav:           nav,
			AdminID:       cfg.AdminID,
			AdminPassword: cfg.AdminPassword,
		},
		Products:    &products.Controller{State: st, Nav: nav},
		Cart:        &cart.Controller{State: st, Nav: nav},
		Checkout:    &checkout.Controller{State: st, Nav: nav},
		Orders:      &orders.Controller{State: st, Nav: nav},
		Requests:    &requests.Controller{State: st},
		Guests:      &guests.Controller{State: st},
		Memberships: &memberships.Controller{State: st},
		Admin:       &admin.Controller{State: st},
	}

	a.registerPages()
	nav.Navigate(view.PageIndex)
	return a
}

// WelcomeView is the greeting header on the portal pages.
type WelcomeView struct {
	Welcome string `json:"welcome"`
}

// PortalView is the user portal: greeting, vendor cards and the cart badge.
type PortalView struct {
	Welcome    string          `json:"welcome"`
	Vendors    []models.Vendor `json:"vendors"`
	BadgeCount int             `json:"badgeCount"`
}

// VendorAddItemView combines the greeting with the vendor's product table.
type VendorAddItemView struct {
	Welcome  string           `json:"welcome"`
	Products []models.Product `json:"products"`
}

// RequestItemView backs the request page: the vendor dropdown plus the user's
// past requests.
type RequestItemView struct {
	Vendors  []models.Vendor  `json:"vendors"`
	Requests []models.Request `json:"requests"`
}

// StatusUpdateView backs the shared update-status page.
type StatusUpdateView struct {
	OrderID  int      `json:"orderId"`
	Statuses []string `json:"statuses"`
}

func (a *App) registerPages() {
	nav := a.Nav
	st := a.State

	nav.Register(view.PageVendorHome, func() any {
		if sess := st.Data.Session; sess != nil {
			return WelcomeView{Welcome: "Welcome " + sess.Name}
		}
		return nil
	})
	nav.Register(view.PageVendorAddItem, func() any {
		sess := st.Data.Session
		if sess == nil {
			return nil
		}
		return VendorAddItemView{
			Welcome:  "Welcome '" + sess.Name + "'",
			Products: a.Products.MyProducts(),
		}
	})
	nav.Register(view.PageVendorItems, func() any { return a.Products.MyProducts() })
	nav.Register(view.PageVendorTransactions, func() any { return a.Orders.VendorTransactions() })
	nav.Register(view.PageVendorRequestItems, func() any { return a.Requests.Incoming() })
	nav.Register(view.PageVendorProductStatus, func() any { return a.Orders.VendorOrders() })

	nav.Register(view.PageUserPortal, func() any {
		sess := st.Data.Session
		if sess == nil {
			return nil
		}
		return PortalView{
			Welcome:    "WELCOME " + strings.ToUpper(sess.Name),
			Vendors:    a.Products.VendorsByCategory("All"),
			BadgeCount: a.Cart.BadgeCount(),
		}
	})
	nav.Register(view.PageVendorsList, func() any { return a.Products.VendorsByCategory("All") })
	nav.Register(view.PageProducts, func() any { return a.Products.CurrentCatalog() })
	nav.Register(view.PageCart, func() any { return a.Cart.View() })
	nav.Register(view.PageCheckout, func() any { return a.Checkout.Summary() })
	nav.Register(view.PageRequestItem, func() any {
		return RequestItemView{
			Vendors:  a.Products.VendorsByCategory("All"),
			Requests: a.Requests.Mine(),
		}
	})
	nav.Register(view.PageOrderStatus, func() any { return a.Orders.UserOrders() })
	nav.Register(view.PageGuestList, func() any { return a.Guests.Mine() })

	nav.Register(view.PageUpdateStatus, func() any {
		return StatusUpdateView{
			OrderID:  st.Data.CurrentOrderForUpdate,
			Statuses: models.OrderStatuses,
		}
	})

	nav.Register(view.PageAdminUsers, func() any { return a.Admin.Users() })
	nav.Register(view.PageAdminVendors, func() any { return a.Admin.Vendors() })
	nav.Register(view.PageAdminOrders, func() any { return a.Orders.AllOrders() })
	nav.Register(view.PageAdminRequests, func() any { return a.Requests.All() })
	nav.Register(view.PageAdminProducts, func() any { return a.Admin.Products() })
	nav.Register(view.PageAdminMembership, func() any { return a.Memberships.All() })
}
