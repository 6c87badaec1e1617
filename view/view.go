// Package view is the page router: a fixed set of named pages of which exactly
// one is current, and per-page refresh routines that recompute derived view
// models from the store whenever their page is navigated to.
package view

// PageID names a page. The identifiers match the original page elements.
type PageID string

const (
	PageIndex        PageID = "pg-index"
	PageAdminLogin   PageID = "pg-admin-login"
	PageVendorLogin  PageID = "pg-vendor-login"
	PageUserLogin    PageID = "pg-user-login"
	PageUserSignup   PageID = "pg-user-signup"
	PageVendorSignup PageID = "pg-vendor-signup"

	PageVendorHome          PageID = "pg-vendor-home"
	PageVendorAddItem       PageID = "pg-vendor-add-item"
	PageVendorItems         PageID = "pg-vendor-items"
	PageVendorTransactions  PageID = "pg-vendor-transactions"
	PageVendorRequestItems  PageID = "pg-vendor-request-items"
	PageVendorProductStatus PageID = "pg-vendor-product-status"

	PageUserPortal  PageID = "pg-user-portal"
	PageVendorsList PageID = "pg-vendors-list"
	PageProducts    PageID = "pg-products"
	PageCart        PageID = "pg-cart"
	PageCheckout    PageID = "pg-checkout"
	PageSuccess     PageID = "pg-success"
	PageRequestItem PageID = "pg-request-item"
	PageOrderStatus PageID = "pg-order-status"
	PageGuestList   PageID = "pg-guest-list"

	PageUpdateStatus PageID = "pg-update-status"

	PageAdminHome       PageID = "pg-admin-home"
	PageAdminUsers      PageID = "pg-admin-users"
	PageAdminVendors    PageID = "pg-admin-vendors"
	PageAdminOrders     PageID = "pg-admin-orders"
	PageAdminRequests   PageID = "pg-admin-requests"
	PageAdminProducts   PageID = "pg-admin-products"
	PageAdminMembership PageID = "pg-admin-membership"
)

// Pages lists every known page. Navigating to anything else is a no-op.
var Pages = []PageID{
	PageIndex,
	PageAdminLogin, PageVendorLogin, PageUserLogin,
	PageUserSignup, PageVendorSignup,
	PageVendorHome, PageVendorAddItem, PageVendorItems,
	PageVendorTransactions, PageVendorRequestItems, PageVendorProductStatus,
	PageUserPortal, PageVendorsList, PageProducts,
	PageCart, PageCheckout, PageSuccess,
	PageRequestItem, PageOrderStatus, PageGuestList,
	PageUpdateStatus,
	PageAdminHome, PageAdminUsers, PageAdminVendors, PageAdminOrders,
	PageAdminRequests, PageAdminProducts, PageAdminMembership,
}

// RefreshFunc recomputes a page's view model. Routines read the store and must
// be idempotent; the only permitted side effect is populating view context
// consumed by a follow-up controller action.
type RefreshFunc func() any

// RenderFunc receives the refreshed view model; this is the hook the external
// rendering layer attaches to.
type RenderFunc func(page PageID, model any)

// Router tracks the current page and dispatches refresh routines.
type Router struct {
	known    map[PageID]bool
	refresh  map[PageID]RefreshFunc
	current  PageID
	onRender RenderFunc
}

func NewRouter() *Router {
	known := make(map[PageID]bool, len(Pages))
	for _, p := range Pages {
		known[p] = true
	}
	return &Router{
		known:   known,
		refresh: make(map[PageID]RefreshFunc),
		current: PageIndex,
	}
}

// Register attaches a refresh routine to a page. Pages without one show
// static content only.
func (r *Router) Register(page PageID, fn RefreshFunc) {
	r.refresh[page] = fn
}

// OnRender installs the rendering hook.
func (r *Router) OnRender(fn RenderFunc) {
	r.onRender = fn
}

// Navigate makes the page current and runs its refresh routine. Unknown pages
// are ignored.
func (r *Router) Navigate(page PageID) {
	if !r.known[page] {
		return
	}
	r.current = page
	model := r.Refresh(page)
	if r.onRender != nil {
		r.onRender(page, model)
	}
}

// Refresh runs the page's routine, if any, and returns its view model.
func (r *Router) Refresh(page PageID) any {
	if fn, ok := r.refresh[page]; ok {
		return fn()
	}
	return nil
}

// Current returns the visible page.
func (r *Router) Current() PageID {
	return r.current
}
