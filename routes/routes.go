package routes

import (
	"utsav/ratelim"
	"utsav/web"

	"github.com/julienschmidt/httprouter"
)

func AddPageRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/session", h.Session)
	router.GET("/api/pages/current", h.CurrentPage)
	router.POST("/api/pages/navigate", h.Navigate)
	router.GET("/api/theme", h.Theme)
	router.POST("/api/theme/toggle", h.ToggleTheme)
}

func AddAuthRoutes(router *httprouter.Router, h *web.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/admin/login", rl.Limit(h.AdminLogin))
	router.POST("/api/auth/vendor/login", rl.Limit(h.VendorLogin))
	router.POST("/api/auth/user/login", rl.Limit(h.UserLogin))
	router.POST("/api/auth/user/signup", rl.Limit(h.UserSignup))
	router.POST("/api/auth/vendor/signup", rl.Limit(h.VendorSignup))
	router.POST("/api/auth/logout", h.Logout)
}

func AddCatalogRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/vendors", h.Vendors)
	router.POST("/api/vendors/:id/browse", h.OpenVendorProducts)
	router.GET("/api/products/mine", h.MyProducts)
	router.POST("/api/products", h.AddProduct)
	router.DELETE("/api/products/:id", h.DeleteProduct)
}

func AddCartRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/cart", h.Cart)
	router.POST("/api/cart/clear", h.ClearCart)
	router.POST("/api/cart/items/:productId", h.AddToCart)
	router.POST("/api/cart/items/:productId/increase", h.IncreaseQty)
	router.POST("/api/cart/items/:productId/decrease", h.DecreaseQty)
	router.DELETE("/api/cart/items/:productId", h.RemoveFromCart)

	router.GET("/api/checkout", h.CheckoutSummary)
	router.POST("/api/checkout", h.PlaceOrder)
}

func AddOrderRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/orders/vendor/transactions", h.VendorTransactions)
	router.GET("/api/orders/vendor/status", h.VendorOrders)
	router.GET("/api/orders/mine", h.UserOrders)
	router.GET("/api/orders", h.AllOrders)
	router.POST("/api/orders/update/:id", h.OpenStatusUpdate)
	router.POST("/api/orders/status", h.SaveStatus)
	router.POST("/api/orders/status/back", h.StatusGoBack)
	router.DELETE("/api/orders/:id", h.DeleteOrder)
}

func AddRequestRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/requests/mine", h.MyRequests)
	router.GET("/api/requests/incoming", h.IncomingRequests)
	router.GET("/api/requests", h.AllRequests)
	router.POST("/api/requests", h.SubmitRequest)
	router.POST("/api/requests/:id/approve", h.ApproveRequest)
	router.POST("/api/requests/:id/reject", h.RejectRequest)
}

func AddGuestRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/guests", h.GuestList)
	router.POST("/api/guests", h.AddGuest)
	router.DELETE("/api/guests/:index", h.RemoveGuest)
}

func AddMembershipRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/memberships", h.Memberships)
	router.GET("/api/memberships/:number", h.LookupMembership)
	router.POST("/api/memberships", h.AddMembership)
	router.PUT("/api/memberships/:number", h.UpdateMembership)
}

func AddAdminRoutes(router *httprouter.Router, h *web.Handler) {
	router.GET("/api/admin/users", h.AdminUsers)
	router.GET("/api/admin/users/:id", h.AdminGetUser)
	router.POST("/api/admin/users", h.AdminSaveUser)
	router.DELETE("/api/admin/users/:id", h.AdminDeleteUser)

	router.GET("/api/admin/vendors", h.AdminVendors)
	router.GET("/api/admin/vendors/:id", h.AdminGetVendor)
	router.POST("/api/admin/vendors", h.AdminSaveVendor)
	router.DELETE("/api/admin/vendors/:id", h.AdminDeleteVendor)

	router.GET("/api/admin/products", h.AdminProducts)
}
