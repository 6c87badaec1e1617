package web

import (
	"net/http"

	"utsav/checkout"
	"utsav/utils"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Image string  `json:"image"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := h.App.Products.Add(body.Name, body.Price, body.Image)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !confirmed(r) {
		utils.RespondWithError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Products.Delete(id); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

func (h *Handler) MyProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Products.MyProducts())
}

func (h *Handler) Vendors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := r.URL.Query().Get("category")
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Products.VendorsByCategory(category))
}

func (h *Handler) OpenVendorProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	catalog := h.App.Products.OpenVendorProducts(id)
	if catalog == nil {
		utils.RespondWithError(w, http.StatusNotFound, "vendor not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, catalog)
}

func (h *Handler) Cart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Cart.View())
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "productId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Cart.Add(id)
	utils.RespondWithJSON(w, http.StatusOK, h.App.Cart.View())
}

func (h *Handler) IncreaseQty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "productId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Cart.IncreaseQty(id)
	utils.RespondWithJSON(w, http.StatusOK, h.App.Cart.View())
}

func (h *Handler) DecreaseQty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "productId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Cart.DecreaseQty(id)
	utils.RespondWithJSON(w, http.StatusOK, h.App.Cart.View())
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "productId")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Cart.Remove(id)
	utils.RespondWithJSON(w, http.StatusOK, h.App.Cart.View())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !confirmed(r) {
		utils.RespondWithError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Cart.Clear()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Cart.View())
}

func (h *Handler) CheckoutSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Checkout.Summary())
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form checkout.Form
	if !decode(w, r, &form) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	order, err := h.App.Checkout.PlaceOrder(form)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, order)
}
