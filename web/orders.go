package web

import (
	"net/http"

	"utsav/utils"
	"utsav/view"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) VendorTransactions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Orders.VendorTransactions())
}

func (h *Handler) VendorOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Orders.VendorOrders())
}

func (h *Handler) UserOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Orders.UserOrders())
}

func (h *Handler) AllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Orders.AllOrders())
}

// OpenStatusUpdate starts the shared update workflow. The return page decides
// where a confirmed or abandoned update lands afterwards.
func (h *Handler) OpenStatusUpdate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var body struct {
		ReturnPage view.PageID `json:"returnPage"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Orders.OpenStatusUpdate(id, body.ReturnPage); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"page": h.App.Nav.Current()})
}

func (h *Handler) SaveStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "please select a status")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Orders.SaveStatus(body.Status); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"page": h.App.Nav.Current()})
}

func (h *Handler) StatusGoBack(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Orders.GoBack()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"page": h.App.Nav.Current()})
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !confirmed(r) {
		utils.RespondWithError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Orders.Delete(id); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}
