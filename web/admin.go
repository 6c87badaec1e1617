package web

import (
	"net/http"

	"utsav/admin"
	"utsav/utils"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Users())
}

func (h *Handler) AdminGetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	u, err := h.App.Admin.GetUser(id)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// AdminSaveUser serves both modes of the shared form: a zero or missing id
// adds, a present id edits.
func (h *Handler) AdminSaveUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form admin.UserForm
	if !decode(w, r, &form) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Admin.SaveUser(form); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Users())
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !confirmed(r) {
		utils.RespondWithError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Admin.DeleteUser(id); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Users())
}

func (h *Handler) AdminVendors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Vendors())
}

func (h *Handler) AdminGetVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	v, err := h.App.Admin.GetVendor(id)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, v)
}

func (h *Handler) AdminSaveVendor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form admin.VendorForm
	if !decode(w, r, &form) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Admin.SaveVendor(form); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Vendors())
}

func (h *Handler) AdminDeleteVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !confirmed(r) {
		utils.RespondWithError(w, http.StatusBadRequest, "confirmation required")
		return
	}
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Admin.DeleteVendor(id); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Vendors())
}

func (h *Handler) AdminProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Admin.Products())
}
