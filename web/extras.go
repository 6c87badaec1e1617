package web

import (
	"net/http"

	"utsav/utils"

	"github.com/julienschmidt/httprouter"
)

// --- Item requests ---

func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		VendorID int    `json:"vendorId"`
		ItemName string `json:"itemName"`
		Qty      int    `json:"qty"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	req, err := h.App.Requests.Submit(body.VendorID, body.ItemName, body.Qty)
	if err != nil {
		fail(w, err)
		return
	}
	if req == nil {
		utils.RespondWithError(w, http.StatusNotFound, "vendor not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, req)
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Requests.Approve(id); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "approved"})
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := intParam(ps, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Requests.Reject(id); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "rejected"})
}

func (h *Handler) MyRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Requests.Mine())
}

func (h *Handler) IncomingRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Requests.Incoming())
}

func (h *Handler) AllRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Requests.All())
}

// --- Guest list ---

func (h *Handler) AddGuest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Guests.Add(body.Name, body.Phone, body.Email); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.App.Guests.Mine())
}

func (h *Handler) GuestList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Guests.Mine())
}

// RemoveGuest takes the position within the caller's own guest list, not an
// id; guests do not have ids.
func (h *Handler) RemoveGuest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	idx, ok := intParam(ps, "index")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid guest position")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Guests.Remove(idx); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.App.Guests.Mine())
}

// --- Memberships ---

func (h *Handler) AddMembership(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		VendorName string `json:"vendorName"`
		Duration   string `json:"duration"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	m, err := h.App.Memberships.Add(body.VendorName, body.Duration)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, m)
}

func (h *Handler) LookupMembership(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	number, ok := intParam(ps, "number")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid membership number")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	m, err := h.App.Memberships.Lookup(number)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

func (h *Handler) UpdateMembership(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	number, ok := intParam(ps, "number")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid membership number")
		return
	}
	var body struct {
		Action string `json:"action"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	m, err := h.App.Memberships.Update(number, body.Action)
	if err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

func (h *Handler) Memberships(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, h.App.Memberships.All())
}
