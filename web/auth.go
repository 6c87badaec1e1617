package web

import (
	"net/http"

	"utsav/utils"

	"github.com/julienschmidt/httprouter"
)

type loginPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category"`
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body loginPayload
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Auth.AdminLogin(body.ID, body.Password); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"session": h.App.State.Data.Session,
		"page":    h.App.Nav.Current(),
	})
}

func (h *Handler) VendorLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body loginPayload
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Auth.VendorLogin(body.Email, body.Password); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"session": h.App.State.Data.Session,
		"page":    h.App.Nav.Current(),
	})
}

func (h *Handler) UserLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body loginPayload
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Auth.UserLogin(body.Email, body.Password); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"session": h.App.State.Data.Session,
		"page":    h.App.Nav.Current(),
	})
}

func (h *Handler) UserSignup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body signupPayload
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Auth.SignupUser(body.Name, body.Email, body.Password); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"status": "account created"})
}

func (h *Handler) VendorSignup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body signupPayload
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.App.Auth.SignupVendor(body.Name, body.Email, body.Password, body.Category); err != nil {
		fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"status": "vendor account created"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Auth.Logout()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "logged out"})
}
