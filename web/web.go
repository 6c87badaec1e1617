// Package web is the local HTTP facade over the engine: the stand-in for the
// rendering and form layer. One mutex serializes every handler so the engine
// keeps its single-execution-context model.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"utsav/app"
	"utsav/auth"
	"utsav/globals"
	"utsav/utils"
	"utsav/view"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	mu  sync.Mutex
	App *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// fail maps engine errors onto HTTP statuses. Unauthorized calls changed
// nothing in the store; the 403 just makes the no-op visible to the client.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, globals.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, globals.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, globals.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

func intParam(ps httprouter.Params, name string) (int, bool) {
	n, err := strconv.Atoi(ps.ByName(name))
	if err != nil {
		return 0, false
	}
	return n, true
}

// confirmed is the facade's confirmation-prompt gate for destructive actions:
// declining aborts before the engine is ever called.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// Session returns the active session, or null.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"session": h.App.State.Data.Session})
}

// CurrentPage reports the router's visible page and its refreshed view model.
func (h *Handler) CurrentPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	page := h.App.Nav.Current()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"page": page,
		"view": h.App.Nav.Refresh(page),
	})
}

// Navigate moves to the requested page; unknown pages leave everything as is.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Page view.PageID `json:"page"`
	}
	if !decode(w, r, &body) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.App.Nav.Navigate(body.Page)
	page := h.App.Nav.Current()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"page": page,
		"view": h.App.Nav.Refresh(page),
	})
}

// Theme returns the saved preference.
func (h *Handler) Theme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"theme": h.App.State.Theme()})
}

// ToggleTheme flips and persists the preference.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"theme": h.App.State.ToggleTheme()})
}
