package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"utsav/app"
	"utsav/ratelim"
	"utsav/storage"
	"utsav/web"

	"github.com/julienschmidt/httprouter"
)

func newServer(t *testing.T) *httprouter.Router {
	t.Helper()
	a := app.New(storage.NewMemKV(), app.Config{})
	h := web.NewHandler(a)
	rl := ratelim.NewRateLimiter()

	router := httprouter.New()
	AddPageRoutes(router, h)
	AddAuthRoutes(router, h, rl)
	AddCatalogRoutes(router, h)
	AddCartRoutes(router, h)
	AddOrderRoutes(router, h)
	AddRequestRoutes(router, h)
	AddGuestRoutes(router, h)
	AddMembershipRoutes(router, h)
	AddAdminRoutes(router, h)
	return router
}

func do(t *testing.T, router *httprouter.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginFlow(t *testing.T) {
	router := newServer(t)

	rec := do(t, router, http.MethodPost, "/api/auth/user/login",
		map[string]string{"email": "user@test.com", "password": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want 401", rec.Code)
	}

	rec = do(t, router, http.MethodPost, "/api/auth/user/login",
		map[string]string{"email": "user@test.com", "password": "user123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Page string `json:"page"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Page != "pg-user-portal" {
		t.Errorf("page = %s, want pg-user-portal", resp.Page)
	}

	rec = do(t, router, http.MethodGet, "/api/session", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("session: status = %d", rec.Code)
	}
}

func TestSignupValidationStatus(t *testing.T) {
	router := newServer(t)

	rec := do(t, router, http.MethodPost, "/api/auth/user/signup",
		map[string]string{"name": "X", "email": "bad", "password": "pw"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want 400", rec.Code)
	}

	rec = do(t, router, http.MethodPost, "/api/auth/user/signup",
		map[string]string{"name": "X", "email": "x@test.com", "password": "pw"})
	if rec.Code != http.StatusCreated {
		t.Errorf("signup: status = %d, want 201", rec.Code)
	}
}

func TestDestructiveActionsNeedConfirmation(t *testing.T) {
	router := newServer(t)

	do(t, router, http.MethodPost, "/api/auth/admin/login",
		map[string]string{"id": "admin", "password": "admin123"})

	rec := do(t, router, http.MethodDelete, "/api/admin/users/1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unconfirmed delete: status = %d, want 400", rec.Code)
	}

	rec = do(t, router, http.MethodDelete, "/api/admin/users/1?confirm=true", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("confirmed delete: status = %d, body = %s", rec.Code, rec.Body)
	}
}

func TestUnauthorizedMutationIsForbidden(t *testing.T) {
	router := newServer(t)

	rec := do(t, router, http.MethodPost, "/api/products",
		map[string]any{"name": "Rose Bouquet", "price": 499})
	if rec.Code != http.StatusForbidden {
		t.Errorf("anonymous add product: status = %d, want 403", rec.Code)
	}
}

func TestCartOverHTTP(t *testing.T) {
	router := newServer(t)

	// vendor lists a product, then a shopper adds it twice
	do(t, router, http.MethodPost, "/api/auth/vendor/login",
		map[string]string{"email": "riya@test.com", "password": "vendor123"})
	rec := do(t, router, http.MethodPost, "/api/products",
		map[string]any{"name": "Rose Bouquet", "price": 499})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add product: status = %d, body = %s", rec.Code, rec.Body)
	}
	do(t, router, http.MethodPost, "/api/auth/logout", nil)

	do(t, router, http.MethodPost, "/api/cart/items/1", nil)
	rec = do(t, router, http.MethodPost, "/api/cart/items/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add to cart: status = %d", rec.Code)
	}
	var cart struct {
		Lines      []struct{ Qty int `json:"qty"` } `json:"lines"`
		GrandTotal float64                          `json:"grandTotal"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Qty != 2 || cart.GrandTotal != 998 {
		t.Errorf("cart = %+v", cart)
	}
}

func TestThemeToggleOverHTTP(t *testing.T) {
	router := newServer(t)

	rec := do(t, router, http.MethodGet, "/api/theme", nil)
	var resp struct {
		Theme string `json:"theme"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Theme != "light" {
		t.Errorf("default theme = %s, want light", resp.Theme)
	}

	rec = do(t, router, http.MethodPost, "/api/theme/toggle", nil)
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Theme != "dark" {
		t.Errorf("toggled theme = %s, want dark", resp.Theme)
	}
}
