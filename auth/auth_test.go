package auth

import (
	"errors"
	"testing"

	"utsav/globals"
	"utsav/models"
	"utsav/state"
	"utsav/storage"
	"utsav/view"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	st := state.New(storage.NewMemKV())
	st.SetupDefaults()
	return &Controller{State: st, Nav: view.NewRouter()}
}

func TestAuthorize(t *testing.T) {
	if err := Authorize(nil, models.RoleUser); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("nil session: err = %v, want ErrUnauthorized", err)
	}
	sess := &models.Session{Role: models.RoleVendor, ID: 1}
	if err := Authorize(sess, models.RoleUser); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("wrong role: err = %v, want ErrUnauthorized", err)
	}
	if err := Authorize(sess, models.RoleVendor, models.RoleAdmin); err != nil {
		t.Errorf("matching role: err = %v, want nil", err)
	}
}

func TestAdminLogin(t *testing.T) {
	c := newController(t)

	if err := c.AdminLogin("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: err = %v", err)
	}
	if c.State.Data.Session != nil {
		t.Fatal("failed login must not create a session")
	}

	if err := c.AdminLogin("admin", "admin123"); err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	sess := c.State.Data.Session
	if sess == nil || sess.Role != models.RoleAdmin || sess.Name != "Admin" {
		t.Errorf("session = %+v", sess)
	}
	if c.Nav.Current() != view.PageAdminHome {
		t.Errorf("page = %s, want admin home", c.Nav.Current())
	}
}

func TestAdminLoginConfiguredCredentials(t *testing.T) {
	c := newController(t)
	c.AdminID = "boss"
	c.AdminPassword = "secret"

	if err := c.AdminLogin("admin", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("defaults must stop working once configured, err = %v", err)
	}
	if err := c.AdminLogin("boss", "secret"); err != nil {
		t.Errorf("configured credentials rejected: %v", err)
	}
}

func TestUserLoginWithSeed(t *testing.T) {
	c := newController(t)

	if err := c.UserLogin("user@test.com", "user123"); err != nil {
		t.Fatalf("UserLogin: %v", err)
	}
	sess := c.State.Data.Session
	if sess.Role != models.RoleUser || sess.Name != "Test User" {
		t.Errorf("session = %+v", sess)
	}
	if c.Nav.Current() != view.PageUserPortal {
		t.Errorf("page = %s, want user portal", c.Nav.Current())
	}
}

func TestVendorLoginWithSeed(t *testing.T) {
	c := newController(t)

	if err := c.VendorLogin("riya@test.com", "vendor123"); err != nil {
		t.Fatalf("VendorLogin: %v", err)
	}
	sess := c.State.Data.Session
	if sess.Role != models.RoleVendor || sess.Category != "Florist" {
		t.Errorf("session = %+v", sess)
	}
	if c.Nav.Current() != view.PageVendorHome {
		t.Errorf("page = %s, want vendor home", c.Nav.Current())
	}
}

func TestLoginValidation(t *testing.T) {
	c := newController(t)
	if err := c.UserLogin("", "pw"); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("blank email: err = %v", err)
	}
	if err := c.VendorLogin("riya@test.com", ""); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("blank password: err = %v", err)
	}
}

func TestSignupUser(t *testing.T) {
	c := newController(t)

	if err := c.SignupUser("New", "new@test.com", ""); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("missing field: err = %v", err)
	}
	if err := c.SignupUser("New", "not-an-email", "pw"); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("bad email: err = %v", err)
	}
	if err := c.SignupUser("Dup", "user@test.com", "pw"); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("duplicate email: err = %v", err)
	}
	if len(c.State.Data.Users) != 1 {
		t.Fatalf("rejected signups must not append, have %d users", len(c.State.Data.Users))
	}

	if err := c.SignupUser("New", "new@test.com", "pw"); err != nil {
		t.Fatalf("SignupUser: %v", err)
	}
	if len(c.State.Data.Users) != 2 || c.State.Data.Users[1].ID != 2 {
		t.Errorf("users = %+v", c.State.Data.Users)
	}
	if c.State.Data.Session != nil {
		t.Error("signup must not log the user in")
	}
	if c.Nav.Current() != view.PageUserLogin {
		t.Errorf("page = %s, want user login", c.Nav.Current())
	}
}

func TestSignupVendorAllowsEmailSharedWithUser(t *testing.T) {
	c := newController(t)

	// uniqueness is per collection; a vendor may reuse a user's address
	if err := c.SignupVendor("Shared", "user@test.com", "pw", "Caterer"); err != nil {
		t.Fatalf("SignupVendor: %v", err)
	}
	if err := c.SignupVendor("Dup", "riya@test.com", "pw", "Caterer"); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("duplicate vendor email: err = %v", err)
	}
	if err := c.SignupVendor("NoCat", "nocat@test.com", "pw", ""); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("missing category: err = %v", err)
	}
	if c.Nav.Current() != view.PageVendorLogin {
		t.Errorf("page = %s, want vendor login", c.Nav.Current())
	}
}

func TestLogoutClearsSessionCartAndBrowsingContext(t *testing.T) {
	c := newController(t)
	if err := c.UserLogin("user@test.com", "user123"); err != nil {
		t.Fatalf("UserLogin: %v", err)
	}
	c.State.Data.Cart = []models.CartLine{{ProductID: 1, Qty: 2}}
	c.State.Data.CurrentVendorView = 1

	c.Logout()

	if c.State.Data.Session != nil {
		t.Error("session survived logout")
	}
	if len(c.State.Data.Cart) != 0 {
		t.Error("cart survived logout")
	}
	if c.State.Data.CurrentVendorView != 0 {
		t.Error("browsing context survived logout")
	}
	if c.Nav.Current() != view.PageIndex {
		t.Errorf("page = %s, want index", c.Nav.Current())
	}
}
