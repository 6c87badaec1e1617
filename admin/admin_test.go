package admin

import (
	"errors"
	"testing"

	"utsav/globals"
	"utsav/models"
	"utsav/state"
	"utsav/storage"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	c := &Controller{State: state.New(storage.NewMemKV())}
	c.State.SetupDefaults()
	c.State.Data.Session = &models.Session{Role: models.RoleAdmin, Name: "Admin"}
	return c
}

func TestSaveUserAddAndEdit(t *testing.T) {
	c := newController(t)

	if err := c.SaveUser(UserForm{Name: "X", Email: "x@test.com"}); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("missing password: err = %v", err)
	}
	if err := c.SaveUser(UserForm{Name: "X", Email: "bad", Password: "pw"}); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("bad email: err = %v", err)
	}

	// zero id adds with the next counter value
	if err := c.SaveUser(UserForm{Name: "Asha", Email: "asha@test.com", Password: "pw"}); err != nil {
		t.Fatalf("SaveUser add: %v", err)
	}
	if len(c.State.Data.Users) != 2 || c.State.Data.Users[1].ID != 2 {
		t.Fatalf("users = %+v", c.State.Data.Users)
	}

	// non-zero id overwrites in place
	if err := c.SaveUser(UserForm{ID: 2, Name: "Asha K", Email: "ashak@test.com", Password: "pw2"}); err != nil {
		t.Fatalf("SaveUser edit: %v", err)
	}
	got := c.State.Data.Users[1]
	if got.Name != "Asha K" || got.Email != "ashak@test.com" || got.Password != "pw2" {
		t.Errorf("edited user = %+v", got)
	}

	// editing a missing id neither appends nor errors
	if err := c.SaveUser(UserForm{ID: 99, Name: "Ghost", Email: "g@test.com", Password: "pw"}); err != nil {
		t.Fatalf("SaveUser missing id: %v", err)
	}
	if len(c.State.Data.Users) != 2 {
		t.Errorf("users = %+v", c.State.Data.Users)
	}
}

func TestSaveVendorRequiresCategory(t *testing.T) {
	c := newController(t)

	if err := c.SaveVendor(VendorForm{Name: "T", Email: "t@test.com", Password: "pw"}); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("missing category: err = %v", err)
	}
	if err := c.SaveVendor(VendorForm{Name: "Taj", Email: "taj@test.com", Password: "pw", Category: "Caterer"}); err != nil {
		t.Fatalf("SaveVendor: %v", err)
	}
	if len(c.State.Data.Vendors) != 2 || c.State.Data.Vendors[1].Category != "Caterer" {
		t.Errorf("vendors = %+v", c.State.Data.Vendors)
	}
}

func TestGetPrefillsForms(t *testing.T) {
	c := newController(t)

	u, err := c.GetUser(1)
	if err != nil || u.Name != "Test User" {
		t.Errorf("GetUser = %+v, %v", u, err)
	}
	if _, err := c.GetUser(99); !errors.Is(err, globals.ErrNotFound) {
		t.Errorf("missing user: err = %v", err)
	}

	v, err := c.GetVendor(1)
	if err != nil || v.Name != "Riya Florist" {
		t.Errorf("GetVendor = %+v, %v", v, err)
	}
}

func TestDeleteLeavesHistoryIntact(t *testing.T) {
	c := newController(t)
	uid := 1
	c.State.Data.Orders = []models.Order{{
		ID: 1, UserID: &uid, CustomerName: "Test User",
		Items: []models.OrderItem{{ProductID: 1, VendorID: 1, VendorName: "Riya Florist", Name: "Rose", Price: 10, Qty: 1}},
	}}
	c.State.Data.Products = []models.Product{
		{ID: 1, VendorID: 1, VendorName: "Riya Florist", Name: "Rose", Price: 10},
	}

	if err := c.DeleteUser(1); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := c.DeleteVendor(1); err != nil {
		t.Fatalf("DeleteVendor: %v", err)
	}

	if len(c.State.Data.Users) != 0 || len(c.State.Data.Vendors) != 0 {
		t.Errorf("collections = %d users, %d vendors", len(c.State.Data.Users), len(c.State.Data.Vendors))
	}
	// no cascade: orders and products keep their snapshots
	if len(c.State.Data.Orders) != 1 || c.State.Data.Orders[0].Items[0].VendorName != "Riya Florist" {
		t.Errorf("orders = %+v", c.State.Data.Orders)
	}
	if len(c.State.Data.Products) != 1 {
		t.Errorf("products = %+v", c.State.Data.Products)
	}
}

func TestEverythingRequiresAdmin(t *testing.T) {
	c := newController(t)
	c.State.Data.Session = &models.Session{Role: models.RoleVendor, ID: 1}

	if err := c.SaveUser(UserForm{Name: "X", Email: "x@test.com", Password: "pw"}); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("SaveUser: err = %v", err)
	}
	if err := c.DeleteVendor(1); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("DeleteVendor: err = %v", err)
	}
	if _, err := c.GetUser(1); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("GetUser: err = %v", err)
	}
	if c.Users() != nil || c.Vendors() != nil || c.Products() != nil {
		t.Error("tables must be nil for non-admin sessions")
	}
}
