package products

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

func loginVendor(c *Controller) {
	v := c.State.Data.Vendors[0]
	c.State.Data.Session = &models.Session{
		Role: models.RoleVendor, ID: v.ID, Name: v.Name, Email: v.Email, Category: v.Category,
	}
}

func TestAddRequiresVendorSession(t *testing.T) {
	c := newController(t)

	if _, err := c.Add("Rose Bouquet", 499, ""); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("anonymous add: err = %v", err)
	}
	c.State.Data.Session = &models.Session{Role: models.RoleUser, ID: 1}
	if _, err := c.Add("Rose Bouquet", 499, ""); !errors.Is(err, globals.ErrUnauthorized) {
		t.Errorf("user add: err = %v", err)
	}
	if len(c.State.Data.Products) != 0 {
		t.Error("rejected add must not append")
	}
}

func TestAddStampsVendorSnapshotAndPlaceholder(t *testing.T) {
	c := newController(t)
	loginVendor(c)

	if _, err := c.Add("", 499, ""); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("blank name: err = %v", err)
	}
	if _, err := c.Add("Rose Bouquet", 0, ""); !errors.Is(err, globals.ErrValidation) {
		t.Errorf("zero price: err = %v", err)
	}

	p, err := c.Add("Rose Bouquet", 499, "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.ID != 1 || p.VendorID != 1 || p.VendorName != "Riya Florist" {
		t.Errorf("product = %+v", p)
	}
	if p.Image != "https://via.placeholder.com/150?text=Rose+Bouquet" {
		t.Errorf("image = %s, want generated placeholder", p.Image)
	}

	p2, _ := c.Add("Lily Basket", 250, "custom.png")
	if p2.ID != 2 || p2.Image != "custom.png" {
		t.Errorf("second product = %+v", p2)
	}
}

func TestDeleteFiltersById(t *testing.T) {
	c := newController(t)
	loginVendor(c)
	c.Add("Rose Bouquet", 499, "")
	c.Add("Lily Basket", 250, "")

	if err := c.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(c.State.Data.Products) != 1 || c.State.Data.Products[0].ID != 2 {
		t.Errorf("products = %+v", c.State.Data.Products)
	}

	// missing id is a silent no-op
	if err := c.Delete(99); err != nil {
		t.Errorf("Delete missing id: %v", err)
	}
	if len(c.State.Data.Products) != 1 {
		t.Errorf("products = %+v", c.State.Data.Products)
	}
}

func TestVendorsByCategory(t *testing.T) {
	c := newController(t)
	c.State.Data.Vendors = append(c.State.Data.Vendors, models.Vendor{
		ID: 2, Name: "Taj Caterers", Email: "taj@test.com", Password: "pw", Category: "Caterer",
	})

	if got := c.VendorsByCategory("All"); len(got) != 2 {
		t.Errorf("All = %d vendors, want 2", len(got))
	}
	if got := c.VendorsByCategory(""); len(got) != 2 {
		t.Errorf("blank = %d vendors, want 2", len(got))
	}
	got := c.VendorsByCategory("Caterer")
	if len(got) != 1 || got[0].Name != "Taj Caterers" {
		t.Errorf("Caterer = %+v", got)
	}
	if got := c.VendorsByCategory("Venue"); len(got) != 0 {
		t.Errorf("Venue = %+v, want empty", got)
	}
}

func TestOpenVendorProducts(t *testing.T) {
	c := newController(t)
	loginVendor(c)
	c.Add("Rose Bouquet", 499, "")
	c.State.Data.Session = nil

	if v := c.OpenVendorProducts(99); v != nil {
		t.Errorf("missing vendor = %+v, want nil", v)
	}
	if c.State.Data.CurrentVendorView != 0 {
		t.Error("missing vendor must not record browsing context")
	}

	v := c.OpenVendorProducts(1)
	if v == nil || v.Vendor.Name != "Riya Florist" || len(v.Products) != 1 {
		t.Fatalf("catalog = %+v", v)
	}
	if c.State.Data.CurrentVendorView != 1 {
		t.Errorf("CurrentVendorView = %d, want 1", c.State.Data.CurrentVendorView)
	}
	if c.Nav.Current() != view.PageProducts {
		t.Errorf("page = %s, want products", c.Nav.Current())
	}

	// the refresh path rebuilds the same view from the recorded context
	again := c.CurrentCatalog()
	if again == nil || again.Vendor.ID != 1 || len(again.Products) != 1 {
		t.Errorf("CurrentCatalog = %+v", again)
	}
}

func TestMyProducts(t *testing.T) {
	c := newController(t)
	loginVendor(c)
	c.Add("Rose Bouquet", 499, "")

	c.State.Data.Products = append(c.State.Data.Products, models.Product{
		ID: 2, VendorID: 7, VendorName: "Other", Name: "Cake", Price: 300,
	})

	mine := c.MyProducts()
	if len(mine) != 1 || mine[0].Name != "Rose Bouquet" {
		t.Errorf("MyProducts = %+v", mine)
	}

	c.State.Data.Session = nil
	if c.MyProducts() != nil {
		t.Error("anonymous MyProducts must be nil")
	}
}
