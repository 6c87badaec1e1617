// Package products covers vendor product management and the user-facing
// catalog: vendors filtered by category, and per-vendor product views.
package products

import (
	"fmt"

	"utsav/auth"
	"utsav/globals"
	"utsav/models"
	"utsav/state"
	"utsav/utils"
	"utsav/view"
)

type Controller struct {
	State *state.Store
	Nav   *view.Router
}

// Add creates a product for the logged-in vendor. Vendor id and name are
// stamped from the session as snapshots; a blank image gets a generated
// placeholder URL.
func (c *Controller) Add(name string, price float64, image string) (*models.Product, error) {
	sess := c.State.Data.Session
	if err := auth.Authorize(sess, models.RoleVendor); err != nil {
		return nil, err
	}
	if name == "" || price <= 0 {
		return nil, fmt.Errorf("%w: please enter product name and valid price", globals.ErrValidation)
	}
	if image == "" {
		image = utils.PlaceholderImage(name)
	}
	p := models.Product{
		ID:         c.State.NextProductID(),
		VendorID:   sess.ID,
		VendorName: sess.Name,
		Name:       name,
		Price:      price,
		Image:      image,
	}
	c.State.Data.Products = append(c.State.Data.Products, p)
	c.State.Save()
	return &p, nil
}

// Delete removes a product by id from the global collection. Vendors and the
// admin may delete; a missing id is a silent no-op. The confirmation prompt is
// the caller's gate, not ours.
func (c *Controller) Delete(id int) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleVendor, models.RoleAdmin); err != nil {
		return err
	}
	kept := c.State.Data.Products[:0]
	for _, p := range c.State.Data.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.State.Data.Products = kept
	c.State.Save()
	c.Nav.Refresh(view.PageVendorAddItem)
	c.Nav.Refresh(view.PageVendorItems)
	return nil
}

// ByVendor returns the products listed by one vendor.
func (c *Controller) ByVendor(vendorID int) []models.Product {
	list := []models.Product{}
	for _, p := range c.State.Data.Products {
		if p.VendorID == vendorID {
			list = append(list, p)
		}
	}
	return list
}

// MyProducts returns the logged-in vendor's products.
func (c *Controller) MyProducts() []models.Product {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleVendor) != nil {
		return nil
	}
	return c.ByVendor(sess.ID)
}

// VendorsByCategory filters the vendor collection; "All" returns everyone.
func (c *Controller) VendorsByCategory(category string) []models.Vendor {
	if category == "" || category == "All" {
		return c.State.Data.Vendors
	}
	list := []models.Vendor{}
	for _, v := range c.State.Data.Vendors {
		if v.Category == category {
			list = append(list, v)
		}
	}
	return list
}

// CatalogView is the product page scoped to the vendor being browsed.
type CatalogView struct {
	Vendor   models.Vendor    `json:"vendor"`
	Products []models.Product `json:"products"`
}

// OpenVendorProducts records which vendor is being browsed, builds that
// vendor's product view and navigates to the products page. A missing vendor
// is a silent no-op.
func (c *Controller) OpenVendorProducts(vendorID int) *CatalogView {
	var vendor *models.Vendor
	for i := range c.State.Data.Vendors {
		if c.State.Data.Vendors[i].ID == vendorID {
			vendor = &c.State.Data.Vendors[i]
			break
		}
	}
	if vendor == nil {
		return nil
	}
	c.State.Data.CurrentVendorView = vendorID
	v := &CatalogView{Vendor: *vendor, Products: c.ByVendor(vendorID)}
	c.Nav.Navigate(view.PageProducts)
	return v
}

// CurrentCatalog rebuilds the products page view from the recorded browsing
// context; nil when no vendor is being browsed.
func (c *Controller) CurrentCatalog() *CatalogView {
	id := c.State.Data.CurrentVendorView
	if id == 0 {
		return nil
	}
	for _, v := range c.State.Data.Vendors {
		if v.ID == id {
			return &CatalogView{Vendor: v, Products: c.ByVendor(id)}
		}
	}
	return nil
}
