// Package admin holds the administrator's CRUD over users and vendors. The
// user and vendor forms are shared between add and edit: an id of zero means
// add with the next counter value, a non-zero id means overwrite the matching
// record in place.
package admin

import (
	"fmt"

	"utsav/auth"
	"utsav/globals"
	"utsav/models"
	"utsav/state"
	"utsav/utils"
)

type Controller struct {
	State *state.Store
}

// UserForm carries the shared add/edit user form. ID zero selects add mode.
type UserForm struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VendorForm carries the shared add/edit vendor form.
type VendorForm struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category"`
}

// SaveUser validates like signup and then either appends a new user or
// overwrites the fields of the identified one. Editing a missing id is a
// silent no-op.
func (c *Controller) SaveUser(form UserForm) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return err
	}
	if form.Name == "" || form.Email == "" || form.Password == "" {
		return fmt.Errorf("%w: all fields are required", globals.ErrValidation)
	}
	if !utils.IsValidEmail(form.Email) {
		return fmt.Errorf("%w: please enter a valid email", globals.ErrValidation)
	}
	if form.ID != 0 {
		for i := range c.State.Data.Users {
			if c.State.Data.Users[i].ID == form.ID {
				c.State.Data.Users[i].Name = form.Name
				c.State.Data.Users[i].Email = form.Email
				c.State.Data.Users[i].Password = form.Password
				break
			}
		}
	} else {
		c.State.Data.Users = append(c.State.Data.Users, models.User{
			ID:       c.State.NextUserID(),
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
		})
	}
	c.State.Save()
	return nil
}

// GetUser pre-fills the edit form.
func (c *Controller) GetUser(id int) (*models.User, error) {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return nil, err
	}
	for _, u := range c.State.Data.Users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %d", globals.ErrNotFound, id)
}

// DeleteUser removes the user only. Orders, requests and guests that pointed
// at the user keep their snapshots and become orphaned references on purpose.
func (c *Controller) DeleteUser(id int) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return err
	}
	kept := c.State.Data.Users[:0]
	for _, u := range c.State.Data.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	c.State.Data.Users = kept
	c.State.Save()
	return nil
}

// SaveVendor mirrors SaveUser for the vendor collection.
func (c *Controller) SaveVendor(form VendorForm) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return err
	}
	if form.Name == "" || form.Email == "" || form.Password == "" || form.Category == "" {
		return fmt.Errorf("%w: all fields are required", globals.ErrValidation)
	}
	if !utils.IsValidEmail(form.Email) {
		return fmt.Errorf("%w: please enter a valid email", globals.ErrValidation)
	}
	if form.ID != 0 {
		for i := range c.State.Data.Vendors {
			if c.State.Data.Vendors[i].ID == form.ID {
				c.State.Data.Vendors[i].Name = form.Name
				c.State.Data.Vendors[i].Email = form.Email
				c.State.Data.Vendors[i].Password = form.Password
				c.State.Data.Vendors[i].Category = form.Category
				break
			}
		}
	} else {
		c.State.Data.Vendors = append(c.State.Data.Vendors, models.Vendor{
			ID:       c.State.NextVendorID(),
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
			Category: form.Category,
		})
	}
	c.State.Save()
	return nil
}

// GetVendor pre-fills the edit form.
func (c *Controller) GetVendor(id int) (*models.Vendor, error) {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return nil, err
	}
	for _, v := range c.State.Data.Vendors {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: vendor %d", globals.ErrNotFound, id)
}

// DeleteVendor removes the vendor only; its products and historical order
// items keep their denormalized vendor name.
func (c *Controller) DeleteVendor(id int) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return err
	}
	kept := c.State.Data.Vendors[:0]
	for _, v := range c.State.Data.Vendors {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	c.State.Data.Vendors = kept
	c.State.Save()
	return nil
}

// Users is the admin users table.
func (c *Controller) Users() []models.User {
	if auth.Authorize(c.State.Data.Session, models.RoleAdmin) != nil {
		return nil
	}
	return c.State.Data.Users
}

// Vendors is the admin vendors table.
func (c *Controller) Vendors() []models.Vendor {
	if auth.Authorize(c.State.Data.Session, models.RoleAdmin) != nil {
		return nil
	}
	return c.State.Data.Vendors
}

// Products is the admin products table.
func (c *Controller) Products() []models.Product {
	if auth.Authorize(c.State.Data.Session, models.RoleAdmin) != nil {
		return nil
	}
	return c.State.Data.Products
}
