// Package auth manages the single active session: admin, vendor and user
// login, signup, logout, and the capability check every mutating controller
// entry point runs first.
package auth

import (
	"errors"
	"fmt"
	"slices"

	"utsav/globals"
	"utsav/models"
	"utsav/state"
	"utsav/utils"
	"utsav/view"
)

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Default admin credentials; overridable through the controller fields.
const (
	DefaultAdminID       = "admin"
	DefaultAdminPassword = "admin123"
)

type Controller struct {
	State *state.Store
	Nav   *view.Router

	// Admin credentials are configuration, not persisted state.
	AdminID       string
	AdminPassword string
}

// Authorize is the uniform policy check: the active session must carry one of
// the required roles. Callers receiving ErrUnauthorized must leave the store
// untouched, preserving the observable "nothing happens" contract.
func Authorize(session *models.Session, roles ...models.Role) error {
	if session == nil {
		return globals.ErrUnauthorized
	}
	if slices.Contains(roles, session.Role) {
		return nil
	}
	return globals.ErrUnauthorized
}

// AdminLogin checks the fixed credential pair. The admin is not a User record.
func (c *Controller) AdminLogin(id, pw string) error {
	if id == "" || pw == "" {
		return fmt.Errorf("%w: please enter both user id and password", globals.ErrValidation)
	}
	if id != c.adminID() || pw != c.adminPassword() {
		return ErrInvalidCredentials
	}
	c.State.Data.Session = &models.Session{
		Role:  models.RoleAdmin,
		Name:  "Admin",
		Email: id,
	}
	c.State.Save()
	c.Nav.Navigate(view.PageAdminHome)
	return nil
}

// VendorLogin scans the vendor collection for an exact email+password match.
func (c *Controller) VendorLogin(email, pw string) error {
	if email == "" || pw == "" {
		return fmt.Errorf("%w: please enter both email and password", globals.ErrValidation)
	}
	for _, v := range c.State.Data.Vendors {
		if v.Email == email && v.Password == pw {
			c.State.Data.Session = &models.Session{
				Role:     models.RoleVendor,
				ID:       v.ID,
				Name:     v.Name,
				Email:    v.Email,
				Category: v.Category,
			}
			c.State.Save()
			c.Nav.Navigate(view.PageVendorHome)
			return nil
		}
	}
	return ErrInvalidCredentials
}

// UserLogin scans the user collection for an exact email+password match.
func (c *Controller) UserLogin(email, pw string) error {
	if email == "" || pw == "" {
		return fmt.Errorf("%w: please enter both email and password", globals.ErrValidation)
	}
	for _, u := range c.State.Data.Users {
		if u.Email == email && u.Password == pw {
			c.State.Data.Session = &models.Session{
				Role:  models.RoleUser,
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
			}
			c.State.Save()
			c.Nav.Navigate(view.PageUserPortal)
			return nil
		}
	}
	return ErrInvalidCredentials
}

// SignupUser appends a new user after presence, email-shape and duplicate
// checks, then returns to the user login page.
func (c *Controller) SignupUser(name, email, pw string) error {
	if name == "" || email == "" || pw == "" {
		return fmt.Errorf("%w: all fields are required", globals.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: please enter a valid email address", globals.ErrValidation)
	}
	for _, u := range c.State.Data.Users {
		if u.Email == email {
			return fmt.Errorf("%w: email already registered", globals.ErrValidation)
		}
	}
	c.State.Data.Users = append(c.State.Data.Users, models.User{
		ID:       c.State.NextUserID(),
		Name:     name,
		Email:    email,
		Password: pw,
	})
	c.State.Save()
	c.Nav.Navigate(view.PageUserLogin)
	return nil
}

// SignupVendor appends a new vendor. Category is required; email uniqueness is
// checked within the vendor collection only, so a user and a vendor may share
// an address.
func (c *Controller) SignupVendor(name, email, pw, category string) error {
	if name == "" || email == "" || pw == "" || category == "" {
		return fmt.Errorf("%w: all fields are required", globals.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: please enter a valid email address", globals.ErrValidation)
	}
	for _, v := range c.State.Data.Vendors {
		if v.Email == email {
			return fmt.Errorf("%w: email already registered", globals.ErrValidation)
		}
	}
	c.State.Data.Vendors = append(c.State.Data.Vendors, models.Vendor{
		ID:       c.State.NextVendorID(),
		Name:     name,
		Email:    email,
		Password: pw,
		Category: category,
	})
	c.State.Save()
	c.Nav.Navigate(view.PageVendorLogin)
	return nil
}

// Logout clears the session, the cart and the browsing context, persists and
// lands on the index page.
func (c *Controller) Logout() {
	c.State.Data.Session = nil
	c.State.Data.Cart = []models.CartLine{}
	c.State.Data.CurrentVendorView = 0
	c.State.Save()
	c.Nav.Navigate(view.PageIndex)
}

func (c *Controller) adminID() string {
	if c.AdminID != "" {
		return c.AdminID
	}
	return DefaultAdminID
}

func (c *Controller) adminPassword() string {
	if c.AdminPassword != "" {
		return c.AdminPassword
	}
	return DefaultAdminPassword
}
