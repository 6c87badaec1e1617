// Package guests manages per-user event guest lists. Guests have no id: a
// guest is addressed by its position within the owning user's filtered
// subsequence, and removal resolves that position back to the global slice.
package guests

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

// Add appends a guest for the session user.
func (c *Controller) Add(name, phone, email string) error {
	sess := c.State.Data.Session
	if err := auth.Authorize(sess, models.RoleUser); err != nil {
		return err
	}
	if name == "" || phone == "" || email == "" {
		return fmt.Errorf("%w: all fields are required", globals.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: please enter a valid email", globals.ErrValidation)
	}
	c.State.Data.Guests = append(c.State.Data.Guests, models.Guest{
		UserID: sess.ID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	})
	c.State.Save()
	return nil
}

// Mine lists the session user's guests in storage order. Positions in this
// list are the handles Remove accepts.
func (c *Controller) Mine() []models.Guest {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleUser) != nil {
		return nil
	}
	list := []models.Guest{}
	for _, g := range c.State.Data.Guests {
		if g.UserID == sess.ID {
			list = append(list, g)
		}
	}
	return list
}

// Remove deletes the guest at the given position within the session user's
// filtered list. Out-of-range positions are a silent no-op; other users'
// guests are never touched.
func (c *Controller) Remove(idx int) error {
	sess := c.State.Data.Session
	if err := auth.Authorize(sess, models.RoleUser); err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}
	seen := 0
	for i, g := range c.State.Data.Guests {
		if g.UserID != sess.ID {
			continue
		}
		if seen == idx {
			c.State.Data.Guests = append(c.State.Data.Guests[:i], c.State.Data.Guests[i+1:]...)
			c.State.Save()
			return nil
		}
		seen++
	}
	return nil
}
