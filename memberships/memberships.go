// Package memberships manages the admin-only membership records. Numbers come
// from their own counter and are the lookup key; the vendor name is free text,
// not a reference into the vendor collection.
package memberships

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

// Add creates an Active membership stamped with today's date.
func (c *Controller) Add(vendorName, duration string) (*models.Membership, error) {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return nil, err
	}
	if vendorName == "" {
		return nil, fmt.Errorf("%w: vendor name is required", globals.ErrValidation)
	}
	if duration == "" {
		return nil, fmt.Errorf("%w: please select a duration", globals.ErrValidation)
	}
	m := models.Membership{
		Number:     c.State.NextMembershipNum(),
		VendorName: vendorName,
		Duration:   duration,
		DateAdded:  utils.DateStamp(),
		Status:     models.MembershipActive,
	}
	c.State.Data.Memberships = append(c.State.Data.Memberships, m)
	c.State.Save()
	return &m, nil
}

// Lookup finds a membership by exact number. This backs the live vendor-name
// display next to the number field; a miss is the one lookup failure the UI
// reports.
func (c *Controller) Lookup(number int) (*models.Membership, error) {
	for i := range c.State.Data.Memberships {
		if c.State.Data.Memberships[i].Number == number {
			m := c.State.Data.Memberships[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("%w: membership %d", globals.ErrNotFound, number)
}

// Update applies an action to the membership with the given number: "cancel"
// sets status Cancelled; any other value is taken as a new duration, resets
// the added date to today and forces the record back to Active.
func (c *Controller) Update(number int, action string) (*models.Membership, error) {
	if err := auth.Authorize(c.State.Data.Session, models.RoleAdmin); err != nil {
		return nil, err
	}
	if number == 0 {
		return nil, fmt.Errorf("%w: membership number is required", globals.ErrValidation)
	}
	if action == "" {
		return nil, fmt.Errorf("%w: please select an action", globals.ErrValidation)
	}
	for i := range c.State.Data.Memberships {
		m := &c.State.Data.Memberships[i]
		if m.Number != number {
			continue
		}
		if action == models.MembershipCancel {
			m.Status = models.MembershipCancelled
		} else {
			m.Duration = action
			m.DateAdded = utils.DateStamp()
			m.Status = models.MembershipActive
		}
		c.State.Save()
		out := *m
		return &out, nil
	}
	return nil, fmt.Errorf("%w: membership not found", globals.ErrNotFound)
}

// All is the membership table.
func (c *Controller) All() []models.Membership {
	return c.State.Data.Memberships
}
