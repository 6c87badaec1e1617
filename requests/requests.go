// Package requests implements user-to-vendor item requests. A request is born
// Pending; Approve and Reject are terminal and only reachable from Pending.
package requests

import (
	"fmt"

	"utsav/auth"
	"utsav/globals"
	"utsav/models"
	"utsav/state"
)

type Controller struct {
	State *state.Store
}

// Submit files a Pending request against an existing vendor, snapshotting the
// requesting user's and the vendor's names.
func (c *Controller) Submit(vendorID int, itemName string, qty int) (*models.Request, error) {
	sess := c.State.Data.Session
	if err := auth.Authorize(sess, models.RoleUser); err != nil {
		return nil, err
	}
	if vendorID == 0 || itemName == "" || qty <= 0 {
		return nil, fmt.Errorf("%w: please fill all fields correctly", globals.ErrValidation)
	}
	var vendor *models.Vendor
	for i := range c.State.Data.Vendors {
		if c.State.Data.Vendors[i].ID == vendorID {
			vendor = &c.State.Data.Vendors[i]
			break
		}
	}
	if vendor == nil {
		return nil, nil
	}
	req := models.Request{
		ID:         c.State.NextRequestID(),
		UserID:     sess.ID,
		UserName:   sess.Name,
		VendorID:   vendorID,
		VendorName: vendor.Name,
		ItemName:   itemName,
		Qty:        qty,
		Status:     models.RequestPending,
	}
	c.State.Data.Requests = append(c.State.Data.Requests, req)
	c.State.Save()
	return &req, nil
}

// Approve moves a Pending request to Approved. Allowed for the admin or the
// request's target vendor; anything else, or a non-Pending request, leaves the
// store untouched.
func (c *Controller) Approve(id int) error {
	return c.setStatus(id, models.RequestApproved)
}

// Reject moves a Pending request to Rejected under the same rules as Approve.
func (c *Controller) Reject(id int) error {
	return c.setStatus(id, models.RequestRejected)
}

func (c *Controller) setStatus(id int, status string) error {
	sess := c.State.Data.Session
	if err := auth.Authorize(sess, models.RoleVendor, models.RoleAdmin); err != nil {
		return err
	}
	for i := range c.State.Data.Requests {
		req := &c.State.Data.Requests[i]
		if req.ID != id {
			continue
		}
		if sess.Role == models.RoleVendor && req.VendorID != sess.ID {
			return globals.ErrUnauthorized
		}
		if req.Status != models.RequestPending {
			return nil
		}
		req.Status = status
		c.State.Save()
		return nil
	}
	return nil
}

// Mine lists the session user's own requests.
func (c *Controller) Mine() []models.Request {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleUser) != nil {
		return nil
	}
	list := []models.Request{}
	for _, r := range c.State.Data.Requests {
		if r.UserID == sess.ID {
			list = append(list, r)
		}
	}
	return list
}

// Incoming lists the requests targeting the session vendor.
func (c *Controller) Incoming() []models.Request {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleVendor) != nil {
		return nil
	}
	list := []models.Request{}
	for _, r := range c.State.Data.Requests {
		if r.VendorID == sess.ID {
			list = append(list, r)
		}
	}
	return list
}

// All is the admin table.
func (c *Controller) All() []models.Request {
	if auth.Authorize(c.State.Data.Session, models.RoleAdmin) != nil {
		return nil
	}
	return c.State.Data.Requests
}
