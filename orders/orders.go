// Package orders covers fulfillment: the role-scoped order tables and the
// shared status-update workflow both vendor and admin screens reuse.
package orders

import (
	"utsav/auth"
	"utsav/models"
	"utsav/state"
	"utsav/view"
)

type Controller struct {
	State *state.Store
	Nav   *view.Router
}

// TransactionRow is one order in the vendor transactions table, with the
// totals narrowed to the vendor's own items.
type TransactionRow struct {
	OrderID      int                `json:"orderId"`
	CustomerName string             `json:"customerName"`
	Items        []models.OrderItem `json:"items"`
	VendorTotal  float64            `json:"vendorTotal"`
	Payment      string             `json:"payment"`
	Date         string             `json:"date"`
}

// VendorTransactions lists orders containing at least one of the vendor's
// items, with the vendor-scoped item list and subtotal.
func (c *Controller) VendorTransactions() []TransactionRow {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleVendor) != nil {
		return nil
	}
	rows := []TransactionRow{}
	for _, o := range c.State.Data.Orders {
		if !o.HasVendor(sess.ID) {
			continue
		}
		rows = append(rows, TransactionRow{
			OrderID:      o.ID,
			CustomerName: o.CustomerName,
			Items:        o.VendorItems(sess.ID),
			VendorTotal:  o.VendorTotal(sess.ID),
			Payment:      o.Payment,
			Date:         o.Date,
		})
	}
	return rows
}

// VendorOrders lists the full orders that intersect the vendor, for the
// product-status screen.
func (c *Controller) VendorOrders() []models.Order {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleVendor) != nil {
		return nil
	}
	list := []models.Order{}
	for _, o := range c.State.Data.Orders {
		if o.HasVendor(sess.ID) {
			list = append(list, o)
		}
	}
	return list
}

// UserOrders lists the session user's own orders.
func (c *Controller) UserOrders() []models.Order {
	sess := c.State.Data.Session
	if auth.Authorize(sess, models.RoleUser) != nil {
		return nil
	}
	list := []models.Order{}
	for _, o := range c.State.Data.Orders {
		if o.UserID != nil && *o.UserID == sess.ID {
			list = append(list, o)
		}
	}
	return list
}

// AllOrders is the admin table.
func (c *Controller) AllOrders() []models.Order {
	if auth.Authorize(c.State.Data.Session, models.RoleAdmin) != nil {
		return nil
	}
	return c.State.Data.Orders
}

// OpenStatusUpdate records which order a status change targets and which page
// to return to afterwards, then moves to the shared update view. Both the
// vendor product-status table and the admin orders table start here with
// different return pages.
func (c *Controller) OpenStatusUpdate(orderID int, returnPage view.PageID) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleVendor, models.RoleAdmin); err != nil {
		return err
	}
	c.State.Data.CurrentOrderForUpdate = orderID
	c.State.Data.ReturnPageAfterUpdate = returnPage
	c.Nav.Navigate(view.PageUpdateStatus)
	return nil
}

// SaveStatus overwrites the pending order's status and navigates back to the
// recorded return page. The updater must be the admin or a vendor with an
// item in the order. A stale order id is a silent no-op.
func (c *Controller) SaveStatus(status string) error {
	sess := c.State.Data.Session
	if err := auth.Authorize(sess, models.RoleVendor, models.RoleAdmin); err != nil {
		return err
	}
	for i := range c.State.Data.Orders {
		o := &c.State.Data.Orders[i]
		if o.ID != c.State.Data.CurrentOrderForUpdate {
			continue
		}
		if sess.Role == models.RoleVendor && !o.HasVendor(sess.ID) {
			return nil
		}
		o.Status = status
		c.State.Save()
		c.Nav.Navigate(c.State.Data.ReturnPageAfterUpdate)
		return nil
	}
	return nil
}

// GoBack abandons the update and returns to the recorded page.
func (c *Controller) GoBack() {
	c.Nav.Navigate(c.State.Data.ReturnPageAfterUpdate)
}

// Delete removes an order by id from the global collection. The confirmation
// prompt is the caller's gate.
func (c *Controller) Delete(id int) error {
	if err := auth.Authorize(c.State.Data.Session, models.RoleVendor, models.RoleAdmin); err != nil {
		return err
	}
	kept := c.State.Data.Orders[:0]
	for _, o := range c.State.Data.Orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	c.State.Data.Orders = kept
	c.State.Save()
	return nil
}
