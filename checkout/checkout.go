// Package checkout turns the cart into an order. Anonymous checkout is
// allowed: an order placed without a session simply has no owning user.
package checkout

import (
	"fmt"

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

// Form carries the checkout fields. Every field is required.
type Form struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Payment string `json:"payment"`
	Address string `json:"address"`
	State   string `json:"state"`
	City    string `json:"city"`
	Pin     string `json:"pin"`
}

// Summary is the checkout page header: item count and grand total.
type Summary struct {
	ItemCount  int     `json:"itemCount"`
	GrandTotal float64 `json:"grandTotal"`
}

func (c *Controller) Summary() Summary {
	var s Summary
	for _, line := range c.State.Data.Cart {
		s.ItemCount += line.Qty
		s.GrandTotal += line.Total()
	}
	return s
}

// PlaceOrder validates the form, snapshots the cart into order items, appends
// the order with status Pending, clears the cart and lands on the success
// page. Later price or product changes never touch the placed order.
func (c *Controller) PlaceOrder(form Form) (*models.Order, error) {
	if len(c.State.Data.Cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", globals.ErrValidation)
	}
	if form.Name == "" || form.Phone == "" || form.Email == "" || form.Payment == "" ||
		form.Address == "" || form.State == "" || form.City == "" || form.Pin == "" {
		return nil, fmt.Errorf("%w: all fields are required", globals.ErrValidation)
	}
	if !utils.IsValidEmail(form.Email) {
		return nil, fmt.Errorf("%w: please enter a valid email", globals.ErrValidation)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(c.State.Data.Cart))
	for _, line := range c.State.Data.Cart {
		total += line.Total()
		items = append(items, models.OrderItem{
			ProductID:  line.ProductID,
			VendorID:   line.VendorID,
			VendorName: line.VendorName,
			Name:       line.Name,
			Price:      line.Price,
			Qty:        line.Qty,
		})
	}

	var userID *int
	if sess := c.State.Data.Session; sess != nil && sess.Role == models.RoleUser {
		id := sess.ID
		userID = &id
	}

	order := models.Order{
		ID:            c.State.NextOrderID(),
		UserID:        userID,
		CustomerName:  form.Name,
		CustomerEmail: form.Email,
		CustomerPhone: form.Phone,
		Address:       form.Address,
		City:          form.City,
		State:         form.State,
		Pin:           form.Pin,
		Payment:       form.Payment,
		Items:         items,
		Total:         total,
		Status:        models.OrderPending,
		Date:          utils.DateStamp(),
	}

	c.State.Data.Orders = append(c.State.Data.Orders, order)
	c.State.Data.Cart = []models.CartLine{}
	c.State.Save()
	c.Nav.Navigate(view.PageSuccess)
	return &order, nil
}
