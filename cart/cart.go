// Package cart manages the active session's cart lines. The cart lives inside
// the persisted aggregate but only exists for the current session; logout and
// checkout both clear it.
package cart

import (
	"utsav/models"
	"utsav/state"
	"utsav/view"
)

type Controller struct {
	State *state.Store
	Nav   *view.Router
}

// Add puts a product in the cart. A repeat add bumps the existing line's
// quantity instead of creating a second line; a vanished product is a silent
// no-op. The line snapshots the product's display fields at add time.
func (c *Controller) Add(productID int) {
	var product *models.Product
	for i := range c.State.Data.Products {
		if c.State.Data.Products[i].ID == productID {
			product = &c.State.Data.Products[i]
			break
		}
	}
	if product == nil {
		return
	}

	for i := range c.State.Data.Cart {
		if c.State.Data.Cart[i].ProductID == productID {
			c.State.Data.Cart[i].Qty++
			c.State.Save()
			return
		}
	}

	c.State.Data.Cart = append(c.State.Data.Cart, models.CartLine{
		ProductID:  productID,
		Name:       product.Name,
		Price:      product.Price,
		Image:      product.Image,
		VendorID:   product.VendorID,
		VendorName: product.VendorName,
		Qty:        1,
	})
	c.State.Save()
}

// IncreaseQty bumps a line's quantity. Missing lines are ignored.
func (c *Controller) IncreaseQty(productID int) {
	for i := range c.State.Data.Cart {
		if c.State.Data.Cart[i].ProductID == productID {
			c.State.Data.Cart[i].Qty++
			c.State.Save()
			return
		}
	}
}

// DecreaseQty lowers a line's quantity but never below 1. Removing a line is
// the explicit Remove action, not a decrement to zero.
func (c *Controller) DecreaseQty(productID int) {
	for i := range c.State.Data.Cart {
		if c.State.Data.Cart[i].ProductID == productID {
			if c.State.Data.Cart[i].Qty > 1 {
				c.State.Data.Cart[i].Qty--
				c.State.Save()
			}
			return
		}
	}
}

// Remove deletes a line outright.
func (c *Controller) Remove(productID int) {
	kept := c.State.Data.Cart[:0]
	for _, line := range c.State.Data.Cart {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.State.Data.Cart = kept
	c.State.Save()
}

// Clear empties the cart. The confirmation prompt is the caller's gate.
func (c *Controller) Clear() {
	c.State.Data.Cart = []models.CartLine{}
	c.State.Save()
}

// BadgeCount is the total quantity across all lines.
func (c *Controller) BadgeCount() int {
	count := 0
	for _, line := range c.State.Data.Cart {
		count += line.Qty
	}
	return count
}

// View is the cart page model: every line with its total plus the grand total.
type View struct {
	Lines      []models.CartLine `json:"lines"`
	GrandTotal float64           `json:"grandTotal"`
	BadgeCount int               `json:"badgeCount"`
}

func (c *Controller) View() View {
	v := View{Lines: c.State.Data.Cart}
	if v.Lines == nil {
		v.Lines = []models.CartLine{}
	}
	for _, line := range v.Lines {
		v.GrandTotal += line.Total()
		v.BadgeCount += line.Qty
	}
	return v
}
