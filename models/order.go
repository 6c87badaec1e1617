package models

// OrderStatus values an order can carry. There is no transition graph; an
// authorized updater may set any of these directly.
const (
	OrderPending   = "Pending"
	OrderApproved  = "Approved"
	OrderRejected  = "Rejected"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
)

// OrderStatuses lists the selectable status values.
var OrderStatuses = []string{
	OrderPending,
	OrderApproved,
	OrderRejected,
	OrderShipped,
	OrderDelivered,
}

// OrderItem is a snapshot of a cart line at checkout. Later edits to the
// product or vendor never touch it.
type OrderItem struct {
	ProductID  int     `json:"productId"`
	VendorID   int     `json:"vendorId"`
	VendorName string  `json:"vendorName"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
}

// Order is immutable once placed, except for Status. UserID is nil for
// anonymous checkout.
type Order struct {
	ID            int         `json:"id"`
	UserID        *int        `json:"userId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Pin           string      `json:"pin"`
	Payment       string      `json:"payment"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	Date          string      `json:"date"`
}

// HasVendor reports whether any item in the order belongs to the vendor.
func (o Order) HasVendor(vendorID int) bool {
	for _, it := range o.Items {
		if it.VendorID == vendorID {
			return true
		}
	}
	return false
}

// VendorItems returns the order items belonging to the vendor.
func (o Order) VendorItems(vendorID int) []OrderItem {
	var items []OrderItem
	for _, it := range o.Items {
		if it.VendorID == vendorID {
			items = append(items, it)
		}
	}
	return items
}

// VendorTotal sums price×qty over the vendor's items only.
func (o Order) VendorTotal(vendorID int) float64 {
	var sum float64
	for _, it := range o.VendorItems(vendorID) {
		sum += it.Price * float64(it.Qty)
	}
	return sum
}
