package models

// Product is a vendor listing. The vendor name is a snapshot taken when the
// product is created, so renaming or deleting the vendor never rewrites it.
// Products are never edited in place; only delete and recreate.
type Product struct {
	ID         int     `json:"id"`
	VendorID   int     `json:"vendorId"`
	VendorName string  `json:"vendorName"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

// CartLine is one product in the active cart. All display fields are copied
// from the product at add time. One line per product; quantity accumulates.
type CartLine struct {
	ProductID  int     `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	VendorID   int     `json:"vendorId"`
	VendorName string  `json:"vendorName"`
	Qty        int     `json:"qty"`
}

// Total returns the line total.
func (c CartLine) Total() float64 {
	return c.Price * float64(c.Qty)
}
