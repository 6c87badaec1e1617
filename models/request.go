package models

// Request statuses. Pending is the only state with available actions; both
// Approved and Rejected are terminal.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// Request is a user asking a vendor to stock an item. User and vendor names
// are snapshots taken at submission time.
type Request struct {
	ID         int    `json:"id"`
	UserID     int    `json:"userId"`
	UserName   string `json:"userName"`
	VendorID   int    `json:"vendorId"`
	VendorName string `json:"vendorName"`
	ItemName   string `json:"itemName"`
	Qty        int    `json:"qty"`
	Status     string `json:"status"`
}

// Guest is an entry on a user's event guest list. Guests carry no id; a guest
// is identified by its position within the owning user's filtered subsequence,
// and callers remove by that position.
type Guest struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}
