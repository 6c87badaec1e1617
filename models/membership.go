package models

// Membership statuses.
const (
	MembershipActive    = "Active"
	MembershipCancelled = "Cancelled"
)

// MembershipDurations lists the selectable durations. The update action
// "cancel" is separate from these.
var MembershipDurations = []string{
	"6 months",
	"1 year",
	"2 years",
}

// MembershipCancel is the update action that cancels instead of extending.
const MembershipCancel = "cancel"

// Membership is an admin-managed record. Number comes from its own counter,
// independent of the other id counters, and is the lookup key. VendorName is
// free text, not a foreign key into the vendor collection.
type Membership struct {
	Number     int    `json:"number"`
	VendorName string `json:"vendorName"`
	Duration   string `json:"duration"`
	DateAdded  string `json:"dateAdded"`
	Status     string `json:"status"`
}
