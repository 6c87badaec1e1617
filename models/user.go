package models

// Role identifies which kind of account a session belongs to.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
	RoleUser   Role = "user"
)

// User is a customer account. Passwords are stored as plaintext on purpose;
// the login contract is an exact email+password match.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Vendor is a seller account with a fixed category.
type Vendor struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category"`
}

// VendorCategories is the fixed set of categories a vendor can sign up under.
var VendorCategories = []string{
	"Florist",
	"Caterer",
	"Decorator",
	"Photographer",
	"Music",
	"Venue",
}

// Session is the single active identity. At most one of admin, vendor or user
// is active at a time; a nil session means anonymous browsing.
type Session struct {
	Role     Role   `json:"role"`
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category,omitempty"`
}
