// Package state owns the application aggregate: every collection, counter and
// the active session, serialized as one blob and written through after every
// mutation.
package state

import (
	"encoding/json"
	"log"

	"utsav/models"
	"utsav/storage"
	"utsav/view"
)

// Persisted-state keys.
const (
	StateKey = "ems_state"
	ThemeKey = "ems_theme"
)

// AppState is the single serializable aggregate. The transient fields at the
// bottom carry short-lived view context (which vendor is being browsed, which
// order a status update targets) and persist with the rest, so an interrupted
// workflow survives a restart the same way it survived a page reload.
type AppState struct {
	Session *Session `json:"session"`

	Users       []models.User       `json:"users"`
	Vendors     []models.Vendor     `json:"vendors"`
	Products    []models.Product    `json:"products"`
	Cart        []models.CartLine   `json:"cart"`
	Orders      []models.Order      `json:"orders"`
	Requests    []models.Request    `json:"requests"`
	Guests      []models.Guest      `json:"guests"`
	Memberships []models.Membership `json:"memberships"`

	NextUserID        int `json:"nextUserId"`
	NextVendorID      int `json:"nextVendorId"`
	NextProductID     int `json:"nextProductId"`
	NextOrderID       int `json:"nextOrderId"`
	NextRequestID     int `json:"nextRequestId"`
	NextMembershipNum int `json:"nextMembershipNum"`

	CurrentVendorView     int         `json:"currentVendorView"`
	CurrentOrderForUpdate int         `json:"currentOrderForUpdate"`
	ReturnPageAfterUpdate view.PageID `json:"returnPageAfterUpdate"`
}

// Session aliases the model type so callers read st.Data.Session directly.
type Session = models.Session

// Store couples the aggregate to its persistence boundary.
type Store struct {
	kv   storage.KV
	Data *AppState
}

// New returns a store holding the default aggregate. Call Load and
// SetupDefaults before use.
func New(kv storage.KV) *Store {
	return &Store{
		kv: kv,
		Data: &AppState{
			Users:       []models.User{},
			Vendors:     []models.Vendor{},
			Products:    []models.Product{},
			Cart:        []models.CartLine{},
			Orders:      []models.Order{},
			Requests:    []models.Request{},
			Guests:      []models.Guest{},
			Memberships: []models.Membership{},

			NextUserID:        1,
			NextVendorID:      1,
			NextProductID:     1,
			NextOrderID:       1,
			NextRequestID:     1,
			NextMembershipNum: 1,

			ReturnPageAfterUpdate: view.PageVendorProductStatus,
		},
	}
}

// Load merges the persisted blob into the aggregate. Unmarshalling over the
// defaulted struct overwrites only the top-level keys present in the blob, so
// partial or legacy blobs keep defaults for everything else. Read or parse
// failures are logged and leave the aggregate as it was.
func (s *Store) Load() {
	data, ok, err := s.kv.Get(StateKey)
	if err != nil {
		log.Println("state: failed to load data:", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, s.Data); err != nil {
		log.Println("state: failed to parse saved data:", err)
	}
}

// Save writes the whole aggregate through to storage. Failures are logged and
// swallowed; in-memory state stays authoritative for the rest of the session.
func (s *Store) Save() {
	data, err := json.Marshal(s.Data)
	if err != nil {
		log.Println("state: failed to serialize data:", err)
		return
	}
	if err := s.kv.Set(StateKey, data); err != nil {
		log.Println("state: failed to save data:", err)
	}
}

// SetupDefaults seeds one test user and one test vendor, but only into empty
// collections so repeated startups do not duplicate them.
func (s *Store) SetupDefaults() {
	if len(s.Data.Users) == 0 {
		s.Data.Users = append(s.Data.Users, models.User{
			ID:       s.NextUserID(),
			Name:     "Test User",
			Email:    "user@test.com",
			Password: "user123",
		})
	}
	if len(s.Data.Vendors) == 0 {
		s.Data.Vendors = append(s.Data.Vendors, models.Vendor{
			ID:       s.NextVendorID(),
			Name:     "Riya Florist",
			Email:    "riya@test.com",
			Password: "vendor123",
			Category: "Florist",
		})
	}
	s.Save()
}

// Counter helpers: return the next id and advance. Freed values are never
// reused because the counters only move forward.

func (s *Store) NextUserID() int {
	id := s.Data.NextUserID
	s.Data.NextUserID++
	return id
}

func (s *Store) NextVendorID() int {
	id := s.Data.NextVendorID
	s.Data.NextVendorID++
	return id
}

func (s *Store) NextProductID() int {
	id := s.Data.NextProductID
	s.Data.NextProductID++
	return id
}

func (s *Store) NextOrderID() int {
	id := s.Data.NextOrderID
	s.Data.NextOrderID++
	return id
}

func (s *Store) NextRequestID() int {
	id := s.Data.NextRequestID
	s.Data.NextRequestID++
	return id
}

func (s *Store) NextMembershipNum() int {
	n := s.Data.NextMembershipNum
	s.Data.NextMembershipNum++
	return n
}
