// Package models contains domain types for hotel reservations.
// Registry state lives in internal/registry; the audit ledger in internal/adapters/sqlite.
package models

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultHotelName is the hotel every registry books into unless configured otherwise.
const DefaultHotelName = "The Grand Budapest Hotel"

// Guest represents a person named in a reservation.
// Two guests are the same guest iff name, age and height all match.
type Guest struct {
	Name   string `json:"name" yaml:"name"`
	Age    uint8  `json:"age" yaml:"age"`
	Height int    `json:"height" yaml:"height"`
}

// String renders the guest in the name:age:height form accepted by the CLI.
func (g Guest) String() string {
	return fmt.Sprintf("%s:%d:%d", g.Name, g.Age, g.Height)
}

// Reservation is an immutable booking record.
// This is the domain type returned by the registry; callers receive copies.
type Reservation struct {
	ID        string
	HotelName string
	Guests    []Guest
	Days      int
	Price     decimal.Decimal
	Breakfast bool
}

// Clone returns a copy that shares no guest slice with r.
func (r Reservation) Clone() Reservation {
	r.Guests = slices.Clone(r.Guests)
	return r
}

// GuestNames returns guest names in reservation order.
func (r Reservation) GuestNames() []string {
	names := make([]string, len(r.Guests))
	for i, g := range r.Guests {
		names[i] = g.Name
	}
	return names
}
