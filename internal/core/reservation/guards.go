package reservation

import (
	"fmt"

	"github.com/example/hotelres/internal/models"
)

// MaxGuests is the largest party a single reservation can price.
const MaxGuests = 255

// IsUniqueIdentifier reports whether no stored reservation carries id.
func IsUniqueIdentifier(id string, stored []models.Reservation) bool {
	for _, r := range stored {
		if r.ID == id {
			return false
		}
	}
	return true
}

// HasUniqueGuests reports whether none of the candidates already appears in a
// stored reservation. The first clash is returned for error reporting.
func HasUniqueGuests(candidates []models.Guest, stored []models.Reservation) (bool, *models.Guest) {
	for _, r := range stored {
		for _, existing := range r.Guests {
			for _, g := range candidates {
				if existing == g {
					clash := g
					return false, &clash
				}
			}
		}
	}
	return true, nil
}

// AddContext carries the pre-evaluated uniqueness checks for an add.
type AddContext struct {
	ReservationID   string
	IdentifierFree  bool
	GuestsFree      bool
	ConflictingWith *models.Guest
}

// CanAddReservation applies the add decision table.
// Rule: commit only when both the identifier and every guest are unused.
func CanAddReservation(ctx AddContext) error {
	switch {
	case ctx.IdentifierFree && ctx.GuestsFree:
		return nil
	case !ctx.IdentifierFree && !ctx.GuestsFree:
		return NewCombinedCollision(NewIdentifierCollision(ctx.ReservationID), NewGuestCollision(guestLabel(ctx.ConflictingWith)))
	case ctx.IdentifierFree && !ctx.GuestsFree:
		return NewGuestCollision(guestLabel(ctx.ConflictingWith))
	case !ctx.IdentifierFree && ctx.GuestsFree:
		return NewIdentifierCollision(ctx.ReservationID)
	default:
		panic("reservation: unique ID and unique guest detection disagree with the decision table")
	}
}

// ValidateRequest checks the shape of an add request before any state is consulted.
func ValidateRequest(guests []models.Guest, days int) error {
	return ValidateQuote(len(guests), days)
}

// ValidateQuote checks a guest count and stay length for pricing.
func ValidateQuote(guestCount, days int) error {
	if guestCount <= 0 {
		return NewInvalidRequest("a reservation needs at least one guest")
	}
	if guestCount > MaxGuests {
		return NewInvalidRequest(fmt.Sprintf("%d guests exceeds the limit of %d", guestCount, MaxGuests))
	}
	if days <= 0 {
		return NewInvalidRequest(fmt.Sprintf("stay must be at least one day, got %d", days))
	}
	return nil
}

// CanCancelReservation requires the reservation to exist.
func CanCancelReservation(id string, stored []models.Reservation) error {
	if IsUniqueIdentifier(id, stored) {
		return NewNotFound(id)
	}
	return nil
}

func guestLabel(g *models.Guest) string {
	if g == nil {
		return ""
	}
	return g.String()
}
