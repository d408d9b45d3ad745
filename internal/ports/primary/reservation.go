// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/example/hotelres/internal/models"
)

// ReservationService defines the primary port for reservation operations.
type ReservationService interface {
	// CreateReservation books guests for a stay and returns the stored reservation.
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*CreateReservationResponse, error)

	// GetReservation retrieves a reservation by ID.
	GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error)

	// ListReservations returns all active reservations in booking order.
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	// ListIssuedIDs returns the IDs of all active reservations in booking order.
	ListIssuedIDs(ctx context.Context) ([]string, error)

	// CancelReservation removes a reservation.
	CancelReservation(ctx context.Context, reservationID string) error

	// QuotePrice prices a stay without booking it.
	QuotePrice(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)

	// History returns the most recent ledger entries, oldest first.
	History(ctx context.Context, limit int) ([]*AuditEntry, error)

	// AuditSummary returns ledger entry counts per action.
	AuditSummary(ctx context.Context) (map[string]int, error)

	// HotelName returns the hotel being booked.
	HotelName() string
}

// CreateReservationRequest contains parameters for creating a reservation.
type CreateReservationRequest struct {
	Guests    []models.Guest
	Days      int
	Breakfast bool
}

// CreateReservationResponse contains the result of creating a reservation.
type CreateReservationResponse struct {
	ReservationID string
	Reservation   *models.Reservation
}

// QuoteRequest contains parameters for a price quote.
type QuoteRequest struct {
	Guests    int
	Days      int
	Breakfast bool
}

// QuoteResponse contains a price quote.
type QuoteResponse struct {
	Price decimal.Decimal
}

// AuditEntry represents a ledger entry at the port boundary.
type AuditEntry struct {
	ID            string
	Action        string
	ReservationID string
	Actor         string
	Detail        string
	CreatedAt     string
}
