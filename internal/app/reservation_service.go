package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	corereservation "github.com/example/hotelres/internal/core/reservation"
	"github.com/example/hotelres/internal/ctxutil"
	"github.com/example/hotelres/internal/models"
	"github.com/example/hotelres/internal/ports/primary"
	"github.com/example/hotelres/internal/ports/secondary"
)

// Registry is the reservation state the service drives.
// *registry.Registry satisfies it.
type Registry interface {
	HotelName() string
	AddReservation(guests []models.Guest, days int, breakfast bool) (models.Reservation, error)
	ListReservations() []models.Reservation
	CancelReservation(id string) error
	Get(id string) (models.Reservation, bool)
	IssuedIDs() []string
}

// ReservationServiceImpl implements the ReservationService interface.
type ReservationServiceImpl struct {
	registry Registry
	audit    secondary.AuditLog // nil disables the ledger
	log      zerolog.Logger
}

// NewReservationService creates a new ReservationService with injected dependencies.
func NewReservationService(registry Registry, audit secondary.AuditLog, log zerolog.Logger) *ReservationServiceImpl {
	return &ReservationServiceImpl{
		registry: registry,
		audit:    audit,
		log:      log.With().Str("component", "reservation_service").Logger(),
	}
}

// CreateReservation books guests for a stay.
func (s *ReservationServiceImpl) CreateReservation(ctx context.Context, req primary.CreateReservationRequest) (*primary.CreateReservationResponse, error) {
	res, err := s.registry.AddReservation(req.Guests, req.Days, req.Breakfast)
	if err != nil {
		s.record(ctx, secondary.AuditActionReject, "", fmt.Sprintf("%s [%s]", err, guestList(req.Guests)))
		return nil, err
	}

	s.record(ctx, secondary.AuditActionAdd, res.ID,
		fmt.Sprintf("%d guest(s), %d day(s), breakfast=%t, price=%s", len(res.Guests), res.Days, res.Breakfast, res.Price.StringFixed(2)))

	return &primary.CreateReservationResponse{
		ReservationID: res.ID,
		Reservation:   &res,
	}, nil
}

// GetReservation retrieves a reservation by ID.
func (s *ReservationServiceImpl) GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	res, ok := s.registry.Get(reservationID)
	if !ok {
		return nil, corereservation.NewNotFound(reservationID)
	}
	return &res, nil
}

// ListReservations returns all active reservations.
func (s *ReservationServiceImpl) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.registry.ListReservations(), nil
}

// ListIssuedIDs returns the IDs of all active reservations.
func (s *ReservationServiceImpl) ListIssuedIDs(ctx context.Context) ([]string, error) {
	return s.registry.IssuedIDs(), nil
}

// CancelReservation removes a reservation.
func (s *ReservationServiceImpl) CancelReservation(ctx context.Context, reservationID string) error {
	if err := s.registry.CancelReservation(reservationID); err != nil {
		return err
	}
	s.record(ctx, secondary.AuditActionCancel, reservationID, "")
	return nil
}

// QuotePrice prices a stay without touching registry state.
func (s *ReservationServiceImpl) QuotePrice(ctx context.Context, req primary.QuoteRequest) (*primary.QuoteResponse, error) {
	if err := corereservation.ValidateQuote(req.Guests, req.Days); err != nil {
		return nil, err
	}
	return &primary.QuoteResponse{
		Price: corereservation.CalculatePrice(uint8(req.Guests), req.Days, req.Breakfast),
	}, nil
}

// History returns recent ledger entries.
func (s *ReservationServiceImpl) History(ctx context.Context, limit int) ([]*primary.AuditEntry, error) {
	if s.audit == nil {
		return nil, nil
	}

	records, err := s.audit.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*primary.AuditEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToEntry(r)
	}
	return entries, nil
}

// AuditSummary returns ledger entry counts per action.
func (s *ReservationServiceImpl) AuditSummary(ctx context.Context) (map[string]int, error) {
	if s.audit == nil {
		return map[string]int{}, nil
	}

	counts, err := s.audit.CountByAction(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return counts, nil
}

// HotelName returns the hotel being booked.
func (s *ReservationServiceImpl) HotelName() string {
	return s.registry.HotelName()
}

// Helper methods

// record appends to the ledger. Ledger failures never fail the booking itself.
func (s *ReservationServiceImpl) record(ctx context.Context, action, reservationID, detail string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Append(ctx, &secondary.AuditRecord{
		Action:        action,
		ReservationID: reservationID,
		Actor:         ctxutil.ActorFromContext(ctx),
		Detail:        detail,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Str("id", reservationID).Msg("failed to write audit entry")
	}
}

func (s *ReservationServiceImpl) recordToEntry(r *secondary.AuditRecord) *primary.AuditEntry {
	return &primary.AuditEntry{
		ID:            r.ID,
		Action:        r.Action,
		ReservationID: r.ReservationID,
		Actor:         r.Actor,
		Detail:        r.Detail,
		CreatedAt:     r.CreatedAt,
	}
}

func guestList(guests []models.Guest) string {
	parts := make([]string, len(guests))
	for i, g := range guests {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}

// Ensure ReservationServiceImpl implements the interface.
var _ primary.ReservationService = (*ReservationServiceImpl)(nil)
