// Package registry owns the in-memory reservation state for one hotel.
package registry

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/rs/zerolog"

	corereservation "github.com/example/hotelres/internal/core/reservation"
	"github.com/example/hotelres/internal/models"
)

// Registry stores reservations keyed by ID in insertion order.
// The issued-ID view is the key sequence of the same map, so the two can never
// drift apart.
type Registry struct {
	mu        sync.RWMutex
	hotelName string
	entries   *orderedmap.OrderedMap[string, models.Reservation]
	rng       *rand.Rand
	log       zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithRand sets the random source used for ID generation.
func WithRand(rng *rand.Rand) Option {
	return func(r *Registry) { r.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// New creates an empty registry booking into hotelName.
func New(hotelName string, opts ...Option) *Registry {
	if hotelName == "" {
		hotelName = models.DefaultHotelName
	}
	r := &Registry{
		hotelName: hotelName,
		entries:   orderedmap.NewOrderedMap[string, models.Reservation](),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With().Str("component", "registry").Logger()
	return r
}

// HotelName returns the hotel this registry books into.
func (r *Registry) HotelName() string {
	return r.hotelName
}

// AddReservation prices and stores a reservation for guests.
// It fails with a *reservation.Error when a guest is already booked (or, in
// principle, when the fresh ID is already taken).
func (r *Registry) AddReservation(guests []models.Guest, days int, breakfast bool) (models.Reservation, error) {
	if err := corereservation.ValidateRequest(guests, days); err != nil {
		return models.Reservation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := corereservation.AssignUniqueID(r.rng, r.issuedLocked)
	price := corereservation.CalculatePrice(uint8(len(guests)), days, breakfast)

	stored := r.snapshotLocked()
	guestsFree, clash := corereservation.HasUniqueGuests(guests, stored)
	err := corereservation.CanAddReservation(corereservation.AddContext{
		ReservationID:   id,
		IdentifierFree:  corereservation.IsUniqueIdentifier(id, stored),
		GuestsFree:      guestsFree,
		ConflictingWith: clash,
	})
	if err != nil {
		r.log.Info().Err(err).Int("guests", len(guests)).Msg("reservation rejected")
		return models.Reservation{}, err
	}

	res := models.Reservation{
		ID:        id,
		HotelName: r.hotelName,
		Guests:    slices.Clone(guests),
		Days:      days,
		Price:     price,
		Breakfast: breakfast,
	}
	r.entries.Set(id, res)

	r.log.Info().
		Str("id", id).
		Int("guests", len(guests)).
		Int("days", days).
		Bool("breakfast", breakfast).
		Str("price", price.StringFixed(2)).
		Msg("reservation added")

	return res.Clone(), nil
}

// ListReservations returns every stored reservation in insertion order.
func (r *Registry) ListReservations() []models.Reservation {
	return r.Reservations()
}

// CancelReservation removes the reservation with id.
func (r *Registry) CancelReservation(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := corereservation.CanCancelReservation(id, r.snapshotLocked()); err != nil {
		return err
	}

	r.entries.Delete(id)
	r.log.Info().Str("id", id).Msg("reservation cancelled")
	return nil
}

// Get returns the reservation with id, if stored.
func (r *Registry) Get(id string) (models.Reservation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.entries.Get(id)
	if !ok {
		return models.Reservation{}, false
	}
	return res.Clone(), true
}

// Reservations returns a copy of the stored reservations in insertion order.
func (r *Registry) Reservations() []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.snapshotLocked()
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}

// IssuedIDs returns the IDs currently in use, in insertion order.
func (r *Registry) IssuedIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, r.entries.Len())
	for id := range r.entries.AllFromFront() {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of stored reservations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries.Len()
}

// snapshotLocked copies map values in order. Caller holds r.mu.
func (r *Registry) snapshotLocked() []models.Reservation {
	out := make([]models.Reservation, 0, r.entries.Len())
	for _, res := range r.entries.AllFromFront() {
		out = append(out, res)
	}
	return out
}

// issuedLocked reports whether id is already a key. Caller holds r.mu.
func (r *Registry) issuedLocked(id string) bool {
	_, ok := r.entries.Get(id)
	return ok
}
