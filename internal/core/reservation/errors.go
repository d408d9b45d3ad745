package reservation

import (
	"errors"
	"fmt"
)

// Kind identifies which reservation rule was violated.
type Kind int

const (
	// KindIdentifierCollision means a generated ID is already held by a stored reservation.
	KindIdentifierCollision Kind = iota + 1
	// KindGuestCollision means a candidate guest already belongs to a stored reservation.
	KindGuestCollision
	// KindCombined carries an identifier collision and a guest collision together.
	KindCombined
	// KindNotFound means no stored reservation has the requested ID.
	KindNotFound
	// KindInvalidRequest means the request itself is malformed (no guests, non-positive days).
	KindInvalidRequest
)

// Sentinels for errors.Is matching. A combined error matches both collision sentinels.
var (
	ErrIdentifierCollision = errors.New("reservation found with the same ID")
	ErrGuestCollision      = errors.New("reservation found for a customer")
	ErrNotFound            = errors.New("no reservation found")
	ErrInvalidRequest      = errors.New("invalid reservation request")
)

func (k Kind) String() string {
	switch k {
	case KindIdentifierCollision:
		return "identifier_collision"
	case KindGuestCollision:
		return "guest_collision"
	case KindCombined:
		return "combined_collision"
	case KindNotFound:
		return "not_found"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type returned by reservation operations.
type Error struct {
	Kind          Kind
	ReservationID string // ID involved, when there is one
	Detail        string
	Errs          []error // populated for KindCombined only
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindIdentifierCollision:
		msg = ErrIdentifierCollision.Error()
	case KindGuestCollision:
		msg = ErrGuestCollision.Error()
	case KindCombined:
		msg = "reservation found with the same ID and found for a customer"
	case KindNotFound:
		msg = ErrNotFound.Error()
	case KindInvalidRequest:
		msg = ErrInvalidRequest.Error()
	default:
		msg = "reservation error"
	}
	if e.ReservationID != "" {
		msg += fmt.Sprintf(" (id: %s)", e.ReservationID)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap exposes the kind's sentinel, or both children for a combined error.
func (e *Error) Unwrap() []error {
	switch e.Kind {
	case KindIdentifierCollision:
		return []error{ErrIdentifierCollision}
	case KindGuestCollision:
		return []error{ErrGuestCollision}
	case KindCombined:
		return e.Errs
	case KindNotFound:
		return []error{ErrNotFound}
	case KindInvalidRequest:
		return []error{ErrInvalidRequest}
	}
	return nil
}

// NewIdentifierCollision returns an identifier collision error for id.
func NewIdentifierCollision(id string) *Error {
	return &Error{Kind: KindIdentifierCollision, ReservationID: id}
}

// NewGuestCollision returns a guest collision error naming the offending guest.
func NewGuestCollision(guest string) *Error {
	return &Error{Kind: KindGuestCollision, Detail: guest}
}

// NewCombinedCollision wraps an identifier collision and a guest collision.
func NewCombinedCollision(idErr, guestErr *Error) *Error {
	return &Error{
		Kind:          KindCombined,
		ReservationID: idErr.ReservationID,
		Detail:        guestErr.Detail,
		Errs:          []error{idErr, guestErr},
	}
}

// NewNotFound returns a not-found error for id.
func NewNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, ReservationID: id}
}

// NewInvalidRequest returns an invalid-request error with the given reason.
func NewInvalidRequest(reason string) *Error {
	return &Error{Kind: KindInvalidRequest, Detail: reason}
}

// KindOf reports the Kind of err, or 0 if err is not a reservation error.
func KindOf(err error) Kind {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return 0
}
