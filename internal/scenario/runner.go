package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	cliadapter "github.com/example/hotelres/internal/adapters/cli"
	corereservation "github.com/example/hotelres/internal/core/reservation"
	"github.com/example/hotelres/internal/models"
	"github.com/example/hotelres/internal/ports/primary"
)

// ErrFailed is wrapped by every expectation mismatch.
var ErrFailed = errors.New("scenario failed")

// Runner replays scenarios against one service, printing through the CLI adapter.
type Runner struct {
	service primary.ReservationService
	adapter *cliadapter.ReservationAdapter
	out     io.Writer
	log     zerolog.Logger
}

// NewRunner creates a Runner that renders output to out.
func NewRunner(service primary.ReservationService, out io.Writer, log zerolog.Logger) *Runner {
	return &Runner{
		service: service,
		adapter: cliadapter.NewReservationAdapter(service, out),
		out:     out,
		log:     log.With().Str("component", "scenario").Logger(),
	}
}

// Result summarises a run.
type Result struct {
	Steps    int
	Rejected int
	// IDs maps add labels to the reservation IDs they produced.
	IDs map[string]string
}

// Run executes every step in order and stops at the first mismatch.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	res := &Result{IDs: map[string]string{}}
	r.log.Info().Str("scenario", sc.Name).Int("steps", len(sc.Steps)).Msg("running scenario")

	for i, step := range sc.Steps {
		var err error
		switch {
		case step.Add != nil:
			err = r.runAdd(ctx, sc, step.Add, res)
		case step.Cancel != nil:
			err = r.runCancel(ctx, step.Cancel, res)
		case step.List:
			_, err = r.adapter.List(ctx)
		case step.Expect != nil:
			err = r.runExpect(ctx, step.Expect, res)
		}
		if err != nil {
			label := fmt.Sprintf("step %d", i+1)
			if step.Name != "" {
				label = fmt.Sprintf("step %d (%s)", i+1, step.Name)
			}
			return res, fmt.Errorf("%s: %w", label, err)
		}
		res.Steps++
	}

	fmt.Fprintf(r.out, "Scenario %q passed: %d step(s), %d expected rejection(s).\n", sc.Name, res.Steps, res.Rejected)
	return res, nil
}

func (r *Runner) runAdd(ctx context.Context, sc *Scenario, step *AddStep, res *Result) error {
	guests := make([]models.Guest, len(step.Guests))
	for i, key := range step.Guests {
		guests[i] = sc.Guests[key]
	}

	booked, err := r.adapter.Add(ctx, guests, step.Days, step.Breakfast)
	if err := r.checkOutcome(err, step.Error, res); err != nil {
		return err
	}
	if booked != nil && step.As != "" {
		res.IDs[step.As] = booked.ID
	}
	return nil
}

func (r *Runner) runCancel(ctx context.Context, step *CancelStep, res *Result) error {
	id := step.ID
	if step.Ref != "" {
		id = res.IDs[step.Ref]
	}
	return r.checkOutcome(r.adapter.Cancel(ctx, id), step.Error, res)
}

// checkOutcome compares an operation error against the expected kind name.
func (r *Runner) checkOutcome(err error, wantKind string, res *Result) error {
	switch {
	case wantKind == "" && err == nil:
		return nil
	case wantKind == "":
		return fmt.Errorf("%w: unexpected error: %v", ErrFailed, err)
	case err == nil:
		return fmt.Errorf("%w: expected %s error, operation succeeded", ErrFailed, wantKind)
	}

	if got := corereservation.KindOf(err).String(); got != wantKind {
		return fmt.Errorf("%w: expected %s error, got %s: %v", ErrFailed, wantKind, got, err)
	}

	res.Rejected++
	fmt.Fprintf(r.out, "Rejected as expected: %v\n", err)
	return nil
}

func (r *Runner) runExpect(ctx context.Context, exp *Expectation, res *Result) error {
	if exp.Count != nil {
		list, err := r.service.ListReservations(ctx)
		if err != nil {
			return err
		}
		if len(list) != *exp.Count {
			return fmt.Errorf("%w: expected %d reservation(s), got %d", ErrFailed, *exp.Count, len(list))
		}
	}

	if len(exp.SamePrice) > 0 {
		var first *models.Reservation
		for _, ref := range exp.SamePrice {
			got, err := r.lookup(ctx, ref, res)
			if err != nil {
				return err
			}
			if first == nil {
				first = got
				continue
			}
			if !got.Price.Equal(first.Price) {
				return fmt.Errorf("%w: price of %s (%s) differs from %s (%s)", ErrFailed,
					ref, got.Price.StringFixed(2), exp.SamePrice[0], first.Price.StringFixed(2))
			}
		}
	}

	if exp.Ref == "" {
		return nil
	}

	got, err := r.lookup(ctx, exp.Ref, res)
	if err != nil {
		return err
	}
	if exp.FirstGuest != "" && (len(got.Guests) == 0 || got.Guests[0].Name != exp.FirstGuest) {
		return fmt.Errorf("%w: %s: expected first guest %q, got %v", ErrFailed, exp.Ref, exp.FirstGuest, got.GuestNames())
	}
	if exp.Days != nil && got.Days != *exp.Days {
		return fmt.Errorf("%w: %s: expected %d day(s), got %d", ErrFailed, exp.Ref, *exp.Days, got.Days)
	}
	if exp.Breakfast != nil && got.Breakfast != *exp.Breakfast {
		return fmt.Errorf("%w: %s: expected breakfast=%t, got %t", ErrFailed, exp.Ref, *exp.Breakfast, got.Breakfast)
	}
	if exp.Price != "" && got.Price.StringFixed(2) != exp.Price {
		return fmt.Errorf("%w: %s: expected price %s, got %s", ErrFailed, exp.Ref, exp.Price, got.Price.StringFixed(2))
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, ref string, res *Result) (*models.Reservation, error) {
	id, ok := res.IDs[ref]
	if !ok {
		return nil, fmt.Errorf("%w: reservation %q was never booked", ErrFailed, ref)
	}
	got, err := r.service.GetReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailed, ref, err)
	}
	return got, nil
}
