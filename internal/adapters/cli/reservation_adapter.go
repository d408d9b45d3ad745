// Package cli contains thin adapters that translate CLI operations into
// primary port calls and render the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/hotelres/internal/models"
	"github.com/example/hotelres/internal/ports/primary"
	"github.com/example/hotelres/internal/ports/secondary"
)

const banner = "+++++++++++++++++++++++++++++++++++"

var idColor = color.New(color.FgHiMagenta)

var auditActions = []string{secondary.AuditActionAdd, secondary.AuditActionCancel, secondary.AuditActionReject}

// ReservationAdapter is a thin adapter that translates CLI operations to ReservationService calls.
// It depends only on the ReservationService interface, enabling easy testing with mocks.
type ReservationAdapter struct {
	service primary.ReservationService
	out     io.Writer
}

// NewReservationAdapter creates a new ReservationAdapter with the given service.
func NewReservationAdapter(service primary.ReservationService, out io.Writer) *ReservationAdapter {
	return &ReservationAdapter{
		service: service,
		out:     out,
	}
}

// Add books a reservation and prints its ticket.
func (a *ReservationAdapter) Add(ctx context.Context, guests []models.Guest, days int, breakfast bool) (*models.Reservation, error) {
	resp, err := a.service.CreateReservation(ctx, primary.CreateReservationRequest{
		Guests:    guests,
		Days:      days,
		Breakfast: breakfast,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(a.out, "Reservation successfully saved!")
	a.printTicket(resp.Reservation)

	return resp.Reservation, nil
}

// List prints every active reservation as a numbered report.
func (a *ReservationAdapter) List(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := a.service.ListReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, banner)
	fmt.Fprintln(a.out, "++++   List of reservations    ++++")
	fmt.Fprintln(a.out, banner)
	fmt.Fprintln(a.out)

	if len(reservations) == 0 {
		fmt.Fprintln(a.out, "No reservations found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Book your first stay:")
		fmt.Fprintln(a.out, `  hotelres reservation add --guest "Goku:26:176" --days 2 --breakfast`)
		return reservations, nil
	}

	for i := range reservations {
		fmt.Fprintln(a.out, banner)
		fmt.Fprintf(a.out, "++++      Reservation %d        ++++\n", i+1)
		fmt.Fprintln(a.out, banner)
		a.printDetails(&reservations[i])
		fmt.Fprintln(a.out, banner)
		fmt.Fprintln(a.out)
	}

	return reservations, nil
}

// IDs prints the identifiers of all active reservations, one per line.
func (a *ReservationAdapter) IDs(ctx context.Context) ([]string, error) {
	ids, err := a.service.ListIssuedIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservation IDs: %w", err)
	}

	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}

	return ids, nil
}

// Show prints the ticket of a single reservation.
func (a *ReservationAdapter) Show(ctx context.Context, reservationID string) (*models.Reservation, error) {
	res, err := a.service.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	a.printTicket(res)

	return res, nil
}

// Cancel removes a reservation.
func (a *ReservationAdapter) Cancel(ctx context.Context, reservationID string) error {
	if err := a.service.CancelReservation(ctx, reservationID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Reservation with ID %s has been successfully deleted.\n", reservationID)

	return nil
}

// Quote prints the price of a stay without booking it.
func (a *ReservationAdapter) Quote(ctx context.Context, guests, days int, breakfast bool) (*primary.QuoteResponse, error) {
	resp, err := a.service.QuotePrice(ctx, primary.QuoteRequest{
		Guests:    guests,
		Days:      days,
		Breakfast: breakfast,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%d guest(s), %d day(s), breakfast: %s\n", guests, days, yesNo(breakfast))
	fmt.Fprintf(a.out, "PRICE: %s$\n", resp.Price.StringFixed(2))

	return resp, nil
}

// History prints recent ledger entries.
func (a *ReservationAdapter) History(ctx context.Context, limit int) ([]*primary.AuditEntry, error) {
	entries, err := a.service.History(ctx, limit)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries found.")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tRESERVATION\tACTOR\tDETAIL")
	fmt.Fprintln(w, "----\t------\t-----------\t-----\t------")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt,
			strings.ToUpper(e.Action),
			orDash(e.ReservationID),
			orDash(e.Actor),
			e.Detail,
		)
	}

	w.Flush()
	return entries, nil
}

// Summary prints ledger entry counts per action.
func (a *ReservationAdapter) Summary(ctx context.Context) (map[string]int, error) {
	counts, err := a.service.AuditSummary(ctx)
	if err != nil {
		return nil, err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ACTION\tCOUNT")
	fmt.Fprintln(w, "------\t-----")
	for _, action := range auditActions {
		fmt.Fprintf(w, "%s\t%d\n", strings.ToUpper(action), counts[action])
	}
	w.Flush()

	return counts, nil
}

func (a *ReservationAdapter) printTicket(res *models.Reservation) {
	fmt.Fprintln(a.out, banner)
	fmt.Fprintf(a.out, "++++ %s  ++++\n", strings.ToUpper(res.HotelName))
	fmt.Fprintln(a.out, banner)
	fmt.Fprintln(a.out, "+       Reservation details       +")
	fmt.Fprintln(a.out, banner)
	a.printDetails(res)
	fmt.Fprintln(a.out, banner)
}

func (a *ReservationAdapter) printDetails(res *models.Reservation) {
	fmt.Fprintf(a.out, "+    ID: %s\n", idColor.Sprint(res.ID))
	fmt.Fprintln(a.out, "+    CLIENTS")
	fmt.Fprintln(a.out, "+    -------")
	for i, name := range res.GuestNames() {
		fmt.Fprintf(a.out, "+      %d. %s\n", i+1, name)
	}
	fmt.Fprintln(a.out, "+    -------")
	fmt.Fprintf(a.out, "+    DAYS: %d\n", res.Days)
	fmt.Fprintf(a.out, "+    PRICE: %s$\n", res.Price.StringFixed(2))
	fmt.Fprintf(a.out, "+    BREAKFAST: %s\n", yesNo(res.Breakfast))
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
