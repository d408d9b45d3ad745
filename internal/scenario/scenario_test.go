package scenario

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hotelres/internal/app"
	"github.com/example/hotelres/internal/models"
	"github.com/example/hotelres/internal/registry"
)

func newTestRunner(t *testing.T) (*Runner, *app.ReservationServiceImpl, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	reg := registry.New(models.DefaultHotelName, registry.WithRand(rand.New(rand.NewPCG(7, 7))))
	svc := app.NewReservationService(reg, nil, zerolog.Nop())
	out := &bytes.Buffer{}
	return NewRunner(svc, out, zerolog.Nop()), svc, out
}

func TestDemo_Passes(t *testing.T) {
	sc, err := Demo()
	require.NoError(t, err)

	runner, svc, out := newTestRunner(t)
	res, err := runner.Run(context.Background(), sc)
	require.NoError(t, err, out.String())

	assert.Equal(t, len(sc.Steps), res.Steps)
	assert.Equal(t, 2, res.Rejected)

	// Six booked, one cancelled, two more for the price check.
	list, _ := svc.ListReservations(context.Background())
	assert.Len(t, list, 7)

	output := out.String()
	assert.Contains(t, output, "Reservation with ID "+res.IDs["first"]+" has been successfully deleted.")
	assert.Contains(t, output, "Rejected as expected: reservation found for a customer")
	assert.Contains(t, output, "Rejected as expected: no reservation found")
	assert.Contains(t, output, "List of reservations")
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader(`
guests: {}
steps:
  - list: true
    colour: blue
`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no steps",
			yaml:    "name: empty\n",
			wantErr: "no steps",
		},
		{
			name:    "two actions in one step",
			yaml:    "steps:\n  - list: true\n    cancel: {id: x}\n",
			wantErr: "exactly one of",
		},
		{
			name:    "unknown guest",
			yaml:    "steps:\n  - add: {guests: [nobody], days: 1}\n",
			wantErr: `unknown guest "nobody"`,
		},
		{
			name:    "unknown error kind",
			yaml:    "guests:\n  a: {name: A, age: 1, height: 1}\nsteps:\n  - add: {guests: [a], days: 1, error: oops}\n",
			wantErr: `unknown error kind "oops"`,
		},
		{
			name:    "cancel without target",
			yaml:    "steps:\n  - cancel: {}\n",
			wantErr: "exactly one of ref or id",
		},
		{
			name:    "reference before booking",
			yaml:    "steps:\n  - cancel: {ref: later}\n",
			wantErr: `unknown reservation label "later"`,
		},
		{
			name:    "expect unknown label",
			yaml:    "steps:\n  - expect: {same_price: [a, b]}\n",
			wantErr: "unknown reservation label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_AgeOutOfRange(t *testing.T) {
	_, err := Load(strings.NewReader("guests:\n  a: {name: A, age: 300, height: 1}\nsteps:\n  - list: true\n"))
	require.Error(t, err)
}

func TestRun_StopsAtMismatch(t *testing.T) {
	sc, err := Load(strings.NewReader(`
name: wrong count
guests:
  goku: {name: Goku, age: 26, height: 176}
steps:
  - add: {guests: [goku], days: 1}
  - expect: {count: 2}
  - list: true
`))
	require.NoError(t, err)

	runner, _, out := newTestRunner(t)
	res, err := runner.Run(context.Background(), sc)

	require.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, err.Error(), "step 2")
	assert.Equal(t, 1, res.Steps)
	assert.NotContains(t, out.String(), "List of reservations")
}

func TestRun_ExpectedErrorMissing(t *testing.T) {
	sc, err := Load(strings.NewReader(`
guests:
  goku: {name: Goku, age: 26, height: 176}
steps:
  - add: {guests: [goku], days: 1, error: guest_collision}
`))
	require.NoError(t, err)

	runner, _, _ := newTestRunner(t)
	_, err = runner.Run(context.Background(), sc)

	require.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, err.Error(), "operation succeeded")
}

func TestRun_WrongErrorKind(t *testing.T) {
	sc, err := Load(strings.NewReader(`
guests:
  goku: {name: Goku, age: 26, height: 176}
steps:
  - add: {guests: [goku], days: 0, error: guest_collision}
`))
	require.NoError(t, err)

	runner, _, _ := newTestRunner(t)
	_, err = runner.Run(context.Background(), sc)

	require.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, err.Error(), "got invalid_request")
}

func TestRun_PriceMismatch(t *testing.T) {
	sc, err := Load(strings.NewReader(`
guests:
  goku: {name: Goku, age: 26, height: 176}
steps:
  - add: {guests: [goku], days: 3, as: stay}
  - expect: {ref: stay, price: "1.00"}
`))
	require.NoError(t, err)

	runner, _, _ := newTestRunner(t)
	_, err = runner.Run(context.Background(), sc)

	require.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, err.Error(), "expected price 1.00, got 62.97")
}
