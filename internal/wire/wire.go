// Package wire provides dependency injection for the hotelres application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	cliadapter "github.com/example/hotelres/internal/adapters/cli"
	"github.com/example/hotelres/internal/adapters/sqlite"
	"github.com/example/hotelres/internal/app"
	"github.com/example/hotelres/internal/config"
	"github.com/example/hotelres/internal/ctxutil"
	"github.com/example/hotelres/internal/db"
	"github.com/example/hotelres/internal/ports/primary"
	"github.com/example/hotelres/internal/ports/secondary"
	"github.com/example/hotelres/internal/registry"
)

var (
	cfg    = config.Defaults()
	logger = zerolog.Nop()

	reservationService primary.ReservationService
	auditDB            *sql.DB
	once               sync.Once
)

// Configure sets the configuration and logger used to build services.
// It has no effect once services have been initialized.
func Configure(c config.Config, l zerolog.Logger) {
	cfg = c
	logger = l
}

// Config returns the active configuration.
func Config() config.Config {
	return cfg
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	return logger
}

// Context returns a background context carrying the configured clerk as actor.
func Context() context.Context {
	return ctxutil.WithActorID(context.Background(), cfg.Clerk)
}

// ReservationService returns the singleton ReservationService instance.
// Every caller in the process shares one registry.
func ReservationService() primary.ReservationService {
	once.Do(initServices)
	return reservationService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	reg := registry.New(cfg.HotelName, registry.WithLogger(logger))

	// A ledger that cannot be opened is reported and skipped; bookings still work.
	var audit secondary.AuditLog
	if cfg.Audit.Enabled {
		database, err := db.Open(cfg.Audit.DSN)
		if err != nil {
			logger.Warn().Err(err).Str("dsn", cfg.Audit.DSN).Msg("audit ledger disabled")
		} else {
			auditDB = database
			audit = sqlite.NewAuditRepository(database)
		}
	}

	reservationService = app.NewReservationService(reg, audit, logger)
}

// Close releases the audit ledger connection, if one was opened.
func Close() error {
	if auditDB == nil {
		return nil
	}
	return auditDB.Close()
}

// ReservationAdapter returns a new ReservationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ReservationAdapter() *cliadapter.ReservationAdapter {
	return ReservationAdapterWithOutput(os.Stdout)
}

// ReservationAdapterWithOutput returns a new ReservationAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func ReservationAdapterWithOutput(out io.Writer) *cliadapter.ReservationAdapter {
	once.Do(initServices)
	return cliadapter.NewReservationAdapter(reservationService, out)
}
