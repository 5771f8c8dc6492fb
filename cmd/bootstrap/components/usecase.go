package components

import (
	"time"

	"roomstay/internal/pkg/clock"
	"roomstay/internal/pkg/config"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewBookingClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

// NewBookingClock anchors "today" to the property's local calendar rather
// than the server's.
func NewBookingClock(cfg config.Config) clock.Clock {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		panic("invalid BOOKING_TIMEZONE: " + err.Error())
	}
	return clock.NewRealClock(loc)
}
