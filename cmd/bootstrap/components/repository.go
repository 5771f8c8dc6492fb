package components

import (
	"roomstay/internal/infra/db"
	"roomstay/internal/infra/readstore"
	"roomstay/internal/infra/writerepo"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationWriteRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
