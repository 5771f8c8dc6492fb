package queries

import (
	"context"

	"roomstay/internal/infra"
	"roomstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.FindByRoom(ctx, roomID)
}
