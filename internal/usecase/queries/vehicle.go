package queries

import (
	"context"

	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.New("vehicle not found")

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, uuid.UUID, error)
	FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*VehicleView, error)
}

type VehicleQueries interface {
	GetByID(ctx context.Context, driverID, id uuid.UUID) (*VehicleView, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, driverID, id uuid.UUID) (*VehicleView, error) {
	view, ownerID, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if ownerID != driverID {
		return nil, ErrVehicleNotFound
	}
	return view, nil
}

func (q *vehicleQueriesImpl) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*VehicleView, error) {
	views, err := q.store.FindByDriver(ctx, driverID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
