package queries

import (
	"context"

	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClientNotFound = errs.New("client not found")

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, uuid.UUID, error)
	FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*ClientView, error)
}

type ClientQueries interface {
	GetByID(ctx context.Context, driverID, id uuid.UUID) (*ClientView, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, driverID, id uuid.UUID) (*ClientView, error) {
	view, ownerID, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if ownerID != driverID {
		return nil, ErrClientNotFound
	}
	return view, nil
}

func (q *clientQueriesImpl) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*ClientView, error) {
	views, err := q.store.FindByDriver(ctx, driverID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
