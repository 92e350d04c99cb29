package queries

import (
	"context"

	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound = errs.New("quote not found")
	ErrQueryFailed   = errs.New("query failed")
)

type QuoteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*QuoteListItem, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, driverID, id uuid.UUID) (*QuoteView, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*QuoteListItem, error)
}

type quoteQueriesImpl struct {
	store QuoteReadStore
}

func NewQuoteQueries(store QuoteReadStore) QuoteQueries {
	return &quoteQueriesImpl{store: store}
}

func (q *quoteQueriesImpl) GetByID(ctx context.Context, driverID, id uuid.UUID) (*QuoteView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQuoteNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	// Driver scoping: a quote belonging to someone else looks like a miss.
	if view.DriverID != driverID {
		return nil, ErrQuoteNotFound
	}

	return view, nil
}

func (q *quoteQueriesImpl) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*QuoteListItem, error) {
	items, err := q.store.FindByDriver(ctx, driverID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}
