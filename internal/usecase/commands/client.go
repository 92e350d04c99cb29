package commands

import (
	"context"

	"vtcquote/internal/domain/client"
	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientInput struct {
	Name  string
	Email *string
	Phone string
	Notes string
}

type ClientCommands interface {
	CreateClient(ctx context.Context, driverID uuid.UUID, input ClientInput) (*queries.ClientView, error)
	UpdateClient(ctx context.Context, driverID, clientID uuid.UUID, input ClientInput) (*queries.ClientView, error)
	DeleteClient(ctx context.Context, driverID, clientID uuid.UUID) error
}

type clientCommandsImpl struct {
	repo          ClientRepository
	clientQueries queries.ClientQueries
}

func NewClientCommands(repo ClientRepository, clientQueries queries.ClientQueries) ClientCommands {
	return &clientCommandsImpl{repo: repo, clientQueries: clientQueries}
}

func (c *clientCommandsImpl) CreateClient(ctx context.Context, driverID uuid.UUID, input ClientInput) (*queries.ClientView, error) {
	cl, err := client.NewClient(driverID, input.Name, input.Email, input.Phone, input.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, cl); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.clientQueries.GetByID(ctx, driverID, cl.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *clientCommandsImpl) UpdateClient(ctx context.Context, driverID, clientID uuid.UUID, input ClientInput) (*queries.ClientView, error) {
	cl, err := c.repo.FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if cl.DriverID() != driverID {
		return nil, ErrClientNotFound
	}

	if err := cl.UpdateDetails(input.Name, input.Email, input.Phone, input.Notes); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, cl); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.clientQueries.GetByID(ctx, driverID, clientID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *clientCommandsImpl) DeleteClient(ctx context.Context, driverID, clientID uuid.UUID) error {
	if err := c.repo.Delete(ctx, driverID, clientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrClientNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
