package commands

import (
	"context"

	"vtcquote/internal/domain/vehicle"
	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleInput struct {
	Name         string
	Registration string
	Capacity     int
	Settings     vehicle.Settings
}

type VehicleCommands interface {
	CreateVehicle(ctx context.Context, driverID uuid.UUID, input VehicleInput) (*queries.VehicleView, error)
	UpdateVehicle(ctx context.Context, driverID, vehicleID uuid.UUID, input VehicleInput) (*queries.VehicleView, error)
	SetVehicleActive(ctx context.Context, driverID, vehicleID uuid.UUID, active bool) error
	DeleteVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) error
}

type vehicleCommandsImpl struct {
	repo           VehicleRepository
	vehicleQueries queries.VehicleQueries
}

func NewVehicleCommands(repo VehicleRepository, vehicleQueries queries.VehicleQueries) VehicleCommands {
	return &vehicleCommandsImpl{repo: repo, vehicleQueries: vehicleQueries}
}

func (c *vehicleCommandsImpl) CreateVehicle(ctx context.Context, driverID uuid.UUID, input VehicleInput) (*queries.VehicleView, error) {
	v, err := vehicle.NewVehicle(driverID, input.Name, input.Registration, input.Capacity, input.Settings)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, v); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.vehicleQueries.GetByID(ctx, driverID, v.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *vehicleCommandsImpl) UpdateVehicle(ctx context.Context, driverID, vehicleID uuid.UUID, input VehicleInput) (*queries.VehicleView, error) {
	v, err := c.findOwned(ctx, driverID, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := v.UpdateDetails(input.Name, input.Registration, input.Capacity, input.Settings); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, v); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.vehicleQueries.GetByID(ctx, driverID, vehicleID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *vehicleCommandsImpl) SetVehicleActive(ctx context.Context, driverID, vehicleID uuid.UUID, active bool) error {
	v, err := c.findOwned(ctx, driverID, vehicleID)
	if err != nil {
		return err
	}

	v.SetActive(active)
	if err := c.repo.Update(ctx, v); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *vehicleCommandsImpl) DeleteVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) error {
	if err := c.repo.Delete(ctx, driverID, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrVehicleNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *vehicleCommandsImpl) findOwned(ctx context.Context, driverID, vehicleID uuid.UUID) (*vehicle.Vehicle, error) {
	v, err := c.repo.FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if v.DriverID() != driverID {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}
