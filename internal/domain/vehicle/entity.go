package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVehicleName   = errors.New("vehicle name cannot be empty")
	ErrVehicleNameTooLong = errors.New("vehicle name is too long (max 255 characters)")
	ErrInvalidCapacity    = errors.New("passenger capacity must be at least 1")
)

const MaxVehicleNameLength = 255

type Vehicle struct {
	id           uuid.UUID
	driverID     uuid.UUID
	name         string
	registration string
	capacity     int
	settings     Settings
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVehicle(driverID uuid.UUID, name, registration string, capacity int, settings Settings) (*Vehicle, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Vehicle{
		id:           uuid.New(),
		driverID:     driverID,
		name:         strings.TrimSpace(name),
		registration: strings.TrimSpace(registration),
		capacity:     capacity,
		settings:     settings,
		isActive:     true,
	}, nil
}

func ReconstructVehicle(
	id, driverID uuid.UUID,
	name, registration string,
	capacity int,
	settings Settings,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:           id,
		driverID:     driverID,
		name:         name,
		registration: registration,
		capacity:     capacity,
		settings:     settings,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVehicleName
	}
	if len(name) > MaxVehicleNameLength {
		return ErrVehicleNameTooLong
	}
	return nil
}

func (v *Vehicle) UpdateDetails(name, registration string, capacity int, settings Settings) error {
	if err := validateName(name); err != nil {
		return err
	}
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	v.name = strings.TrimSpace(name)
	v.registration = strings.TrimSpace(registration)
	v.capacity = capacity
	v.settings = settings
	return nil
}

func (v *Vehicle) SetActive(active bool) {
	v.isActive = active
}

func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) DriverID() uuid.UUID  { return v.driverID }
func (v *Vehicle) Name() string         { return v.name }
func (v *Vehicle) Registration() string { return v.registration }
func (v *Vehicle) Capacity() int        { return v.capacity }
func (v *Vehicle) Settings() Settings   { return v.settings }
func (v *Vehicle) IsActive() bool       { return v.isActive }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }
