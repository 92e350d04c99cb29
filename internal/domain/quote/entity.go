package quote

import (
	"errors"
	"strings"
	"time"

	"vtcquote/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyAddress      = errors.New("address label cannot be empty")
	ErrUnresolvedRoute   = errors.New("route distance must be resolved before quoting")
	ErrInvalidStatus     = errors.New("invalid quote status")
	ErrInvalidTransition = errors.New("quote status transition not allowed")
)

// Address is a geocoded pickup or dropoff point.
type Address struct {
	Label string
	Lat   float64
	Lng   float64
}

func NewAddress(label string, lat, lng float64) (Address, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Address{}, ErrEmptyAddress
	}
	return Address{Label: label, Lat: lat, Lng: lng}, nil
}

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusDeclined:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo encodes the quote lifecycle: draft → sent → accepted/declined.
// A draft may also be accepted directly (phone confirmation without email).
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusSent || next == StatusAccepted || next == StatusDeclined
	case StatusSent:
		return next == StatusAccepted || next == StatusDeclined
	default:
		return false
	}
}

// Quote is a priced trip proposal. The breakdown is immutable once computed;
// any input change produces a fresh quote.
type Quote struct {
	id        uuid.UUID
	driverID  uuid.UUID
	vehicleID uuid.UUID
	clientID  *uuid.UUID
	pickup    Address
	dropoff   Address
	returnTo  *Address
	trip      pricing.Trip
	breakdown pricing.Breakdown
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewQuote(
	driverID, vehicleID uuid.UUID,
	clientID *uuid.UUID,
	pickup, dropoff Address,
	returnTo *Address,
	trip pricing.Trip,
	breakdown pricing.Breakdown,
) (*Quote, error) {
	if trip.OutboundDistanceKm <= 0 {
		return nil, ErrUnresolvedRoute
	}
	if trip.HasReturn && !trip.ReturnToSameAddress && trip.ReturnDistanceKm <= 0 {
		return nil, ErrUnresolvedRoute
	}

	return &Quote{
		id:        uuid.New(),
		driverID:  driverID,
		vehicleID: vehicleID,
		clientID:  clientID,
		pickup:    pickup,
		dropoff:   dropoff,
		returnTo:  returnTo,
		trip:      trip,
		breakdown: breakdown,
		status:    StatusDraft,
	}, nil
}

func ReconstructQuote(
	id, driverID, vehicleID uuid.UUID,
	clientID *uuid.UUID,
	pickup, dropoff Address,
	returnTo *Address,
	trip pricing.Trip,
	breakdown pricing.Breakdown,
	status Status,
	createdAt, updatedAt time.Time,
) *Quote {
	return &Quote{
		id:        id,
		driverID:  driverID,
		vehicleID: vehicleID,
		clientID:  clientID,
		pickup:    pickup,
		dropoff:   dropoff,
		returnTo:  returnTo,
		trip:      trip,
		breakdown: breakdown,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (q *Quote) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !q.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	q.status = next
	return nil
}

func (q *Quote) MarkSent() error {
	if q.status == StatusSent {
		return nil // resending is allowed
	}
	return q.TransitionTo(StatusSent)
}

func (q *Quote) ID() uuid.UUID                { return q.id }
func (q *Quote) DriverID() uuid.UUID          { return q.driverID }
func (q *Quote) VehicleID() uuid.UUID         { return q.vehicleID }
func (q *Quote) ClientID() *uuid.UUID         { return q.clientID }
func (q *Quote) Pickup() Address              { return q.pickup }
func (q *Quote) Dropoff() Address             { return q.dropoff }
func (q *Quote) ReturnTo() *Address           { return q.returnTo }
func (q *Quote) Trip() pricing.Trip           { return q.trip }
func (q *Quote) Breakdown() pricing.Breakdown { return q.breakdown }
func (q *Quote) Status() Status               { return q.status }
func (q *Quote) CreatedAt() time.Time         { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time         { return q.updatedAt }
