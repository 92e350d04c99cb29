package commands

import (
	"context"

	"vtcquote/internal/domain/client"
	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/quote"
	"vtcquote/internal/domain/vehicle"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

// VehiclePricingSnapshot joins a vehicle row with its driver's default
// pricing settings. Write-side snapshot, independent of read-side views.
type VehiclePricingSnapshot struct {
	VehicleID      uuid.UUID
	DriverID       uuid.UUID
	VehicleName    string
	IsActive       bool
	Overrides      vehicle.Settings
	DriverDefaults pricing.Profile
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	Update(ctx context.Context, v *vehicle.Vehicle) error
	Delete(ctx context.Context, driverID, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	FindPricingSnapshot(ctx context.Context, vehicleID uuid.UUID) (*VehiclePricingSnapshot, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	Delete(ctx context.Context, driverID, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, q *quote.Quote) error
	UpdateStatus(ctx context.Context, q *quote.Quote) error
	Delete(ctx context.Context, driverID, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
}

type DriverReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

// QuotePDFRenderer turns a quote view into the PDF handed to clients.
type QuotePDFRenderer interface {
	Render(view *queries.QuoteView, companyName string) ([]byte, error)
}

// QuoteMailer delivers a rendered quote to the client's mailbox.
type QuoteMailer interface {
	SendQuote(ctx context.Context, to string, companyName string, view *queries.QuoteView, pdf []byte) error
}
