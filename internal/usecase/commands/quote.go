package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/quote"
	"vtcquote/internal/domain/vehicle"
	"vtcquote/internal/infra"
	"vtcquote/internal/infra/routing"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrClientNotFound          = errs.New("client not found")
	ErrQuoteNotFound           = errs.New("quote not found")
	ErrRouteUnavailable        = errs.New("route could not be resolved")
	ErrInvalidPricingProfile   = errs.New("resolved pricing profile is invalid")
	ErrInvalidStatusTransition = errs.New("invalid quote status transition")
	ErrQuoteMissingClientEmail = errs.New("quote has no client email to send to")
	ErrDomainValidation        = errs.New("domain validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrQuoteDeliveryFailed     = errs.New("quote delivery failed")
)

// AddressInput is a geocoded point as submitted by the widget or the app.
type AddressInput struct {
	Label string
	Lat   float64
	Lng   float64
}

// TripInput carries the raw trip parameters. Distances and durations may be
// zero, in which case the routing provider fills them in.
type TripInput struct {
	Pickup  AddressInput
	Dropoff AddressInput
	Return  *AddressInput

	DepartureDate string // "2006-01-02"
	DepartureTime string // "HH:MM"

	OutboundDistanceKm  float64
	OutboundDurationMin int

	HasReturn           bool
	ReturnToSameAddress bool
	ReturnDistanceKm    float64
	ReturnDurationMin   int

	HasWaiting     bool
	WaitingMinutes int
}

type EstimateInput struct {
	VehicleID uuid.UUID
	Trip      TripInput
}

// EstimateResult is the priced trip plus the resolved route figures, so the
// caller can persist exactly what was quoted.
type EstimateResult struct {
	Trip      pricing.Trip
	Breakdown pricing.Breakdown
}

type CreateQuoteInput struct {
	VehicleID uuid.UUID
	ClientID  *uuid.UUID
	Trip      TripInput
}

type QuoteCommands interface {
	Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error)
	CreateQuote(ctx context.Context, driverID uuid.UUID, input CreateQuoteInput) (*queries.QuoteView, error)
	UpdateStatus(ctx context.Context, driverID, quoteID uuid.UUID, status string) (*queries.QuoteView, error)
	DeleteQuote(ctx context.Context, driverID, quoteID uuid.UUID) error
	RenderPDF(ctx context.Context, driverID, quoteID uuid.UUID) ([]byte, error)
	SendQuote(ctx context.Context, driverID, quoteID uuid.UUID) error
}

type quoteCommandsImpl struct {
	quoteRepo    QuoteRepository
	vehicleRepo  VehicleRepository
	clientRepo   ClientRepository
	drivers      DriverReader
	quoteQueries queries.QuoteQueries
	router       routing.Provider
	engine       *pricing.Engine
	vat          pricing.VATRates
	renderer     QuotePDFRenderer
	mailer       QuoteMailer
}

func NewQuoteCommands(
	quoteRepo QuoteRepository,
	vehicleRepo VehicleRepository,
	clientRepo ClientRepository,
	drivers DriverReader,
	quoteQueries queries.QuoteQueries,
	router routing.Provider,
	engine *pricing.Engine,
	vat pricing.VATRates,
	renderer QuotePDFRenderer,
	mailer QuoteMailer,
) QuoteCommands {
	return &quoteCommandsImpl{
		quoteRepo:    quoteRepo,
		vehicleRepo:  vehicleRepo,
		clientRepo:   clientRepo,
		drivers:      drivers,
		quoteQueries: quoteQueries,
		router:       router,
		engine:       engine,
		vat:          vat,
		renderer:     renderer,
		mailer:       mailer,
	}
}

// Estimate prices a trip without persisting anything. Used by the public
// booking widget, so it never requires authentication and only works against
// active vehicles.
func (c *quoteCommandsImpl) Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error) {
	snapshot, err := c.vehicleRepo.FindPricingSnapshot(ctx, input.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snapshot.IsActive {
		return nil, ErrVehicleNotFound
	}

	profile, err := vehicle.ResolveProfile(snapshot.DriverDefaults, snapshot.Overrides)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPricingProfile)
	}

	trip, err := c.resolveTrip(ctx, input.Trip)
	if err != nil {
		return nil, err
	}

	breakdown := c.engine.ComputeQuote(trip, profile, c.vat)
	return &EstimateResult{Trip: trip, Breakdown: breakdown}, nil
}

func (c *quoteCommandsImpl) CreateQuote(ctx context.Context, driverID uuid.UUID, input CreateQuoteInput) (*queries.QuoteView, error) {
	snapshot, err := c.vehicleRepo.FindPricingSnapshot(ctx, input.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.DriverID != driverID {
		return nil, ErrVehicleNotFound
	}

	if input.ClientID != nil {
		cl, err := c.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrClientNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if cl.DriverID() != driverID {
			return nil, ErrClientNotFound
		}
	}

	profile, err := vehicle.ResolveProfile(snapshot.DriverDefaults, snapshot.Overrides)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPricingProfile)
	}

	trip, err := c.resolveTrip(ctx, input.Trip)
	if err != nil {
		return nil, err
	}

	breakdown := c.engine.ComputeQuote(trip, profile, c.vat)

	pickup, err := quote.NewAddress(input.Trip.Pickup.Label, input.Trip.Pickup.Lat, input.Trip.Pickup.Lng)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	dropoff, err := quote.NewAddress(input.Trip.Dropoff.Label, input.Trip.Dropoff.Lat, input.Trip.Dropoff.Lng)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	var returnTo *quote.Address
	if input.Trip.Return != nil {
		addr, err := quote.NewAddress(input.Trip.Return.Label, input.Trip.Return.Lat, input.Trip.Return.Lng)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		returnTo = &addr
	}

	q, err := quote.NewQuote(driverID, input.VehicleID, input.ClientID, pickup, dropoff, returnTo, trip, breakdown)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.quoteRepo.Create(ctx, q); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.quoteQueries.GetByID(ctx, driverID, q.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *quoteCommandsImpl) UpdateStatus(ctx context.Context, driverID, quoteID uuid.UUID, status string) (*queries.QuoteView, error) {
	q, err := c.findOwnedQuote(ctx, driverID, quoteID)
	if err != nil {
		return nil, err
	}

	next, err := quote.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusTransition)
	}
	if err := q.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusTransition)
	}

	if err := c.quoteRepo.UpdateStatus(ctx, q); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.quoteQueries.GetByID(ctx, driverID, quoteID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *quoteCommandsImpl) DeleteQuote(ctx context.Context, driverID, quoteID uuid.UUID) error {
	if err := c.quoteRepo.Delete(ctx, driverID, quoteID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrQuoteNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// RenderPDF produces the quote document without sending it anywhere.
func (c *quoteCommandsImpl) RenderPDF(ctx context.Context, driverID, quoteID uuid.UUID) ([]byte, error) {
	view, err := c.quoteQueries.GetByID(ctx, driverID, quoteID)
	if err != nil {
		if errs.Is(err, queries.ErrQuoteNotFound) {
			return nil, errs.Mark(err, ErrQuoteNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	driver, err := c.drivers.FindByID(ctx, driverID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pdf, err := c.renderer.Render(view, driver.CompanyName)
	if err != nil {
		return nil, errs.Mark(err, ErrQuoteDeliveryFailed)
	}
	return pdf, nil
}

// SendQuote renders the PDF, emails it to the client, then records the
// transition to sent. Resending an already-sent quote is allowed.
func (c *quoteCommandsImpl) SendQuote(ctx context.Context, driverID, quoteID uuid.UUID) error {
	view, err := c.quoteQueries.GetByID(ctx, driverID, quoteID)
	if err != nil {
		if errs.Is(err, queries.ErrQuoteNotFound) {
			return errs.Mark(err, ErrQuoteNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if view.ClientEmail == nil || *view.ClientEmail == "" {
		return ErrQuoteMissingClientEmail
	}

	driver, err := c.drivers.FindByID(ctx, driverID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pdf, err := c.renderer.Render(view, driver.CompanyName)
	if err != nil {
		return errs.Mark(err, ErrQuoteDeliveryFailed)
	}
	if err := c.mailer.SendQuote(ctx, *view.ClientEmail, driver.CompanyName, view, pdf); err != nil {
		return errs.Mark(err, ErrQuoteDeliveryFailed)
	}

	q, err := c.findOwnedQuote(ctx, driverID, quoteID)
	if err != nil {
		return err
	}
	if err := q.MarkSent(); err != nil {
		return errs.Mark(err, ErrInvalidStatusTransition)
	}
	if err := c.quoteRepo.UpdateStatus(ctx, q); err != nil {
		// The mail already left; surface the inconsistency but keep the
		// delivery as the source of truth for the driver.
		slog.Warn("quote sent but status update failed", "quote_id", quoteID, "error", err)
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *quoteCommandsImpl) findOwnedQuote(ctx context.Context, driverID, quoteID uuid.UUID) (*quote.Quote, error) {
	q, err := c.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQuoteNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if q.DriverID() != driverID {
		return nil, ErrQuoteNotFound
	}
	return q, nil
}

// resolveTrip parses dates and times and fills in any leg whose distance is
// still unknown by asking the routing provider.
func (c *quoteCommandsImpl) resolveTrip(ctx context.Context, input TripInput) (pricing.Trip, error) {
	departureTime, err := pricing.NewTimeOfDay(input.DepartureTime)
	if err != nil {
		return pricing.Trip{}, errs.Mark(err, ErrDomainValidation)
	}
	departureDate, err := parseDepartureDate(input.DepartureDate)
	if err != nil {
		return pricing.Trip{}, errs.Mark(err, ErrDomainValidation)
	}

	trip := pricing.Trip{
		DepartureDate:       departureDate,
		DepartureTime:       departureTime,
		OutboundDistanceKm:  input.OutboundDistanceKm,
		OutboundDurationMin: input.OutboundDurationMin,
		HasReturn:           input.HasReturn,
		ReturnToSameAddress: input.ReturnToSameAddress,
		ReturnDistanceKm:    input.ReturnDistanceKm,
		ReturnDurationMin:   input.ReturnDurationMin,
		HasWaiting:          input.HasWaiting,
		WaitingMinutes:      input.WaitingMinutes,
	}

	if trip.OutboundDistanceKm <= 0 {
		est, err := c.route(ctx, input.Pickup, input.Dropoff)
		if err != nil {
			return pricing.Trip{}, err
		}
		trip.OutboundDistanceKm = est.DistanceKm
		trip.OutboundDurationMin = est.DurationMin
	}

	if trip.HasReturn && !trip.ReturnToSameAddress && trip.ReturnDistanceKm <= 0 {
		if input.Return == nil {
			return pricing.Trip{}, errs.Mark(errs.New("return address missing"), ErrDomainValidation)
		}
		est, err := c.route(ctx, input.Dropoff, *input.Return)
		if err != nil {
			return pricing.Trip{}, err
		}
		trip.ReturnDistanceKm = est.DistanceKm
		trip.ReturnDurationMin = est.DurationMin
	}

	return trip, nil
}

func parseDepartureDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errs.New("invalid departure date"), value)
	}
	return t, nil
}

func (c *quoteCommandsImpl) route(ctx context.Context, from, to AddressInput) (routing.Estimate, error) {
	est, err := c.router.Route(ctx,
		routing.LatLng{Lat: from.Lat, Lng: from.Lng},
		routing.LatLng{Lat: to.Lat, Lng: to.Lng},
	)
	if err != nil {
		return routing.Estimate{}, errs.Mark(err, ErrRouteUnavailable)
	}
	return est, nil
}
