//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vtcquote/internal/domain/client"
	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/quote"
	"vtcquote/internal/domain/vehicle"
	"vtcquote/internal/infra"
	"vtcquote/internal/infra/routing"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeQuoteRepo struct {
	created     *quote.Quote
	statusSaved *quote.Quote
	findResult  *quote.Quote
	findErr     error
	deleteErr   error
	createErr   error
	updateErr   error
}

func (f *fakeQuoteRepo) Create(_ context.Context, q *quote.Quote) error {
	f.created = q
	return f.createErr
}

func (f *fakeQuoteRepo) UpdateStatus(_ context.Context, q *quote.Quote) error {
	f.statusSaved = q
	return f.updateErr
}

func (f *fakeQuoteRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeQuoteRepo) FindByID(_ context.Context, _ uuid.UUID) (*quote.Quote, error) {
	return f.findResult, f.findErr
}

type fakeVehicleRepo struct {
	snapshot    *commands.VehiclePricingSnapshot
	snapshotErr error
}

func (f *fakeVehicleRepo) Create(_ context.Context, _ *vehicle.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Update(_ context.Context, _ *vehicle.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Delete(_ context.Context, _, _ uuid.UUID) error     { return nil }
func (f *fakeVehicleRepo) FindByID(_ context.Context, _ uuid.UUID) (*vehicle.Vehicle, error) {
	return nil, nil
}

func (f *fakeVehicleRepo) FindPricingSnapshot(_ context.Context, _ uuid.UUID) (*commands.VehiclePricingSnapshot, error) {
	return f.snapshot, f.snapshotErr
}

type fakeClientRepo struct {
	findResult *client.Client
	findErr    error
}

func (f *fakeClientRepo) Create(_ context.Context, _ *client.Client) error { return nil }
func (f *fakeClientRepo) Update(_ context.Context, _ *client.Client) error { return nil }
func (f *fakeClientRepo) Delete(_ context.Context, _, _ uuid.UUID) error   { return nil }
func (f *fakeClientRepo) FindByID(_ context.Context, _ uuid.UUID) (*client.Client, error) {
	return f.findResult, f.findErr
}

type fakeDriverReader struct {
	view *queries.AuthorizedUserView
	err  error
}

func (f *fakeDriverReader) FindByID(_ context.Context, _ uuid.UUID) (*queries.AuthorizedUserView, error) {
	return f.view, f.err
}

type fakeQuoteQueriesStore struct {
	view    *queries.QuoteView
	viewErr error
}

func (f *fakeQuoteQueriesStore) GetByID(_ context.Context, _, _ uuid.UUID) (*queries.QuoteView, error) {
	return f.view, f.viewErr
}

func (f *fakeQuoteQueriesStore) ListByDriver(_ context.Context, _ uuid.UUID) ([]*queries.QuoteListItem, error) {
	return nil, nil
}

type fakeRouter struct {
	calls     []routing.LatLng
	estimates []routing.Estimate
	err       error
}

func (f *fakeRouter) Route(_ context.Context, origin, destination routing.LatLng) (routing.Estimate, error) {
	f.calls = append(f.calls, origin, destination)
	if f.err != nil {
		return routing.Estimate{}, f.err
	}
	est := f.estimates[0]
	if len(f.estimates) > 1 {
		f.estimates = f.estimates[1:]
	}
	return est, nil
}

type fakeRenderer struct {
	pdf []byte
	err error
}

func (f *fakeRenderer) Render(_ *queries.QuoteView, _ string) ([]byte, error) {
	return f.pdf, f.err
}

type fakeMailer struct {
	sentTo  string
	sentPDF []byte
	err     error
}

func (f *fakeMailer) SendQuote(_ context.Context, to string, _ string, _ *queries.QuoteView, pdf []byte) error {
	f.sentTo = to
	f.sentPDF = pdf
	return f.err
}

type weekdayCalendar struct{}

func (weekdayCalendar) IsSundayOrHoliday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

type QuoteCommandsTestSuite struct {
	suite.Suite
	quoteRepo   *fakeQuoteRepo
	vehicleRepo *fakeVehicleRepo
	clientRepo  *fakeClientRepo
	drivers     *fakeDriverReader
	store       *fakeQuoteQueriesStore
	router      *fakeRouter
	commands    commands.QuoteCommands
	driverID    uuid.UUID
	vehicleID   uuid.UUID
	renderer    *fakeRenderer
	mailer      *fakeMailer
}

func (s *QuoteCommandsTestSuite) SetupTest() {
	s.driverID = uuid.New()
	s.vehicleID = uuid.New()
	s.quoteRepo = &fakeQuoteRepo{}
	s.vehicleRepo = &fakeVehicleRepo{snapshot: s.activeSnapshot()}
	s.clientRepo = &fakeClientRepo{}
	s.drivers = &fakeDriverReader{view: &queries.AuthorizedUserView{
		ID:          s.driverID,
		CompanyName: "Prestige Drive",
		IsActive:    true,
	}}
	s.store = &fakeQuoteQueriesStore{}
	s.router = &fakeRouter{estimates: []routing.Estimate{{DistanceKm: 24.5, DurationMin: 38}}}
	s.renderer = &fakeRenderer{pdf: []byte("%PDF-1.7")}
	s.mailer = &fakeMailer{}

	s.commands = commands.NewQuoteCommands(
		s.quoteRepo,
		s.vehicleRepo,
		s.clientRepo,
		s.drivers,
		s.store,
		s.router,
		pricing.NewEngine(weekdayCalendar{}),
		pricing.VATRates{RidePercent: 10, WaitingPercent: 20},
		s.renderer,
		s.mailer,
	)
}

// Fakes carry state across a test method's subtests otherwise; each
// subtest must start from a clean wiring.
func (s *QuoteCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestQuoteCommandsSuite(t *testing.T) {
	suite.Run(t, new(QuoteCommandsTestSuite))
}

func (s *QuoteCommandsTestSuite) activeSnapshot() *commands.VehiclePricingSnapshot {
	return &commands.VehiclePricingSnapshot{
		VehicleID:   s.vehicleID,
		DriverID:    s.driverID,
		VehicleName: "Classe E",
		IsActive:    true,
		DriverDefaults: pricing.Profile{
			PricePerKm: 2,
			Night: pricing.NightRate{
				Enabled:          true,
				Window:           mustWindow("20:00", "06:00"),
				SurchargePercent: 20,
			},
			Waiting: pricing.WaitingRate{
				PerQuarterHour: 7.5,
				NightWindow:    mustWindow("20:00", "06:00"),
			},
			SundayHolidaySurchargePercent: 25,
		},
	}
}

func mustWindow(start, end string) pricing.NightWindow {
	w, err := pricing.ParseNightWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

func tripInput() commands.TripInput {
	return commands.TripInput{
		Pickup:              commands.AddressInput{Label: "12 rue de la Paix, Paris", Lat: 48.869, Lng: 2.331},
		Dropoff:             commands.AddressInput{Label: "Aéroport CDG, Roissy", Lat: 49.004, Lng: 2.571},
		DepartureDate:       "2026-03-02", // a Monday
		DepartureTime:       "10:00",
		OutboundDistanceKm:  10,
		OutboundDurationMin: 30,
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errs.New("no rows in result set"), infra.KindNotFound)
}

func (s *QuoteCommandsTestSuite) TestEstimate() {
	s.Run("prices a daytime trip with the resolved profile", func() {
		result, err := s.commands.Estimate(context.Background(), commands.EstimateInput{
			VehicleID: s.vehicleID,
			Trip:      tripInput(),
		})

		s.Require().NoError(err)
		s.Equal(10.0, result.Trip.OutboundDistanceKm)
		s.InDelta(20.0, result.Breakdown.TotalHT, 1e-9)
		s.InDelta(22.0, result.Breakdown.TotalTTC, 1e-9)
		s.Empty(s.router.calls, "routing must not be called when distances are given")
	})

	s.Run("fills the outbound leg from the routing provider", func() {
		trip := tripInput()
		trip.OutboundDistanceKm = 0
		trip.OutboundDurationMin = 0

		result, err := s.commands.Estimate(context.Background(), commands.EstimateInput{
			VehicleID: s.vehicleID,
			Trip:      trip,
		})

		s.Require().NoError(err)
		s.Equal(24.5, result.Trip.OutboundDistanceKm)
		s.Equal(38, result.Trip.OutboundDurationMin)
		s.Len(s.router.calls, 2)
		s.Equal(48.869, s.router.calls[0].Lat)
	})

	s.Run("rejects an inactive vehicle", func() {
		s.vehicleRepo.snapshot.IsActive = false

		_, err := s.commands.Estimate(context.Background(), commands.EstimateInput{
			VehicleID: s.vehicleID,
			Trip:      tripInput(),
		})
		s.True(errs.Is(err, commands.ErrVehicleNotFound))
	})

	s.Run("maps a missing vehicle row", func() {
		s.vehicleRepo.snapshot = nil
		s.vehicleRepo.snapshotErr = notFoundErr()

		_, err := s.commands.Estimate(context.Background(), commands.EstimateInput{
			VehicleID: s.vehicleID,
			Trip:      tripInput(),
		})
		s.True(errs.Is(err, commands.ErrVehicleNotFound))
	})

	s.Run("surfaces a routing failure", func() {
		s.router.err = errs.New("maps unavailable")
		trip := tripInput()
		trip.OutboundDistanceKm = 0

		_, err := s.commands.Estimate(context.Background(), commands.EstimateInput{
			VehicleID: s.vehicleID,
			Trip:      trip,
		})
		s.True(errs.Is(err, commands.ErrRouteUnavailable))
	})

	s.Run("rejects a malformed departure time", func() {
		trip := tripInput()
		trip.DepartureTime = "25:00"

		_, err := s.commands.Estimate(context.Background(), commands.EstimateInput{
			VehicleID: s.vehicleID,
			Trip:      trip,
		})
		s.True(errs.Is(err, commands.ErrDomainValidation))
	})
}

func (s *QuoteCommandsTestSuite) TestCreateQuote() {
	s.Run("persists a draft and returns the stored view", func() {
		quoteView := &queries.QuoteView{DriverID: s.driverID, Status: "draft"}
		s.store.view = quoteView

		view, err := s.commands.CreateQuote(context.Background(), s.driverID, commands.CreateQuoteInput{
			VehicleID: s.vehicleID,
			Trip:      tripInput(),
		})

		s.Require().NoError(err)
		s.Same(quoteView, view)
		s.Require().NotNil(s.quoteRepo.created)
		s.Equal(quote.StatusDraft, s.quoteRepo.created.Status())
		s.Equal(s.driverID, s.quoteRepo.created.DriverID())
	})

	s.Run("rejects a vehicle owned by another driver", func() {
		s.vehicleRepo.snapshot.DriverID = uuid.New()

		_, err := s.commands.CreateQuote(context.Background(), s.driverID, commands.CreateQuoteInput{
			VehicleID: s.vehicleID,
			Trip:      tripInput(),
		})
		s.True(errs.Is(err, commands.ErrVehicleNotFound))
	})

	s.Run("rejects a client owned by another driver", func() {
		foreign := uuid.New()
		cl, err := client.NewClient(foreign, "Jean Dupont", nil, "", "")
		s.Require().NoError(err)
		s.clientRepo.findResult = cl
		clientID := cl.ID()

		_, err = s.commands.CreateQuote(context.Background(), s.driverID, commands.CreateQuoteInput{
			VehicleID: s.vehicleID,
			ClientID:  &clientID,
			Trip:      tripInput(),
		})
		s.True(errs.Is(err, commands.ErrClientNotFound))
	})
}

func (s *QuoteCommandsTestSuite) TestUpdateStatus() {
	s.Run("moves a draft to sent", func() {
		q := s.draftQuote()
		s.quoteRepo.findResult = q
		s.store.view = &queries.QuoteView{ID: q.ID(), Status: "sent"}

		view, err := s.commands.UpdateStatus(context.Background(), s.driverID, q.ID(), "sent")

		s.Require().NoError(err)
		s.Equal("sent", view.Status)
		s.Require().NotNil(s.quoteRepo.statusSaved)
		s.Equal(quote.StatusSent, s.quoteRepo.statusSaved.Status())
	})

	s.Run("rejects reopening an accepted quote", func() {
		q := s.draftQuote()
		s.Require().NoError(q.TransitionTo(quote.StatusAccepted))
		s.quoteRepo.findResult = q

		_, err := s.commands.UpdateStatus(context.Background(), s.driverID, q.ID(), "draft")
		s.True(errs.Is(err, commands.ErrInvalidStatusTransition))
	})

	s.Run("hides quotes of other drivers", func() {
		q := s.draftQuote()
		s.quoteRepo.findResult = q

		_, err := s.commands.UpdateStatus(context.Background(), uuid.New(), q.ID(), "sent")
		s.True(errs.Is(err, commands.ErrQuoteNotFound))
	})
}

func (s *QuoteCommandsTestSuite) TestSendQuote() {
	email := "jean.dupont@example.fr"

	s.Run("mails the PDF and marks the quote sent", func() {
		q := s.draftQuote()
		s.quoteRepo.findResult = q
		s.store.view = &queries.QuoteView{ID: q.ID(), DriverID: s.driverID, ClientEmail: &email}

		err := s.commands.SendQuote(context.Background(), s.driverID, q.ID())

		s.Require().NoError(err)
		s.Equal(email, s.mailer.sentTo)
		s.Equal(s.renderer.pdf, s.mailer.sentPDF)
		s.Require().NotNil(s.quoteRepo.statusSaved)
		s.Equal(quote.StatusSent, s.quoteRepo.statusSaved.Status())
	})

	s.Run("resending an already-sent quote succeeds", func() {
		q := s.draftQuote()
		s.Require().NoError(q.MarkSent())
		s.quoteRepo.findResult = q
		s.store.view = &queries.QuoteView{ID: q.ID(), DriverID: s.driverID, ClientEmail: &email}

		err := s.commands.SendQuote(context.Background(), s.driverID, q.ID())
		s.Require().NoError(err)
	})

	s.Run("refuses when the quote has no client email", func() {
		q := s.draftQuote()
		s.quoteRepo.findResult = q
		s.store.view = &queries.QuoteView{ID: q.ID(), DriverID: s.driverID}

		err := s.commands.SendQuote(context.Background(), s.driverID, q.ID())
		s.True(errs.Is(err, commands.ErrQuoteMissingClientEmail))
		s.Empty(s.mailer.sentTo)
	})

	s.Run("wraps a mailer failure without touching the status", func() {
		q := s.draftQuote()
		s.quoteRepo.findResult = q
		s.store.view = &queries.QuoteView{ID: q.ID(), DriverID: s.driverID, ClientEmail: &email}
		s.mailer.err = errs.New("smtp refused")

		err := s.commands.SendQuote(context.Background(), s.driverID, q.ID())
		s.True(errs.Is(err, commands.ErrQuoteDeliveryFailed))
		s.Nil(s.quoteRepo.statusSaved)
	})
}

func (s *QuoteCommandsTestSuite) TestDeleteQuote() {
	s.Run("maps a missing row to not found", func() {
		s.quoteRepo.deleteErr = notFoundErr()

		err := s.commands.DeleteQuote(context.Background(), s.driverID, uuid.New())
		s.True(errs.Is(err, commands.ErrQuoteNotFound))
	})
}

func (s *QuoteCommandsTestSuite) draftQuote() *quote.Quote {
	pickup, err := quote.NewAddress("12 rue de la Paix, Paris", 48.869, 2.331)
	s.Require().NoError(err)
	dropoff, err := quote.NewAddress("Aéroport CDG, Roissy", 49.004, 2.571)
	s.Require().NoError(err)

	departure, err := pricing.NewTimeOfDay("10:00")
	s.Require().NoError(err)

	q, err := quote.NewQuote(s.driverID, s.vehicleID, nil, pickup, dropoff, nil, pricing.Trip{
		DepartureDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		DepartureTime:       departure,
		OutboundDistanceKm:  10,
		OutboundDurationMin: 30,
	}, pricing.Breakdown{})
	s.Require().NoError(err)
	return q
}
