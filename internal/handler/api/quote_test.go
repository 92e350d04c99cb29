//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/handler/api"
	resdto "vtcquote/internal/handler/dto/response"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Hand-written fakes; each field overrides one command.
type fakeQuoteCommands struct {
	estimate     func(ctx context.Context, input commands.EstimateInput) (*commands.EstimateResult, error)
	createQuote  func(ctx context.Context, driverID uuid.UUID, input commands.CreateQuoteInput) (*queries.QuoteView, error)
	updateStatus func(ctx context.Context, driverID, quoteID uuid.UUID, status string) (*queries.QuoteView, error)
	deleteQuote  func(ctx context.Context, driverID, quoteID uuid.UUID) error
	renderPDF    func(ctx context.Context, driverID, quoteID uuid.UUID) ([]byte, error)
	sendQuote    func(ctx context.Context, driverID, quoteID uuid.UUID) error
}

func (f *fakeQuoteCommands) Estimate(ctx context.Context, input commands.EstimateInput) (*commands.EstimateResult, error) {
	return f.estimate(ctx, input)
}

func (f *fakeQuoteCommands) CreateQuote(ctx context.Context, driverID uuid.UUID, input commands.CreateQuoteInput) (*queries.QuoteView, error) {
	return f.createQuote(ctx, driverID, input)
}

func (f *fakeQuoteCommands) UpdateStatus(ctx context.Context, driverID, quoteID uuid.UUID, status string) (*queries.QuoteView, error) {
	return f.updateStatus(ctx, driverID, quoteID, status)
}

func (f *fakeQuoteCommands) DeleteQuote(ctx context.Context, driverID, quoteID uuid.UUID) error {
	return f.deleteQuote(ctx, driverID, quoteID)
}

func (f *fakeQuoteCommands) RenderPDF(ctx context.Context, driverID, quoteID uuid.UUID) ([]byte, error) {
	return f.renderPDF(ctx, driverID, quoteID)
}

func (f *fakeQuoteCommands) SendQuote(ctx context.Context, driverID, quoteID uuid.UUID) error {
	return f.sendQuote(ctx, driverID, quoteID)
}

type fakeQuoteQueries struct {
	getByID      func(ctx context.Context, driverID, id uuid.UUID) (*queries.QuoteView, error)
	listByDriver func(ctx context.Context, driverID uuid.UUID) ([]*queries.QuoteListItem, error)
}

func (f *fakeQuoteQueries) GetByID(ctx context.Context, driverID, id uuid.UUID) (*queries.QuoteView, error) {
	return f.getByID(ctx, driverID, id)
}

func (f *fakeQuoteQueries) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*queries.QuoteListItem, error) {
	return f.listByDriver(ctx, driverID)
}

type QuoteHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeQuoteCommands
	queries  *fakeQuoteQueries
	driverID uuid.UUID
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &fakeQuoteCommands{}
	s.queries = &fakeQuoteQueries{}
	s.driverID = uuid.New()

	handler := api.NewQuoteHandler(s.commands, s.queries)

	s.router.POST("/quotes/estimate", handler.Estimate)

	authed := s.router.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", s.driverID)
	})
	authed.POST("/quotes", handler.Create)
	authed.GET("/quotes", handler.List)
	authed.GET("/quotes/:id", handler.Get)
	authed.PATCH("/quotes/:id/status", handler.UpdateStatus)
	authed.DELETE("/quotes/:id", handler.Delete)
	authed.POST("/quotes/:id/send", handler.Send)
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func estimateBody() map[string]any {
	return map[string]any{
		"vehicle_id": uuid.New().String(),
		"trip": map[string]any{
			"pickup":                map[string]any{"label": "12 rue de la Paix, Paris", "lat": 48.869, "lng": 2.331},
			"dropoff":               map[string]any{"label": "Aéroport CDG, Roissy", "lat": 49.004, "lng": 2.571},
			"departure_date":        "2026-03-02",
			"departure_time":        "10:00",
			"outbound_distance_km":  10.0,
			"outbound_duration_min": 30,
		},
	}
}

func (s *QuoteHandlerTestSuite) TestEstimate() {
	s.Run("success: returns 200 with rounded breakdown", func() {
		s.commands.estimate = func(_ context.Context, input commands.EstimateInput) (*commands.EstimateResult, error) {
			s.Equal(10.0, input.Trip.OutboundDistanceKm)
			return &commands.EstimateResult{
				Trip: pricing.Trip{OutboundDistanceKm: 10, OutboundDurationMin: 30},
				Breakdown: pricing.Breakdown{
					TotalKm:      10,
					OneWayFareHT: 18.004999,
					TotalHT:      18.004999,
					TotalVAT:     1.8005,
					TotalTTC:     19.805499,
				},
			}, nil
		}

		rec := s.perform(http.MethodPost, "/quotes/estimate", estimateBody())

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.EstimateResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(18.0, resp.Breakdown.OneWayFareHT)
		s.Equal(19.81, resp.Breakdown.TotalTTC)
		s.Equal(10.0, resp.OutboundDistanceKm)
	})

	s.Run("error: 404 when vehicle is unknown or inactive", func() {
		s.commands.estimate = func(_ context.Context, _ commands.EstimateInput) (*commands.EstimateResult, error) {
			return nil, errs.Mark(errs.New("no rows in result set"), commands.ErrVehicleNotFound)
		}

		rec := s.perform(http.MethodPost, "/quotes/estimate", estimateBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 502 when the route cannot be resolved", func() {
		s.commands.estimate = func(_ context.Context, _ commands.EstimateInput) (*commands.EstimateResult, error) {
			return nil, errs.Mark(errs.New("maps unavailable"), commands.ErrRouteUnavailable)
		}

		rec := s.perform(http.MethodPost, "/quotes/estimate", estimateBody())
		s.Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("error: 400 on missing pickup", func() {
		body := estimateBody()
		trip := body["trip"].(map[string]any)
		delete(trip, "pickup")

		rec := s.perform(http.MethodPost, "/quotes/estimate", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *QuoteHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 with the persisted quote", func() {
		view := &queries.QuoteView{
			ID:            uuid.New(),
			DriverID:      s.driverID,
			VehicleID:     uuid.New(),
			VehicleName:   "Classe E",
			PickupLabel:   "12 rue de la Paix, Paris",
			DropoffLabel:  "Aéroport CDG, Roissy",
			DepartureDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			DepartureTime: "10:00",
			Status:        "draft",
		}
		s.commands.createQuote = func(_ context.Context, driverID uuid.UUID, _ commands.CreateQuoteInput) (*queries.QuoteView, error) {
			s.Equal(s.driverID, driverID)
			return view, nil
		}

		body := estimateBody()
		rec := s.perform(http.MethodPost, "/quotes", body)

		s.Equal(http.StatusCreated, rec.Code)
		var resp resdto.QuoteResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(view.ID, resp.ID)
		s.Equal("draft", resp.Status)
	})

	s.Run("error: 404 when the client belongs to another driver", func() {
		s.commands.createQuote = func(_ context.Context, _ uuid.UUID, _ commands.CreateQuoteInput) (*queries.QuoteView, error) {
			return nil, errs.Mark(errs.New("no rows in result set"), commands.ErrClientNotFound)
		}

		rec := s.perform(http.MethodPost, "/quotes", estimateBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *QuoteHandlerTestSuite) TestUpdateStatus() {
	quoteID := uuid.New()

	s.Run("success: returns 200 with the new status", func() {
		s.commands.updateStatus = func(_ context.Context, _, id uuid.UUID, status string) (*queries.QuoteView, error) {
			s.Equal(quoteID, id)
			s.Equal("accepted", status)
			return &queries.QuoteView{ID: quoteID, DriverID: s.driverID, Status: "accepted"}, nil
		}

		rec := s.perform(http.MethodPatch, "/quotes/"+quoteID.String()+"/status", map[string]any{"status": "accepted"})

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.QuoteResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("accepted", resp.Status)
	})

	s.Run("error: 409 on an illegal transition", func() {
		s.commands.updateStatus = func(_ context.Context, _, _ uuid.UUID, _ string) (*queries.QuoteView, error) {
			return nil, errs.Mark(errs.New("accepted cannot go back to draft"), commands.ErrInvalidStatusTransition)
		}

		rec := s.perform(http.MethodPatch, "/quotes/"+quoteID.String()+"/status", map[string]any{"status": "draft"})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 on an unknown status value", func() {
		rec := s.perform(http.MethodPatch, "/quotes/"+quoteID.String()+"/status", map[string]any{"status": "archived"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *QuoteHandlerTestSuite) TestSend() {
	quoteID := uuid.New()

	s.Run("success: returns 204", func() {
		s.commands.sendQuote = func(_ context.Context, driverID, id uuid.UUID) error {
			s.Equal(s.driverID, driverID)
			s.Equal(quoteID, id)
			return nil
		}

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/send", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when the quote has no client email", func() {
		s.commands.sendQuote = func(_ context.Context, _, _ uuid.UUID) error {
			return errs.Mark(errs.New("client has no email"), commands.ErrQuoteMissingClientEmail)
		}

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/send", nil)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *QuoteHandlerTestSuite) TestGetAndDelete() {
	quoteID := uuid.New()

	s.Run("get: 404 when the quote is not visible for this driver", func() {
		s.queries.getByID = func(_ context.Context, _, _ uuid.UUID) (*queries.QuoteView, error) {
			return nil, errs.Mark(errs.New("no rows in result set"), queries.ErrQuoteNotFound)
		}

		rec := s.perform(http.MethodGet, "/quotes/"+quoteID.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("delete: 204 on success", func() {
		s.commands.deleteQuote = func(_ context.Context, _, _ uuid.UUID) error {
			return nil
		}

		rec := s.perform(http.MethodDelete, "/quotes/"+quoteID.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("get: 400 on a malformed ID", func() {
		rec := s.perform(http.MethodGet, "/quotes/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
