//go:build unit

package quote_test

import (
	"testing"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/quote"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrip() pricing.Trip {
	return pricing.Trip{
		OutboundDistanceKm:  12.5,
		OutboundDurationMin: 25,
	}
}

func newDraft(t *testing.T) *quote.Quote {
	t.Helper()
	pickup, err := quote.NewAddress("1 Place Bellecour, Lyon", 45.7578, 4.8320)
	require.NoError(t, err)
	dropoff, err := quote.NewAddress("Aéroport Lyon-Saint Exupéry", 45.7256, 5.0811)
	require.NoError(t, err)

	q, err := quote.NewQuote(uuid.New(), uuid.New(), nil, pickup, dropoff, nil, validTrip(), pricing.Breakdown{})
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	t.Run("starts as draft", func(t *testing.T) {
		q := newDraft(t)
		assert.Equal(t, quote.StatusDraft, q.Status())
		assert.NotEqual(t, uuid.Nil, q.ID())
	})

	t.Run("rejects unresolved outbound route", func(t *testing.T) {
		pickup, _ := quote.NewAddress("A", 0, 0)
		dropoff, _ := quote.NewAddress("B", 0, 0)
		trip := validTrip()
		trip.OutboundDistanceKm = 0

		_, err := quote.NewQuote(uuid.New(), uuid.New(), nil, pickup, dropoff, nil, trip, pricing.Breakdown{})
		assert.ErrorIs(t, err, quote.ErrUnresolvedRoute)
	})

	t.Run("rejects unresolved distinct return route", func(t *testing.T) {
		pickup, _ := quote.NewAddress("A", 0, 0)
		dropoff, _ := quote.NewAddress("B", 0, 0)
		trip := validTrip()
		trip.HasReturn = true
		trip.ReturnToSameAddress = false

		_, err := quote.NewQuote(uuid.New(), uuid.New(), nil, pickup, dropoff, nil, trip, pricing.Breakdown{})
		assert.ErrorIs(t, err, quote.ErrUnresolvedRoute)
	})

	t.Run("empty address label rejected", func(t *testing.T) {
		_, err := quote.NewAddress("   ", 45.0, 4.0)
		assert.ErrorIs(t, err, quote.ErrEmptyAddress)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from quote.Status
		to   quote.Status
		ok   bool
	}{
		{name: "draft to sent", from: quote.StatusDraft, to: quote.StatusSent, ok: true},
		{name: "draft to accepted", from: quote.StatusDraft, to: quote.StatusAccepted, ok: true},
		{name: "sent to accepted", from: quote.StatusSent, to: quote.StatusAccepted, ok: true},
		{name: "sent to declined", from: quote.StatusSent, to: quote.StatusDeclined, ok: true},
		{name: "accepted is terminal", from: quote.StatusAccepted, to: quote.StatusSent, ok: false},
		{name: "declined is terminal", from: quote.StatusDeclined, to: quote.StatusAccepted, ok: false},
		{name: "sent cannot go back to draft", from: quote.StatusSent, to: quote.StatusDraft, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("entity rejects invalid transition", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.TransitionTo(quote.StatusAccepted))
		assert.ErrorIs(t, q.TransitionTo(quote.StatusSent), quote.ErrInvalidTransition)
	})

	t.Run("resend keeps sent status", func(t *testing.T) {
		q := newDraft(t)
		require.NoError(t, q.MarkSent())
		assert.NoError(t, q.MarkSent())
		assert.Equal(t, quote.StatusSent, q.Status())
	})

	t.Run("unknown status string rejected", func(t *testing.T) {
		_, err := quote.NewStatus("archived")
		assert.ErrorIs(t, err, quote.ErrInvalidStatus)
	})
}
