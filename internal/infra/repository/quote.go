package repository

import (
	"context"
	"time"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/quote"
	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/pgconv"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The breakdown is denormalized into columns so list queries and the PDF
// renderer never recompute pricing. A quote row is immutable except for its
// status.
const quoteColumns = `
	id, driver_id, vehicle_id, client_id,
	pickup_label, pickup_lat, pickup_lng,
	dropoff_label, dropoff_lat, dropoff_lng,
	return_label, return_lat, return_lng,
	departure_date, departure_time_min,
	outbound_distance_km, outbound_duration_min,
	has_return, return_to_same_address, return_distance_km, return_duration_min,
	has_waiting, waiting_minutes,
	day_km, night_km, total_km,
	one_way_fare_ht, return_fare_ht, waiting_fare_ht,
	one_way_fare_ttc, return_fare_ttc, waiting_fare_ttc,
	night_surcharge_amount, sunday_surcharge_amount,
	waiting_day_minutes, waiting_night_minutes,
	total_ht, total_vat, total_ttc,
	is_night_rate_applied, is_sunday_or_holiday, minimum_fare_applied, distance_below_minimum,
	status, created_at, updated_at`

type QuoteRepository struct {
	pool *pgxpool.Pool
}

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

var _ commands.QuoteRepository = (*QuoteRepository)(nil)

func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	const query = `
		INSERT INTO quotes (
			id, driver_id, vehicle_id, client_id,
			pickup_label, pickup_lat, pickup_lng,
			dropoff_label, dropoff_lat, dropoff_lng,
			return_label, return_lat, return_lng,
			departure_date, departure_time_min,
			outbound_distance_km, outbound_duration_min,
			has_return, return_to_same_address, return_distance_km, return_duration_min,
			has_waiting, waiting_minutes,
			day_km, night_km, total_km,
			one_way_fare_ht, return_fare_ht, waiting_fare_ht,
			one_way_fare_ttc, return_fare_ttc, waiting_fare_ttc,
			night_surcharge_amount, sunday_surcharge_amount,
			waiting_day_minutes, waiting_night_minutes,
			total_ht, total_vat, total_ttc,
			is_night_rate_applied, is_sunday_or_holiday, minimum_fare_applied, distance_below_minimum,
			status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44
		)`

	trip := q.Trip()
	b := q.Breakdown()

	var returnLabel pgtype.Text
	var returnLat, returnLng pgtype.Float8
	if ret := q.ReturnTo(); ret != nil {
		returnLabel = pgconv.StringToPgtype(ret.Label)
		returnLat = pgtype.Float8{Float64: ret.Lat, Valid: true}
		returnLng = pgtype.Float8{Float64: ret.Lng, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		q.ID(), q.DriverID(), q.VehicleID(), pgconv.UUIDPtrToPgtype(q.ClientID()),
		q.Pickup().Label, q.Pickup().Lat, q.Pickup().Lng,
		q.Dropoff().Label, q.Dropoff().Lat, q.Dropoff().Lng,
		returnLabel, returnLat, returnLng,
		trip.DepartureDate, trip.DepartureTime.Minutes(),
		trip.OutboundDistanceKm, trip.OutboundDurationMin,
		trip.HasReturn, trip.ReturnToSameAddress, trip.ReturnDistanceKm, trip.ReturnDurationMin,
		trip.HasWaiting, trip.WaitingMinutes,
		b.DayKm, b.NightKm, b.TotalKm,
		b.OneWayFareHT, b.ReturnFareHT, b.WaitingFareHT,
		b.OneWayFareTTC, b.ReturnFareTTC, b.WaitingFareTTC,
		b.NightSurchargeAmount, b.SundaySurchargeAmount,
		b.WaitingDayMinutes, b.WaitingNightMinutes,
		b.TotalHT, b.TotalVAT, b.TotalTTC,
		b.IsNightRateApplied, b.IsSundayOrHoliday, b.MinimumFareApplied, b.DistanceBelowMinimum,
		q.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create quote", err)
	}
	return nil
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, q *quote.Quote) error {
	const query = `
		UPDATE quotes
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, q.ID(), q.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update quote status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quote not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, driverID, id uuid.UUID) error {
	const query = `DELETE FROM quotes WHERE id = $1 AND driver_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, driverID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quote not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	var (
		qid, driverID, vehicleID uuid.UUID
		clientID                 pgtype.UUID
		pickup, dropoff          quote.Address
		returnLabel              pgtype.Text
		returnLat, returnLng     pgtype.Float8
		departureDate            pgtype.Date
		departureTimeMin         int
		trip                     pricing.Trip
		b                        pricing.Breakdown
		status                   string
		createdAt, updatedAt     pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&qid, &driverID, &vehicleID, &clientID,
		&pickup.Label, &pickup.Lat, &pickup.Lng,
		&dropoff.Label, &dropoff.Lat, &dropoff.Lng,
		&returnLabel, &returnLat, &returnLng,
		&departureDate, &departureTimeMin,
		&trip.OutboundDistanceKm, &trip.OutboundDurationMin,
		&trip.HasReturn, &trip.ReturnToSameAddress, &trip.ReturnDistanceKm, &trip.ReturnDurationMin,
		&trip.HasWaiting, &trip.WaitingMinutes,
		&b.DayKm, &b.NightKm, &b.TotalKm,
		&b.OneWayFareHT, &b.ReturnFareHT, &b.WaitingFareHT,
		&b.OneWayFareTTC, &b.ReturnFareTTC, &b.WaitingFareTTC,
		&b.NightSurchargeAmount, &b.SundaySurchargeAmount,
		&b.WaitingDayMinutes, &b.WaitingNightMinutes,
		&b.TotalHT, &b.TotalVAT, &b.TotalTTC,
		&b.IsNightRateApplied, &b.IsSundayOrHoliday, &b.MinimumFareApplied, &b.DistanceBelowMinimum,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}

	departureTime, err := pricing.NewTimeOfDayFromMinutes(departureTimeMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt quote departure time", err)
	}
	trip.DepartureDate = departureDate.Time
	trip.DepartureTime = departureTime

	parsedStatus, err := quote.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt quote status", err)
	}

	var returnTo *quote.Address
	if returnLabel.Valid {
		returnTo = &quote.Address{
			Label: returnLabel.String,
			Lat:   returnLat.Float64,
			Lng:   returnLng.Float64,
		}
	}

	return quote.ReconstructQuote(
		qid, driverID, vehicleID, pgconv.UUIDPtrFromPgtype(clientID),
		pickup, dropoff, returnTo,
		trip, b, parsedStatus,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// QuoteReadStore serves the query side with views joined against vehicles
// and clients.
type QuoteReadStore struct {
	pool *pgxpool.Pool
}

func NewQuoteReadStore(pool *pgxpool.Pool) *QuoteReadStore {
	return &QuoteReadStore{pool: pool}
}

var _ queries.QuoteReadStore = (*QuoteReadStore)(nil)

func (r *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	const query = `
		SELECT
			q.id, q.driver_id, q.vehicle_id, v.name, q.client_id, c.name, c.email,
			q.pickup_label, q.pickup_lat, q.pickup_lng,
			q.dropoff_label, q.dropoff_lat, q.dropoff_lng,
			q.return_label, q.return_lat, q.return_lng,
			q.departure_date, q.departure_time_min,
			q.outbound_distance_km, q.outbound_duration_min,
			q.has_return, q.return_to_same_address, q.return_distance_km, q.return_duration_min,
			q.has_waiting, q.waiting_minutes,
			q.day_km, q.night_km, q.total_km,
			q.one_way_fare_ht, q.return_fare_ht, q.waiting_fare_ht,
			q.one_way_fare_ttc, q.return_fare_ttc, q.waiting_fare_ttc,
			q.night_surcharge_amount, q.sunday_surcharge_amount,
			q.waiting_day_minutes, q.waiting_night_minutes,
			q.total_ht, q.total_vat, q.total_ttc,
			q.is_night_rate_applied, q.is_sunday_or_holiday, q.minimum_fare_applied, q.distance_below_minimum,
			q.status, q.created_at, q.updated_at
		FROM quotes q
		JOIN vehicles v ON v.id = q.vehicle_id
		LEFT JOIN clients c ON c.id = q.client_id
		WHERE q.id = $1`

	var (
		view                 queries.QuoteView
		clientID             pgtype.UUID
		clientName           pgtype.Text
		clientEmail          pgtype.Text
		returnLabel          pgtype.Text
		returnLat, returnLng pgtype.Float8
		departureDate        pgtype.Date
		departureTimeMin     int
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.DriverID, &view.VehicleID, &view.VehicleName, &clientID, &clientName, &clientEmail,
		&view.PickupLabel, &view.PickupLat, &view.PickupLng,
		&view.DropoffLabel, &view.DropoffLat, &view.DropoffLng,
		&returnLabel, &returnLat, &returnLng,
		&departureDate, &departureTimeMin,
		&view.OutboundDistanceKm, &view.OutboundDurationMin,
		&view.HasReturn, &view.ReturnToSameAddress, &view.ReturnDistanceKm, &view.ReturnDurationMin,
		&view.HasWaiting, &view.WaitingMinutes,
		&view.Breakdown.DayKm, &view.Breakdown.NightKm, &view.Breakdown.TotalKm,
		&view.Breakdown.OneWayFareHT, &view.Breakdown.ReturnFareHT, &view.Breakdown.WaitingFareHT,
		&view.Breakdown.OneWayFareTTC, &view.Breakdown.ReturnFareTTC, &view.Breakdown.WaitingFareTTC,
		&view.Breakdown.NightSurchargeAmount, &view.Breakdown.SundaySurchargeAmount,
		&view.Breakdown.WaitingDayMinutes, &view.Breakdown.WaitingNightMinutes,
		&view.Breakdown.TotalHT, &view.Breakdown.TotalVAT, &view.Breakdown.TotalTTC,
		&view.Breakdown.IsNightRateApplied, &view.Breakdown.IsSundayOrHoliday,
		&view.Breakdown.MinimumFareApplied, &view.Breakdown.DistanceBelowMinimum,
		&view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}

	departureTime, err := pricing.NewTimeOfDayFromMinutes(departureTimeMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt quote departure time", err)
	}

	view.ClientID = pgconv.UUIDPtrFromPgtype(clientID)
	view.ClientName = pgconv.StringPtrFromPgtype(clientName)
	view.ClientEmail = pgconv.StringPtrFromPgtype(clientEmail)
	view.ReturnLabel = pgconv.StringPtrFromPgtype(returnLabel)
	view.ReturnLat = pgconv.Float64PtrFromPgtype(returnLat)
	view.ReturnLng = pgconv.Float64PtrFromPgtype(returnLng)
	view.DepartureDate = departureDate.Time
	view.DepartureTime = departureTime.String()
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func (r *QuoteReadStore) FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*queries.QuoteListItem, error) {
	const query = `
		SELECT
			q.id, v.name, c.name,
			q.pickup_label, q.dropoff_label,
			q.departure_date, q.departure_time_min,
			q.total_km, q.total_ttc, q.status, q.created_at
		FROM quotes q
		JOIN vehicles v ON v.id = q.vehicle_id
		LEFT JOIN clients c ON c.id = q.client_id
		WHERE q.driver_id = $1
		ORDER BY q.created_at DESC`

	rows, err := r.pool.Query(ctx, query, driverID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	defer rows.Close()

	var items []*queries.QuoteListItem
	for rows.Next() {
		var (
			item             queries.QuoteListItem
			clientName       pgtype.Text
			departureDate    pgtype.Date
			departureTimeMin int
			createdAt        pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.VehicleName, &clientName,
			&item.PickupLabel, &item.DropoffLabel,
			&departureDate, &departureTimeMin,
			&item.TotalKm, &item.TotalTTC, &item.Status, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}

		item.ClientName = pgconv.StringPtrFromPgtype(clientName)
		item.DepartureAt = departureDate.Time.Add(minutesToDuration(departureTimeMin))
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read quote rows", err)
	}
	return items, nil
}

func minutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}
