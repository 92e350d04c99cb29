package repository

import (
	"context"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/vehicle"
	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/pgconv"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pricing override columns are nullable; NULL means "inherit the driver
// default". Night window boundaries are stored as minutes since midnight.
const vehicleOverrideColumns = `
	price_per_km, minimum_trip_distance_km, minimum_trip_fare,
	night_rate_enabled, night_start_min, night_end_min, night_surcharge_percent,
	waiting_per_quarter_hour, waiting_night_enabled, waiting_night_start_min,
	waiting_night_end_min, waiting_night_surcharge_percent,
	sunday_holiday_surcharge_percent`

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

var _ commands.VehicleRepository = (*VehicleRepository)(nil)

// VehicleReadStore serves the query side with flat views.
type VehicleReadStore struct {
	pool *pgxpool.Pool
}

func NewVehicleReadStore(pool *pgxpool.Pool) *VehicleReadStore {
	return &VehicleReadStore{pool: pool}
}

var _ queries.VehicleReadStore = (*VehicleReadStore)(nil)

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	const query = `
		INSERT INTO vehicles (
			id, driver_id, name, registration, capacity, is_active,
			price_per_km, minimum_trip_distance_km, minimum_trip_fare,
			night_rate_enabled, night_start_min, night_end_min, night_surcharge_percent,
			waiting_per_quarter_hour, waiting_night_enabled, waiting_night_start_min,
			waiting_night_end_min, waiting_night_surcharge_percent,
			sunday_holiday_surcharge_percent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	s := v.Settings()
	_, err := r.pool.Exec(ctx, query,
		v.ID(), v.DriverID(), v.Name(), v.Registration(), v.Capacity(), v.IsActive(),
		pgconv.Float64PtrToPgtype(s.PricePerKm),
		pgconv.Float64PtrToPgtype(s.MinimumTripDistanceKm),
		pgconv.Float64PtrToPgtype(s.MinimumTripFare),
		pgconv.BoolPtrToPgtype(s.NightRateEnabled),
		int4FromTimeOfDayPtr(s.NightStart),
		int4FromTimeOfDayPtr(s.NightEnd),
		pgconv.Float64PtrToPgtype(s.NightSurchargePercent),
		pgconv.Float64PtrToPgtype(s.WaitingPerQuarterHour),
		pgconv.BoolPtrToPgtype(s.WaitingNightEnabled),
		int4FromTimeOfDayPtr(s.WaitingNightStart),
		int4FromTimeOfDayPtr(s.WaitingNightEnd),
		pgconv.Float64PtrToPgtype(s.WaitingNightSurchargePercent),
		pgconv.Float64PtrToPgtype(s.SundayHolidaySurchargePercent),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	const query = `
		UPDATE vehicles SET
			name = $2, registration = $3, capacity = $4, is_active = $5,
			price_per_km = $6, minimum_trip_distance_km = $7, minimum_trip_fare = $8,
			night_rate_enabled = $9, night_start_min = $10, night_end_min = $11,
			night_surcharge_percent = $12, waiting_per_quarter_hour = $13,
			waiting_night_enabled = $14, waiting_night_start_min = $15,
			waiting_night_end_min = $16, waiting_night_surcharge_percent = $17,
			sunday_holiday_surcharge_percent = $18, updated_at = now()
		WHERE id = $1`

	s := v.Settings()
	tag, err := r.pool.Exec(ctx, query,
		v.ID(), v.Name(), v.Registration(), v.Capacity(), v.IsActive(),
		pgconv.Float64PtrToPgtype(s.PricePerKm),
		pgconv.Float64PtrToPgtype(s.MinimumTripDistanceKm),
		pgconv.Float64PtrToPgtype(s.MinimumTripFare),
		pgconv.BoolPtrToPgtype(s.NightRateEnabled),
		int4FromTimeOfDayPtr(s.NightStart),
		int4FromTimeOfDayPtr(s.NightEnd),
		pgconv.Float64PtrToPgtype(s.NightSurchargePercent),
		pgconv.Float64PtrToPgtype(s.WaitingPerQuarterHour),
		pgconv.BoolPtrToPgtype(s.WaitingNightEnabled),
		int4FromTimeOfDayPtr(s.WaitingNightStart),
		int4FromTimeOfDayPtr(s.WaitingNightEnd),
		pgconv.Float64PtrToPgtype(s.WaitingNightSurchargePercent),
		pgconv.Float64PtrToPgtype(s.SundayHolidaySurchargePercent),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, driverID, id uuid.UUID) error {
	const query = `DELETE FROM vehicles WHERE id = $1 AND driver_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, driverID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	const query = `
		SELECT id, driver_id, name, registration, capacity, is_active,` + vehicleOverrideColumns + `,
			created_at, updated_at
		FROM vehicles
		WHERE id = $1`

	var (
		vid, driverID      uuid.UUID
		name, registration string
		capacity           int
		isActive           bool
		row                overrideRow
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&vid, &driverID, &name, &registration, &capacity, &isActive,
		&row.pricePerKm, &row.minTripDistanceKm, &row.minTripFare,
		&row.nightEnabled, &row.nightStartMin, &row.nightEndMin, &row.nightSurchargePct,
		&row.waitingPerQuarter, &row.waitingNightEnabled, &row.waitingNightStartMin,
		&row.waitingNightEndMin, &row.waitingNightSurchargePct,
		&row.sundayHolidaySurchargePct,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	settings, err := row.toSettings()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt vehicle pricing overrides", err)
	}

	return vehicle.ReconstructVehicle(
		vid, driverID, name, registration, capacity, settings, isActive,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// FindPricingSnapshot joins the vehicle overrides with the owning driver's
// defaults so the resolution chain can run in one round trip.
func (r *VehicleRepository) FindPricingSnapshot(ctx context.Context, vehicleID uuid.UUID) (*commands.VehiclePricingSnapshot, error) {
	const query = `
		SELECT
			v.id, v.driver_id, v.name, v.is_active,
			v.price_per_km, v.minimum_trip_distance_km, v.minimum_trip_fare,
			v.night_rate_enabled, v.night_start_min, v.night_end_min, v.night_surcharge_percent,
			v.waiting_per_quarter_hour, v.waiting_night_enabled, v.waiting_night_start_min,
			v.waiting_night_end_min, v.waiting_night_surcharge_percent,
			v.sunday_holiday_surcharge_percent,
			d.price_per_km, d.minimum_trip_distance_km, d.minimum_trip_fare,
			d.night_rate_enabled, d.night_start_min, d.night_end_min, d.night_surcharge_percent,
			d.waiting_per_quarter_hour, d.waiting_night_enabled, d.waiting_night_start_min,
			d.waiting_night_end_min, d.waiting_night_surcharge_percent,
			d.sunday_holiday_surcharge_percent
		FROM vehicles v
		JOIN driver_pricing_defaults d ON d.driver_id = v.driver_id
		WHERE v.id = $1`

	var (
		snap     commands.VehiclePricingSnapshot
		override overrideRow
		defaults defaultsRow
	)
	err := r.pool.QueryRow(ctx, query, vehicleID).Scan(
		&snap.VehicleID, &snap.DriverID, &snap.VehicleName, &snap.IsActive,
		&override.pricePerKm, &override.minTripDistanceKm, &override.minTripFare,
		&override.nightEnabled, &override.nightStartMin, &override.nightEndMin, &override.nightSurchargePct,
		&override.waitingPerQuarter, &override.waitingNightEnabled, &override.waitingNightStartMin,
		&override.waitingNightEndMin, &override.waitingNightSurchargePct,
		&override.sundayHolidaySurchargePct,
		&defaults.pricePerKm, &defaults.minTripDistanceKm, &defaults.minTripFare,
		&defaults.nightEnabled, &defaults.nightStartMin, &defaults.nightEndMin, &defaults.nightSurchargePct,
		&defaults.waitingPerQuarter, &defaults.waitingNightEnabled, &defaults.waitingNightStartMin,
		&defaults.waitingNightEndMin, &defaults.waitingNightSurchargePct,
		&defaults.sundayHolidaySurchargePct,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load vehicle pricing snapshot", err)
	}

	snap.Overrides, err = override.toSettings()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt vehicle pricing overrides", err)
	}
	snap.DriverDefaults, err = defaults.toProfile()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt driver pricing defaults", err)
	}
	return &snap, nil
}

func (r *VehicleReadStore) FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*queries.VehicleView, error) {
	const query = `
		SELECT id, driver_id, name, registration, capacity, is_active,` + vehicleOverrideColumns + `,
			created_at, updated_at
		FROM vehicles
		WHERE driver_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, driverID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		view, _, err := scanVehicleView(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vehicle rows", err)
	}
	return views, nil
}

// FindByID returns the view plus the owning driver for scoping.
func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, uuid.UUID, error) {
	const query = `
		SELECT id, driver_id, name, registration, capacity, is_active,` + vehicleOverrideColumns + `,
			created_at, updated_at
		FROM vehicles
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	view, ownerID, err := scanVehicleView(row.Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, uuid.Nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return view, ownerID, nil
}

func scanVehicleView(scan func(dest ...any) error) (*queries.VehicleView, uuid.UUID, error) {
	var (
		view      queries.VehicleView
		driverID  uuid.UUID
		row       overrideRow
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := scan(
		&view.ID, &driverID, &view.Name, &view.Registration, &view.Capacity, &view.IsActive,
		&row.pricePerKm, &row.minTripDistanceKm, &row.minTripFare,
		&row.nightEnabled, &row.nightStartMin, &row.nightEndMin, &row.nightSurchargePct,
		&row.waitingPerQuarter, &row.waitingNightEnabled, &row.waitingNightStartMin,
		&row.waitingNightEndMin, &row.waitingNightSurchargePct,
		&row.sundayHolidaySurchargePct,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, uuid.Nil, err
	}

	view.PricePerKm = pgconv.Float64PtrFromPgtype(row.pricePerKm)
	view.MinimumTripDistanceKm = pgconv.Float64PtrFromPgtype(row.minTripDistanceKm)
	view.MinimumTripFare = pgconv.Float64PtrFromPgtype(row.minTripFare)
	view.NightRateEnabled = pgconv.BoolPtrFromPgtype(row.nightEnabled)
	view.NightStart = timeStringFromInt4(row.nightStartMin)
	view.NightEnd = timeStringFromInt4(row.nightEndMin)
	view.NightSurchargePercent = pgconv.Float64PtrFromPgtype(row.nightSurchargePct)
	view.WaitingPerQuarterHour = pgconv.Float64PtrFromPgtype(row.waitingPerQuarter)
	view.WaitingNightEnabled = pgconv.BoolPtrFromPgtype(row.waitingNightEnabled)
	view.WaitingNightStart = timeStringFromInt4(row.waitingNightStartMin)
	view.WaitingNightEnd = timeStringFromInt4(row.waitingNightEndMin)
	view.WaitingNightSurchargePercent = pgconv.Float64PtrFromPgtype(row.waitingNightSurchargePct)
	view.SundayHolidaySurchargePercent = pgconv.Float64PtrFromPgtype(row.sundayHolidaySurchargePct)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, driverID, nil
}

// overrideRow mirrors the nullable override columns.
type overrideRow struct {
	pricePerKm                pgtype.Float8
	minTripDistanceKm         pgtype.Float8
	minTripFare               pgtype.Float8
	nightEnabled              pgtype.Bool
	nightStartMin             pgtype.Int4
	nightEndMin               pgtype.Int4
	nightSurchargePct         pgtype.Float8
	waitingPerQuarter         pgtype.Float8
	waitingNightEnabled       pgtype.Bool
	waitingNightStartMin      pgtype.Int4
	waitingNightEndMin        pgtype.Int4
	waitingNightSurchargePct  pgtype.Float8
	sundayHolidaySurchargePct pgtype.Float8
}

func (row overrideRow) toSettings() (vehicle.Settings, error) {
	nightStart, err := timeOfDayPtrFromInt4(row.nightStartMin)
	if err != nil {
		return vehicle.Settings{}, err
	}
	nightEnd, err := timeOfDayPtrFromInt4(row.nightEndMin)
	if err != nil {
		return vehicle.Settings{}, err
	}
	waitingStart, err := timeOfDayPtrFromInt4(row.waitingNightStartMin)
	if err != nil {
		return vehicle.Settings{}, err
	}
	waitingEnd, err := timeOfDayPtrFromInt4(row.waitingNightEndMin)
	if err != nil {
		return vehicle.Settings{}, err
	}

	return vehicle.Settings{
		PricePerKm:                    pgconv.Float64PtrFromPgtype(row.pricePerKm),
		MinimumTripDistanceKm:         pgconv.Float64PtrFromPgtype(row.minTripDistanceKm),
		MinimumTripFare:               pgconv.Float64PtrFromPgtype(row.minTripFare),
		NightRateEnabled:              pgconv.BoolPtrFromPgtype(row.nightEnabled),
		NightStart:                    nightStart,
		NightEnd:                      nightEnd,
		NightSurchargePercent:         pgconv.Float64PtrFromPgtype(row.nightSurchargePct),
		WaitingPerQuarterHour:         pgconv.Float64PtrFromPgtype(row.waitingPerQuarter),
		WaitingNightEnabled:           pgconv.BoolPtrFromPgtype(row.waitingNightEnabled),
		WaitingNightStart:             waitingStart,
		WaitingNightEnd:               waitingEnd,
		WaitingNightSurchargePercent:  pgconv.Float64PtrFromPgtype(row.waitingNightSurchargePct),
		SundayHolidaySurchargePercent: pgconv.Float64PtrFromPgtype(row.sundayHolidaySurchargePct),
	}, nil
}

// defaultsRow mirrors driver_pricing_defaults, where every column is NOT NULL.
type defaultsRow struct {
	pricePerKm                float64
	minTripDistanceKm         float64
	minTripFare               float64
	nightEnabled              bool
	nightStartMin             int32
	nightEndMin               int32
	nightSurchargePct         float64
	waitingPerQuarter         float64
	waitingNightEnabled       bool
	waitingNightStartMin      int32
	waitingNightEndMin        int32
	waitingNightSurchargePct  float64
	sundayHolidaySurchargePct float64
}

func (row defaultsRow) toProfile() (pricing.Profile, error) {
	nightStart, err := pricing.NewTimeOfDayFromMinutes(int(row.nightStartMin))
	if err != nil {
		return pricing.Profile{}, err
	}
	nightEnd, err := pricing.NewTimeOfDayFromMinutes(int(row.nightEndMin))
	if err != nil {
		return pricing.Profile{}, err
	}
	waitingStart, err := pricing.NewTimeOfDayFromMinutes(int(row.waitingNightStartMin))
	if err != nil {
		return pricing.Profile{}, err
	}
	waitingEnd, err := pricing.NewTimeOfDayFromMinutes(int(row.waitingNightEndMin))
	if err != nil {
		return pricing.Profile{}, err
	}

	return pricing.Profile{
		PricePerKm:            row.pricePerKm,
		MinimumTripDistanceKm: row.minTripDistanceKm,
		MinimumTripFare:       row.minTripFare,
		Night: pricing.NightRate{
			Enabled:          row.nightEnabled,
			Window:           pricing.NewNightWindow(nightStart, nightEnd),
			SurchargePercent: row.nightSurchargePct,
		},
		Waiting: pricing.WaitingRate{
			PerQuarterHour:        row.waitingPerQuarter,
			NightEnabled:          row.waitingNightEnabled,
			NightWindow:           pricing.NewNightWindow(waitingStart, waitingEnd),
			NightSurchargePercent: row.waitingNightSurchargePct,
		},
		SundayHolidaySurchargePercent: row.sundayHolidaySurchargePct,
	}, nil
}

func timeOfDayPtrFromInt4(pi pgtype.Int4) (*pricing.TimeOfDay, error) {
	if !pi.Valid {
		return nil, nil
	}
	t, err := pricing.NewTimeOfDayFromMinutes(int(pi.Int32))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func int4FromTimeOfDayPtr(t *pricing.TimeOfDay) pgtype.Int4 {
	if t == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(t.Minutes()), Valid: true}
}

func timeStringFromInt4(pi pgtype.Int4) *string {
	if !pi.Valid {
		return nil
	}
	t, err := pricing.NewTimeOfDayFromMinutes(int(pi.Int32))
	if err != nil {
		return nil
	}
	s := t.String()
	return &s
}
