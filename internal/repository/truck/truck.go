package truck

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/truck"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const truckColumns = `id, operator_id, model_code, vin, manufacturer, model_year, primary_type,
		max_weight_tons, max_volume_m3, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, operatorID int64, draft entities.TruckDraft) (*entities.Truck, error) {
	status := entities.DefaultTruckStatus
	if draft.Status != nil {
		status = *draft.Status
	}

	query := `
		INSERT INTO trucks (operator_id, model_code, vin, manufacturer, model_year, primary_type,
			max_weight_tons, max_volume_m3, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + truckColumns

	var truckDB TruckDB
	err := r.querier.QueryRow(
		ctx,
		query,
		operatorID,
		draft.ModelCode,
		draft.VIN,
		draft.Manufacturer,
		draft.ModelYear,
		draft.PrimaryType.String(),
		draft.MaxWeightTons,
		draft.MaxVolumeM3,
		status.String(),
	).Scan(truckFields(&truckDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, truck.ErrConflict
		}
		return nil, fmt.Errorf("unexpected truck repository create error: %w", err)
	}

	return ToDomain(&truckDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Truck, error) {
	query := `
		SELECT ` + truckColumns + `
		FROM trucks
		WHERE id = $1
	`

	var truckDB TruckDB
	err := r.querier.QueryRow(ctx, query, id).Scan(truckFields(&truckDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truck.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected truck repository get error: %w", err)
	}

	truckEntity := ToDomain(&truckDB)
	truckEntity.Routes, err = r.getRoutes(ctx, id)
	if err != nil {
		return nil, err
	}

	return truckEntity, nil
}

func (r *Repository) GetByOperator(ctx context.Context, operatorID int64) ([]entities.Truck, error) {
	query := `
		SELECT ` + truckColumns + `
		FROM trucks
		WHERE operator_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository list error: %w", err)
	}
	defer rows.Close()

	trucks := make([]entities.Truck, 0)
	for rows.Next() {
		var truckDB TruckDB
		if err := rows.Scan(truckFields(&truckDB)...); err != nil {
			return nil, fmt.Errorf("unexpected truck repository scan error: %w", err)
		}
		trucks = append(trucks, *ToDomain(&truckDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository rows error: %w", err)
	}

	for i := range trucks {
		trucks[i].Routes, err = r.getRoutes(ctx, trucks[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return trucks, nil
}

func (r *Repository) Update(ctx context.Context, operatorID int64, truckModify entities.TruckModify) (*entities.Truck, error) {
	builder := qb.Update("trucks")

	if truckModify.ModelCode != nil {
		builder = builder.Set("model_code", *truckModify.ModelCode)
	}
	if truckModify.VIN != nil {
		builder = builder.Set("vin", *truckModify.VIN)
	}
	if truckModify.Manufacturer != nil {
		builder = builder.Set("manufacturer", *truckModify.Manufacturer)
	}
	if truckModify.ModelYear != nil {
		builder = builder.Set("model_year", *truckModify.ModelYear)
	}
	if truckModify.PrimaryType != nil {
		builder = builder.Set("primary_type", truckModify.PrimaryType.String())
	}
	if truckModify.MaxWeightTons != nil {
		builder = builder.Set("max_weight_tons", *truckModify.MaxWeightTons)
	}
	if truckModify.MaxVolumeM3 != nil {
		builder = builder.Set("max_volume_m3", *truckModify.MaxVolumeM3)
	}
	if truckModify.Status != nil {
		builder = builder.Set("status", truckModify.Status.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": truckModify.ID, "operator_id": operatorID}).
		Suffix("RETURNING " + truckColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	var truckDB TruckDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(truckFields(&truckDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truck.ErrTruckNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, truck.ErrConflict
		}
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	truckEntity := ToDomain(&truckDB)
	truckEntity.Routes, err = r.getRoutes(ctx, truckEntity.ID)
	if err != nil {
		return nil, err
	}

	return truckEntity, nil
}

func (r *Repository) Delete(ctx context.Context, operatorID, truckID int64) error {
	query := `
		DELETE FROM trucks WHERE id = $1 AND operator_id = $2
	`
	result, err := r.querier.Exec(ctx, query, truckID, operatorID)
	if err != nil {
		return fmt.Errorf("unexpected truck repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}
	return nil
}

// ReplaceRoutes swaps the full route set of a truck: the previous routes and
// join rows go away, the submitted ones come in with their submitted order.
func (r *Repository) ReplaceRoutes(ctx context.Context, truckID int64, routes []entities.ServiceRoute) ([]entities.ServiceRoute, error) {
	if err := r.DeleteRoutesByTruck(ctx, truckID); err != nil {
		return nil, err
	}

	inserted := make([]entities.ServiceRoute, 0, len(routes))
	for i, route := range routes {
		query := `
			INSERT INTO service_routes (name, start_location, end_location, distance_km)
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, start_location, end_location, distance_km
		`

		var routeDB RouteDB
		err := r.querier.QueryRow(ctx, query, route.Name, route.StartLocation, route.EndLocation, route.DistanceKm).
			Scan(&routeDB.ID, &routeDB.Name, &routeDB.StartLocation, &routeDB.EndLocation, &routeDB.DistanceKm)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository route create error: %w", err)
		}
		routeDB.SequenceOrder = i + 1

		_, err = r.querier.Exec(ctx, `
			INSERT INTO truck_service_routes (truck_id, service_route_id, sequence_order)
			VALUES ($1, $2, $3)
		`, truckID, routeDB.ID, routeDB.SequenceOrder)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository route link error: %w", err)
		}

		inserted = append(inserted, ToRouteDomain(&routeDB))
	}

	return inserted, nil
}

func (r *Repository) DeleteRoutesByTruck(ctx context.Context, truckID int64) error {
	query := `
		WITH removed AS (
			DELETE FROM truck_service_routes
			WHERE truck_id = $1
			RETURNING service_route_id
		)
		DELETE FROM service_routes
		WHERE id IN (SELECT service_route_id FROM removed)
	`

	_, err := r.querier.Exec(ctx, query, truckID)
	if err != nil {
		return fmt.Errorf("unexpected truck repository routes delete error: %w", err)
	}
	return nil
}

// GetCandidates returns every ACTIVE truck/route pair able to carry the
// payload on the requested lane. Ranking and dedup happen in the matcher.
func (r *Repository) GetCandidates(ctx context.Context, matchQuery entities.MatchQuery) ([]entities.TruckCandidate, error) {
	query := `
		SELECT
			t.id, t.operator_id, t.model_code, t.vin, t.manufacturer, t.model_year, t.primary_type,
			t.max_weight_tons, t.max_volume_m3, t.status, t.created_at, t.updated_at,
			sr.id, sr.name, sr.start_location, sr.end_location, sr.distance_km, tsr.sequence_order
		FROM trucks t
		JOIN truck_service_routes tsr ON tsr.truck_id = t.id
		JOIN service_routes sr ON sr.id = tsr.service_route_id
		WHERE t.status = 'ACTIVE'
		  AND t.max_weight_tons >= $1
		  AND t.max_volume_m3 >= $2
		  AND sr.start_location = $3
		  AND sr.end_location = $4
	`

	rows, err := r.querier.Query(
		ctx,
		query,
		matchQuery.WeightTons,
		matchQuery.VolumeM3,
		matchQuery.Origin,
		matchQuery.Destination,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.TruckCandidate, 0)
	for rows.Next() {
		var candidateDB CandidateDB
		err := rows.Scan(
			&candidateDB.Truck.ID,
			&candidateDB.Truck.OperatorID,
			&candidateDB.Truck.ModelCode,
			&candidateDB.Truck.VIN,
			&candidateDB.Truck.Manufacturer,
			&candidateDB.Truck.ModelYear,
			&candidateDB.Truck.PrimaryType,
			&candidateDB.Truck.MaxWeightTons,
			&candidateDB.Truck.MaxVolumeM3,
			&candidateDB.Truck.Status,
			&candidateDB.Truck.CreatedAt,
			&candidateDB.Truck.UpdatedAt,
			&candidateDB.Route.ID,
			&candidateDB.Route.Name,
			&candidateDB.Route.StartLocation,
			&candidateDB.Route.EndLocation,
			&candidateDB.Route.DistanceKm,
			&candidateDB.Route.SequenceOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository candidates scan error: %w", err)
		}
		candidates = append(candidates, ToCandidateDomain(&candidateDB, matchQuery))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository candidates rows error: %w", err)
	}

	return candidates, nil
}

func (r *Repository) getRoutes(ctx context.Context, truckID int64) ([]entities.ServiceRoute, error) {
	query := `
		SELECT sr.id, sr.name, sr.start_location, sr.end_location, sr.distance_km, tsr.sequence_order
		FROM service_routes sr
		JOIN truck_service_routes tsr ON tsr.service_route_id = sr.id
		WHERE tsr.truck_id = $1
		ORDER BY tsr.sequence_order
	`

	rows, err := r.querier.Query(ctx, query, truckID)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository routes error: %w", err)
	}
	defer rows.Close()

	routes := make([]entities.ServiceRoute, 0)
	for rows.Next() {
		var routeDB RouteDB
		err := rows.Scan(
			&routeDB.ID,
			&routeDB.Name,
			&routeDB.StartLocation,
			&routeDB.EndLocation,
			&routeDB.DistanceKm,
			&routeDB.SequenceOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository routes scan error: %w", err)
		}
		routes = append(routes, ToRouteDomain(&routeDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository routes rows error: %w", err)
	}

	return routes, nil
}

func truckFields(t *TruckDB) []interface{} {
	return []interface{}{
		&t.ID,
		&t.OperatorID,
		&t.ModelCode,
		&t.VIN,
		&t.Manufacturer,
		&t.ModelYear,
		&t.PrimaryType,
		&t.MaxWeightTons,
		&t.MaxVolumeM3,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}
