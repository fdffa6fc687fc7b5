package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/shipment"
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

const shipmentColumns = `id, warehouse_id, assigned_truck_id, weight_tons, volume_m3, num_boxes,
		origin, destination, deadline, splittable, stackable, hazardous, temperature_sensitive,
		status, version, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, shipmentEntity entities.Shipment) (*entities.Shipment, error) {
	query := `
		INSERT INTO shipments (warehouse_id, weight_tons, volume_m3, num_boxes, origin, destination,
			deadline, splittable, stackable, hazardous, temperature_sensitive, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + shipmentColumns

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentEntity.WarehouseID,
		shipmentEntity.WeightTons,
		shipmentEntity.VolumeM3,
		shipmentEntity.NumBoxes,
		shipmentEntity.Origin,
		shipmentEntity.Destination,
		shipmentEntity.Deadline,
		shipmentEntity.Splittable,
		shipmentEntity.Stackable,
		shipmentEntity.Hazardous,
		shipmentEntity.TempSensitive,
		shipmentEntity.Status.String(),
	).Scan(shipmentFields(&shipmentDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1
	`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(shipmentFields(&shipmentDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, int64, error) {
	where := sq.And{sq.Eq{"warehouse_id": filter.WarehouseID}}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}
	if filter.Destination != nil {
		where = append(where, sq.ILike{"destination": "%" + *filter.Destination + "%"})
	}
	if filter.FromDate != nil {
		where = append(where, sq.GtOrEq{"deadline": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, sq.LtOrEq{"deadline": *filter.ToDate})
	}

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("shipments").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}

	offset := uint64(filter.Page-1) * uint64(filter.Limit)
	listQuery, listArgs, err := qb.
		Select(shipmentColumns).
		From("shipments").
		Where(where).
		OrderBy("updated_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipments := make([]entities.Shipment, 0)
	for rows.Next() {
		var shipmentDB ShipmentDB
		if err := rows.Scan(shipmentFields(&shipmentDB)...); err != nil {
			return nil, 0, fmt.Errorf("unexpected shipment repository scan error: %w", err)
		}
		shipments = append(shipments, *ToDomain(&shipmentDB))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected shipment repository rows error: %w", err)
	}

	return shipments, total, nil
}

// Update applies the modify only when the row still carries the expected
// version, bumping it in the same statement. A vanished row on a live
// shipment id means a concurrent writer won the race.
func (r *Repository) Update(ctx context.Context, shipmentModify entities.ShipmentModify, version int64) (*entities.Shipment, error) {
	builder := qb.Update("shipments")

	if shipmentModify.AssignedTruckID != nil {
		builder = builder.Set("assigned_truck_id", *shipmentModify.AssignedTruckID)
	}
	if shipmentModify.Deadline != nil {
		builder = builder.Set("deadline", *shipmentModify.Deadline)
	}
	if shipmentModify.Status != nil {
		builder = builder.Set("status", shipmentModify.Status.String())
	}

	builder = builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": shipmentModify.ID, "version": version}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentDB ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(shipmentFields(&shipmentDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, shipmentModify.ID)
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM shipments WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}
	return nil
}

func (r *Repository) AppendEvent(ctx context.Context, event entities.ShipmentEvent) (*entities.ShipmentEvent, error) {
	query := `
		INSERT INTO shipment_events (shipment_id, status, location, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, shipment_id, status, location, occurred_at
	`

	var eventDB ShipmentEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.ShipmentID,
		event.Status.String(),
		event.Location,
		event.OccurredAt,
	).Scan(
		&eventDB.ID,
		&eventDB.ShipmentID,
		&eventDB.Status,
		&eventDB.Location,
		&eventDB.OccurredAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository event create error: %w", err)
	}

	return ToEventDomain(&eventDB), nil
}

func (r *Repository) GetEvents(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error) {
	query := `
		SELECT id, shipment_id, status, location, occurred_at
		FROM shipment_events
		WHERE shipment_id = $1
		ORDER BY occurred_at, id
	`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.ShipmentEvent, 0)
	for rows.Next() {
		var eventDB ShipmentEventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.ShipmentID,
			&eventDB.Status,
			&eventDB.Location,
			&eventDB.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository events scan error: %w", err)
		}
		events = append(events, *ToEventDomain(&eventDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository events rows error: %w", err)
	}

	return events, nil
}

func (r *Repository) DeleteEventsByShipment(ctx context.Context, shipmentID int64) error {
	query := `
		DELETE FROM shipment_events WHERE shipment_id = $1
	`
	_, err := r.querier.Exec(ctx, query, shipmentID)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository events delete error: %w", err)
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.ShipmentStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM shipments
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.ShipmentStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository count scan error: %w", err)
		}
		counts[entities.ShipmentStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository count rows error: %w", err)
	}

	return counts, nil
}

func (r *Repository) classifyMissedUpdate(ctx context.Context, id *int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shipments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update error: %w", err)
	}
	if exists {
		return shipment.ErrUpdateConflict
	}
	return shipment.ErrShipmentNotFound
}

func shipmentFields(s *ShipmentDB) []interface{} {
	return []interface{}{
		&s.ID,
		&s.WarehouseID,
		&s.AssignedTruckID,
		&s.WeightTons,
		&s.VolumeM3,
		&s.NumBoxes,
		&s.Origin,
		&s.Destination,
		&s.Deadline,
		&s.Splittable,
		&s.Stackable,
		&s.Hazardous,
		&s.TempSensitive,
		&s.Status,
		&s.Version,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}
