package warehouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/service/warehouse"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const warehouseColumns = `id, operator_id, name, address, capacity_tons, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, operatorID int64, draft entities.WarehouseDraft) (*entities.Warehouse, error) {
	query := `
		INSERT INTO warehouses (operator_id, name, address, capacity_tons)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + warehouseColumns

	var warehouseDB WarehouseDB
	err := r.querier.QueryRow(
		ctx,
		query,
		operatorID,
		draft.Name,
		draft.Address,
		draft.CapacityTons,
	).Scan(warehouseFields(&warehouseDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository create error: %w", err)
	}

	return ToDomain(&warehouseDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE id = $1
	`

	var warehouseDB WarehouseDB
	err := r.querier.QueryRow(ctx, query, id).Scan(warehouseFields(&warehouseDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, warehouse.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("unexpected warehouse repository get error: %w", err)
	}

	return ToDomain(&warehouseDB), nil
}

func (r *Repository) GetByOperator(ctx context.Context, operatorID int64) ([]entities.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE operator_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository list error: %w", err)
	}
	defer rows.Close()

	warehouses := make([]entities.Warehouse, 0)
	for rows.Next() {
		var warehouseDB WarehouseDB
		if err := rows.Scan(warehouseFields(&warehouseDB)...); err != nil {
			return nil, fmt.Errorf("unexpected warehouse repository scan error: %w", err)
		}
		warehouses = append(warehouses, *ToDomain(&warehouseDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository rows error: %w", err)
	}

	return warehouses, nil
}

func warehouseFields(w *WarehouseDB) []interface{} {
	return []interface{}{
		&w.ID,
		&w.OperatorID,
		&w.Name,
		&w.Address,
		&w.CapacityTons,
		&w.CreatedAt,
		&w.UpdatedAt,
	}
}
