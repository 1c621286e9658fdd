package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	"github.com/autohaus/dms_backend/internal/models"
	"github.com/autohaus/dms_backend/internal/utils/mapping"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `inventory_id, make, model, year, vin, color, price, currency_code, status, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.InventoryID,
		&m.Make,
		&m.Model,
		&m.Year,
		&m.VIN,
		&m.Color,
		&m.Price,
		&m.CurrencyCode,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InventoryID,
		m.Make,
		m.Model,
		m.Year,
		m.VIN,
		m.Color,
		m.Price,
		m.CurrencyCode,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on vin
			return fmt.Errorf("%w: VIN %s", apperrors.ErrDuplicate, item.VIN)
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, inventoryID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE inventory_id = $1;`
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, inventoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", inventoryID, err)
	}
	d := mapping.ToDomainInventoryItem(*m)
	return &d, nil
}

func (r *PgxInventoryRepository) FindItemByVIN(ctx context.Context, vin string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE vin = $1;`
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, vin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by VIN: %w", err)
	}
	d := mapping.ToDomainInventoryItem(*m)
	return &d, nil
}

func (r *PgxInventoryRepository) FindItems(ctx context.Context, status *domain.InventoryStatus, limit int, offset int) ([]domain.InventoryItem, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + inventoryColumns + ` FROM inventory`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
		args = append(args, string(*status), limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	modelItems := []models.InventoryItem{}
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		modelItems = append(modelItems, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return mapping.ToDomainInventorySlice(modelItems), nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		UPDATE inventory
		SET make = $2, model = $3, year = $4, color = $5, price = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE inventory_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.InventoryID,
		m.Make,
		m.Model,
		m.Year,
		m.Color,
		m.Price,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %s: %w", item.InventoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInventoryRepository) UpdateItemStatus(ctx context.Context, inventoryID string, status domain.InventoryStatus, updatedBy string, at time.Time) error {
	query := `
		UPDATE inventory
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE inventory_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, inventoryID, string(status), at, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update inventory status for %s: %w", inventoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
