package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	"github.com/autohaus/dms_backend/internal/models"
	"github.com/autohaus/dms_backend/internal/utils/mapping"
)

type PgxVehicleOrderRepository struct {
	BaseRepository
}

func newPgxVehicleOrderRepository(db *pgxpool.Pool) portsrepo.VehicleOrderRepositoryFacade {
	return &PgxVehicleOrderRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VehicleOrderRepositoryFacade = (*PgxVehicleOrderRepository)(nil)

const vehicleOrderColumns = `order_id, supplier, vehicle_description, lc_number, lc_amount, bank, currency_code, expected_arrival, status, created_at, created_by, last_updated_at, last_updated_by`

func scanVehicleOrder(row pgx.Row) (*models.VehicleOrder, error) {
	var m models.VehicleOrder
	err := row.Scan(
		&m.OrderID,
		&m.Supplier,
		&m.VehicleDescription,
		&m.LCNumber,
		&m.LCAmount,
		&m.Bank,
		&m.CurrencyCode,
		&m.ExpectedArrival,
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

func (r *PgxVehicleOrderRepository) SaveOrder(ctx context.Context, order domain.VehicleOrder) error {
	m := mapping.ToModelVehicleOrder(order)
	query := `
		INSERT INTO vehicle_orders (` + vehicleOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OrderID,
		m.Supplier,
		m.VehicleDescription,
		m.LCNumber,
		m.LCAmount,
		m.Bank,
		m.CurrencyCode,
		m.ExpectedArrival,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vehicle order: %w", err)
	}
	return nil
}

func (r *PgxVehicleOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.VehicleOrder, error) {
	query := `SELECT ` + vehicleOrderColumns + ` FROM vehicle_orders WHERE order_id = $1;`
	m, err := scanVehicleOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle order by ID %s: %w", orderID, err)
	}
	d := mapping.ToDomainVehicleOrder(*m)
	return &d, nil
}

func (r *PgxVehicleOrderRepository) FindOrders(ctx context.Context, status *domain.VehicleOrderStatus, limit int, offset int) ([]domain.VehicleOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + vehicleOrderColumns + ` FROM vehicle_orders`
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
		return nil, fmt.Errorf("failed to query vehicle orders: %w", err)
	}
	defer rows.Close()

	modelOrders := []models.VehicleOrder{}
	for rows.Next() {
		m, err := scanVehicleOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle order row: %w", err)
		}
		modelOrders = append(modelOrders, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle order rows: %w", err)
	}

	return mapping.ToDomainVehicleOrderSlice(modelOrders), nil
}

func (r *PgxVehicleOrderRepository) UpdateOrder(ctx context.Context, order domain.VehicleOrder) error {
	m := mapping.ToModelVehicleOrder(order)
	query := `
		UPDATE vehicle_orders
		SET supplier = $2, vehicle_description = $3, lc_number = $4, lc_amount = $5,
		    bank = $6, expected_arrival = $7, last_updated_at = $8, last_updated_by = $9
		WHERE order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrderID,
		m.Supplier,
		m.VehicleDescription,
		m.LCNumber,
		m.LCAmount,
		m.Bank,
		m.ExpectedArrival,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle order %s: %w", order.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.VehicleOrderStatus, updatedBy string, at time.Time) error {
	query := `
		UPDATE vehicle_orders
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, orderID, string(status), at, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update vehicle order status for %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
