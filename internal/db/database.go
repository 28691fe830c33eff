package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wellywell/plaquexpress/internal/types"
)

const (
	MaxOrdersLimit = 50

	maxOrderNumberAttempts = 5
	orderNumberConstraint  = "orders_scope_order_number_key"
)

const orderColumns = `
	id::text AS id, tenant_id, project_id, order_number,
	customer_name, customer_phone, customer_address,
	plate_number, vehicle_type, plate_type, plate_shape, mounting_option,
	dimensions, total_price, additional_notes, order_data,
	status, created_at, updated_at`

const settingsColumns = `
	id::text AS id, email_enabled, email_address,
	whatsapp_enabled, whatsapp_number, updated_at`

type Database struct {
	pool           *pgxpool.Pool
	newOrderNumber func(now time.Time) string
}

// NewDatabase migrates the schema and opens a pool.
func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	return Open(connString)
}

// Open connects to an existing schema without migrating it.
func Open(connString string) (*Database, error) {
	p, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool:           p,
		newOrderNumber: OrderNumber,
	}, nil
}

// OrderNumber returns a human facing number like PX20260042.
func OrderNumber(now time.Time) string {
	return fmt.Sprintf("PX%d%04d", now.Year(), rand.IntN(10000))
}

func (d *Database) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *Database) Close() {
	d.pool.Close()
}

// InsertOrder stores a new pending order under scope. The order number is
// generated here and regenerated when it collides with an existing one.
func (d *Database) InsertOrder(ctx context.Context, scope types.Scope, order types.Order) (*types.Order, error) {

	query := `
		INSERT INTO orders (
			id, tenant_id, project_id, order_number,
			customer_name, customer_phone, customer_address,
			plate_number, vehicle_type, plate_type, plate_shape, mounting_option,
			dimensions, total_price, additional_notes, order_data, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + orderColumns

	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		number := d.newOrderNumber(time.Now())

		rows, err := d.pool.Query(ctx, query,
			uuid.New(), scope.TenantID, scope.ProjectID, number,
			order.CustomerName, order.CustomerPhone, order.CustomerAddress,
			order.PlateNumber, order.VehicleType, order.PlateType, order.PlateShape, order.MountingOption,
			order.Dimensions, order.TotalPrice, order.AdditionalNotes, order.OrderData, types.PendingStatus)
		if err == nil {
			var inserted types.Order
			inserted, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
			if err == nil {
				return &inserted, nil
			}
		}
		if isOrderNumberCollision(err) {
			continue
		}
		return nil, fmt.Errorf("failed inserting order %w", err)
	}
	return nil, fmt.Errorf("%w", &OrderNumberExhaustedError{Attempts: maxOrderNumberAttempts})
}

func isOrderNumberCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == orderNumberConstraint
}

// ListRecentOrders returns newest orders first. limit is clamped to
// 1..MaxOrdersLimit.
func (d *Database) ListRecentOrders(ctx context.Context, scope types.Scope, limit int) ([]types.Order, error) {
	if limit <= 0 || limit > MaxOrdersLimit {
		limit = MaxOrdersLimit
	}
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND project_id = $2
		ORDER BY created_at DESC, id
		LIMIT $3
	`
	rows, err := d.pool.Query(ctx, query, scope.TenantID, scope.ProjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	if orders == nil {
		orders = []types.Order{}
	}
	return orders, nil
}

func (d *Database) CountOrders(ctx context.Context, scope types.Scope) (int, error) {
	query := `
		SELECT count(*)
		FROM orders
		WHERE tenant_id = $1 AND project_id = $2`

	var count int
	if err := d.pool.QueryRow(ctx, query, scope.TenantID, scope.ProjectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed counting orders %w", err)
	}
	return count, nil
}

func (d *Database) GetOrder(ctx context.Context, scope types.Scope, orderID string) (*types.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, fmt.Errorf("%w", ErrOrderNotFound)
	}
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND tenant_id = $2 AND project_id = $3
	`
	rows, err := d.pool.Query(ctx, query, orderID, scope.TenantID, scope.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus moves an order forward. The update only applies while
// the row still has the status the transition was checked against.
func (d *Database) UpdateOrderStatus(ctx context.Context, scope types.Scope, orderID string, next types.Status) (*types.Order, error) {

	current, err := d.GetOrder(ctx, scope, orderID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w", &StatusTransitionError{OrderID: orderID, From: current.Status, To: next})
	}

	query := `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2 AND tenant_id = $3 AND project_id = $4 AND status = $5
		RETURNING ` + orderColumns

	rows, err := d.pool.Query(ctx, query, next, orderID, scope.TenantID, scope.ProjectID, current.Status)
	if err != nil {
		return nil, fmt.Errorf("failed updating order %w", err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// someone else changed the status in between
			return nil, fmt.Errorf("%w", &StatusTransitionError{OrderID: orderID, From: current.Status, To: next})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &updated, nil
}

func (d *Database) GetSettings(ctx context.Context, scope types.Scope) (*types.NotificationSettings, error) {
	query := `
		SELECT ` + settingsColumns + `
		FROM notification_settings
		WHERE tenant_id = $1 AND project_id = $2
	`
	rows, err := d.pool.Query(ctx, query, scope.TenantID, scope.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	settings, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.NotificationSettings])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", ErrSettingsNotFound)
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &settings, nil
}

// UpsertSettings applies a partial update in one statement, so concurrent
// first saves for a scope still end up with a single row. Nil fields keep
// their stored value, empty strings clear the destination.
func (d *Database) UpsertSettings(ctx context.Context, scope types.Scope, update types.SettingsUpdate) (*types.NotificationSettings, error) {
	query := `
		INSERT INTO notification_settings (
			id, tenant_id, project_id,
			email_enabled, email_address, whatsapp_enabled, whatsapp_number)
		VALUES (
			$1, $2, $3,
			COALESCE($4::boolean, false), NULLIF($5::text, ''),
			COALESCE($6::boolean, false), NULLIF($7::text, ''))
		ON CONFLICT (tenant_id, project_id)
		DO UPDATE SET
			email_enabled = COALESCE($4::boolean, notification_settings.email_enabled),
			email_address = CASE WHEN $5::text IS NULL
				THEN notification_settings.email_address
				ELSE NULLIF($5::text, '') END,
			whatsapp_enabled = COALESCE($6::boolean, notification_settings.whatsapp_enabled),
			whatsapp_number = CASE WHEN $7::text IS NULL
				THEN notification_settings.whatsapp_number
				ELSE NULLIF($7::text, '') END,
			updated_at = now()
		RETURNING ` + settingsColumns

	rows, err := d.pool.Query(ctx, query,
		uuid.New(), scope.TenantID, scope.ProjectID,
		update.EmailEnabled, update.EmailAddress, update.WhatsAppEnabled, update.WhatsAppNumber)
	if err != nil {
		return nil, fmt.Errorf("failed saving settings %w", err)
	}

	settings, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.NotificationSettings])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &settings, nil
}
