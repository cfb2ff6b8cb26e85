package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

const (
	defaultWorkOrderLimit = 50
	maxWorkOrderLimit     = 500
)

type workOrderRepository struct {
	pool *pgxpool.Pool
}

// NewWorkOrderRepository returns a Postgres-backed implementation of WorkOrderRepository.
func NewWorkOrderRepository(pool *pgxpool.Pool) repository.WorkOrderRepository {
	return &workOrderRepository{pool: pool}
}

const workOrderColumns = `
	id, field_id, cultivation_season_id, title, kind, category, status, priority,
	assignee, start_date, end_date, progress, description, created_by,
	completed_date, created_at, updated_at`

func (r *workOrderRepository) GetByID(ctx context.Context, id string) (*domain.WorkOrder, error) {
	query := `
	SELECT` + workOrderColumns + `
	FROM work_orders
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanWorkOrder(row)
}

func (r *workOrderRepository) List(ctx context.Context, filter repository.WorkOrderFilter) ([]domain.WorkOrder, error) {
	limit := clampLimit(filter.Limit, defaultWorkOrderLimit, maxWorkOrderLimit)
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
	SELECT` + workOrderColumns + `
	FROM work_orders
	WHERE ($1 = '' OR field_id = $1)
	  AND ($2 = '' OR cultivation_season_id = $2)
	  AND ($3 = '' OR status = $3)
	  AND ($4 = '' OR assignee = $4)
	  AND ($5 = '' OR title ILIKE '%' || $5 || '%')
	ORDER BY start_date ASC NULLS LAST, created_at ASC
	LIMIT $6 OFFSET $7
	`
	rows, err := r.pool.Query(ctx, query,
		filter.FieldID, filter.SeasonID, filter.Status, filter.Assignee, filter.Search,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.WorkOrder
	for rows.Next() {
		order, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *workOrderRepository) CountBySeason(ctx context.Context, seasonID string) (int, error) {
	const query = `SELECT COUNT(*) FROM work_orders WHERE cultivation_season_id = $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, seasonID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *workOrderRepository) Create(ctx context.Context, order *domain.WorkOrder) (*domain.WorkOrder, error) {
	if order == nil {
		return nil, domain.ErrInvalidPayload
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = domain.WorkOrderStatusPending
	}
	if order.Priority == "" {
		order.Priority = domain.PriorityMedium
	}

	const query = `
	INSERT INTO work_orders (
		id, field_id, cultivation_season_id, title, kind, category, status, priority,
		assignee, start_date, end_date, progress, description, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		order.ID,
		order.FieldID,
		order.CultivationSeasonID,
		order.Title,
		order.Kind,
		order.Category,
		order.Status,
		order.Priority,
		nullString(order.Assignee),
		nullTime(order.StartDate),
		nullTime(order.EndDate),
		order.Progress,
		nullString(order.Description),
		order.CreatedBy,
	).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *workOrderRepository) Update(ctx context.Context, order *domain.WorkOrder) error {
	if order == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE work_orders
	SET title = $2,
		status = $3,
		priority = $4,
		assignee = $5,
		start_date = $6,
		end_date = $7,
		progress = $8,
		description = $9,
		completed_date = $10,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		order.ID,
		order.Title,
		order.Status,
		order.Priority,
		nullString(order.Assignee),
		nullTime(order.StartDate),
		nullTime(order.EndDate),
		order.Progress,
		nullString(order.Description),
		nullTime(order.CompletedDate),
	).Scan(&order.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrWorkOrderNotFound
		}
		return err
	}

	return nil
}

func (r *workOrderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM work_orders WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkOrderNotFound
	}
	return nil
}

func scanWorkOrder(row interface {
	Scan(dest ...interface{}) error
}) (*domain.WorkOrder, error) {
	var order domain.WorkOrder
	var (
		assignee    *string
		startDate   *time.Time
		endDate     *time.Time
		description *string
		completed   *time.Time
	)

	if err := row.Scan(
		&order.ID,
		&order.FieldID,
		&order.CultivationSeasonID,
		&order.Title,
		&order.Kind,
		&order.Category,
		&order.Status,
		&order.Priority,
		&assignee,
		&startDate,
		&endDate,
		&order.Progress,
		&description,
		&order.CreatedBy,
		&completed,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkOrderNotFound
		}
		return nil, err
	}

	if assignee != nil {
		order.Assignee = *assignee
	}
	order.StartDate = startDate
	order.EndDate = endDate
	if description != nil {
		order.Description = *description
	}
	order.CompletedDate = completed

	return &order, nil
}
