package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

type fieldRepository struct {
	pool *pgxpool.Pool
}

// NewFieldRepository returns a Postgres-backed implementation of FieldRepository.
func NewFieldRepository(pool *pgxpool.Pool) repository.FieldRepository {
	return &fieldRepository{pool: pool}
}

const fieldColumns = `id, name, description, area_ha, assigned_user_id, created_at, updated_at`

func (r *fieldRepository) GetByID(ctx context.Context, id string) (*domain.Field, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanField(row)
}

func (r *fieldRepository) List(ctx context.Context) ([]domain.Field, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []domain.Field
	for rows.Next() {
		field, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		fields = append(fields, *field)
	}
	return fields, rows.Err()
}

func scanField(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Field, error) {
	var field domain.Field
	var (
		description *string
		assignedTo  *string
	)

	if err := row.Scan(
		&field.ID,
		&field.Name,
		&description,
		&field.AreaHa,
		&assignedTo,
		&field.CreatedAt,
		&field.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFieldNotFound
		}
		return nil, err
	}

	if description != nil {
		field.Description = *description
	}
	if assignedTo != nil {
		field.AssignedUserID = *assignedTo
	}

	return &field, nil
}
