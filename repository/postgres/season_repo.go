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

type seasonRepository struct {
	pool *pgxpool.Pool
}

// NewSeasonRepository returns a Postgres-backed implementation of SeasonRepository.
func NewSeasonRepository(pool *pgxpool.Pool) repository.SeasonRepository {
	return &seasonRepository{pool: pool}
}

const seasonColumns = `
	cs.id, cs.field_id, f.name, cs.season_number, cs.name, cs.planting_date,
	cs.status, cs.completed_date, cs.notes, cs.created_by, cs.created_at, cs.updated_at`

func (r *seasonRepository) GetByID(ctx context.Context, id string) (*domain.CultivationSeason, error) {
	query := `
	SELECT` + seasonColumns + `
	FROM cultivation_seasons cs
	LEFT JOIN fields f ON cs.field_id = f.id
	WHERE cs.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanSeason(row)
}

func (r *seasonRepository) List(ctx context.Context, filter repository.SeasonFilter) ([]domain.CultivationSeason, error) {
	query := `
	SELECT` + seasonColumns + `
	FROM cultivation_seasons cs
	LEFT JOIN fields f ON cs.field_id = f.id
	WHERE ($1 = '' OR cs.field_id = $1)
	  AND ($2 = '' OR cs.status = $2)
	ORDER BY cs.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, filter.FieldID, filter.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []domain.CultivationSeason
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, *season)
	}
	return seasons, rows.Err()
}

func (r *seasonRepository) CountByField(ctx context.Context, fieldID string) (int, error) {
	const query = `SELECT COUNT(*) FROM cultivation_seasons WHERE field_id = $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, fieldID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *seasonRepository) Create(ctx context.Context, season *domain.CultivationSeason) (*domain.CultivationSeason, error) {
	if season == nil {
		return nil, domain.ErrInvalidPayload
	}
	if season.ID == "" {
		season.ID = uuid.NewString()
	}
	if season.Status == "" {
		season.Status = domain.SeasonStatusActive
	}

	const query = `
	INSERT INTO cultivation_seasons (id, field_id, season_number, name, planting_date, status, notes, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		season.ID,
		season.FieldID,
		season.SeasonNumber,
		season.Name,
		season.PlantingDate,
		season.Status,
		nullString(season.Notes),
		season.CreatedBy,
	).Scan(&season.CreatedAt, &season.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.WrapError(domain.ErrCodeConflict, "season number already taken for field", err)
		}
		return nil, err
	}

	return season, nil
}

func (r *seasonRepository) Update(ctx context.Context, season *domain.CultivationSeason) error {
	if season == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE cultivation_seasons
	SET name = $2,
		status = $3,
		completed_date = $4,
		notes = $5,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		season.ID,
		season.Name,
		season.Status,
		nullTime(season.CompletedDate),
		nullString(season.Notes),
	).Scan(&season.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSeasonNotFound
		}
		return err
	}

	return nil
}

func (r *seasonRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM cultivation_seasons WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSeasonNotFound
	}
	return nil
}

func scanSeason(row interface {
	Scan(dest ...interface{}) error
}) (*domain.CultivationSeason, error) {
	var season domain.CultivationSeason
	var (
		fieldName *string
		completed *time.Time
		notes     *string
	)

	if err := row.Scan(
		&season.ID,
		&season.FieldID,
		&fieldName,
		&season.SeasonNumber,
		&season.Name,
		&season.PlantingDate,
		&season.Status,
		&completed,
		&notes,
		&season.CreatedBy,
		&season.CreatedAt,
		&season.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSeasonNotFound
		}
		return nil, err
	}

	if fieldName != nil {
		season.FieldName = *fieldName
	}
	season.CompletedDate = completed
	if notes != nil {
		season.Notes = *notes
	}

	return &season, nil
}
