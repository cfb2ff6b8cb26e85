package cultivation

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/hst"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

// Options tunes season materialization.
type Options struct {
	// EligibleRoles are consulted, in order, when a field has no assigned
	// user. The first active user carrying one of these roles becomes the
	// assignee of every generated work order.
	EligibleRoles []string
}

func (o Options) roles() []string {
	if len(o.EligibleRoles) > 0 {
		return o.EligibleRoles
	}
	return []string{domain.RoleFieldOperator, domain.RoleFieldSupervisor}
}

type UseCase struct {
	seasons    repository.SeasonRepository
	workOrders repository.WorkOrderRepository
	fields     repository.FieldRepository
	users      repository.UserRepository
	opts       Options
	logger     *zap.Logger
}

func New(
	seasons repository.SeasonRepository,
	workOrders repository.WorkOrderRepository,
	fields repository.FieldRepository,
	users repository.UserRepository,
	opts Options,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		seasons:    seasons,
		workOrders: workOrders,
		fields:     fields,
		users:      users,
		opts:       opts,
		logger:     logger,
	}
}

// MaterializeInput starts one cultivation season on one field.
type MaterializeInput struct {
	FieldID      string
	PlantingDate time.Time
	Activities   []domain.Activity
	Notes        string
	CreatedBy    string
}

// MaterializeResult reports what a successful materialization produced.
type MaterializeResult struct {
	Season     *domain.CultivationSeason
	WorkOrders []domain.WorkOrder
}

// Materialize creates a cultivation season on the field and turns every
// template activity into a persisted work order. The operation is
// all-or-nothing: when any work order fails to persist, the ones already
// created and the season itself are removed again and a
// MaterializationError describing the failed activities is returned.
func (uc *UseCase) Materialize(ctx context.Context, input MaterializeInput) (*MaterializeResult, error) {
	if input.FieldID == "" || input.PlantingDate.IsZero() || len(input.Activities) == 0 {
		return nil, domain.ErrInvalidPayload
	}

	field, err := uc.fields.GetByID(ctx, input.FieldID)
	if err != nil {
		return nil, err
	}

	active, err := uc.seasons.List(ctx, repository.SeasonFilter{
		FieldID: field.ID,
		Status:  domain.SeasonStatusActive,
	})
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, domain.WrapError(domain.ErrCodeConflict,
			fmt.Sprintf("field %s already has an active season", field.Name),
			domain.ErrActiveSeasonConflict)
	}

	assignee, err := uc.resolveAssignee(ctx, field)
	if err != nil {
		return nil, err
	}

	count, err := uc.seasons.CountByField(ctx, field.ID)
	if err != nil {
		return nil, err
	}

	plantingDate := hst.Day(input.PlantingDate)
	season := &domain.CultivationSeason{
		FieldID:      field.ID,
		FieldName:    field.Name,
		SeasonNumber: count + 1,
		Name:         fmt.Sprintf("MT %d %d", count+1, plantingDate.Year()),
		PlantingDate: plantingDate,
		Status:       domain.SeasonStatusActive,
		Notes:        input.Notes,
		CreatedBy:    input.CreatedBy,
	}

	season, err = uc.seasons.Create(ctx, season)
	if err != nil {
		return nil, err
	}

	created := make([]domain.WorkOrder, 0, len(input.Activities))
	var failed []string
	var errs error

	for _, activity := range input.Activities {
		start := activity.StartDate
		end := activity.EndDate
		order := &domain.WorkOrder{
			FieldID:             field.ID,
			CultivationSeasonID: season.ID,
			Title:               activity.Title,
			Kind:                activity.Kind,
			Category:            activity.Category,
			Status:              domain.WorkOrderStatusPending,
			Priority:            activity.Priority,
			Assignee:            assignee,
			StartDate:           &start,
			EndDate:             &end,
			Description:         activity.Description,
			CreatedBy:           input.CreatedBy,
		}

		persisted, err := uc.workOrders.Create(ctx, order)
		if err != nil {
			failed = append(failed, activity.Title)
			errs = multierror.Append(errs, fmt.Errorf("activity %q: %w", activity.Title, err))
			continue
		}
		created = append(created, *persisted)
	}

	if len(failed) > 0 {
		uc.rollback(ctx, season, created)
		return nil, &domain.MaterializationError{
			SeasonName:       season.Name,
			FailedActivities: failed,
			Err:              errs,
		}
	}

	uc.logger.Info("season materialized",
		zap.String("season_id", season.ID),
		zap.String("field_id", field.ID),
		zap.Int("work_orders", len(created)))

	return &MaterializeResult{Season: season, WorkOrders: created}, nil
}

// BatchFailure records one field that could not be materialized.
type BatchFailure struct {
	FieldID string
	Err     error
}

// BatchResult summarizes a batch materialization run.
type BatchResult struct {
	Results  []MaterializeResult
	Failures []BatchFailure
}

// MaterializeBatch starts a season on each given field. Fields fail
// independently; one conflicting or broken field does not stop the rest.
func (uc *UseCase) MaterializeBatch(ctx context.Context, fieldIDs []string, input MaterializeInput) (*BatchResult, error) {
	if len(fieldIDs) == 0 {
		return nil, domain.ErrInvalidPayload
	}

	result := &BatchResult{}
	for _, fieldID := range fieldIDs {
		perField := input
		perField.FieldID = fieldID

		res, err := uc.Materialize(ctx, perField)
		if err != nil {
			uc.logger.Warn("batch materialization failed for field",
				zap.String("field_id", fieldID), zap.Error(err))
			result.Failures = append(result.Failures, BatchFailure{FieldID: fieldID, Err: err})
			continue
		}
		result.Results = append(result.Results, *res)
	}
	return result, nil
}

func (uc *UseCase) resolveAssignee(ctx context.Context, field *domain.Field) (string, error) {
	if field.AssignedUserID != "" {
		user, err := uc.users.GetByID(ctx, field.AssignedUserID)
		if err == nil && user.IsActive() {
			return user.ID, nil
		}
		uc.logger.Warn("assigned field user unavailable, falling back to role lookup",
			zap.String("field_id", field.ID), zap.String("user_id", field.AssignedUserID))
	}

	candidates, err := uc.users.ListByRole(ctx, uc.opts.roles())
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", domain.WrapError(domain.ErrCodeConflict,
			fmt.Sprintf("no eligible assignee for field %s", field.Name),
			domain.ErrNoAssignee)
	}
	return candidates[0].ID, nil
}

// rollback undoes a partially materialized season. Cleanup failures are
// logged, not returned; the caller already holds the materialization error.
func (uc *UseCase) rollback(ctx context.Context, season *domain.CultivationSeason, orders []domain.WorkOrder) {
	for _, order := range orders {
		if err := uc.workOrders.Delete(ctx, order.ID); err != nil {
			uc.logger.Error("rollback: failed to delete work order",
				zap.String("work_order_id", order.ID), zap.Error(err))
		}
	}
	if err := uc.seasons.Delete(ctx, season.ID); err != nil {
		uc.logger.Error("rollback: failed to delete season",
			zap.String("season_id", season.ID), zap.Error(err))
	}
}

func (uc *UseCase) ListSeasons(ctx context.Context, filter repository.SeasonFilter) ([]domain.CultivationSeason, error) {
	return uc.seasons.List(ctx, filter)
}

func (uc *UseCase) GetSeason(ctx context.Context, id string) (*domain.CultivationSeason, error) {
	return uc.seasons.GetByID(ctx, id)
}

// CompleteSeason closes an active season. Completing an already completed
// season is rejected.
func (uc *UseCase) CompleteSeason(ctx context.Context, id string, completedDate time.Time, notes string) (*domain.CultivationSeason, error) {
	season, err := uc.seasons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !season.IsActive() {
		return nil, domain.WrapError(domain.ErrCodeConflict, "season is not active", domain.ErrActiveSeasonConflict)
	}

	if completedDate.IsZero() {
		completedDate = time.Now()
	}
	completedDate = hst.Day(completedDate)
	season.Status = domain.SeasonStatusCompleted
	season.CompletedDate = &completedDate
	if notes != "" {
		season.Notes = notes
	}

	if err := uc.seasons.Update(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

// DeleteSeason removes a season that has no work orders left. Seasons with
// remaining work orders must have them removed first.
func (uc *UseCase) DeleteSeason(ctx context.Context, id string) error {
	count, err := uc.workOrders.CountBySeason(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.WrapError(domain.ErrCodeConflict,
			fmt.Sprintf("season still has %d work orders", count),
			domain.ErrSeasonHasWorkOrders)
	}
	return uc.seasons.Delete(ctx, id)
}
