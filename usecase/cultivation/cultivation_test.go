package cultivation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeSeasonRepo struct {
	seasons map[string]*domain.CultivationSeason
	nextID  int
}

func newFakeSeasonRepo() *fakeSeasonRepo {
	return &fakeSeasonRepo{seasons: map[string]*domain.CultivationSeason{}}
}

func (f *fakeSeasonRepo) GetByID(_ context.Context, id string) (*domain.CultivationSeason, error) {
	season, ok := f.seasons[id]
	if !ok {
		return nil, domain.ErrSeasonNotFound
	}
	copy := *season
	return &copy, nil
}

func (f *fakeSeasonRepo) List(_ context.Context, filter repository.SeasonFilter) ([]domain.CultivationSeason, error) {
	var out []domain.CultivationSeason
	for _, season := range f.seasons {
		if filter.FieldID != "" && season.FieldID != filter.FieldID {
			continue
		}
		if filter.Status != "" && season.Status != filter.Status {
			continue
		}
		out = append(out, *season)
	}
	return out, nil
}

func (f *fakeSeasonRepo) CountByField(_ context.Context, fieldID string) (int, error) {
	count := 0
	for _, season := range f.seasons {
		if season.FieldID == fieldID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSeasonRepo) Create(_ context.Context, season *domain.CultivationSeason) (*domain.CultivationSeason, error) {
	f.nextID++
	if season.ID == "" {
		season.ID = fmt.Sprintf("season-%d", f.nextID)
	}
	stored := *season
	f.seasons[season.ID] = &stored
	return season, nil
}

func (f *fakeSeasonRepo) Update(_ context.Context, season *domain.CultivationSeason) error {
	if _, ok := f.seasons[season.ID]; !ok {
		return domain.ErrSeasonNotFound
	}
	stored := *season
	f.seasons[season.ID] = &stored
	return nil
}

func (f *fakeSeasonRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.seasons[id]; !ok {
		return domain.ErrSeasonNotFound
	}
	delete(f.seasons, id)
	return nil
}

type fakeWorkOrderRepo struct {
	orders map[string]*domain.WorkOrder
	nextID int
	failOn map[string]error
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{orders: map[string]*domain.WorkOrder{}, failOn: map[string]error{}}
}

func (f *fakeWorkOrderRepo) GetByID(_ context.Context, id string) (*domain.WorkOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrWorkOrderNotFound
	}
	copy := *order
	return &copy, nil
}

func (f *fakeWorkOrderRepo) List(_ context.Context, filter repository.WorkOrderFilter) ([]domain.WorkOrder, error) {
	var out []domain.WorkOrder
	for _, order := range f.orders {
		if filter.SeasonID != "" && order.CultivationSeasonID != filter.SeasonID {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeWorkOrderRepo) CountBySeason(_ context.Context, seasonID string) (int, error) {
	count := 0
	for _, order := range f.orders {
		if order.CultivationSeasonID == seasonID {
			count++
		}
	}
	return count, nil
}

func (f *fakeWorkOrderRepo) Create(_ context.Context, order *domain.WorkOrder) (*domain.WorkOrder, error) {
	if err, ok := f.failOn[order.Title]; ok {
		return nil, err
	}
	f.nextID++
	if order.ID == "" {
		order.ID = fmt.Sprintf("wo-%d", f.nextID)
	}
	stored := *order
	f.orders[order.ID] = &stored
	return order, nil
}

func (f *fakeWorkOrderRepo) Update(_ context.Context, order *domain.WorkOrder) error {
	if _, ok := f.orders[order.ID]; !ok {
		return domain.ErrWorkOrderNotFound
	}
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeWorkOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return domain.ErrWorkOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeFieldRepo struct {
	fields map[string]*domain.Field
}

func (f *fakeFieldRepo) GetByID(_ context.Context, id string) (*domain.Field, error) {
	field, ok := f.fields[id]
	if !ok {
		return nil, domain.ErrFieldNotFound
	}
	copy := *field
	return &copy, nil
}

func (f *fakeFieldRepo) List(_ context.Context) ([]domain.Field, error) {
	var out []domain.Field
	for _, field := range f.fields {
		out = append(out, *field)
	}
	return out, nil
}

type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copy := user
			return &copy, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) ListByRole(_ context.Context, roles []string) ([]domain.User, error) {
	var out []domain.User
	for _, role := range roles {
		for _, user := range f.users {
			if user.Role == role && user.IsActive() {
				out = append(out, user)
			}
		}
	}
	return out, nil
}

func testActivities(n int) []domain.Activity {
	out := make([]domain.Activity, 0, n)
	for i := 0; i < n; i++ {
		start := day(2025, 12, 1).AddDate(0, 0, i)
		out = append(out, domain.Activity{
			ID:        fmt.Sprintf("a-%d", i),
			Kind:      domain.KindFertilization,
			Title:     fmt.Sprintf("Activity %d", i),
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 1),
			Category:  domain.CategoryCropCare,
			Priority:  domain.PriorityMedium,
		})
	}
	return out
}

type fixture struct {
	uc      *UseCase
	seasons *fakeSeasonRepo
	orders  *fakeWorkOrderRepo
	fields  *fakeFieldRepo
	users   *fakeUserRepo
}

func newFixture() *fixture {
	seasons := newFakeSeasonRepo()
	orders := newFakeWorkOrderRepo()
	fields := &fakeFieldRepo{fields: map[string]*domain.Field{
		"field-1": {ID: "field-1", Name: "North Block", AssignedUserID: "user-1"},
		"field-2": {ID: "field-2", Name: "South Block"},
	}}
	users := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", FirstName: "Sari", Role: domain.RoleFieldOperator, Status: "active"},
		{ID: "user-2", FirstName: "Budi", Role: domain.RoleFieldSupervisor, Status: "active"},
	}}
	return &fixture{
		uc:      New(seasons, orders, fields, users, Options{}, nil),
		seasons: seasons,
		orders:  orders,
		fields:  fields,
		users:   users,
	}
}

func TestMaterialize(t *testing.T) {
	f := newFixture()

	result, err := f.uc.Materialize(context.Background(), MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(14),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if result.Season.Name != "MT 1 2025" {
		t.Errorf("season name = %q, want %q", result.Season.Name, "MT 1 2025")
	}
	if result.Season.SeasonNumber != 1 {
		t.Errorf("season number = %d, want 1", result.Season.SeasonNumber)
	}
	if result.Season.Status != domain.SeasonStatusActive {
		t.Errorf("season status = %q, want active", result.Season.Status)
	}
	if len(result.WorkOrders) != 14 {
		t.Fatalf("got %d work orders, want 14", len(result.WorkOrders))
	}
	for _, order := range result.WorkOrders {
		if order.Assignee != "user-1" {
			t.Errorf("assignee = %q, want the field's assigned user", order.Assignee)
		}
		if order.Status != domain.WorkOrderStatusPending {
			t.Errorf("status = %q, want pending", order.Status)
		}
		if order.CultivationSeasonID != result.Season.ID {
			t.Errorf("work order not linked to season")
		}
	}
}

func TestMaterializeSeasonNumbering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.Materialize(ctx, MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(2),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("first Materialize() error = %v", err)
	}

	if _, err := f.uc.CompleteSeason(ctx, first.Season.ID, day(2026, 3, 20), ""); err != nil {
		t.Fatalf("CompleteSeason() error = %v", err)
	}

	second, err := f.uc.Materialize(ctx, MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2026, 4, 1),
		Activities:   testActivities(2),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("second Materialize() error = %v", err)
	}
	if second.Season.Name != "MT 2 2026" {
		t.Errorf("second season name = %q, want %q", second.Season.Name, "MT 2 2026")
	}
}

func TestMaterializeActiveSeasonConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	input := MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(2),
		CreatedBy:    "admin-1",
	}

	if _, err := f.uc.Materialize(ctx, input); err != nil {
		t.Fatalf("first Materialize() error = %v", err)
	}
	_, err := f.uc.Materialize(ctx, input)
	if !errors.Is(err, domain.ErrActiveSeasonConflict) {
		t.Fatalf("second Materialize() error = %v, want ErrActiveSeasonConflict", err)
	}
}

func TestMaterializeAssigneeFallback(t *testing.T) {
	f := newFixture()

	// field-2 has no assigned user; the role lookup should supply one.
	result, err := f.uc.Materialize(context.Background(), MaterializeInput{
		FieldID:      "field-2",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(1),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if got := result.WorkOrders[0].Assignee; got != "user-1" {
		t.Errorf("assignee = %q, want first eligible user", got)
	}
}

func TestMaterializeNoAssignee(t *testing.T) {
	f := newFixture()
	f.users.users = nil
	f.fields.fields["field-2"].AssignedUserID = ""

	_, err := f.uc.Materialize(context.Background(), MaterializeInput{
		FieldID:      "field-2",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(1),
		CreatedBy:    "admin-1",
	})
	if !errors.Is(err, domain.ErrNoAssignee) {
		t.Fatalf("Materialize() error = %v, want ErrNoAssignee", err)
	}
	if len(f.seasons.seasons) != 0 {
		t.Error("season was created despite missing assignee")
	}
}

func TestMaterializeRollsBackOnPartialFailure(t *testing.T) {
	f := newFixture()
	activities := testActivities(5)
	f.orders.failOn[activities[3].Title] = errors.New("disk full")

	_, err := f.uc.Materialize(context.Background(), MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   activities,
		CreatedBy:    "admin-1",
	})

	var matErr *domain.MaterializationError
	if !errors.As(err, &matErr) {
		t.Fatalf("Materialize() error = %v, want MaterializationError", err)
	}
	if len(matErr.FailedActivities) != 1 || matErr.FailedActivities[0] != activities[3].Title {
		t.Errorf("failed activities = %v, want [%q]", matErr.FailedActivities, activities[3].Title)
	}
	if len(f.orders.orders) != 0 {
		t.Errorf("%d work orders remain after rollback, want 0", len(f.orders.orders))
	}
	if len(f.seasons.seasons) != 0 {
		t.Errorf("%d seasons remain after rollback, want 0", len(f.seasons.seasons))
	}
}

func TestMaterializeBatchIndependentFailures(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Occupy field-1 so it conflicts during the batch.
	if _, err := f.uc.Materialize(ctx, MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(1),
		CreatedBy:    "admin-1",
	}); err != nil {
		t.Fatalf("setup Materialize() error = %v", err)
	}

	result, err := f.uc.MaterializeBatch(ctx, []string{"field-1", "field-2", "field-3"}, MaterializeInput{
		PlantingDate: day(2026, 1, 1),
		Activities:   testActivities(2),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("MaterializeBatch() error = %v", err)
	}

	if len(result.Results) != 1 {
		t.Errorf("got %d successes, want 1", len(result.Results))
	}
	if len(result.Failures) != 2 {
		t.Fatalf("got %d failures, want 2", len(result.Failures))
	}
	if !errors.Is(result.Failures[0].Err, domain.ErrActiveSeasonConflict) {
		t.Errorf("field-1 failure = %v, want ErrActiveSeasonConflict", result.Failures[0].Err)
	}
	if !errors.Is(result.Failures[1].Err, domain.ErrFieldNotFound) {
		t.Errorf("field-3 failure = %v, want ErrFieldNotFound", result.Failures[1].Err)
	}
}

func TestCompleteSeason(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.uc.Materialize(ctx, MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(1),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	completed, err := f.uc.CompleteSeason(ctx, result.Season.ID, day(2026, 3, 20), "good yield")
	if err != nil {
		t.Fatalf("CompleteSeason() error = %v", err)
	}
	if completed.Status != domain.SeasonStatusCompleted {
		t.Errorf("status = %q, want completed", completed.Status)
	}
	if completed.CompletedDate == nil || !completed.CompletedDate.Equal(day(2026, 3, 20)) {
		t.Errorf("completed date = %v, want 2026-03-20", completed.CompletedDate)
	}

	if _, err := f.uc.CompleteSeason(ctx, result.Season.ID, day(2026, 3, 21), ""); err == nil {
		t.Error("completing a completed season succeeded")
	}
}

func TestDeleteSeasonGuard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.uc.Materialize(ctx, MaterializeInput{
		FieldID:      "field-1",
		PlantingDate: day(2025, 12, 1),
		Activities:   testActivities(3),
		CreatedBy:    "admin-1",
	})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	err = f.uc.DeleteSeason(ctx, result.Season.ID)
	if !errors.Is(err, domain.ErrSeasonHasWorkOrders) {
		t.Fatalf("DeleteSeason() error = %v, want ErrSeasonHasWorkOrders", err)
	}

	for _, order := range result.WorkOrders {
		if err := f.orders.Delete(ctx, order.ID); err != nil {
			t.Fatalf("cleanup delete error = %v", err)
		}
	}
	if err := f.uc.DeleteSeason(ctx, result.Season.ID); err != nil {
		t.Fatalf("DeleteSeason() after cleanup error = %v", err)
	}
}
