package workorder

import (
	"context"
	"errors"
	"testing"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

type fakeOrderRepo struct {
	orders    map[string]*domain.WorkOrder
	updateErr error
}

func newFakeOrderRepo(orders ...*domain.WorkOrder) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[string]*domain.WorkOrder{}}
	for _, order := range orders {
		stored := *order
		repo.orders[order.ID] = &stored
	}
	return repo
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.WorkOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrWorkOrderNotFound
	}
	out := *order
	return &out, nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ repository.WorkOrderFilter) ([]domain.WorkOrder, error) {
	var out []domain.WorkOrder
	for _, order := range f.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeOrderRepo) CountBySeason(_ context.Context, _ string) (int, error) {
	return len(f.orders), nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.WorkOrder) (*domain.WorkOrder, error) {
	stored := *order
	f.orders[order.ID] = &stored
	return order, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *domain.WorkOrder) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.orders[order.ID]; !ok {
		return domain.ErrWorkOrderNotFound
	}
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return domain.ErrWorkOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeBuffer struct {
	buffered []string
	err      error
}

func (f *fakeBuffer) BufferWorkOrder(_ context.Context, operation string, order *domain.WorkOrder) error {
	if f.err != nil {
		return f.err
	}
	f.buffered = append(f.buffered, operation+":"+order.ID)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestUpdateProgressRules(t *testing.T) {
	tests := []struct {
		name         string
		input        UpdateInput
		wantStatus   string
		wantProgress int
		wantComplete bool
		wantErr      bool
	}{
		{
			name:         "progress 100 completes the order",
			input:        UpdateInput{Progress: intPtr(100)},
			wantStatus:   domain.WorkOrderStatusCompleted,
			wantProgress: 100,
			wantComplete: true,
		},
		{
			name:         "completed status forces progress 100",
			input:        UpdateInput{Status: strPtr(domain.WorkOrderStatusCompleted)},
			wantStatus:   domain.WorkOrderStatusCompleted,
			wantProgress: 100,
			wantComplete: true,
		},
		{
			name:         "partial progress stays in progress",
			input:        UpdateInput{Status: strPtr(domain.WorkOrderStatusInProgress), Progress: intPtr(40)},
			wantStatus:   domain.WorkOrderStatusInProgress,
			wantProgress: 40,
		},
		{
			name:    "negative progress rejected",
			input:   UpdateInput{Progress: intPtr(-1)},
			wantErr: true,
		},
		{
			name:    "progress above 100 rejected",
			input:   UpdateInput{Progress: intPtr(101)},
			wantErr: true,
		},
		{
			name:    "unknown status rejected",
			input:   UpdateInput{Status: strPtr("paused")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo(&domain.WorkOrder{
				ID:     "wo-1",
				Status: domain.WorkOrderStatusPending,
			})
			uc := New(repo, nil, nil)

			updated, err := uc.Update(context.Background(), "wo-1", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Update() accepted invalid input")
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if updated.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", updated.Status, tt.wantStatus)
			}
			if updated.Progress != tt.wantProgress {
				t.Errorf("progress = %d, want %d", updated.Progress, tt.wantProgress)
			}
			if (updated.CompletedDate != nil) != tt.wantComplete {
				t.Errorf("completed date set = %v, want %v", updated.CompletedDate != nil, tt.wantComplete)
			}
		})
	}
}

func TestUpdateBuffersOnStorageFailure(t *testing.T) {
	repo := newFakeOrderRepo(&domain.WorkOrder{ID: "wo-1", Status: domain.WorkOrderStatusPending})
	repo.updateErr = errors.New("connection refused")
	buf := &fakeBuffer{}
	uc := New(repo, buf, nil)

	updated, err := uc.Update(context.Background(), "wo-1", UpdateInput{Progress: intPtr(60)})
	if err != nil {
		t.Fatalf("Update() error = %v, want buffered success", err)
	}
	if updated.Progress != 60 {
		t.Errorf("progress = %d, want 60", updated.Progress)
	}
	if len(buf.buffered) != 1 || buf.buffered[0] != "update:wo-1" {
		t.Errorf("buffered operations = %v, want [update:wo-1]", buf.buffered)
	}
}

func TestUpdateFailsWhenBufferUnavailable(t *testing.T) {
	repo := newFakeOrderRepo(&domain.WorkOrder{ID: "wo-1", Status: domain.WorkOrderStatusPending})
	repo.updateErr = errors.New("connection refused")
	buf := &fakeBuffer{err: errors.New("buffer full")}
	uc := New(repo, buf, nil)

	if _, err := uc.Update(context.Background(), "wo-1", UpdateInput{Progress: intPtr(60)}); err == nil {
		t.Fatal("Update() succeeded although both storage and buffer failed")
	}
}

func TestDeleteMissingOrder(t *testing.T) {
	uc := New(newFakeOrderRepo(), &fakeBuffer{}, nil)
	if err := uc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrWorkOrderNotFound) {
		t.Fatalf("Delete() error = %v, want ErrWorkOrderNotFound", err)
	}
}
