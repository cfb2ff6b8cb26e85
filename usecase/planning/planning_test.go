package planning

import (
	"testing"
	"time"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/hst"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func findByTitle(t *testing.T, tmpl *domain.Template, title string) *domain.Activity {
	t.Helper()
	for i := range tmpl.Activities {
		if tmpl.Activities[i].Title == title {
			return &tmpl.Activities[i]
		}
	}
	t.Fatalf("activity %q not found in template", title)
	return nil
}

func TestDefaultTemplate(t *testing.T) {
	uc := New(nil, Options{}, nil)
	planting := day(2025, 12, 1)
	tmpl := uc.DefaultTemplate(planting)

	if len(tmpl.Activities) != len(defaultActivities) {
		t.Fatalf("got %d activities, want %d", len(tmpl.Activities), len(defaultActivities))
	}
	if !tmpl.PlantingDate.Equal(planting) {
		t.Fatalf("planting date = %v, want %v", tmpl.PlantingDate, planting)
	}

	tests := []struct {
		title string
		start time.Time
		end   time.Time
	}{
		{"Land Preparation", day(2025, 11, 1), day(2025, 11, 30)},
		{"Seedling Planting", day(2025, 12, 1), day(2025, 12, 1)},
		{"Water Drawdown", day(2025, 11, 30), day(2025, 11, 30)},
		{"Pre-Harvest Drying", day(2026, 3, 1), day(2026, 3, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			activity := findByTitle(t, tmpl, tt.title)
			if !activity.StartDate.Equal(tt.start) || !activity.EndDate.Equal(tt.end) {
				t.Errorf("dates = [%v, %v], want [%v, %v]",
					activity.StartDate, activity.EndDate, tt.start, tt.end)
			}
		})
	}
}

func TestDefaultTemplateParentResolution(t *testing.T) {
	uc := New(nil, Options{}, nil)
	tmpl := uc.DefaultTemplate(day(2025, 12, 1))

	roots := map[domain.ActivityKind]string{}
	for _, activity := range tmpl.Activities {
		if activity.ParentID == nil {
			if activity.Kind != domain.KindResearch {
				roots[activity.Kind] = activity.ID
			}
		}
	}

	for _, activity := range tmpl.Activities {
		if activity.ParentID == nil {
			continue
		}
		parent := tmpl.ActivityByID(*activity.ParentID)
		if parent == nil {
			t.Fatalf("%q references parent %q which is not in the template", activity.Title, *activity.ParentID)
		}
		if parent.Kind != activity.Kind {
			t.Errorf("%q resolved to parent of kind %q, want %q", activity.Title, parent.Kind, activity.Kind)
		}
		if want, ok := roots[activity.Kind]; ok && parent.ID != want {
			t.Errorf("%q parent = %q, want group root %q", activity.Title, parent.ID, want)
		}
	}
}

func TestDefaultTemplatePriorities(t *testing.T) {
	uc := New(nil, Options{}, nil)
	tmpl := uc.DefaultTemplate(day(2025, 12, 1))

	for _, activity := range tmpl.Activities {
		want := domain.PriorityMedium
		if activity.Category == domain.CategoryHarvest || activity.Category == domain.CategoryPlantingPrep {
			want = domain.PriorityHigh
		}
		if activity.Priority != want {
			t.Errorf("%q priority = %q, want %q (category %q)",
				activity.Title, activity.Priority, want, activity.Category)
		}
	}
}

func TestRecalculate(t *testing.T) {
	uc := New(nil, Options{}, nil)
	tmpl := uc.DefaultTemplate(day(2025, 12, 1))

	// A note pinned to an absolute date, not anchored to planting.
	fixed := domain.Activity{
		ID:        "fixed-1",
		Kind:      domain.KindResearch,
		Title:     "Annual budget review",
		StartDate: day(2025, 12, 20),
		EndDate:   day(2025, 12, 21),
		Category:  domain.CategoryResearch,
		Priority:  domain.PriorityMedium,
	}
	tmpl.Activities = append(tmpl.Activities, fixed)

	newPlanting := day(2026, 1, 15)
	recalculated, err := uc.Recalculate(tmpl, newPlanting)
	if err != nil {
		t.Fatalf("Recalculate() error = %v", err)
	}

	if len(recalculated.Activities) != len(tmpl.Activities) {
		t.Fatalf("got %d activities, want %d", len(recalculated.Activities), len(tmpl.Activities))
	}

	sowing := findByTitle(t, recalculated, "Seedling Planting")
	if !sowing.StartDate.Equal(newPlanting) {
		t.Errorf("HST 0 activity start = %v, want %v", sowing.StartDate, newPlanting)
	}
	landPrep := findByTitle(t, recalculated, "Land Preparation")
	if want := day(2025, 12, 16); !landPrep.StartDate.Equal(want) {
		t.Errorf("HST -30 activity start = %v, want %v", landPrep.StartDate, want)
	}

	note := findByTitle(t, recalculated, "Annual budget review")
	if !note.StartDate.Equal(fixed.StartDate) || !note.EndDate.Equal(fixed.EndDate) {
		t.Errorf("non-HST activity moved to [%v, %v], want unchanged", note.StartDate, note.EndDate)
	}

	// Fresh ids everywhere, with parents following the substitution.
	oldIDs := map[string]bool{}
	for _, activity := range tmpl.Activities {
		oldIDs[activity.ID] = true
	}
	for _, activity := range recalculated.Activities {
		if oldIDs[activity.ID] {
			t.Errorf("%q kept its old id %q", activity.Title, activity.ID)
		}
		if activity.ParentID != nil && recalculated.ActivityByID(*activity.ParentID) == nil {
			t.Errorf("%q parent %q not remapped into the new template", activity.Title, *activity.ParentID)
		}
	}
}

func TestRecalculateShiftNonHST(t *testing.T) {
	uc := New(nil, Options{ShiftNonHSTByDelta: true}, nil)

	tmpl := &domain.Template{
		ID:           "t1",
		Name:         "manual",
		PlantingDate: day(2025, 12, 1),
		Activities: []domain.Activity{
			{
				ID:        "a1",
				Kind:      domain.KindResearch,
				Title:     "Field notes",
				StartDate: day(2025, 12, 10),
				EndDate:   day(2025, 12, 12),
				Category:  domain.CategoryResearch,
			},
		},
	}

	recalculated, err := uc.Recalculate(tmpl, day(2025, 12, 11))
	if err != nil {
		t.Fatalf("Recalculate() error = %v", err)
	}

	got := recalculated.Activities[0]
	if want := day(2025, 12, 20); !got.StartDate.Equal(want) {
		t.Errorf("shifted start = %v, want %v", got.StartDate, want)
	}
	if want := day(2025, 12, 22); !got.EndDate.Equal(want) {
		t.Errorf("shifted end = %v, want %v", got.EndDate, want)
	}
}

func TestRecalculateDanglingParent(t *testing.T) {
	uc := New(nil, Options{}, nil)
	parent := "ghost"
	tmpl := &domain.Template{
		PlantingDate: day(2025, 12, 1),
		Activities: []domain.Activity{
			{
				ID:        "a1",
				Kind:      domain.KindNursery,
				Title:     "Seed Sowing",
				HSTMin:    intPtr(-22),
				HSTMax:    intPtr(-21),
				StartDate: day(2025, 11, 9),
				EndDate:   day(2025, 11, 10),
				ParentID:  &parent,
			},
		},
	}

	if _, err := uc.Recalculate(tmpl, day(2026, 1, 1)); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("Recalculate() error = %v, want INVALID domain error", err)
	}
}

func TestAddActivity(t *testing.T) {
	uc := New(nil, Options{}, nil)
	tmpl := uc.DefaultTemplate(day(2025, 12, 1))
	root := findByTitle(t, tmpl, "Fertilization")

	activity := &domain.Activity{
		Kind:     domain.KindFertilization,
		Title:    "Micronutrient Spray",
		HSTMin:   intPtr(40),
		HSTMax:   intPtr(42),
		ParentID: &root.ID,
	}

	if err := uc.AddActivity(tmpl, activity); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	added := findByTitle(t, tmpl, "Micronutrient Spray")
	if want := hst.FromOffset(day(2025, 12, 1), 40); !added.StartDate.Equal(want) {
		t.Errorf("derived start = %v, want %v", added.StartDate, want)
	}
	if added.ID == "" {
		t.Error("added activity has no id")
	}
	if added.Category != domain.CategoryCropCare {
		t.Errorf("derived category = %q, want %q", added.Category, domain.CategoryCropCare)
	}
	if added.Priority != domain.PriorityMedium {
		t.Errorf("derived priority = %q, want medium", added.Priority)
	}
}

func TestAddActivityRejectsInvalid(t *testing.T) {
	uc := New(nil, Options{}, nil)
	tmpl := uc.DefaultTemplate(day(2025, 12, 1))
	ghost := "not-there"

	tests := []struct {
		name     string
		activity *domain.Activity
	}{
		{
			name: "unknown kind",
			activity: &domain.Activity{
				Kind:      domain.ActivityKind("Cloud Seeding"),
				Title:     "Rain",
				StartDate: day(2026, 1, 1),
				EndDate:   day(2026, 1, 2),
			},
		},
		{
			name: "unknown parent",
			activity: &domain.Activity{
				Kind:     domain.KindNursery,
				Title:    "Extra check",
				HSTMin:   intPtr(-5),
				HSTMax:   intPtr(-4),
				ParentID: &ghost,
			},
		},
		{
			name: "no dates and no hst",
			activity: &domain.Activity{
				Kind:  domain.KindHarvest,
				Title: "Harvest extras",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tmpl.Activities)
			if err := uc.AddActivity(tmpl, tt.activity); err == nil {
				t.Fatal("AddActivity() accepted an invalid activity")
			}
			if len(tmpl.Activities) != before {
				t.Error("invalid activity was appended anyway")
			}
		})
	}
}
