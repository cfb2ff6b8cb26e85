package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/hst"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

// Options tunes recalculation behaviour.
type Options struct {
	// ShiftNonHSTByDelta moves activities with absolute dates by the same
	// number of days the planting date moved. When false such activities
	// keep their dates untouched.
	ShiftNonHSTByDelta bool
}

type UseCase struct {
	templates repository.TemplateRepository
	opts      Options
	logger    *zap.Logger
}

func New(templates repository.TemplateRepository, opts Options, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		templates: templates,
		opts:      opts,
		logger:    logger,
	}
}

// DefaultTemplate materializes the built-in rice cultivation plan against the
// given planting date. Every activity gets a fresh id; child activities point
// at the id minted for their group root.
func (uc *UseCase) DefaultTemplate(plantingDate time.Time) *domain.Template {
	plantingDate = hst.Day(plantingDate)

	activities := make([]domain.Activity, 0, len(defaultActivities))
	rootIDs := make(map[string]string, len(defaultActivities))

	for _, row := range defaultActivities {
		id := uuid.NewString()
		if row.parent == "" {
			rootIDs[row.title] = id
		}

		hstMin, hstMax := row.hstMin, row.hstMax
		category, _ := domain.CategoryOf(row.kind)
		activities = append(activities, domain.Activity{
			ID:        id,
			Kind:      row.kind,
			Title:     row.title,
			HSTMin:    &hstMin,
			HSTMax:    &hstMax,
			StartDate: hst.FromOffset(plantingDate, row.hstMin),
			EndDate:   hst.FromOffset(plantingDate, row.hstMax),
			Category:  category,
			Priority:  priorityFor(category),
			Remark:    row.remark,
		})
	}

	for i := range activities {
		parentTitle := defaultActivities[i].parent
		if parentTitle == "" {
			continue
		}
		parentID := rootIDs[parentTitle]
		activities[i].ParentID = &parentID
	}

	return &domain.Template{
		ID:           uuid.NewString(),
		Name:         "Default Rice Cultivation Plan",
		PlantingDate: plantingDate,
		Activities:   activities,
		CreatedAt:    time.Now(),
	}
}

// Recalculate re-anchors a template to a new planting date. HST activities get
// their dates recomputed from their offsets, non-HST activities follow the
// configured shift policy. All activities receive fresh ids and parent
// references are rewritten through the old-to-new id substitution table.
func (uc *UseCase) Recalculate(tmpl *domain.Template, plantingDate time.Time) (*domain.Template, error) {
	if tmpl == nil {
		return nil, domain.ErrInvalidPayload
	}
	plantingDate = hst.Day(plantingDate)
	deltaDays := hst.Offset(hst.Day(tmpl.PlantingDate), plantingDate)

	substitution := make(map[string]string, len(tmpl.Activities))
	for _, activity := range tmpl.Activities {
		substitution[activity.ID] = uuid.NewString()
	}

	activities := make([]domain.Activity, 0, len(tmpl.Activities))
	for _, activity := range tmpl.Activities {
		next := activity
		next.ID = substitution[activity.ID]

		switch {
		case activity.HasHST():
			next.StartDate = hst.FromOffset(plantingDate, *activity.HSTMin)
			next.EndDate = hst.FromOffset(plantingDate, *activity.HSTMax)
		case uc.opts.ShiftNonHSTByDelta:
			next.StartDate = activity.StartDate.AddDate(0, 0, deltaDays)
			next.EndDate = activity.EndDate.AddDate(0, 0, deltaDays)
		}

		if activity.ParentID != nil {
			newParent, ok := substitution[*activity.ParentID]
			if !ok {
				return nil, domain.WrapError(domain.ErrCodeInvalid, "template has dangling parent reference", domain.ErrUnresolvedParent)
			}
			next.ParentID = &newParent
		}

		activities = append(activities, next)
	}

	return &domain.Template{
		ID:           uuid.NewString(),
		Name:         tmpl.Name,
		Description:  tmpl.Description,
		PlantingDate: plantingDate,
		Activities:   activities,
		CreatedAt:    time.Now(),
	}, nil
}

// AddActivity validates and appends a custom activity to the template.
// HST-anchored activities get their dates derived from the template's
// planting date; the parent reference, if present, must already exist.
func (uc *UseCase) AddActivity(tmpl *domain.Template, activity *domain.Activity) error {
	if tmpl == nil || activity == nil {
		return domain.ErrInvalidPayload
	}

	if activity.HasHST() {
		planting := hst.Day(tmpl.PlantingDate)
		activity.StartDate = hst.FromOffset(planting, *activity.HSTMin)
		activity.EndDate = hst.FromOffset(planting, *activity.HSTMax)
	}

	if err := activity.Validate(); err != nil {
		return err
	}

	if activity.ParentID != nil {
		if tmpl.ActivityByID(*activity.ParentID) == nil {
			return domain.WrapError(domain.ErrCodeInvalid, "parent activity not in template", domain.ErrUnresolvedParent)
		}
	}

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Category == "" {
		activity.Category, _ = domain.CategoryOf(activity.Kind)
	}
	if activity.Priority == "" {
		activity.Priority = priorityFor(activity.Category)
	}

	tmpl.Activities = append(tmpl.Activities, *activity)
	return nil
}

// SaveTemplate persists a working template under a name for later reuse.
func (uc *UseCase) SaveTemplate(ctx context.Context, tmpl *domain.Template) (*domain.Template, error) {
	if tmpl == nil || tmpl.Name == "" {
		return nil, domain.ErrInvalidPayload
	}
	if tmpl.ID == "" {
		tmpl.ID = uuid.NewString()
	}
	for i := range tmpl.Activities {
		if err := tmpl.Activities[i].Validate(); err != nil {
			return nil, err
		}
	}
	if err := uc.templates.Save(ctx, tmpl); err != nil {
		return nil, err
	}
	uc.logger.Info("template saved",
		zap.String("template_id", tmpl.ID),
		zap.Int("activities", len(tmpl.Activities)))
	return tmpl, nil
}

func (uc *UseCase) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return uc.templates.List(ctx)
}

func (uc *UseCase) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	return uc.templates.Get(ctx, id)
}

// LoadTemplate fetches a saved template and re-anchors it to the given
// planting date.
func (uc *UseCase) LoadTemplate(ctx context.Context, id string, plantingDate time.Time) (*domain.Template, error) {
	tmpl, err := uc.templates.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.Recalculate(tmpl, plantingDate)
}

func (uc *UseCase) DeleteTemplate(ctx context.Context, id string) error {
	return uc.templates.Delete(ctx, id)
}
