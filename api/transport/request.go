package transport

import (
	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/hst"
)

// ActivityRequest is the wire form of one template activity. Dates travel as
// YYYY-MM-DD strings.
type ActivityRequest struct {
	ID          string             `json:"id"`
	Kind        string             `json:"kind"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	HSTMin      *int               `json:"hst_min"`
	HSTMax      *int               `json:"hst_max"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	ParentID    *string            `json:"parent_id"`
	Priority    string             `json:"priority"`
	Parameters  *domain.Parameters `json:"parameters"`
	Remark      string             `json:"remark"`
}

// ToActivity converts the request into a domain activity. Date parsing
// failures surface as ErrInvalidDate.
func (r *ActivityRequest) ToActivity() (*domain.Activity, error) {
	activity := &domain.Activity{
		ID:          r.ID,
		Kind:        domain.ActivityKind(r.Kind),
		Title:       r.Title,
		Description: r.Description,
		HSTMin:      r.HSTMin,
		HSTMax:      r.HSTMax,
		ParentID:    r.ParentID,
		Priority:    domain.Priority(r.Priority),
		Parameters:  r.Parameters,
		Remark:      r.Remark,
	}

	if r.StartDate != "" {
		start, err := hst.ParseDay(r.StartDate)
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid start_date", err)
		}
		activity.StartDate = start
	}
	if r.EndDate != "" {
		end, err := hst.ParseDay(r.EndDate)
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid end_date", err)
		}
		activity.EndDate = end
	}

	return activity, nil
}

// TemplateRequest carries a full working template.
type TemplateRequest struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	PlantingDate string            `json:"planting_date"`
	Activities   []ActivityRequest `json:"activities"`
}

// ToTemplate converts the request into a domain template.
func (r *TemplateRequest) ToTemplate() (*domain.Template, error) {
	planting, err := hst.ParseDay(r.PlantingDate)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid planting_date", err)
	}

	tmpl := &domain.Template{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		PlantingDate: planting,
		Activities:   make([]domain.Activity, 0, len(r.Activities)),
	}
	for i := range r.Activities {
		activity, err := r.Activities[i].ToActivity()
		if err != nil {
			return nil, err
		}
		tmpl.Activities = append(tmpl.Activities, *activity)
	}
	return tmpl, nil
}

// RecalculateRequest re-anchors a template to a new planting date.
type RecalculateRequest struct {
	Template     TemplateRequest `json:"template"`
	PlantingDate string          `json:"planting_date"`
}

// AddActivityRequest appends a custom activity to a working template.
type AddActivityRequest struct {
	Template TemplateRequest `json:"template"`
	Activity ActivityRequest `json:"activity"`
}

// MaterializeRequest starts a cultivation season on one field.
type MaterializeRequest struct {
	FieldID      string            `json:"field_id"`
	PlantingDate string            `json:"planting_date"`
	Activities   []ActivityRequest `json:"activities"`
	Notes        string            `json:"notes"`
}

// BatchMaterializeRequest starts a season on several fields at once.
type BatchMaterializeRequest struct {
	FieldIDs     []string          `json:"field_ids"`
	PlantingDate string            `json:"planting_date"`
	Activities   []ActivityRequest `json:"activities"`
	Notes        string            `json:"notes"`
}

// CompleteSeasonRequest closes an active season.
type CompleteSeasonRequest struct {
	CompletedDate string `json:"completed_date"`
	Notes         string `json:"notes"`
}

// WorkOrderUpdateRequest is a partial work order update; absent fields keep
// their stored values.
type WorkOrderUpdateRequest struct {
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Assignee    *string `json:"assignee"`
	Progress    *int    `json:"progress"`
	Description *string `json:"description"`
}
