package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	errHSTPair        = errors.New("hst_min and hst_max must be set together")
	errMissingDates   = errors.New("activity without HST requires explicit start and end dates")
	errDateOrder      = errors.New("start_date must not be after end_date")
	errParameterShape = errors.New("parameters do not match activity kind")
)

func errUnknownKind(kind ActivityKind) error {
	return fmt.Errorf("unknown activity kind %q", kind)
}

// ActivityKind is one entry of the closed cultivation activity catalog.
type ActivityKind string

const (
	KindLandPreparation      ActivityKind = "Land Preparation"
	KindNursery              ActivityKind = "Nursery"
	KindTransplanting        ActivityKind = "Transplanting"
	KindIrrigationManagement ActivityKind = "Irrigation Management"
	KindFertilization        ActivityKind = "Fertilization"
	KindWeedControl          ActivityKind = "Weed Control"
	KindPestDiseaseControl   ActivityKind = "Pest & Disease Control"
	KindHarvestForecasting   ActivityKind = "Harvest Forecasting"
	KindHarvest              ActivityKind = "Harvest"
	KindLandRehabilitation   ActivityKind = "Land Rehabilitation"
	KindResearch             ActivityKind = "R&D"
)

// ActivityCategory groups catalog kinds for display.
type ActivityCategory string

const (
	CategoryPlantingPrep ActivityCategory = "Planting Prep"
	CategoryCropCare     ActivityCategory = "Crop Care"
	CategoryHarvest      ActivityCategory = "Harvest"
	CategoryResearch     ActivityCategory = "R&D"
)

// catalog is static reference data shipped with the system; it is never
// persisted or mutated per tenant.
var catalog = map[ActivityKind]ActivityCategory{
	KindLandPreparation:      CategoryPlantingPrep,
	KindNursery:              CategoryPlantingPrep,
	KindTransplanting:        CategoryPlantingPrep,
	KindIrrigationManagement: CategoryCropCare,
	KindFertilization:        CategoryCropCare,
	KindWeedControl:          CategoryCropCare,
	KindPestDiseaseControl:   CategoryCropCare,
	KindHarvestForecasting:   CategoryHarvest,
	KindHarvest:              CategoryHarvest,
	KindLandRehabilitation:   CategoryPlantingPrep,
	KindResearch:             CategoryResearch,
}

// catalogOrder fixes the presentation order of the catalog.
var catalogOrder = []ActivityKind{
	KindLandPreparation,
	KindNursery,
	KindTransplanting,
	KindIrrigationManagement,
	KindFertilization,
	KindWeedControl,
	KindPestDiseaseControl,
	KindHarvestForecasting,
	KindHarvest,
	KindLandRehabilitation,
	KindResearch,
}

// CatalogKinds returns every activity kind in presentation order.
func CatalogKinds() []ActivityKind {
	out := make([]ActivityKind, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// CategoryOf resolves the display category for a kind. The second return is
// false for kinds outside the catalog.
func CategoryOf(kind ActivityKind) (ActivityCategory, bool) {
	cat, ok := catalog[kind]
	return cat, ok
}

// IsCatalogKind reports whether kind belongs to the closed catalog.
func IsCatalogKind(kind ActivityKind) bool {
	_, ok := catalog[kind]
	return ok
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// HarvestParameters carries kind-specific data for harvest and harvest
// forecasting activities.
type HarvestParameters struct {
	Quantity float64 `json:"quantity"`
	Quality  string  `json:"quality,omitempty"`
}

// FertilizationParameters carries kind-specific data for fertilization.
type FertilizationParameters struct {
	Type   string  `json:"type,omitempty"`
	Amount float64 `json:"amount"`
}

// LandPreparationParameters carries kind-specific data for land preparation.
type LandPreparationParameters struct {
	AreaHa float64 `json:"area_ha"`
}

// Parameters is the per-kind parameter bag. At most the section matching the
// activity kind may be populated.
type Parameters struct {
	Harvest         *HarvestParameters         `json:"harvest,omitempty"`
	Fertilization   *FertilizationParameters   `json:"fertilization,omitempty"`
	LandPreparation *LandPreparationParameters `json:"land_preparation,omitempty"`
}

// MatchesKind reports whether the populated parameter section is valid for
// the given activity kind. An empty bag matches every kind.
func (p *Parameters) MatchesKind(kind ActivityKind) bool {
	if p == nil {
		return true
	}
	if p.Harvest != nil && kind != KindHarvest && kind != KindHarvestForecasting {
		return false
	}
	if p.Fertilization != nil && kind != KindFertilization {
		return false
	}
	if p.LandPreparation != nil && kind != KindLandPreparation {
		return false
	}
	return true
}

// Activity is one template entry: a cultivation task anchored either to the
// planting date through an HST range or to explicit absolute dates.
type Activity struct {
	ID          string           `json:"id"`
	Kind        ActivityKind     `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	HSTMin      *int             `json:"hst_min,omitempty"`
	HSTMax      *int             `json:"hst_max,omitempty"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	ParentID    *string          `json:"parent_id,omitempty"`
	Category    ActivityCategory `json:"category"`
	Priority    Priority         `json:"priority"`
	Parameters  *Parameters      `json:"parameters,omitempty"`
	Remark      string           `json:"remark,omitempty"`
}

// HasHST reports whether the activity is anchored to the planting date.
// HSTMin and HSTMax must be set together.
func (a *Activity) HasHST() bool {
	return a != nil && a.HSTMin != nil && a.HSTMax != nil
}

// Validate enforces the add-activity boundary rules: catalog membership,
// date presence and ordering, and parameter shape.
func (a *Activity) Validate() error {
	if a == nil {
		return ErrInvalidActivity
	}
	if !IsCatalogKind(a.Kind) {
		return WrapError(ErrCodeInvalid, "invalid activity", errUnknownKind(a.Kind))
	}
	if (a.HSTMin == nil) != (a.HSTMax == nil) {
		return WrapError(ErrCodeInvalid, "invalid activity", errHSTPair)
	}
	if !a.HasHST() {
		if a.StartDate.IsZero() || a.EndDate.IsZero() {
			return WrapError(ErrCodeInvalid, "invalid activity", errMissingDates)
		}
	}
	if !a.StartDate.IsZero() && !a.EndDate.IsZero() && a.EndDate.Before(a.StartDate) {
		return WrapError(ErrCodeInvalid, "invalid activity", errDateOrder)
	}
	if !a.Parameters.MatchesKind(a.Kind) {
		return WrapError(ErrCodeInvalid, "invalid activity", errParameterShape)
	}
	return nil
}
