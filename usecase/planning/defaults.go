package planning

import "github.com/fadelaryap/agrione-v1-sub000/domain"

// defaultActivity describes one row of the built-in rice cultivation plan.
// Activities with an empty parent are group roots; children reference their
// group root by title and are resolved to ids when a template is built.
type defaultActivity struct {
	title  string
	kind   domain.ActivityKind
	hstMin int
	hstMax int
	parent string
	remark string
}

var defaultActivities = []defaultActivity{
	// Land preparation
	{title: "Land Preparation", kind: domain.KindLandPreparation, hstMin: -30, hstMax: -1},
	{title: "Bund and Drainage Channel Repair", kind: domain.KindLandPreparation, hstMin: -30, hstMax: -4, parent: "Land Preparation"},
	{title: "Initial Field Irrigation", kind: domain.KindLandPreparation, hstMin: -19, hstMax: -17, parent: "Land Preparation"},
	{title: "First Plowing", kind: domain.KindLandPreparation, hstMin: -15, hstMax: -13, parent: "Land Preparation"},
	{title: "Field Flooding", kind: domain.KindLandPreparation, hstMin: -14, hstMax: -12, parent: "Land Preparation"},
	{title: "Soil Conditioning", kind: domain.KindLandPreparation, hstMin: -10, hstMax: -8, parent: "Land Preparation"},
	{title: "Second Plowing (Leveling)", kind: domain.KindLandPreparation, hstMin: -6, hstMax: -4, parent: "Land Preparation"},
	{title: "Quality Control Check", kind: domain.KindLandPreparation, hstMin: -5, hstMax: -3, parent: "Land Preparation"},
	{title: "Water Drawdown", kind: domain.KindLandPreparation, hstMin: -1, hstMax: -1, parent: "Land Preparation"},

	// Nursery
	{title: "Nursery", kind: domain.KindNursery, hstMin: -25, hstMax: -1},
	{title: "Seed Preparation", kind: domain.KindNursery, hstMin: -25, hstMax: -23, parent: "Nursery"},
	{title: "Soil and Seedling Tray Preparation", kind: domain.KindNursery, hstMin: -24, hstMax: -22, parent: "Nursery"},
	{title: "Seed Sowing", kind: domain.KindNursery, hstMin: -22, hstMax: -21, parent: "Nursery"},
	{title: "Nursery Maintenance", kind: domain.KindNursery, hstMin: -21, hstMax: -1, parent: "Nursery"},
	{title: "Quality Control Check (Nursery)", kind: domain.KindNursery, hstMin: -11, hstMax: -6, parent: "Nursery"},
	{title: "Seedling Transfer to Field", kind: domain.KindNursery, hstMin: -2, hstMax: -1, parent: "Nursery"},

	// Transplanting
	{title: "Transplanting", kind: domain.KindTransplanting, hstMin: -2, hstMax: 5},
	{title: "Transplanter Machine Preparation", kind: domain.KindTransplanting, hstMin: -2, hstMax: -1, parent: "Transplanting"},
	{title: "Seedling Planting", kind: domain.KindTransplanting, hstMin: 0, hstMax: 0, parent: "Transplanting"},
	{title: "Quality Control Check (Transplanting)", kind: domain.KindTransplanting, hstMin: 1, hstMax: 5, parent: "Transplanting"},

	// Irrigation management
	{title: "Irrigation Management", kind: domain.KindIrrigationManagement, hstMin: 1, hstMax: 100},
	{title: "Post-Planting Irrigation", kind: domain.KindIrrigationManagement, hstMin: 1, hstMax: 3, parent: "Irrigation Management"},
	{title: "Water Availability Monitoring", kind: domain.KindIrrigationManagement, hstMin: 7, hstMax: 90, parent: "Irrigation Management"},
	{title: "Field Watering", kind: domain.KindIrrigationManagement, hstMin: 14, hstMax: 90, parent: "Irrigation Management"},
	{title: "Pre-Harvest Drying", kind: domain.KindIrrigationManagement, hstMin: 90, hstMax: 100, parent: "Irrigation Management"},

	// Fertilization
	{title: "Fertilization", kind: domain.KindFertilization, hstMin: 0, hstMax: 70},
	{title: "Base Fertilization", kind: domain.KindFertilization, hstMin: 0, hstMax: 14, parent: "Fertilization"},
	{title: "Fertilization Result Monitoring", kind: domain.KindFertilization, hstMin: 3, hstMax: 17, parent: "Fertilization", remark: "Every 7 days"},
	{title: "First Follow-Up Fertilization", kind: domain.KindFertilization, hstMin: 21, hstMax: 25, parent: "Fertilization"},
	{title: "Fertilization Result Monitoring", kind: domain.KindFertilization, hstMin: 24, hstMax: 28, parent: "Fertilization"},
	{title: "Second Follow-Up Fertilization", kind: domain.KindFertilization, hstMin: 31, hstMax: 35, parent: "Fertilization", remark: "Every 7 days"},
	{title: "Fertilization Result Monitoring", kind: domain.KindFertilization, hstMin: 34, hstMax: 38, parent: "Fertilization"},
	{title: "Supplementary Fertilization (Optional)", kind: domain.KindFertilization, hstMin: 50, hstMax: 70, parent: "Fertilization"},

	// Weed control
	{title: "Weed Control", kind: domain.KindWeedControl, hstMin: -4, hstMax: 50},
	{title: "Pre-Emergence Herbicide Application", kind: domain.KindWeedControl, hstMin: -4, hstMax: -2, parent: "Weed Control"},
	{title: "Weed Growth Monitoring", kind: domain.KindWeedControl, hstMin: 7, hstMax: 50, parent: "Weed Control"},
	{title: "Mechanical Weeding", kind: domain.KindWeedControl, hstMin: 14, hstMax: 20, parent: "Weed Control"},
	{title: "Herbicide Application", kind: domain.KindWeedControl, hstMin: 28, hstMax: 32, parent: "Weed Control"},

	// Pest and disease control
	{title: "Pest & Disease Control", kind: domain.KindPestDiseaseControl, hstMin: 7, hstMax: 100},
	{title: "Pest Organism Monitoring", kind: domain.KindPestDiseaseControl, hstMin: 7, hstMax: 90, parent: "Pest & Disease Control"},
	{title: "Economic Injury Threshold Calculation", kind: domain.KindPestDiseaseControl, hstMin: 7, hstMax: 90, parent: "Pest & Disease Control"},
	{title: "Biological / Mechanical Control", kind: domain.KindPestDiseaseControl, hstMin: 7, hstMax: 100, parent: "Pest & Disease Control"},
	{title: "Pesticide Application", kind: domain.KindPestDiseaseControl, hstMin: 14, hstMax: 100, parent: "Pest & Disease Control"},

	// Harvest forecasting
	{title: "Harvest Forecasting", kind: domain.KindHarvestForecasting, hstMin: 86, hstMax: 97},
	{title: "Crop Cut Sampling", kind: domain.KindHarvestForecasting, hstMin: 86, hstMax: 96, parent: "Harvest Forecasting"},
	{title: "Yield Estimate Calculation", kind: domain.KindHarvestForecasting, hstMin: 87, hstMax: 97, parent: "Harvest Forecasting"},

	// Harvest
	{title: "Harvest", kind: domain.KindHarvest, hstMin: 99, hstMax: 110},
	{title: "Combine Harvester Preparation", kind: domain.KindHarvest, hstMin: 99, hstMax: 109, parent: "Harvest"},
	{title: "Harvesting", kind: domain.KindHarvest, hstMin: 100, hstMax: 110, parent: "Harvest"},
	{title: "Harvest Yield Calculation", kind: domain.KindHarvest, hstMin: 100, hstMax: 110, parent: "Harvest"},
	{title: "Harvest Transfer to Warehouse", kind: domain.KindHarvest, hstMin: 100, hstMax: 110, parent: "Harvest"},

	// Land rehabilitation
	{title: "Land Rehabilitation", kind: domain.KindLandRehabilitation, hstMin: 105, hstMax: 126},
	{title: "Soil Sampling", kind: domain.KindLandRehabilitation, hstMin: 105, hstMax: 115, parent: "Land Rehabilitation"},
	{title: "Soil Analysis", kind: domain.KindLandRehabilitation, hstMin: 111, hstMax: 116, parent: "Land Rehabilitation"},
	{title: "Soil Amendment Application", kind: domain.KindLandRehabilitation, hstMin: 121, hstMax: 126, parent: "Land Rehabilitation"},

	// Research
	{title: "Practice and Variety Analysis with Production Evaluation", kind: domain.KindResearch, hstMin: 110, hstMax: 120},
	{title: "Next Season Recommendation Drafting", kind: domain.KindResearch, hstMin: 120, hstMax: 130},
}

// priorityFor applies the catalog priority rule by category.
func priorityFor(category domain.ActivityCategory) domain.Priority {
	switch category {
	case domain.CategoryHarvest, domain.CategoryPlantingPrep:
		return domain.PriorityHigh
	default:
		return domain.PriorityMedium
	}
}
