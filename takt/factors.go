package takt

// FactorItem is one entry of a construction factor lookup table. The
// TaktMultiplier scales the base takt time of a building template; 1.0 is
// neutral and every table entry must be > 0.
type FactorItem struct {
	Code           string  `json:"code"`
	Label          string  `json:"label"`
	TaktMultiplier float64 `json:"takt_multiplier"`
	Description    string  `json:"description"`
}

// NeutralMultiplier is returned for codes that miss their table. An unset or
// unknown code never fails a recommendation, it just contributes nothing.
const NeutralMultiplier = 1.0

var structuralSystemFactors = map[string]FactorItem{
	"insitu_concrete": {Code: "insitu_concrete", Label: "In-situ concrete", TaktMultiplier: 1.0, Description: "Cast-in-place frame, conventional cycle"},
	"precast":         {Code: "precast", Label: "Precast concrete", TaktMultiplier: 0.85, Description: "Factory elements, faster floor cycle"},
	"steel_frame":     {Code: "steel_frame", Label: "Steel frame", TaktMultiplier: 0.9, Description: "Bolted erection, short structural takt"},
	"timber":          {Code: "timber", Label: "Mass timber", TaktMultiplier: 0.8, Description: "Prefabricated CLT/glulam assembly"},
	"masonry":         {Code: "masonry", Label: "Load-bearing masonry", TaktMultiplier: 1.15, Description: "Labour-intensive wall construction"},
	"composite":       {Code: "composite", Label: "Steel-concrete composite", TaktMultiplier: 1.05, Description: "Mixed system, extra coordination"},
}

var mepComplexityFactors = map[string]FactorItem{
	"basic":          {Code: "basic", Label: "Residential basic", TaktMultiplier: 0.9, Description: "Simple risers and unit distribution"},
	"standard":       {Code: "standard", Label: "Standard", TaktMultiplier: 1.0, Description: "Typical office/residential services"},
	"commercial":     {Code: "commercial", Label: "Commercial dense", TaktMultiplier: 1.15, Description: "Dense ceiling void coordination"},
	"hospital_grade": {Code: "hospital_grade", Label: "Hospital-grade", TaktMultiplier: 1.35, Description: "Medical gas, redundancy, validation"},
	"data_center":    {Code: "data_center", Label: "Data center", TaktMultiplier: 1.4, Description: "Heavy electrical and cooling plant"},
}

var foundationTypeFactors = map[string]FactorItem{
	"strip":      {Code: "strip", Label: "Strip footings", TaktMultiplier: 0.9, Description: "Shallow spread foundations"},
	"raft":       {Code: "raft", Label: "Raft slab", TaktMultiplier: 1.0, Description: "Single large pour, predictable"},
	"piled":      {Code: "piled", Label: "Piled", TaktMultiplier: 1.2, Description: "Piling rig mobilisation and curing"},
	"piled_raft": {Code: "piled_raft", Label: "Piled raft", TaktMultiplier: 1.25, Description: "Combined system, staged works"},
	"caisson":    {Code: "caisson", Label: "Caissons", TaktMultiplier: 1.3, Description: "Deep shaft excavation"},
}

var groundConditionFactors = map[string]FactorItem{
	"rock":             {Code: "rock", Label: "Rock", TaktMultiplier: 0.95, Description: "Stable bearing, slow excavation offsets"},
	"normal":           {Code: "normal", Label: "Normal soil", TaktMultiplier: 1.0, Description: "Typical bearing capacity"},
	"soft_soil":        {Code: "soft_soil", Label: "Soft soil", TaktMultiplier: 1.15, Description: "Low bearing, temporary works"},
	"high_groundwater": {Code: "high_groundwater", Label: "High groundwater", TaktMultiplier: 1.2, Description: "Dewatering during substructure"},
	"contaminated":     {Code: "contaminated", Label: "Contaminated", TaktMultiplier: 1.25, Description: "Remediation and disposal handling"},
}

func lookupFactor(table map[string]FactorItem, code string) FactorItem {
	if item, ok := table[code]; ok {
		return item
	}
	return FactorItem{Code: code, Label: "Standard", TaktMultiplier: NeutralMultiplier}
}

// LookupStructuralSystem resolves a structural system code, neutral on miss.
func LookupStructuralSystem(code string) FactorItem {
	return lookupFactor(structuralSystemFactors, code)
}

// LookupMEPComplexity resolves an MEP complexity code, neutral on miss.
func LookupMEPComplexity(code string) FactorItem {
	return lookupFactor(mepComplexityFactors, code)
}

// LookupFoundationType resolves a foundation type code, neutral on miss.
func LookupFoundationType(code string) FactorItem {
	return lookupFactor(foundationTypeFactors, code)
}

// LookupGroundCondition resolves a ground condition code, neutral on miss.
func LookupGroundCondition(code string) FactorItem {
	return lookupFactor(groundConditionFactors, code)
}

// StructuralSystemFactors returns a copy of the structural system table for
// the wizard's dropdowns.
func StructuralSystemFactors() []FactorItem { return copyTable(structuralSystemFactors) }

// MEPComplexityFactors returns a copy of the MEP complexity table.
func MEPComplexityFactors() []FactorItem { return copyTable(mepComplexityFactors) }

// FoundationTypeFactors returns a copy of the foundation type table.
func FoundationTypeFactors() []FactorItem { return copyTable(foundationTypeFactors) }

// GroundConditionFactors returns a copy of the ground condition table.
func GroundConditionFactors() []FactorItem { return copyTable(groundConditionFactors) }

func copyTable(table map[string]FactorItem) []FactorItem {
	items := make([]FactorItem, 0, len(table))
	for _, item := range table {
		items = append(items, item)
	}
	return items
}
