package calculator

import "slices"

// Definition is a calculator: its title, its ordered form fields and, through
// Kind, the formula Compute applies.
type Definition struct {
	Kind   Kind
	Title  string
	Fields []FieldSpec
}

// definitions is indexed by Kind and never handed out directly; Lookup
// returns deep copies.
var definitions = [...]Definition{
	Fertilizer: {
		Kind:  Fertilizer,
		Title: "Fertilizer Calculator",
		Fields: []FieldSpec{
			fieldArea(),
			choice("soilType", "Soil Type", soilOptions),
			cropType(),
			{Name: "currentNPK", Label: "Current N-P-K Level", Input: InputText, Required: true, Placeholder: "e.g., 10-10-10"},
			number("targetYield", "Target Yield (tons/acre)"),
		},
	},
	Irrigation: {
		Kind:  Irrigation,
		Title: "Irrigation Planner",
		Fields: []FieldSpec{
			fieldArea(),
			cropType(),
			choice("growthStage", "Growth Stage", stageOptions),
			number("soilMoisture", "Current Soil Moisture (%)"),
			choice("weatherCondition", "Weather Condition", weatherOptions),
		},
	},
	Yield: {
		Kind:  Yield,
		Title: "Yield Estimator",
		Fields: []FieldSpec{
			fieldArea(),
			cropType(),
			{Name: "plantingDate", Label: "Planting Date", Input: InputDate, Required: true},
			choice("seedVariety", "Seed Variety", varietyOptions),
			number("fertilizerApplied", "Fertilizer Applied (kg)"),
			number("irrigationDays", "Irrigation Days"),
		},
	},
	Profit: {
		Kind:  Profit,
		Title: "Profit Calculator",
		Fields: []FieldSpec{
			fieldArea(),
			cropType(),
			number("expectedYield", "Expected Yield (tons)"),
			number("marketPrice", "Market Price ($/ton)"),
			number("seedCost", "Seed Cost ($)"),
			number("fertilizerCost", "Fertilizer Cost ($)"),
			number("laborCost", "Labor Cost ($)"),
			number("equipmentCost", "Equipment Cost ($)"),
		},
	},
}

// Lookup returns the definition for a calculator identifier such as
// "fertilizer". Unknown identifiers report false and the zero Definition.
func Lookup(id string) (Definition, bool) {
	k, ok := ParseKind(id)
	if !ok {
		return Definition{}, false
	}
	return Get(k), true
}

// Get returns the definition for k. k must be one of Kinds.
func Get(k Kind) Definition {
	return definitions[k].clone()
}

// All returns every definition in display order.
func All() []Definition {
	out := make([]Definition, 0, len(Kinds))
	for _, k := range Kinds {
		out = append(out, Get(k))
	}
	return out
}

// ID is the identifier the definition is looked up by.
func (d Definition) ID() string {
	return d.Kind.String()
}

// Field returns the field named name.
func (d Definition) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Missing returns, in form order, the names of required fields that are
// absent or blank in values.
func (d Definition) Missing(values FieldValues) []string {
	var missing []string
	for _, f := range d.Fields {
		if f.Required && isBlank(values[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func (d Definition) clone() Definition {
	fields := slices.Clone(d.Fields)
	for i := range fields {
		fields[i].Options = slices.Clone(fields[i].Options)
	}
	d.Fields = fields
	return d
}
