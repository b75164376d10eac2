package calculator

// InputKind is the kind of form control a field is entered through.
type InputKind string

const (
	InputNumber InputKind = "number"
	InputText   InputKind = "text"
	InputSelect InputKind = "select"
	InputDate   InputKind = "date"
)

// FieldSpec declares one input of a calculator form.
type FieldSpec struct {
	Name        string
	Label       string
	Input       InputKind
	Options     []string
	Required    bool
	Placeholder string
}

// FieldValues holds the raw strings submitted for one calculation, keyed by
// field name.
type FieldValues map[string]string

var (
	cropOptions    = []string{"Wheat", "Corn", "Rice", "Soybean", "Potato"}
	soilOptions    = []string{"Clay", "Sandy", "Loamy", "Silty"}
	stageOptions   = []string{"Germination", "Vegetative", "Flowering", "Fruiting", "Maturity"}
	weatherOptions = []string{"Hot & Dry", "Moderate", "Cool & Humid"}
	varietyOptions = []string{"High Yield", "Drought Resistant", "Disease Resistant", "Standard"}
)

func number(name, label string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Input: InputNumber, Required: true}
}

func choice(name, label string, options []string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Input: InputSelect, Options: options, Required: true}
}

func fieldArea() FieldSpec {
	return number("fieldArea", "Field Area (acres)")
}

func cropType() FieldSpec {
	return choice("cropType", "Crop Type", cropOptions)
}
