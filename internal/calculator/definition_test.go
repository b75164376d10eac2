package calculator

import "testing"

func TestLookupKnownCalculators(t *testing.T) {
	tests := []struct {
		id     string
		title  string
		fields []string
	}{
		{
			id:     "fertilizer",
			title:  "Fertilizer Calculator",
			fields: []string{"fieldArea", "soilType", "cropType", "currentNPK", "targetYield"},
		},
		{
			id:     "irrigation",
			title:  "Irrigation Planner",
			fields: []string{"fieldArea", "cropType", "growthStage", "soilMoisture", "weatherCondition"},
		},
		{
			id:     "yield",
			title:  "Yield Estimator",
			fields: []string{"fieldArea", "cropType", "plantingDate", "seedVariety", "fertilizerApplied", "irrigationDays"},
		},
		{
			id:     "profit",
			title:  "Profit Calculator",
			fields: []string{"fieldArea", "cropType", "expectedYield", "marketPrice", "seedCost", "fertilizerCost", "laborCost", "equipmentCost"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			def, ok := Lookup(tc.id)
			if !ok {
				t.Fatalf("expected calculator %q to exist", tc.id)
			}
			if def.ID() != tc.id {
				t.Fatalf("expected id %q, got %q", tc.id, def.ID())
			}
			if def.Title != tc.title {
				t.Fatalf("expected title %q, got %q", tc.title, def.Title)
			}
			if len(def.Fields) != len(tc.fields) {
				t.Fatalf("expected %d fields, got %d", len(tc.fields), len(def.Fields))
			}
			for i, f := range def.Fields {
				if f.Name != tc.fields[i] {
					t.Fatalf("field %d: expected %q, got %q", i, tc.fields[i], f.Name)
				}
				if !f.Required {
					t.Fatalf("field %q: expected required", f.Name)
				}
			}
		})
	}
}

func TestLookupUnknownCalculator(t *testing.T) {
	for _, id := range []string{"", "Fertilizer", "harvest", "unknown"} {
		def, ok := Lookup(id)
		if ok {
			t.Fatalf("expected %q to be unknown", id)
		}
		if def.Kind != 0 || def.Fields != nil {
			t.Fatalf("expected zero definition for %q, got %+v", id, def)
		}
	}
}

func TestFieldInputKinds(t *testing.T) {
	def, _ := Lookup("fertilizer")

	npk, ok := def.Field("currentNPK")
	if !ok {
		t.Fatal("expected currentNPK field")
	}
	if npk.Input != InputText || npk.Placeholder != "e.g., 10-10-10" {
		t.Fatalf("unexpected currentNPK field: %+v", npk)
	}

	soil, _ := def.Field("soilType")
	if soil.Input != InputSelect || len(soil.Options) != 4 || soil.Options[0] != "Clay" {
		t.Fatalf("unexpected soilType field: %+v", soil)
	}

	yield, _ := Lookup("yield")
	if f, _ := yield.Field("plantingDate"); f.Input != InputDate {
		t.Fatalf("expected plantingDate to be a date input, got %q", f.Input)
	}
}

func TestLookupReturnsIndependentCopies(t *testing.T) {
	def, _ := Lookup("irrigation")
	def.Title = "changed"
	def.Fields[0].Name = "changed"
	def.Fields[1].Options[0] = "changed"

	again, _ := Lookup("irrigation")
	if again.Title != "Irrigation Planner" {
		t.Fatalf("title leaked: %q", again.Title)
	}
	if again.Fields[0].Name != "fieldArea" {
		t.Fatalf("field name leaked: %q", again.Fields[0].Name)
	}
	if again.Fields[1].Options[0] != "Wheat" {
		t.Fatalf("option leaked: %q", again.Fields[1].Options[0])
	}

	fert, _ := Lookup("fertilizer")
	if crop, _ := fert.Field("cropType"); crop.Options[0] != "Wheat" {
		t.Fatalf("shared crop options were mutated: %q", crop.Options[0])
	}
}

func TestAllInDisplayOrder(t *testing.T) {
	want := []string{"fertilizer", "irrigation", "yield", "profit"}
	defs := All()
	if len(defs) != len(want) {
		t.Fatalf("expected %d definitions, got %d", len(want), len(defs))
	}
	for i, d := range defs {
		if d.ID() != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], d.ID())
		}
	}
}

func TestMissing(t *testing.T) {
	def, _ := Lookup("irrigation")

	missing := def.Missing(FieldValues{
		"fieldArea":    "4",
		"cropType":     "Corn",
		"soilMoisture": "   ",
	})

	want := []string{"growthStage", "soilMoisture", "weatherCondition"}
	if len(missing) != len(want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	}

	if m := def.Missing(nil); len(m) != len(def.Fields) {
		t.Fatalf("expected every field missing for nil values, got %v", m)
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v, %t", k.String(), got, ok)
		}
	}
	if Kind(0).String() != "unknown" {
		t.Fatalf("expected zero kind to be unknown, got %q", Kind(0).String())
	}
}
