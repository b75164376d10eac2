package calculator

import (
	"fmt"
	"html/template"
	"io"
)

// Form is the renderable description of a calculator form.
type Form struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Fields      []FormField `json:"fields"`
	SubmitLabel string      `json:"submit_label"`
}

// FormField describes one control. Prompt is the empty first option shown
// by select controls.
type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Input       string   `json:"input"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// DisplayLabel is the label as shown next to the control, with required
// fields marked by an asterisk.
func (f FormField) DisplayLabel() string {
	if f.Required {
		return f.Label + " *"
	}
	return f.Label
}

// RenderForm projects a definition into its form description, one field per
// FieldSpec in order.
func RenderForm(d Definition) Form {
	form := Form{
		ID:          d.ID(),
		Title:       d.Title,
		Fields:      make([]FormField, 0, len(d.Fields)),
		SubmitLabel: "Calculate",
	}

	for _, f := range d.Fields {
		ff := FormField{
			Name:        f.Name,
			Label:       f.Label,
			Input:       string(f.Input),
			Required:    f.Required,
			Placeholder: f.Placeholder,
		}
		if f.Input == InputSelect {
			ff.Prompt = "Select " + f.Label
			ff.Options = append([]string(nil), f.Options...)
		}
		form.Fields = append(form.Fields, ff)
	}

	return form
}

var formTemplate = template.Must(template.New("form").Parse(`<div class="calculator-form">
<h3>{{.Title}}</h3>
<form id="calculator-form" data-calculator="{{.ID}}">
{{- range .Fields}}
<div class="form-group">
<label for="{{.Name}}">{{.DisplayLabel}}</label>
{{- if eq .Input "select"}}
<select id="{{.Name}}" name="{{.Name}}"{{if .Required}} required{{end}}>
<option value="">{{.Prompt}}</option>
{{- range .Options}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
{{- else}}
<input type="{{.Input}}" id="{{.Name}}" name="{{.Name}}"{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .Required}} required{{end}}>
{{- end}}
</div>
{{- end}}
<button type="submit" class="btn btn-primary">{{.SubmitLabel}}</button>
</form>
<div id="calculator-result" class="calculator-result" style="display: none;"></div>
</div>
`))

// WriteHTML renders the form as an HTML fragment.
func (f Form) WriteHTML(w io.Writer) error {
	if err := formTemplate.Execute(w, f); err != nil {
		return fmt.Errorf("render form %s: %w", f.ID, err)
	}
	return nil
}
