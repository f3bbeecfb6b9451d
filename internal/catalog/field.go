// Package catalog holds every displayable project field, the named field lists
// derived from a few base lists, and the classification table that selects
// which lists apply to a project.
package catalog

import (
	"encoding/json"
	"strings"
)

// InputType is the declared kind of a field. The zero value marks a hidden
// companion field that is only read by its sibling.
type InputType string

const (
	Hidden          InputType = ""
	Checkbox        InputType = "checkbox"
	Currency        InputType = "currency"
	PeriodicityTime InputType = "periodicityTime"
	Select          InputType = "select"
	Text            InputType = "text"
	Date            InputType = "date"
	Phone           InputType = "phone"
	Number          InputType = "number"
	Country         InputType = "country"
	File            InputType = "file"
	Email           InputType = "email"
	Dual            InputType = "dual"
	TextArea        InputType = "textarea"
	Multiselect     InputType = "multiselect"
	Switch          InputType = "switch"
)

// MarshalJSON encodes a hidden type as null.
func (t InputType) MarshalJSON() ([]byte, error) {
	if t == Hidden {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts null as the hidden type.
func (t *InputType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Hidden
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = InputType(s)
	return nil
}

// Props is the input metadata of a field.
type Props struct {
	Type              InputType `json:"type"`
	Required          bool      `json:"required,omitempty"`
	Accept            []string  `json:"accept,omitempty"`
	SubInputName      string    `json:"subInputName,omitempty"`
	SubInputLabel     string    `json:"subInputLabel,omitempty"`
	Decorator         string    `json:"decorator,omitempty"`
	DecoratorPosition string    `json:"decoratorPosition,omitempty"`
	DefaultSubValue   string    `json:"defaultSubValue,omitempty"`
	HelperTitle       string    `json:"helperTitle,omitempty"`
	HelperText        string    `json:"helperText,omitempty"`
	Tooltip           string    `json:"tooltip,omitempty"`
	Placeholder       string    `json:"placeholder,omitempty"`
}

// Field is one labeled project attribute.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Props Props  `json:"props"`
}

// Key returns the canonical attribute key of the field.
func (f Field) Key() string {
	return f.Value
}

// Hidden reports whether the field is a companion value that is never shown
// on its own.
func (f Field) Hidden() bool {
	return f.Props.Type == Hidden
}

// Companion returns the key of the sub input paired with the field, or "".
func (f Field) Companion() string {
	name := f.Props.SubInputName
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// CompanionCategory returns the category prefix of the sub input, or "".
func (f Field) CompanionCategory() string {
	name := f.Props.SubInputName
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

func (f Field) clone() Field {
	if f.Props.Accept != nil {
		f.Props.Accept = append([]string(nil), f.Props.Accept...)
	}
	return f
}

type option func(*Props)

func field(name, key string, t InputType, opts ...option) Field {
	f := Field{Name: name, Value: key, Props: Props{Type: t}}
	for _, opt := range opts {
		opt(&f.Props)
	}
	return f
}

func hidden(name, key string) Field {
	return Field{Name: name, Value: key}
}

func required() option {
	return func(p *Props) { p.Required = true }
}

func accept(types ...string) option {
	return func(p *Props) { p.Accept = append([]string(nil), types...) }
}

func sub(category, key, label string) option {
	return func(p *Props) {
		p.SubInputName = category + "." + key
		p.SubInputLabel = label
	}
}

func defaultSub(value string) option {
	return func(p *Props) { p.DefaultSubValue = value }
}

func percent() option {
	return func(p *Props) {
		p.Decorator = "%"
		p.DecoratorPosition = "start"
	}
}

func helperTitle(title string) option {
	return func(p *Props) { p.HelperTitle = title }
}

func helperText(text string) option {
	return func(p *Props) { p.HelperText = text }
}

func tooltip(text string) option {
	return func(p *Props) { p.Tooltip = text }
}

func placeholder(text string) option {
	return func(p *Props) { p.Placeholder = text }
}

var (
	acceptImages    = []string{"image/*"}
	acceptImagesPDF = []string{"image/*", "application/pdf"}
	acceptDocuments = []string{"image/*", "application/pdf", "application/*"}
)
