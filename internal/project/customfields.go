package project

import (
	"encoding/json"

	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/pkg/format"
)

// CustomField is an ad-hoc attribute entered outside the catalog.
type CustomField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type customFieldJSON struct {
	ID    string  `json:"id"`
	Label *string `json:"label"`
	Value any     `json:"value"`
}

// CustomFieldSet holds custom fields per category in the order they were read.
type CustomFieldSet map[listing.Category][]CustomField

// UnmarshalJSON reads category -> field id -> {id, label, value}, keeping the
// field order of each category.
func (s *CustomFieldSet) UnmarshalJSON(data []byte) error {
	out := CustomFieldSet{}
	err := eachMember(data, func(category string, raw json.RawMessage) error {
		var fields []CustomField
		err := eachMember(raw, func(id string, fieldRaw json.RawMessage) error {
			if isNull(fieldRaw) {
				return nil
			}
			var f customFieldJSON
			if err := json.Unmarshal(fieldRaw, &f); err != nil {
				return err
			}
			cf := CustomField{ID: f.ID, Value: format.String(f.Value)}
			if cf.ID == "" {
				cf.ID = id
			}
			if f.Label != nil {
				cf.Label = *f.Label
			}
			fields = append(fields, cf)
			return nil
		})
		if err != nil {
			return err
		}
		if len(fields) > 0 {
			out[listing.Category(category)] = fields
		}
		return nil
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// Fields returns the custom fields of category, or nil.
func (s CustomFieldSet) Fields(category listing.Category) []CustomField {
	fields := s[category]
	if len(fields) == 0 {
		return nil
	}
	return append([]CustomField(nil), fields...)
}
