package detail

import (
	"strings"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/internal/project"
	"github.com/iwvelando/teaser/pkg/format"
)

// htmlKeys hold markup entered through a rich text editor.
var htmlKeys = map[string]bool{
	catalog.KeyOverviewOfFund: true,
}

// renderField formats the value of f for p. Companion, checkbox, switch and
// file fields are never rendered on their own.
func renderField(p *project.MasterProject, category listing.Category, f catalog.Field) (Entry, bool) {
	switch f.Props.Type {
	case catalog.Hidden, catalog.Checkbox, catalog.Switch, catalog.File:
		return Entry{}, false
	}

	raw, ok := p.Lookup(category, f.Key())
	if !ok {
		return Entry{}, false
	}

	kind := format.KindText
	opts := format.Options{}
	entryKind := KindText

	switch f.Props.Type {
	case catalog.Currency:
		kind = format.KindCurrency
		opts.Currency = companionValue(p, category, f)
		if opts.Currency == "" {
			opts.Currency = string(p.DefaultCurrency)
		}
	case catalog.PeriodicityTime:
		kind = format.KindPeriod
		opts.Unit = companionValue(p, category, f)
		if opts.Unit == "" {
			opts.Unit = f.Props.DefaultSubValue
		}
	case catalog.Date:
		kind = format.KindDate
	case catalog.Number:
		kind = format.KindNumber
	case catalog.Email:
		entryKind = KindEmail
	case catalog.Phone:
		entryKind = KindPhone
	case catalog.Multiselect:
		raw = joinList(raw)
	}
	if f.Props.Decorator == "%" {
		opts.Suffix = "%"
	}
	if htmlKeys[f.Key()] {
		entryKind = KindHTML
	}

	value, ok := format.Value(raw, kind, opts)
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: f.Key(), Label: f.Name, Value: value, Kind: entryKind}, true
}

// companionValue reads the sub input paired with f, such as a currency code
// or a period unit.
func companionValue(p *project.MasterProject, category listing.Category, f catalog.Field) string {
	key := f.Companion()
	if key == "" {
		return ""
	}
	if c := f.CompanionCategory(); c != "" {
		category = listing.Category(c)
	}
	v, ok := p.Lookup(category, key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(format.String(v))
}

func joinList(raw any) any {
	items, ok := raw.([]any)
	if !ok {
		return raw
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if s := format.String(it); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
