package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/teaser/pkg/datetime"
)

// Kind selects how a raw value is rendered.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindCurrency
	KindPeriod
	KindDate
)

// Options decorate a rendered value.
type Options struct {
	Prefix   string
	Suffix   string
	Currency string // ISO code for KindCurrency
	Unit     string // plural unit for KindPeriod
	WithTime bool   // KindDate only
}

// Value renders raw as kind. It returns false only for nil and the empty
// string; zero and false still render. Values that cannot be read as the
// expected kind are rendered as-is between prefix and suffix.
func Value(raw any, kind Kind, opts Options) (string, bool) {
	if blank(raw) {
		return "", false
	}
	s := String(raw)

	switch kind {
	case KindNumber:
		if n, ok := Number(raw); ok {
			return opts.Prefix + Integer(n) + opts.Suffix, true
		}
	case KindCurrency:
		if n, ok := Number(raw); ok {
			return opts.Prefix + Currency(n, opts.Currency) + opts.Suffix, true
		}
	case KindPeriod:
		n, ok := Number(raw)
		if ok {
			return opts.Prefix + Period(n, opts.Unit) + opts.Suffix, true
		}
		return opts.Prefix + s + periodSuffix(math.NaN(), opts.Unit) + opts.Suffix, true
	case KindDate:
		if t, err := datetime.ParseISO(s); err == nil {
			return opts.Prefix + datetime.FormatUTC(t, opts.WithTime) + opts.Suffix, true
		}
	}
	return opts.Prefix + s + opts.Suffix, true
}

// Date renders an ISO-8601 string as a UTC en-US date. Unparseable input is
// returned unchanged with ok set to false.
func Date(raw string, withTime bool) (string, bool) {
	t, err := datetime.ParseISO(raw)
	if err != nil {
		return raw, false
	}
	return datetime.FormatUTC(t, withTime), true
}

func blank(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case json.Number:
		return v == ""
	}
	return false
}

// Empty reports whether raw is a value the detail page hides: nil, false, an
// empty string, zero or NaN.
func Empty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		if v == "" {
			return true
		}
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0 || math.IsNaN(v)
	case float32:
		return v == 0 || math.IsNaN(float64(v))
	case int:
		return v == 0
	case int64:
		return v == 0
	case int32:
		return v == 0
	}
	return false
}

// Number reads raw as a number. Strings are trimmed first; an empty string is
// not a number.
func Number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String renders raw without any formatting.
func String(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprint(raw)
}
