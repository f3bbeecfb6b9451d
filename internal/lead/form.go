// Package lead handles investment requests submitted from the teaser page:
// form validation, the requested value and the notification email.
package lead

import (
	"bytes"
	"encoding/json"
	"math"
	"net/mail"
	"strconv"
	"strings"

	"github.com/iwvelando/teaser/pkg/constants"
	"github.com/iwvelando/teaser/pkg/mathutil"
)

// Validation messages shown next to the form inputs.
const (
	MsgEmail       = "Please enter a valid email"
	MsgName        = "Please enter your full name"
	MsgQuantity    = "Please enter a valid quantity"
	MsgMinQuantity = "Minimum quantity is 25.000"
	MsgCurrency    = "Currency must be USD"
)

// Quantity is a numeric form input that may arrive as a JSON number or string.
type Quantity struct {
	Raw string
	Set bool
}

// UnmarshalJSON accepts a string, a number or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*q = Quantity{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity{Raw: s, Set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = Quantity{Raw: n.String(), Set: true}
	return nil
}

// MarshalJSON writes the raw text as a JSON string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Set {
		return []byte("null"), nil
	}
	return json.Marshal(q.Raw)
}

// Float parses the quantity. Blank or non-numeric input reports false.
func (q Quantity) Float() (float64, bool) {
	s := strings.TrimSpace(q.Raw)
	if !q.Set || s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Form is the investment request as posted by the page.
type Form struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Amount   Quantity `json:"amount"`
	Value    Quantity `json:"value"`
	Currency string   `json:"currency"`
}

// FieldError is a validation failure of one input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every invalid input of a form.
type ValidationError struct {
	Issues []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		msgs[i] = is.Message
	}
	return strings.Join(msgs, "\n")
}

// Request is a validated investment request.
type Request struct {
	Email    string
	Name     string
	Units    float64
	Value    float64
	Currency string
}

// Validate checks f and returns the normalized request. When the form omits
// a value it is computed from the units and unitPrice.
func (f Form) Validate(unitPrice float64) (Request, error) {
	var issues []FieldError
	fail := func(field, msg string) {
		issues = append(issues, FieldError{Field: field, Message: msg})
	}

	r := Request{
		Email:    strings.TrimSpace(f.Email),
		Name:     strings.TrimSpace(f.Name),
		Currency: strings.TrimSpace(f.Currency),
	}

	if !validEmail(r.Email) {
		fail("email", MsgEmail)
	}
	if r.Name == "" {
		fail("name", MsgName)
	}

	switch units, ok := f.Amount.Float(); {
	case !f.Amount.Set || strings.TrimSpace(f.Amount.Raw) == "":
		fail("amount", MsgQuantity)
	case !ok || units < constants.MinimumLeadUnits:
		fail("amount", MsgMinQuantity)
	default:
		r.Units = units
	}

	if strings.TrimSpace(f.Value.Raw) == "" {
		r.Value = ComputeValue(r.Units, unitPrice)
	} else if v, ok := f.Value.Float(); ok {
		r.Value = v
	} else {
		fail("value", MsgQuantity)
	}

	if r.Currency == "" {
		r.Currency = constants.LeadCurrency
	}
	if r.Currency != constants.LeadCurrency {
		fail("currency", MsgCurrency)
	}

	if len(issues) > 0 {
		return Request{}, &ValidationError{Issues: issues}
	}
	return r, nil
}

// ComputeValue returns the amount invested for units at unitPrice, with units
// rounded to cents first.
func ComputeValue(units, unitPrice float64) float64 {
	return mathutil.Multiply(units, unitPrice, constants.LeadValuePrecision)
}

// FormatValue renders a computed value without trailing zeros, e.g. "250000"
// or "1234.5".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
