package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/iwvelando/teaser/internal/listing"
)

// ValidateEmailAddress checks an address in either "user@host" or
// "Name <user@host>" form.
func ValidateEmailAddress(address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return fmt.Errorf("email address is empty")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return fmt.Errorf("invalid email address %q: %w", address, err)
	}
	return nil
}

// ValidateCurrency checks that code is a currency projects may be listed in.
func ValidateCurrency(code string) error {
	if !listing.Currency(code).Valid() {
		return fmt.Errorf("unsupported currency %q", code)
	}
	return nil
}

// ValidateBaseURL checks that raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

// MailerConfig is the subset of mailer settings that can be checked offline.
type MailerConfig struct {
	APIKey  string
	BaseURL string
	From    string
	To      string
	Bcc     string
}

// ConfigValidator collects warnings about an application configuration.
type ConfigValidator struct {
	Domain      string
	FixturePath string
	Mailer      MailerConfig
}

// ValidateAll returns every warning. None of them stop the application; they
// point at features that will not work.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if strings.TrimSpace(cv.Domain) == "" {
		warnings = append(warnings, "site domain is not set; document links will be relative")
	} else if err := ValidateBaseURL(cv.Domain); err != nil {
		warnings = append(warnings, fmt.Sprintf("site domain: %v", err))
	}

	if strings.TrimSpace(cv.FixturePath) == "" {
		warnings = append(warnings, "fixture path is not set")
	}

	if cv.Mailer.APIKey == "" {
		warnings = append(warnings, "mailer API key is not set; investment requests cannot be sent")
	}
	if cv.Mailer.BaseURL != "" {
		if err := ValidateBaseURL(cv.Mailer.BaseURL); err != nil {
			warnings = append(warnings, fmt.Sprintf("mailer base URL: %v", err))
		}
	}

	for _, addr := range []struct {
		name     string
		value    string
		required bool
	}{
		{"from", cv.Mailer.From, true},
		{"to", cv.Mailer.To, true},
		{"bcc", cv.Mailer.Bcc, false},
	} {
		if addr.value == "" {
			if addr.required {
				warnings = append(warnings, fmt.Sprintf("mailer %s address is not set", addr.name))
			}
			continue
		}
		if err := ValidateEmailAddress(addr.value); err != nil {
			warnings = append(warnings, fmt.Sprintf("mailer %s address: %v", addr.name, err))
		}
	}

	return warnings
}
