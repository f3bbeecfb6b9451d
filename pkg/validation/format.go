// Package validation checks teaser configuration and command options.
package validation

import (
	"fmt"

	"github.com/iwvelando/teaser/pkg/constants"
)

// outputFormats are the renderings the sections and fields commands support.
var outputFormats = map[string]bool{
	constants.OutputFormatPretty: true,
	constants.OutputFormatCSV:    true,
}

// ValidateOutputFormat reports an error unless format is pretty or csv.
// Matching is exact.
func ValidateOutputFormat(format string) error {
	if !outputFormats[format] {
		return fmt.Errorf("unsupported output format %q, use %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
	return nil
}

// ResolveOutputFormat picks the format a command prints in: the command line
// override, then the configured output.format, then pretty.
func ResolveOutputFormat(override, configured string) (string, error) {
	format := override
	if format == "" {
		format = configured
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
