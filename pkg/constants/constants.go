// Package constants provides shared constants for the teaser application.
package constants

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultFixturePath is the project fixture read when none is configured
	DefaultFixturePath = "data/project.json"

	// EnvPrefix prefixes environment overrides of config keys
	EnvPrefix = "TEASER"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultLeadsPerMinute is the default sustained rate of lead submissions
	DefaultLeadsPerMinute = 10

	// DefaultLeadBurst is the default burst of lead submissions
	DefaultLeadBurst = 3
)

// Mailer defaults
const (
	// DefaultMailerBaseURL is the transactional email provider API root
	DefaultMailerBaseURL = "https://api.resend.com"

	// DefaultLeadSubject is the subject of the investment request notification
	DefaultLeadSubject = "[NevaTeam] Investment request received 🎉"

	// DefaultMailerTimeoutSeconds bounds a single provider request
	DefaultMailerTimeoutSeconds = 15
)

// Lead form constants
const (
	// MinimumLeadUnits is the smallest number of units a lead may request
	MinimumLeadUnits = 25000

	// LeadCurrency is the only currency accepted on the lead form
	LeadCurrency = "USD"

	// LeadValuePrecision is the number of decimals the unit amount is rounded to
	LeadValuePrecision = 2
)

// Display constants
const (
	// PercentFilledFallback is reported when hard cap or available balance is missing
	PercentFilledFallback = 100.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DateLayout renders dates as en-US short dates
	DateLayout = "1/2/2006"

	// TimeLayout is appended to DateLayout when a time is requested
	TimeLayout = "15:04"

	// PublicPathMarker splits stored document paths from their public URL part
	PublicPathMarker = "/public/"
)

// Periodicity units
const (
	UnitDays   = "days"
	UnitMonths = "months"
	UnitYears  = "years"
)
