// Package config defines the application configuration and loads it from a
// YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/iwvelando/teaser/pkg/constants"
	"github.com/iwvelando/teaser/pkg/validation"
)

// Configuration holds all configuration for teaser.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
	Fixture FixtureConfig `mapstructure:"fixture" yaml:"fixture,omitempty"`
	Site    SiteConfig    `mapstructure:"site" yaml:"site,omitempty"`
	Mailer  MailerConfig  `mapstructure:"mailer" yaml:"mailer,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv
}

// FixtureConfig points at the project record to serve.
type FixtureConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

// SiteConfig describes the public site documents are linked under.
type SiteConfig struct {
	Domain string `mapstructure:"domain" yaml:"domain,omitempty"`
}

// MailerConfig configures investment request notifications.
type MailerConfig struct {
	APIKey         string `mapstructure:"apiKey" yaml:"apiKey,omitempty"`
	BaseURL        string `mapstructure:"baseURL" yaml:"baseURL,omitempty"`
	From           string `mapstructure:"from" yaml:"from,omitempty"`
	To             string `mapstructure:"to" yaml:"to,omitempty"`
	Bcc            string `mapstructure:"bcc" yaml:"bcc,omitempty"`
	Subject        string `mapstructure:"subject" yaml:"subject,omitempty"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" yaml:"timeoutSeconds,omitempty"`
}

// legacyEnv maps config keys to the variable names the site was deployed with.
var legacyEnv = map[string]string{
	"mailer.apiKey": "RESEND",
	"mailer.from":   "FROM_EMAIL",
	"mailer.to":     "TO_EMAIL",
	"mailer.bcc":    "BCC_EMAIL",
	"site.domain":   "NEXT_PUBLIC_DOMAIN",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")

	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("fixture.path", constants.DefaultFixturePath)
	v.SetDefault("site.domain", "")
	v.SetDefault("mailer.apiKey", "")
	v.SetDefault("mailer.baseURL", constants.DefaultMailerBaseURL)
	v.SetDefault("mailer.from", "")
	v.SetDefault("mailer.to", "")
	v.SetDefault("mailer.bcc", "")
	v.SetDefault("mailer.subject", constants.DefaultLeadSubject)
	v.SetDefault("mailer.timeoutSeconds", constants.DefaultMailerTimeoutSeconds)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		// BindEnv only fails without a key.
		_ = v.BindEnv(key, prefixed, legacy)
	}
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults with environment
// overrides applied.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	cv := validation.ConfigValidator{
		Domain:      c.Site.Domain,
		FixturePath: c.Fixture.Path,
		Mailer: validation.MailerConfig{
			APIKey:  c.Mailer.APIKey,
			BaseURL: c.Mailer.BaseURL,
			From:    c.Mailer.From,
			To:      c.Mailer.To,
			Bcc:     c.Mailer.Bcc,
		},
	}
	return append(warnings, cv.ValidateAll()...)
}
