package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// ValidationError lists every way a fixture fails the project schema.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid project: " + strings.Join(e.Issues, "; ")
}

// Load reads and validates the project fixture at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "project: read fixture %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "project: load %s", path)
	}
	return p, nil
}

// Parse decodes and validates a project fixture.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, eris.Wrap(err, "project: decode")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fixture against the project schema.
func (p *Project) Validate() error {
	var issues []string
	add := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	m := &p.MasterProject
	if m.attrs == nil {
		add("masterProject is required")
		return &ValidationError{Issues: issues}
	}
	for _, key := range []string{"masterProjectId", "uuid", "projectName"} {
		if _, ok := m.attrs[key].(string); !ok {
			add("masterProject.%s must be a string", key)
		}
	}
	if !m.InvestmentGroup.Valid() {
		add("masterProject.investmentGroup %q is not a known investment group", m.InvestmentGroup)
	}
	if !m.InvestmentType.Valid() {
		add("masterProject.investmentType %q is not a known investment type", m.InvestmentType)
	}
	if !m.ProjectListingType.Valid() {
		add("masterProject.projectListingType %q is not a known listing type", m.ProjectListingType)
	}
	if !m.ProjectListingMarketType.Valid() {
		add("masterProject.projectListingMarketType %q is not a known market type", m.ProjectListingMarketType)
	}
	if !m.DefaultCurrency.Valid() {
		add("masterProject.defaultCurrency %q is not a supported currency", m.DefaultCurrency)
	}
	for _, key := range []string{"faceValuePerUnit", "availableBalance"} {
		if _, ok := m.attrs[key].(json.Number); !ok {
			add("masterProject.%s must be a number", key)
		}
	}
	if _, ok := m.attrs["projectSupportingDocument"].(map[string]any); !ok {
		add("masterProject.projectSupportingDocument must be an object")
	}
	if fp, ok := m.attrs[FundProjectKey]; ok && fp != nil {
		if _, isObj := fp.(map[string]any); !isObj {
			add("masterProject.%s must be an object or null", FundProjectKey)
		}
	}
	if jf, ok := m.attrs["jsonFields"]; ok && jf != nil {
		if _, isObj := jf.(map[string]any); !isObj {
			add("masterProject.jsonFields must be an object or null")
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
