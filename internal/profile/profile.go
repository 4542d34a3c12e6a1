// Package profile loads saved restriction profiles from YAML files, so a
// recurring query configuration can be applied to a session in one step.
package profile

import (
	"fmt"
	"os"

	"fjacquet/quicken-query/internal/ledger"

	"gopkg.in/yaml.v3"
)

// Profile is a stored restriction configuration.
type Profile struct {
	Accounts   []string `yaml:"accounts,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	Payees     []string `yaml:"payees,omitempty"`
	Securities []string `yaml:"securities,omitempty"`
	DateFrom   string   `yaml:"date_from,omitempty"`
	DateTo     string   `yaml:"date_to,omitempty"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply sets the profile's restrictions on the session. Empty fields leave
// the corresponding restriction untouched.
func (p *Profile) Apply(s *ledger.Session) error {
	if len(p.Accounts) > 0 {
		s.RestrictToAccounts(p.Accounts)
	}
	if len(p.Categories) > 0 {
		s.RestrictToCategories(p.Categories)
	}
	if len(p.Payees) > 0 {
		s.RestrictToPayees(p.Payees)
	}
	if len(p.Securities) > 0 {
		s.RestrictToSecurities(p.Securities)
	}
	if p.DateFrom != "" || p.DateTo != "" {
		if err := s.RestrictToDates(p.DateFrom, p.DateTo); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the profile to a YAML file.
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}
	return nil
}
