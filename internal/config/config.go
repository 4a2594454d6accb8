package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/balancebook-dev/balancebook/internal/currency"
)

// Config represents the top-level balancebook.yaml configuration.
type Config struct {
	Business     BusinessConfig   `yaml:"business"`
	Fiscal       FiscalConfig     `yaml:"fiscal"`
	Currency     CurrencyConfig   `yaml:"currency"`
	BankAccounts []BankAccount    `yaml:"bank_accounts,omitempty"`
	Thresholds   ThresholdsConfig `yaml:"thresholds"`
	Audit        AuditConfig      `yaml:"audit"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
	TaxID      string `yaml:"tax_id,omitempty"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// CurrencyConfig sets the reporting currency for the books.
type CurrencyConfig struct {
	Base string `yaml:"base"`
}

// BankAccount maps a bank feed to a chart-of-accounts entry.
type BankAccount struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	LastFour  string `yaml:"last_four"`
	Format    string `yaml:"format"` // importer parser name, e.g. "chase"
	AccountID int    `yaml:"account_id"`
}

// ThresholdsConfig flags imported amounts that deserve a second look.
type ThresholdsConfig struct {
	ReviewAmount    float64 `yaml:"review_amount"`
	StaleStatements int     `yaml:"stale_statements"` // periods without reconciliation
}

// AuditConfig controls the append-only audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	UserID  string `yaml:"user_id"`
}

// Load reads a balancebook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the parts of a Config the domain depends on.
func (c *Config) Validate() error {
	if c.Business.Name == "" {
		return fmt.Errorf("business name is required")
	}
	if err := currency.Code(c.Currency.Base).Validate(); err != nil {
		return fmt.Errorf("base currency: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new set of books.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Currency: CurrencyConfig{
			Base: "USD",
		},
		Thresholds: ThresholdsConfig{
			ReviewAmount:    10000,
			StaleStatements: 2,
		},
		Audit: AuditConfig{
			Enabled: true,
			UserID:  "books-admin",
		},
	}
}
