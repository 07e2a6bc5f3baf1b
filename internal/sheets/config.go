// Package sheets exports the catalog view to Google Sheets.
package sheets

import (
	"fmt"

	"github.com/folaolaitan/bondctl/internal/common"
)

// Config holds the configuration for the Google Sheets exporter.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	TimeZone           string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName: "Bond Catalog",
		TimeZone:        "UTC",
	}
}

// Validate checks that at least one authentication method is configured.
func (c *Config) Validate() error {
	if c.ServiceAccountPath == "" && (c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "") {
		return fmt.Errorf("%w: provide either a Google service account path or OAuth2 credentials", common.ErrMissingConfig)
	}
	if c.SpreadsheetName == "" {
		c.SpreadsheetName = "Bond Catalog"
	}
	return nil
}
