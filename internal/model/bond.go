// Package model defines the bond record and the filter criteria shared
// across the resolver, the API client, and the presentation layers.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for bond dates (ISO 8601, day granularity).
const DateFormat = "2006-01-02"

func init() {
	// The catalog API speaks bare JSON numbers for decimal fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// Bond represents a single fixed-income instrument as served by the catalog
// API. ID is nil until the server has assigned one. Classification fields may
// be empty and numeric/date fields may be absent; display code renders those
// as "N/A" and sorting treats them per the comparator rules in the catalog
// package.
type Bond struct {
	ID           *int64              `json:"id,omitempty"`
	Name         string              `json:"name"`
	Issuer       string              `json:"issuer"`
	FaceValue    decimal.NullDecimal `json:"faceValue"`
	CouponRate   decimal.NullDecimal `json:"couponRate"`
	Rating       string              `json:"rating"`
	IssueDate    string              `json:"issueDate"`
	MaturityDate string              `json:"maturityDate"`
	Status       string              `json:"status"`
	Currency     string              `json:"currency"`
}

// Persisted reports whether the record exists server-side.
func (b *Bond) Persisted() bool {
	return b.ID != nil
}

// Validate checks the fields the catalog API requires on create/update.
func (b *Bond) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("bond name is required")
	}
	if b.Issuer == "" {
		return fmt.Errorf("bond issuer is required")
	}
	if b.IssueDate != "" {
		if _, err := time.Parse(DateFormat, b.IssueDate); err != nil {
			return fmt.Errorf("invalid issue date %q: want YYYY-MM-DD", b.IssueDate)
		}
	}
	if b.MaturityDate != "" {
		if _, err := time.Parse(DateFormat, b.MaturityDate); err != nil {
			return fmt.Errorf("invalid maturity date %q: want YYYY-MM-DD", b.MaturityDate)
		}
	}
	return nil
}

// MaturityTime returns the maturity date as a time.Time. A missing or
// unparseable date yields the zero time, which sorts before every real date.
func (b *Bond) MaturityTime() time.Time {
	return parseDate(b.MaturityDate)
}

// IssueTime returns the issue date as a time.Time, zero when absent.
func (b *Bond) IssueTime() time.Time {
	return parseDate(b.IssueDate)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayString renders a classification field, substituting "N/A" for the
// empty string.
func DisplayString(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// DisplayDecimal renders an optional decimal field, "N/A" when absent.
func DisplayDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "N/A"
	}
	return d.Decimal.String()
}

// DisplayDate renders an optional date field, "N/A" when absent.
func DisplayDate(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
