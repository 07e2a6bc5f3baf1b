package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFXRateTTL is how long a cached FX rate stays fresh. The upstream
// service caches pairs the same way; keeping a local copy saves a round trip
// for repeated lookups.
const DefaultFXRateTTL = 15 * time.Minute

// GetRate returns the cached rate for the pair if it was fetched within ttl.
// The second return value reports a cache hit. Rates are stored as exact
// decimal strings.
func (s *Store) GetRate(ctx context.Context, from, to string, ttl time.Duration) (decimal.Decimal, bool, error) {
	var (
		raw       string
		fetchedAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT rate, fetched_at FROM fx_rates WHERE from_currency = ? AND to_currency = ?`,
		strings.ToUpper(from), strings.ToUpper(to)).
		Scan(&raw, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to read fx cache: %w", err)
	}

	if time.Since(fetchedAt) > ttl {
		return decimal.Zero, false, nil
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt fx cache entry %s/%s: %w", from, to, err)
	}
	return rate, true, nil
}

// PutRate stores or refreshes the rate for the pair.
func (s *Store) PutRate(ctx context.Context, from, to string, rate decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fx_rates (from_currency, to_currency, rate, fetched_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(from_currency, to_currency) DO UPDATE SET rate = excluded.rate, fetched_at = excluded.fetched_at`,
		strings.ToUpper(from), strings.ToUpper(to), rate.String(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to cache fx rate: %w", err)
	}
	return nil
}
