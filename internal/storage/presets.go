package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/folaolaitan/bondctl/internal/common"
	"github.com/folaolaitan/bondctl/internal/model"
)

// Preset is a named, saved filter criteria set.
type Preset struct {
	CreatedAt time.Time
	Name      string
	Criteria  model.Criteria
}

// SavePreset stores the criteria under name, overwriting any existing preset
// with that name.
func (s *Store) SavePreset(ctx context.Context, name string, criteria model.Criteria) error {
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	payload, err := json.Marshal(criteria)
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO presets (name, criteria) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET criteria = excluded.criteria`,
		name, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save preset %q: %w", name, err)
	}
	return nil
}

// GetPreset loads a preset by name.
func (s *Store) GetPreset(ctx context.Context, name string) (*Preset, error) {
	var (
		payload   string
		createdAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT criteria, created_at FROM presets WHERE name = ?`, name).
		Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", common.ErrPresetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %q: %w", name, err)
	}

	var criteria model.Criteria
	if err := json.Unmarshal([]byte(payload), &criteria); err != nil {
		return nil, fmt.Errorf("failed to decode preset %q: %w", name, err)
	}
	return &Preset{Name: name, Criteria: criteria, CreatedAt: createdAt}, nil
}

// ListPresets returns all presets ordered by name.
func (s *Store) ListPresets(ctx context.Context) ([]Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, criteria, created_at FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var presets []Preset
	for rows.Next() {
		var (
			p       Preset
			payload string
		)
		if err := rows.Scan(&p.Name, &payload, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &p.Criteria); err != nil {
			return nil, fmt.Errorf("failed to decode preset %q: %w", p.Name, err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// DeletePreset removes a preset by name.
func (s *Store) DeletePreset(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete preset %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", common.ErrPresetNotFound, name)
	}
	return nil
}
