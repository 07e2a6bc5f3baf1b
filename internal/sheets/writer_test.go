package sheets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/model"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "service account path is enough",
			config: Config{ServiceAccountPath: "/tmp/sa.json"},
		},
		{
			name:   "full oauth2 credentials are enough",
			config: Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "token"},
		},
		{
			name:    "partial oauth2 credentials rejected",
			config:  Config{ClientID: "id"},
			wantErr: true,
		},
		{
			name:    "no auth rejected",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Bond Catalog", tt.config.SpreadsheetName)
			}
		})
	}
}

func TestPrepareRows(t *testing.T) {
	id := int64(3)
	bonds := []model.Bond{
		{
			ID:           &id,
			Name:         "Acme 2030",
			Issuer:       "Acme",
			FaceValue:    decimal.NullDecimal{Decimal: decimal.RequireFromString("1000"), Valid: true},
			CouponRate:   decimal.NullDecimal{Decimal: decimal.RequireFromString("5.25"), Valid: true},
			Rating:       "AA",
			IssueDate:    "2020-01-15",
			MaturityDate: "2030-01-15",
			Status:       "Active",
			Currency:     "USD",
		},
		{Name: "Bare"},
	}

	rows := prepareRows(bonds)
	require.Len(t, rows, 4, "title + header + one row per bond")

	assert.Equal(t, "Bond Catalog", rows[0][0])
	assert.Equal(t, "ID", rows[1][0])

	assert.Equal(t, []any{"3", "Acme 2030", "Acme", "1000", "5.25", "AA", "2020-01-15", "2030-01-15", "Active", "USD"}, rows[2])
	assert.Equal(t, []any{"N/A", "Bare", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A"}, rows[3])
}
