package tui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/model"
)

func TestForm_CreateBond(t *testing.T) {
	f := newForm(nil, catalog.Facets{})

	f.inputs[fieldName].SetValue("New Note")
	f.inputs[fieldIssuer].SetValue("Initech")
	f.inputs[fieldFaceValue].SetValue("2500.50")
	f.inputs[fieldCouponRate].SetValue("")
	f.inputs[fieldMaturityDate].SetValue("2032-06-30")
	f.inputs[fieldCurrency].SetValue("GBP")

	bond, err := f.Bond()
	require.NoError(t, err)

	assert.Nil(t, bond.ID)
	assert.Equal(t, "New Note", bond.Name)
	assert.True(t, bond.FaceValue.Valid)
	assert.Equal(t, "2500.5", bond.FaceValue.Decimal.String())
	assert.False(t, bond.CouponRate.Valid, "empty numeric field becomes null")
	assert.Equal(t, "2032-06-30", bond.MaturityDate)
}

func TestForm_EditKeepsID(t *testing.T) {
	id := int64(9)
	initial := &model.Bond{
		ID:         &id,
		Name:       "Acme 2030",
		Issuer:     "Acme",
		FaceValue:  decimal.NullDecimal{Decimal: decimal.RequireFromString("1000"), Valid: true},
		CouponRate: decimal.NullDecimal{Decimal: decimal.RequireFromString("5"), Valid: true},
	}

	f := newForm(initial, catalog.Facets{})
	require.True(t, f.Editing())
	assert.Equal(t, "1000", f.inputs[fieldFaceValue].Value())

	f.inputs[fieldName].SetValue("Acme 2030 Renamed")
	bond, err := f.Bond()
	require.NoError(t, err)
	require.NotNil(t, bond.ID)
	assert.Equal(t, int64(9), *bond.ID)
	assert.Equal(t, "Acme 2030 Renamed", bond.Name)
}

func TestForm_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*formModel)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(f *formModel) { f.inputs[fieldIssuer].SetValue("Acme") },
			wantErr: "bond name is required",
		},
		{
			name: "missing issuer",
			mutate: func(f *formModel) {
				f.inputs[fieldName].SetValue("x")
			},
			wantErr: "bond issuer is required",
		},
		{
			name: "bad decimal",
			mutate: func(f *formModel) {
				f.inputs[fieldName].SetValue("x")
				f.inputs[fieldIssuer].SetValue("y")
				f.inputs[fieldCouponRate].SetValue("five")
			},
			wantErr: "invalid coupon rate",
		},
		{
			name: "bad date",
			mutate: func(f *formModel) {
				f.inputs[fieldName].SetValue("x")
				f.inputs[fieldIssuer].SetValue("y")
				f.inputs[fieldMaturityDate].SetValue("30/06/2032")
			},
			wantErr: "invalid maturity date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForm(nil, catalog.Facets{})
			tt.mutate(&f)
			_, err := f.Bond()
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestForm_FacetPlaceholders(t *testing.T) {
	f := newForm(nil, catalog.Facets{
		Ratings:    []string{"AA", "BB"},
		Statuses:   []string{"Active"},
		Currencies: []string{"USD", "EUR"},
	})
	assert.Equal(t, "AA / BB", f.inputs[fieldRating].Placeholder)
	assert.Equal(t, "Active", f.inputs[fieldStatus].Placeholder)
	assert.Equal(t, "USD / EUR", f.inputs[fieldCurrency].Placeholder)
}
