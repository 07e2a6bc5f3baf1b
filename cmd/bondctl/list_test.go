package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/model"
)

func TestOverlayCriteria(t *testing.T) {
	tests := []struct {
		name string
		base model.Criteria
		over model.Criteria
		want model.Criteria
	}{
		{
			name: "flag overrides preset field",
			base: model.Criteria{Issuer: "Acme", Rating: "AA"},
			over: model.Criteria{Issuer: "Globex"},
			want: model.Criteria{Issuer: "Globex", Rating: "AA"},
		},
		{
			name: "empty overlay keeps preset",
			base: model.Criteria{Status: "Active", Query: "note"},
			over: model.Criteria{},
			want: model.Criteria{Status: "Active", Query: "note"},
		},
		{
			name: "overlay fills empty preset",
			base: model.Criteria{},
			over: model.Criteria{CouponMin: "3", CouponMax: "6"},
			want: model.Criteria{CouponMin: "3", CouponMax: "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base
			overlayCriteria(&got, &tt.over)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBondID(t *testing.T) {
	id, err := parseBondID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := parseBondID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseDecimalFlag(t *testing.T) {
	d, err := parseDecimalFlag("face-value", " 1000.25 ")
	require.NoError(t, err)
	require.True(t, d.Valid)
	assert.Equal(t, "1000.25", d.Decimal.String())

	d, err = parseDecimalFlag("face-value", "")
	require.NoError(t, err)
	assert.False(t, d.Valid)

	_, err = parseDecimalFlag("coupon-rate", "five")
	require.ErrorContains(t, err, "coupon-rate")
}

func TestSummarizeCriteria(t *testing.T) {
	assert.Equal(t, "(none)", summarizeCriteria(model.Criteria{}))
	assert.Equal(t, "issuer=Acme sort=couponDesc",
		summarizeCriteria(model.Criteria{Issuer: "Acme", Sort: model.SortCouponDesc}))
}

func TestBondFlagsApply_PartialUpdate(t *testing.T) {
	var flags bondFlags
	cmd := &cobra.Command{}
	flags.register(cmd)
	require.NoError(t, cmd.Flags().Set("name", "Renamed"))
	require.NoError(t, cmd.Flags().Set("coupon-rate", "4.5"))

	bond := model.Bond{
		Name:     "Original",
		Issuer:   "Acme",
		Status:   "Active",
		Currency: "USD",
	}
	require.NoError(t, flags.apply(cmd, &bond))

	assert.Equal(t, "Renamed", bond.Name)
	assert.True(t, bond.CouponRate.Valid)
	assert.Equal(t, "4.5", bond.CouponRate.Decimal.String())
	assert.Equal(t, "Acme", bond.Issuer, "unset flags leave fields alone")
	assert.Equal(t, "Active", bond.Status)
}
