package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/model"
)

func TestResolve_SingleField(t *testing.T) {
	tests := []struct {
		name      string
		criteria  model.Criteria
		wantKind  string
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:     "issuer path lookup",
			criteria: model.Criteria{Issuer: "Acme Corp"},
			wantKind: KindIssuer,
			wantPath: "/api/bonds/issuer/Acme%20Corp",
		},
		{
			name:     "rating path lookup",
			criteria: model.Criteria{Rating: "AA+"},
			wantKind: KindRating,
			wantPath: "/api/bonds/rating/AA+",
		},
		{
			name:      "status query param lookup",
			criteria:  model.Criteria{Status: "Active"},
			wantKind:  KindStatus,
			wantPath:  "/api/bonds/status",
			wantQuery: map[string]string{"status": "Active"},
		},
		{
			name:     "coupon min only",
			criteria: model.Criteria{CouponMin: "3"},
			wantKind: KindCouponMin,
			wantPath: "/api/bonds/coupon-rate/3",
		},
		{
			name:     "coupon min and max",
			criteria: model.Criteria{CouponMin: "3", CouponMax: "7.5"},
			wantKind: KindCouponBetween,
			wantPath: "/api/bonds/coupon-rate/3/7.5",
		},
		{
			name:     "face min only",
			criteria: model.Criteria{FaceMin: "1000"},
			wantKind: KindFaceMin,
			wantPath: "/api/bonds/face-value/1000",
		},
		{
			name:      "face min and max",
			criteria:  model.Criteria{FaceMin: "1000", FaceMax: "5000"},
			wantKind:  KindFaceBetween,
			wantPath:  "/api/bonds/face-value-between",
			wantQuery: map[string]string{"min-value": "1000", "max-value": "5000"},
		},
		{
			name:     "maturity after",
			criteria: model.Criteria{MaturityAfter: "2030-01-01"},
			wantKind: KindMaturityAfter,
			wantPath: "/api/bonds/maturity-date/2030-01-01",
		},
		{
			name:     "maturity start and end",
			criteria: model.Criteria{MaturityStart: "2030-01-01", MaturityEnd: "2035-12-31"},
			wantKind: KindMaturityBetween,
			wantPath: "/api/bonds/maturing-between/2030-01-01/2035-12-31",
		},
		{
			name:     "issue after",
			criteria: model.Criteria{IssueAfter: "2020-06-15"},
			wantKind: KindIssuedAfter,
			wantPath: "/api/bonds/issue-date/2020-06-15",
		},
		{
			name:      "issue start and end",
			criteria:  model.Criteria{IssueStart: "2020-01-01", IssueEnd: "2021-01-01"},
			wantKind:  KindIssuedBetween,
			wantPath:  "/api/bonds/issued-between",
			wantQuery: map[string]string{"start-date": "2020-01-01", "end-date": "2021-01-01"},
		},
		{
			name:     "no fields set fetches all",
			criteria: model.Criteria{},
			wantKind: KindAll,
			wantPath: "/api/bonds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Resolve(tt.criteria)
			assert.Equal(t, tt.wantKind, req.Kind)
			assert.Equal(t, tt.wantPath, req.Path)
			for k, v := range tt.wantQuery {
				assert.Equal(t, v, req.Query.Get(k))
			}
			if tt.wantQuery == nil {
				assert.Empty(t, req.Query)
			}
		})
	}
}

func TestResolve_Priority(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.Criteria
		wantKind string
	}{
		{
			name:     "issuer wins over everything",
			criteria: model.Criteria{Issuer: "Acme", Rating: "AA", Status: "Active", CouponMin: "3", FaceMin: "100", MaturityAfter: "2030-01-01"},
			wantKind: KindIssuer,
		},
		{
			name:     "rating wins over status",
			criteria: model.Criteria{Rating: "AA", Status: "Active"},
			wantKind: KindRating,
		},
		{
			name:     "status wins over coupon",
			criteria: model.Criteria{Status: "Matured", CouponMin: "2"},
			wantKind: KindStatus,
		},
		{
			name:     "coupon wins over face value",
			criteria: model.Criteria{CouponMin: "2", FaceMin: "100", FaceMax: "500"},
			wantKind: KindCouponMin,
		},
		{
			name:     "face value wins over maturity",
			criteria: model.Criteria{FaceMin: "100", MaturityAfter: "2030-01-01"},
			wantKind: KindFaceMin,
		},
		{
			name:     "maturity pair beats maturity after when both populated",
			criteria: model.Criteria{MaturityAfter: "2029-01-01", MaturityStart: "2030-01-01", MaturityEnd: "2031-01-01"},
			wantKind: KindMaturityBetween,
		},
		{
			name:     "issue pair beats issue after when both populated",
			criteria: model.Criteria{IssueAfter: "2019-01-01", IssueStart: "2020-01-01", IssueEnd: "2021-01-01"},
			wantKind: KindIssuedBetween,
		},
		{
			name:     "maturity wins over issue date",
			criteria: model.Criteria{MaturityAfter: "2030-01-01", IssueAfter: "2020-01-01"},
			wantKind: KindMaturityAfter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, Resolve(tt.criteria).Kind)
		})
	}
}

func TestResolve_MaxOnlyFallsThrough(t *testing.T) {
	// The API has no max-only coupon or face-value endpoint; a lone max is
	// silently ignored rather than reported.
	tests := []struct {
		name     string
		criteria model.Criteria
		wantKind string
	}{
		{
			name:     "coupon max alone falls through to fetch all",
			criteria: model.Criteria{CouponMax: "7"},
			wantKind: KindAll,
		},
		{
			name:     "face max alone falls through to fetch all",
			criteria: model.Criteria{FaceMax: "5000"},
			wantKind: KindAll,
		},
		{
			name:     "coupon max alone falls through to next populated field",
			criteria: model.Criteria{CouponMax: "7", FaceMin: "100"},
			wantKind: KindFaceMin,
		},
		{
			name:     "face max alone falls through to maturity",
			criteria: model.Criteria{FaceMax: "5000", MaturityAfter: "2030-01-01"},
			wantKind: KindMaturityAfter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, Resolve(tt.criteria).Kind)
		})
	}
}

func TestRules_PriorityOrderIsAuditable(t *testing.T) {
	// The rule table itself is the policy; assert its order so a reordering
	// shows up as a test failure and not as a silent behavior change.
	want := []string{
		KindIssuer, KindRating, KindStatus,
		KindCouponBetween, KindCouponMin,
		KindFaceBetween, KindFaceMin,
		KindMaturityBetween, KindMaturityAfter,
		KindIssuedBetween, KindIssuedAfter,
		KindAll,
	}
	require.Len(t, rules, len(want))
	for i, r := range rules {
		assert.Equal(t, want[i], r.kind, "rule %d", i)
	}
	// The terminal rule must match the empty criteria set.
	assert.True(t, rules[len(rules)-1].match(model.Criteria{}))
}

func TestRequest_URL(t *testing.T) {
	req := Resolve(model.Criteria{Status: "Active"})
	assert.Equal(t, "http://localhost:8080/api/bonds/status?status=Active", req.URL("http://localhost:8080"))

	req = FetchAll()
	assert.Equal(t, "http://localhost:8080/api/bonds", req.URL("http://localhost:8080"))
}
