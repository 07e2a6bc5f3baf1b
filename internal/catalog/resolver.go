// Package catalog holds the decision logic of the browser: resolving a set of
// filter criteria to the single server query the narrow catalog API can
// answer, and deriving the displayed view (search, currency filter, sorting,
// facets) from the fetched record set.
package catalog

import (
	"net/url"

	"github.com/folaolaitan/bondctl/internal/model"
)

// Request describes one resolved server query: a path relative to the API
// base plus optional query parameters. Kind names the filter dimension that
// won resolution, for logging and tests.
type Request struct {
	Kind  string
	Path  string
	Query url.Values
}

// Resolution kinds, one per rule.
const (
	KindIssuer          = "issuer"
	KindRating          = "rating"
	KindStatus          = "status"
	KindCouponBetween   = "coupon-between"
	KindCouponMin       = "coupon-min"
	KindFaceBetween     = "face-between"
	KindFaceMin         = "face-min"
	KindMaturityBetween = "maturity-between"
	KindMaturityAfter   = "maturity-after"
	KindIssuedBetween   = "issued-between"
	KindIssuedAfter     = "issued-after"
	KindAll             = "all"
)

// rule pairs a predicate over the criteria with a request builder. Rules are
// evaluated in order; the first match wins and every later filter field is
// ignored for that fetch.
type rule struct {
	kind  string
	match func(model.Criteria) bool
	build func(model.Criteria) Request
}

// rules is the fixed priority order of the server-side filter dimensions.
// The backend exposes one endpoint per dimension, so only one can ever be
// applied per request; this table decides which one wins. Note the two-tier
// date rules: a start/end pair outranks the single "after" bound even when
// both are populated, and a coupon/face max without its min never fires (the
// API has no max-only endpoint, so the field falls through silently).
var rules = []rule{
	{
		kind:  KindIssuer,
		match: func(c model.Criteria) bool { return c.Issuer != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindIssuer, Path: "/api/bonds/issuer/" + url.PathEscape(c.Issuer)}
		},
	},
	{
		kind:  KindRating,
		match: func(c model.Criteria) bool { return c.Rating != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindRating, Path: "/api/bonds/rating/" + url.PathEscape(c.Rating)}
		},
	},
	{
		kind:  KindStatus,
		match: func(c model.Criteria) bool { return c.Status != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindStatus, Path: "/api/bonds/status", Query: url.Values{"status": {c.Status}}}
		},
	},
	{
		kind:  KindCouponBetween,
		match: func(c model.Criteria) bool { return c.CouponMin != "" && c.CouponMax != "" },
		build: func(c model.Criteria) Request {
			return Request{
				Kind: KindCouponBetween,
				Path: "/api/bonds/coupon-rate/" + url.PathEscape(c.CouponMin) + "/" + url.PathEscape(c.CouponMax),
			}
		},
	},
	{
		kind:  KindCouponMin,
		match: func(c model.Criteria) bool { return c.CouponMin != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindCouponMin, Path: "/api/bonds/coupon-rate/" + url.PathEscape(c.CouponMin)}
		},
	},
	{
		kind:  KindFaceBetween,
		match: func(c model.Criteria) bool { return c.FaceMin != "" && c.FaceMax != "" },
		build: func(c model.Criteria) Request {
			return Request{
				Kind:  KindFaceBetween,
				Path:  "/api/bonds/face-value-between",
				Query: url.Values{"min-value": {c.FaceMin}, "max-value": {c.FaceMax}},
			}
		},
	},
	{
		kind:  KindFaceMin,
		match: func(c model.Criteria) bool { return c.FaceMin != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindFaceMin, Path: "/api/bonds/face-value/" + url.PathEscape(c.FaceMin)}
		},
	},
	{
		kind:  KindMaturityBetween,
		match: func(c model.Criteria) bool { return c.MaturityStart != "" && c.MaturityEnd != "" },
		build: func(c model.Criteria) Request {
			return Request{
				Kind: KindMaturityBetween,
				Path: "/api/bonds/maturing-between/" + url.PathEscape(c.MaturityStart) + "/" + url.PathEscape(c.MaturityEnd),
			}
		},
	},
	{
		kind:  KindMaturityAfter,
		match: func(c model.Criteria) bool { return c.MaturityAfter != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindMaturityAfter, Path: "/api/bonds/maturity-date/" + url.PathEscape(c.MaturityAfter)}
		},
	},
	{
		kind:  KindIssuedBetween,
		match: func(c model.Criteria) bool { return c.IssueStart != "" && c.IssueEnd != "" },
		build: func(c model.Criteria) Request {
			return Request{
				Kind:  KindIssuedBetween,
				Path:  "/api/bonds/issued-between",
				Query: url.Values{"start-date": {c.IssueStart}, "end-date": {c.IssueEnd}},
			}
		},
	},
	{
		kind:  KindIssuedAfter,
		match: func(c model.Criteria) bool { return c.IssueAfter != "" },
		build: func(c model.Criteria) Request {
			return Request{Kind: KindIssuedAfter, Path: "/api/bonds/issue-date/" + url.PathEscape(c.IssueAfter)}
		},
	},
	{
		kind:  KindAll,
		match: func(model.Criteria) bool { return true },
		build: func(model.Criteria) Request {
			return Request{Kind: KindAll, Path: "/api/bonds"}
		},
	},
}

// Resolve picks the single server query for the given criteria. With no
// server-side field set it returns the fetch-all request.
func Resolve(c model.Criteria) Request {
	for _, r := range rules {
		if r.match(c) {
			return r.build(c)
		}
	}
	// The final rule matches unconditionally.
	return Request{Kind: KindAll, Path: "/api/bonds"}
}

// FetchAll is the unfiltered list request, used after clearing criteria and
// after every successful mutation.
func FetchAll() Request {
	return Request{Kind: KindAll, Path: "/api/bonds"}
}

// URL renders the request against an API base URL.
func (r Request) URL(base string) string {
	u := base + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}
