package model

import "fmt"

// SortKey selects one of the eight orderings over the fetched record set.
type SortKey string

// Sort keys. The zero value means "no explicit key"; the deriver falls back
// to SortMaturityAsc.
const (
	SortFaceAsc      SortKey = "faceAsc"
	SortFaceDesc     SortKey = "faceDesc"
	SortCouponAsc    SortKey = "couponAsc"
	SortCouponDesc   SortKey = "couponDesc"
	SortMaturityAsc  SortKey = "maturityAsc"
	SortMaturityDesc SortKey = "maturityDesc"
	SortIssueAsc     SortKey = "issueAsc"
	SortIssueDesc    SortKey = "issueDesc"
)

// SortKeys lists every valid key in display order.
var SortKeys = []SortKey{
	SortMaturityAsc, SortMaturityDesc,
	SortIssueAsc, SortIssueDesc,
	SortCouponDesc, SortCouponAsc,
	SortFaceDesc, SortFaceAsc,
}

// ParseSortKey validates a user-supplied sort key. The empty string is valid
// and selects the default ordering.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return "", nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (valid: %v)", s, SortKeys)
}

// Description returns a human-readable label for the key.
func (k SortKey) Description() string {
	switch k {
	case SortFaceAsc:
		return "Face Value: Low → High"
	case SortFaceDesc:
		return "Face Value: High → Low"
	case SortCouponAsc:
		return "Coupon: Low → High"
	case SortCouponDesc:
		return "Coupon: High → Low"
	case SortMaturityAsc, "":
		return "Maturity: Soonest"
	case SortMaturityDesc:
		return "Maturity: Farthest"
	case SortIssueAsc:
		return "Issue: Oldest"
	case SortIssueDesc:
		return "Issue: Newest"
	}
	return string(k)
}
