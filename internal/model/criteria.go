package model

// Criteria is the full set of user-entered filter fields. Every field is
// independently optional; the empty string means unset. The server-side
// fields feed the query resolver, while Query, Currency and Sort are applied
// client-side to the fetched record set.
type Criteria struct {
	Issuer   string `json:"issuer,omitempty"`
	Rating   string `json:"rating,omitempty"`
	Status   string `json:"status,omitempty"`
	Currency string `json:"currency,omitempty"`

	CouponMin string `json:"couponMin,omitempty"`
	CouponMax string `json:"couponMax,omitempty"`

	FaceMin string `json:"faceMin,omitempty"`
	FaceMax string `json:"faceMax,omitempty"`

	MaturityAfter string `json:"maturityAfter,omitempty"`
	MaturityStart string `json:"maturityStart,omitempty"`
	MaturityEnd   string `json:"maturityEnd,omitempty"`

	IssueAfter string `json:"issueAfter,omitempty"`
	IssueStart string `json:"issueStart,omitempty"`
	IssueEnd   string `json:"issueEnd,omitempty"`

	Query string  `json:"query,omitempty"`
	Sort  SortKey `json:"sort,omitempty"`
}

// Clear resets every field to unset. Callers follow up with a fetch-all.
func (c *Criteria) Clear() {
	*c = Criteria{}
}

// HasServerFields reports whether any server-resolvable filter field is set.
// A populated coupon/face max without its min does not count: the API has no
// max-only endpoint, so that field alone cannot resolve to a query.
func (c *Criteria) HasServerFields() bool {
	return c.Issuer != "" || c.Rating != "" || c.Status != "" ||
		c.CouponMin != "" || c.FaceMin != "" ||
		c.MaturityAfter != "" || (c.MaturityStart != "" && c.MaturityEnd != "") ||
		c.IssueAfter != "" || (c.IssueStart != "" && c.IssueEnd != "")
}
