package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/folaolaitan/bondctl/internal/model"
)

// Facets holds the distinct non-empty values observed for each
// classification field, in first-seen order. They back the suggestion lists
// for the issuer/rating/status/currency inputs and are recomputed whenever
// the record set changes.
type Facets struct {
	Issuers    []string
	Ratings    []string
	Statuses   []string
	Currencies []string
}

// DeriveFacets scans the loaded record set for distinct facet values.
func DeriveFacets(records []model.Bond) Facets {
	var f Facets
	seen := map[string]map[string]bool{
		"issuer":   {},
		"rating":   {},
		"status":   {},
		"currency": {},
	}
	add := func(field string, dst *[]string, v string) {
		if v == "" || seen[field][v] {
			return
		}
		seen[field][v] = true
		*dst = append(*dst, v)
	}
	for _, b := range records {
		add("issuer", &f.Issuers, b.Issuer)
		add("rating", &f.Ratings, b.Rating)
		add("status", &f.Statuses, b.Status)
		add("currency", &f.Currencies, b.Currency)
	}
	return f
}

// Derive produces the ordered list to display: free-text search, then the
// currency equality filter, then a stable sort by the active key. The input
// slice is never mutated; ties keep their original fetch order.
func Derive(records []model.Bond, query, currency string, key model.SortKey) []model.Bond {
	list := make([]model.Bond, len(records))
	copy(list, records)

	if strings.TrimSpace(query) != "" {
		s := strings.ToLower(query)
		kept := list[:0]
		for _, b := range list {
			if matchesSearch(&b, s) {
				kept = append(kept, b)
			}
		}
		list = kept
	}

	if currency != "" {
		kept := list[:0]
		for _, b := range list {
			if b.Currency == currency {
				kept = append(kept, b)
			}
		}
		list = kept
	}

	sort.SliceStable(list, lessFunc(list, key))
	return list
}

// matchesSearch reports whether the lowercased term is a substring of any of
// the five searchable fields. Missing fields are empty strings and never
// match a non-empty term.
func matchesSearch(b *model.Bond, term string) bool {
	for _, field := range []string{b.Name, b.Issuer, b.Rating, b.Status, b.Currency} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// lessFunc builds the comparator for the active sort key. Missing numeric
// values compare below every present value; missing or unparseable dates
// compare as the zero time. The default (empty) key is ascending maturity.
func lessFunc(list []model.Bond, key model.SortKey) func(i, j int) bool {
	switch key {
	case model.SortFaceAsc:
		return func(i, j int) bool { return cmpDecimal(list[i].FaceValue, list[j].FaceValue) < 0 }
	case model.SortFaceDesc:
		return func(i, j int) bool { return cmpDecimal(list[j].FaceValue, list[i].FaceValue) < 0 }
	case model.SortCouponAsc:
		return func(i, j int) bool { return cmpDecimal(list[i].CouponRate, list[j].CouponRate) < 0 }
	case model.SortCouponDesc:
		return func(i, j int) bool { return cmpDecimal(list[j].CouponRate, list[i].CouponRate) < 0 }
	case model.SortMaturityDesc:
		return func(i, j int) bool { return list[j].MaturityTime().Before(list[i].MaturityTime()) }
	case model.SortIssueAsc:
		return func(i, j int) bool { return list[i].IssueTime().Before(list[j].IssueTime()) }
	case model.SortIssueDesc:
		return func(i, j int) bool { return list[j].IssueTime().Before(list[i].IssueTime()) }
	default: // model.SortMaturityAsc and the unset key
		return func(i, j int) bool { return list[i].MaturityTime().Before(list[j].MaturityTime()) }
	}
}

// cmpDecimal orders optional decimals with absent values below all present
// ones (negative infinity semantics).
func cmpDecimal(a, b decimal.NullDecimal) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	default:
		return a.Decimal.Cmp(b.Decimal)
	}
}
