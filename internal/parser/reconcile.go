package parser

import "fmt"

// NetWeightTolerance is how far, in kg, an extracted net reading may drift from
// total minus empty before it is replaced.
const NetWeightTolerance = 50

// Repair records one change Reconcile made to the extracted weights.
// From is nil when the field was derived rather than corrected.
type Repair struct {
	Rule  string
	Field string
	From  *int
	To    int
}

func (r Repair) String() string {
	if r.From == nil {
		return fmt.Sprintf("%s: %s derived as %d", r.Rule, r.Field, r.To)
	}
	return fmt.Sprintf("%s: %s corrected from %d to %d", r.Rule, r.Field, *r.From, r.To)
}

// weightRule repairs one arithmetic relationship between the three weights.
type weightRule struct {
	ruleKey string
	field   string
	apply   func(w *Weights) (from *int, to int, changed bool)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func weightRules() []weightRule {
	return []weightRule{
		{
			ruleKey: "weight.net_mismatch", field: "net_weight",
			apply: func(w *Weights) (*int, int, bool) {
				if !w.complete() {
					return nil, 0, false
				}
				expected := *w.Total - *w.Empty
				if abs(expected-*w.Net) <= NetWeightTolerance {
					return nil, 0, false
				}
				from := *w.Net
				w.Net = &expected
				return &from, expected, true
			},
		},
		{
			ruleKey: "weight.derive_net", field: "net_weight",
			apply: func(w *Weights) (*int, int, bool) {
				if w.Net != nil || w.Total == nil || w.Empty == nil {
					return nil, 0, false
				}
				v := *w.Total - *w.Empty
				w.Net = &v
				return nil, v, true
			},
		},
		{
			ruleKey: "weight.derive_empty", field: "empty_weight",
			apply: func(w *Weights) (*int, int, bool) {
				if w.Empty != nil || w.Total == nil || w.Net == nil {
					return nil, 0, false
				}
				v := *w.Total - *w.Net
				w.Empty = &v
				return nil, v, true
			},
		},
		{
			ruleKey: "weight.derive_total", field: "total_weight",
			apply: func(w *Weights) (*int, int, bool) {
				if w.Total != nil || w.Empty == nil || w.Net == nil {
					return nil, 0, false
				}
				v := *w.Empty + *w.Net
				w.Total = &v
				return nil, v, true
			},
		},
	}
}

// Reconcile enforces total - empty = net. With all three present, a net more
// than NetWeightTolerance off is replaced; with exactly one missing, it is
// derived from the other two. Fewer than two readings are returned unchanged.
func Reconcile(w Weights) (Weights, []Repair) {
	var repairs []Repair
	for _, rule := range weightRules() {
		if from, to, changed := rule.apply(&w); changed {
			repairs = append(repairs, Repair{Rule: rule.ruleKey, Field: rule.field, From: from, To: to})
		}
	}
	return w, repairs
}
