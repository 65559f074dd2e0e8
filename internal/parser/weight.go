package parser

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// weightDigits is a run of digits plus the separators and letters OCR
	// confuses with digits. Spaces are allowed so "13 460" stays one reading.
	weightDigits = `([\d,OISBl. ]+)`
	// weightUnit anchors a reading on kg, tolerating "k g" and a misread "ko".
	weightUnit = `\s*(?:k\s*g|ko)`
)

var (
	totalWeightLabels = []string{"총중량", "총량", "총"}
	emptyWeightLabels = []string{"공차중량", "공차", "차중량", "차량중량"}
	netWeightLabels   = []string{"실중량", "순중량", "실량"}
)

var unitWeightRe = regexp.MustCompile(`(?is)` + weightDigits + weightUnit)

// Weights holds the three weighbridge readings in kg. Nil means not found.
type Weights struct {
	Total *int
	Empty *int
	Net   *int
}

func (w *Weights) complete() bool {
	return w.Total != nil && w.Empty != nil && w.Net != nil
}

// spacedPattern matches keyword even when OCR puts whitespace between glyphs.
func spacedPattern(keyword string) string {
	runes := []rune(keyword)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = regexp.QuoteMeta(string(r))
	}
	return strings.Join(parts, `\s*`)
}

// labeledWeight builds a strategy that reads the first kg value following any
// of the labels, trying labels in order.
func labeledWeight(labels ...string) Strategy[int] {
	patterns := make([]*regexp.Regexp, len(labels))
	for i, label := range labels {
		patterns[i] = regexp.MustCompile(`(?is)` + spacedPattern(label) + `.*?` + weightDigits + weightUnit)
	}
	return func(text string) (int, bool) {
		for _, re := range patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			// A zero reading is treated as no reading.
			if v, ok := NormalizeNumber(m[1]); ok && v != 0 {
				return v, true
			}
		}
		return 0, false
	}
}

var (
	totalWeightStrategy = labeledWeight(totalWeightLabels...)
	emptyWeightStrategy = labeledWeight(emptyWeightLabels...)
	netWeightStrategy   = labeledWeight(netWeightLabels...)
)

// ExtractLabeledWeights reads each weight from its Korean label.
func ExtractLabeledWeights(text string) Weights {
	return Weights{
		Total: optional[int](totalWeightStrategy(text)),
		Empty: optional[int](emptyWeightStrategy(text)),
		Net:   optional[int](netWeightStrategy(text)),
	}
}

// WeightCandidates returns every distinct non-zero kg reading in text, largest first.
func WeightCandidates(text string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, m := range unitWeightRe.FindAllStringSubmatch(text, -1) {
		v, ok := NormalizeNumber(m[1])
		if !ok || v == 0 || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// FillByRank assigns unlabelled readings to the empty slots by magnitude:
// the largest remaining reading goes to the first empty slot in
// total, empty, net order. Labelled slots are never overwritten and their
// values are not reused. Fewer than two candidates are too ambiguous to rank.
func FillByRank(w Weights, candidates []int) Weights {
	if len(candidates) < 2 {
		return w
	}

	claimed := make(map[int]bool)
	slots := []**int{&w.Total, &w.Empty, &w.Net}
	var open []**int
	for _, slot := range slots {
		if *slot != nil {
			claimed[**slot] = true
		} else {
			open = append(open, slot)
		}
	}

	next := 0
	for _, v := range candidates {
		if next >= len(open) {
			break
		}
		if claimed[v] {
			continue
		}
		val := v
		*open[next] = &val
		next++
	}
	return w
}
