package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	clockTimeRe  = regexp.MustCompile(`(\d{1,2})\s*:\s*(\d{2})(?:\s*:\s*(\d{2}))?`)
	koreanTimeRe = regexp.MustCompile(`(\d{1,2})시\s*(\d{1,2})분`)
)

// dateWithSeparator matches YYYY<sep>MM<sep>DD and rewrites it with dashes.
// Month and day ranges are not checked.
func dateWithSeparator(sep string) Strategy[string] {
	q := regexp.QuoteMeta(sep)
	re := regexp.MustCompile(`\d{4}` + q + `\d{2}` + q + `\d{2}`)
	return func(text string) (string, bool) {
		m := re.FindString(text)
		if m == "" {
			return "", false
		}
		return strings.ReplaceAll(m, sep, "-"), true
	}
}

var dateStrategies = []Strategy[string]{
	dateWithSeparator("-"),
	dateWithSeparator("/"),
	dateWithSeparator("."),
}

// ExtractDate returns the first date in text as YYYY-MM-DD.
func ExtractDate(text string) (string, bool) {
	return firstMatch(text, dateStrategies...)
}

// ExtractTimes returns every distinct time in text as HH:MM:SS, sorted ascending.
// Both "9:05:30" and "9시 5분" forms are recognized; missing seconds are 00.
func ExtractTimes(text string) []string {
	seen := make(map[string]bool)
	var times []string
	add := func(h, m, s string) {
		t := fmt.Sprintf("%s:%s:%s", pad2(h), pad2(m), pad2(s))
		if !seen[t] {
			seen[t] = true
			times = append(times, t)
		}
	}

	for _, m := range clockTimeRe.FindAllStringSubmatch(text, -1) {
		sec := m[3]
		if sec == "" {
			sec = "00"
		}
		add(m[1], m[2], sec)
	}
	for _, m := range koreanTimeRe.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2], "00")
	}

	sort.Strings(times)
	return times
}

// AssignInOut picks the earliest time as arrival and the latest as departure.
// This is an ordering heuristic: a stray timestamp printed between the two
// real ones is ignored, but one printed outside them wins.
func AssignInOut(times []string) (in, out *string) {
	if len(times) >= 1 {
		first := times[0]
		in = &first
	}
	if len(times) >= 2 {
		last := times[len(times)-1]
		out = &last
	}
	return in, out
}

func pad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
