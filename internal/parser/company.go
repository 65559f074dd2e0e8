package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"weighbridge/internal/port"
)

const corporationMarker = "(주)"

var (
	companyLabelRe = regexp.MustCompile(`(?:상호|회사명|공급자|거래처).*?:\s*([^\n]+)`)
	productLabelRe = regexp.MustCompile(`(?:품명|제품명).*?:\s*([^\n]+)`)

	corpPrefixRe = regexp.MustCompile(`\(주\) *([가-힣a-zA-Z0-9]+)`)
	corpSuffixRe = regexp.MustCompile(`([가-힣a-zA-Z0-9]+) *\(주\)`)
)

// labeledCompany reads the rest of the line after a company label and colon.
func labeledCompany(text string) (string, bool) {
	m := companyLabelRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if utf8.RuneCountInString(v) <= 1 {
		return "", false
	}
	return v, true
}

// markedCompany finds a name next to the (주) corporation marker, on either
// side, and returns it as "(주) <name>".
func markedCompany(text string) (string, bool) {
	for _, re := range []*regexp.Regexp{corpPrefixRe, corpSuffixRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return corporationMarker + " " + m[1], true
		}
	}
	return "", false
}

// recognizedCompany returns a strategy backed by a named-entity recognizer.
// A nil recognizer yields nothing.
func recognizedCompany(recognizer port.EntityRecognizer) Strategy[string] {
	return func(text string) (string, bool) {
		if recognizer == nil {
			return "", false
		}
		for _, e := range recognizer.Recognize(text) {
			if e.Label != port.EntityLabelOrganization {
				continue
			}
			if utf8.RuneCountInString(e.Text) > 1 && !isDigits(e.Text) {
				return e.Text, true
			}
		}
		return "", false
	}
}

// ExtractProduct returns the value of the 품명/제품명 line.
func ExtractProduct(text string) (string, bool) {
	m := productLabelRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if v == "" || v == ":" {
		return "", false
	}
	return v, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
