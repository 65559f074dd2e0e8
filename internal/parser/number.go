package parser

import (
	"math"
	"strconv"
	"strings"
)

// ocrDigits maps letters OCR engines commonly confuse with digits.
var ocrDigits = strings.NewReplacer(
	"O", "0", "o", "0",
	"I", "1", "i", "1", "l", "1", "L", "1",
	"S", "5", "s", "5",
	"B", "8", "b", "8",
)

// NormalizeNumber converts a noisy numeric OCR fragment such as "I4,O8O" or
// "13 460" into an integer. A trailing dot group of exactly three digits is
// read as a thousands separator ("13.460" -> 13460); any other dotted value is
// parsed as a float and truncated.
func NormalizeNumber(raw string) (int, bool) {
	s := ocrDigits.Replace(raw)
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ".") {
		groups := strings.Split(s, ".")
		if len(groups[len(groups)-1]) == 3 {
			s = strings.ReplaceAll(s, ".", "")
		} else if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
