package parser

import (
	"regexp"
	"strings"
)

var (
	vehicleKeywordRe = regexp.MustCompile(spacedPattern("차량번호") + `.*?(\d{4})`)
	// Korean plate: 2-3 digits, one Hangul syllable, 4 digits ("12가 3456").
	plateRe = regexp.MustCompile(`\d{2,3}\s*[가-힣]\s*\d{4}`)
)

// keywordVehicleNumber returns the four digits after the 차량번호 label. The
// 4-digit tail is what operators key tickets by, so it wins over a full plate.
func keywordVehicleNumber(text string) (string, bool) {
	m := vehicleKeywordRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// plateVehicleNumber returns the first full plate with inner spaces removed.
func plateVehicleNumber(text string) (string, bool) {
	m := plateRe.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.Join(strings.Fields(m), ""), true
}

var vehicleStrategies = []Strategy[string]{
	keywordVehicleNumber,
	plateVehicleNumber,
}

// ExtractVehicleNumber returns the vehicle identifier printed on the ticket.
func ExtractVehicleNumber(text string) (string, bool) {
	return firstMatch(text, vehicleStrategies...)
}
