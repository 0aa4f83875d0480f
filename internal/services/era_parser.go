package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/wareki-field/api/internal/platform/textutil"
)

// Combined era+year shapes accepted by ParseEraYearText. Normalization folds
// full-width digits before matching, so plain \d covers both widths.
var (
	// "<era>元年", "令和7年", "Reiwa7", "Heisei 31" — optional 年 suffix.
	eraYearPattern = regexp.MustCompile(`^([^\d]+?)\s*(元|\d+)\s*年?\s*$`)
	// "Heisei gannen", "heiseigannen" — romaji first-year marker.
	gannenPattern = regexp.MustCompile(`(?i)^([^\d]+?)\s*gannen\s*$`)
)

// ParseEraYearText splits a combined era+year string such as "令和7年",
// "平成元年", or "Reiwa7" into an era alias candidate and an era year.
// 元年 (gannen) parses as year 1. The alias is not resolved here; unknown
// aliases surface later so malformed shape and unknown era stay distinct
// failure classes.
func ParseEraYearText(text string) (string, int, error) {
	if text == "" {
		return "", 0, newConversionError(ErrMalformedInput, "Empty input for era_year_text.")
	}

	t := textutil.NormalizeText(text)

	if m := gannenPattern.FindStringSubmatch(t); m != nil {
		return m[1], 1, nil
	}

	m := eraYearPattern.FindStringSubmatch(t)
	if m == nil {
		return "", 0, newConversionError(ErrMalformedInput, fmt.Sprintf("Cannot parse era_year_text: '%s'.", text))
	}

	if m[2] == "元" {
		return m[1], 1, nil
	}

	year, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, newConversionError(ErrMalformedInput, fmt.Sprintf("Cannot parse era_year_text: '%s'.", text))
	}
	return m[1], year, nil
}
