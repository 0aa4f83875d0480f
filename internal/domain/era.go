package domain

import "time"

// Era describes a single Japanese calendar era with its inclusive start date.
type Era struct {
	Code   string
	NameEn string
	NameJa string
	Start  time.Time
}

// StartYear returns the Western year in which the era begins.
func (e Era) StartYear() int {
	return e.Start.Year()
}

// StartDateISO renders the era start date as YYYY-MM-DD.
func (e Era) StartDateISO() string {
	return e.Start.Format("2006-01-02")
}

// ConversionMethod identifies how a conversion result was derived.
type ConversionMethod string

const (
	// MethodYearOnly marks conversions from a bare Western year, where the
	// boundary year counts as the newer era.
	MethodYearOnly ConversionMethod = "year-only"
	// MethodDate marks date-accurate conversions that respect exact boundary days.
	MethodDate ConversionMethod = "date"
	// MethodInverse marks era-to-Western conversions.
	MethodInverse ConversionMethod = "inverse"
)

// Conversion is the result of a single wareki conversion. It is built fresh
// per request and carries both label sets regardless of display language.
// JSON field order matches the public response contract.
type Conversion struct {
	WesternText  string           `json:"western_text"`
	JapaneseText string           `json:"japanese_text"`
	EraEn        string           `json:"era_en"`
	EraJa        string           `json:"era_ja"`
	EraYear      int              `json:"era_year"`
	Year         int              `json:"year"`
	DateUsed     string           `json:"date_used,omitempty"`
	EraStartDate string           `json:"era_start_date,omitempty"`
	Method       ConversionMethod `json:"method,omitempty"`
}
