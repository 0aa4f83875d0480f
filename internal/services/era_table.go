package services

import (
	"fmt"
	"time"

	domain "github.com/wareki-field/api/internal/domain"
	"github.com/wareki-field/api/internal/platform/textutil"
)

// MinYear is the earliest Western year with a known era.
const MinYear = 1868

type eraSeed struct {
	code    string
	nameEn  string
	nameJa  string
	start   time.Time
	aliases []string
}

// Era start dates are inclusive; the registry is ordered newest first so the
// first entry whose start is not after the probe date wins.
var eraSeeds = []eraSeed{
	{
		code:    "R",
		nameEn:  "Reiwa",
		nameJa:  "令和",
		start:   time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC),
		aliases: []string{"r", "reiwa", "れいわ", "令和"},
	},
	{
		code:    "H",
		nameEn:  "Heisei",
		nameJa:  "平成",
		start:   time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC),
		aliases: []string{"h", "heisei", "へいせい", "平成"},
	},
	{
		code:    "S",
		nameEn:  "Showa",
		nameJa:  "昭和",
		start:   time.Date(1926, time.December, 25, 0, 0, 0, 0, time.UTC),
		aliases: []string{"s", "showa", "shouwa", "shōwa", "しょうわ", "昭和"},
	},
	{
		code:    "T",
		nameEn:  "Taisho",
		nameJa:  "大正",
		start:   time.Date(1912, time.July, 30, 0, 0, 0, 0, time.UTC),
		aliases: []string{"t", "taisho", "taishou", "taishō", "たいしょう", "大正"},
	},
	{
		code:    "M",
		nameEn:  "Meiji",
		nameJa:  "明治",
		start:   time.Date(1868, time.January, 25, 0, 0, 0, 0, time.UTC),
		aliases: []string{"m", "meiji", "めいじ", "明治"},
	},
}

// EraTable is the static registry of Japanese eras. It is built once at
// startup and is safe for unsynchronized concurrent reads.
type EraTable struct {
	eras    []domain.Era
	aliases map[string]int
}

// NewEraTable constructs the era registry with its alias index.
func NewEraTable() *EraTable {
	table := &EraTable{
		eras:    make([]domain.Era, 0, len(eraSeeds)),
		aliases: make(map[string]int),
	}
	for i, seed := range eraSeeds {
		table.eras = append(table.eras, domain.Era{
			Code:   seed.code,
			NameEn: seed.nameEn,
			NameJa: seed.nameJa,
			Start:  seed.start,
		})
		for _, alias := range seed.aliases {
			table.aliases[textutil.NormalizeKey(alias)] = i
		}
		table.aliases[textutil.NormalizeKey(seed.nameEn)] = i
		table.aliases[textutil.NormalizeKey(seed.nameJa)] = i
	}
	return table
}

// Eras returns the registry ordered newest first.
func (t *EraTable) Eras() []domain.Era {
	out := make([]domain.Era, len(t.eras))
	copy(out, t.eras)
	return out
}

// ByDate finds the era active on the given calendar date. The probe is
// truncated to a date before comparison so time-of-day never matters.
func (t *EraTable) ByDate(d time.Time) (domain.Era, error) {
	if d.Year() < MinYear {
		return domain.Era{}, newConversionError(ErrDateOutOfRange, fmt.Sprintf("Year must be >= %d.", MinYear))
	}
	probe := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	for _, era := range t.eras {
		if !probe.Before(era.Start) {
			return era, nil
		}
	}
	return domain.Era{}, newConversionError(ErrDateOutOfRange, "No matching era found.")
}

// ByYear finds the era for a bare Western year. The boundary year counts as
// the newer era, matching year-granular conversion semantics.
func (t *EraTable) ByYear(year int) (domain.Era, error) {
	if year < MinYear {
		return domain.Era{}, newConversionError(ErrDateOutOfRange, fmt.Sprintf("Year must be >= %d.", MinYear))
	}
	for _, era := range t.eras {
		if year >= era.StartYear() {
			return era, nil
		}
	}
	return domain.Era{}, newConversionError(ErrDateOutOfRange, "No matching era found.")
}

// ByAlias resolves an era identifier in any supported script (code, romaji,
// kana, kanji). Matching is exact on the normalized form.
func (t *EraTable) ByAlias(alias string) (domain.Era, error) {
	key := textutil.NormalizeKey(alias)
	if key != "" {
		if idx, ok := t.aliases[key]; ok {
			return t.eras[idx], nil
		}
	}
	return domain.Era{}, newConversionError(ErrUnknownEra, fmt.Sprintf("Unknown era '%s'.", alias))
}
