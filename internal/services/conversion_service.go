package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/wareki-field/api/internal/domain"
)

// LangJa selects Japanese-style primary labels ("令和7年"); anything else
// yields the English form ("Reiwa 7"). Both era label sets are always present
// on the result regardless of this choice.
const LangJa = "ja"

var errConversionTableRequired = errors.New("conversion: era table is required")

// ConversionService converts between Western years/dates and Japanese era
// representations. Every operation is a pure function of its inputs plus the
// injected clock; no call mutates shared state.
type ConversionService interface {
	FromYear(ctx context.Context, year int, lang string) (domain.Conversion, error)
	FromDate(ctx context.Context, date time.Time, lang string) (domain.Conversion, error)
	Now(ctx context.Context, lang string) (domain.Conversion, error)
	ToWestern(ctx context.Context, era string, eraYear int, lang string) (domain.Conversion, error)
	FromText(ctx context.Context, combined string, lang string) (domain.Conversion, error)
}

// ConversionServiceDeps wires the era registry and clock into the service.
type ConversionServiceDeps struct {
	Table *EraTable
	Clock func() time.Time
}

type conversionService struct {
	table *EraTable
	now   func() time.Time
}

// NewConversionService constructs a ConversionService with the provided dependencies.
func NewConversionService(deps ConversionServiceDeps) (ConversionService, error) {
	if deps.Table == nil {
		return nil, errConversionTableRequired
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &conversionService{
		table: deps.Table,
		now:   func() time.Time { return clock().UTC() },
	}, nil
}

func (s *conversionService) FromYear(_ context.Context, year int, lang string) (domain.Conversion, error) {
	era, err := s.table.ByYear(year)
	if err != nil {
		return domain.Conversion{}, err
	}

	conv := buildConversion(era, year-era.StartYear()+1, year, domain.MethodYearOnly, lang)
	return conv, nil
}

func (s *conversionService) FromDate(_ context.Context, date time.Time, lang string) (domain.Conversion, error) {
	era, err := s.table.ByDate(date)
	if err != nil {
		return domain.Conversion{}, err
	}

	conv := buildConversion(era, date.Year()-era.StartYear()+1, date.Year(), domain.MethodDate, lang)
	conv.DateUsed = date.Format("2006-01-02")
	return conv, nil
}

func (s *conversionService) Now(ctx context.Context, lang string) (domain.Conversion, error) {
	return s.FromDate(ctx, s.now(), lang)
}

func (s *conversionService) ToWestern(_ context.Context, eraAlias string, eraYear int, lang string) (domain.Conversion, error) {
	if eraYear < 1 {
		return domain.Conversion{}, newConversionError(ErrMalformedInput, "Era year must be >= 1.")
	}

	era, err := s.table.ByAlias(eraAlias)
	if err != nil {
		return domain.Conversion{}, err
	}

	western := era.StartYear() + eraYear - 1
	if western < MinYear {
		return domain.Conversion{}, newConversionError(ErrDateOutOfRange, fmt.Sprintf("Resulting year is < %d.", MinYear))
	}

	conv := buildConversion(era, eraYear, western, domain.MethodInverse, lang)
	return conv, nil
}

func (s *conversionService) FromText(ctx context.Context, combined string, lang string) (domain.Conversion, error) {
	alias, eraYear, err := ParseEraYearText(combined)
	if err != nil {
		return domain.Conversion{}, err
	}
	return s.ToWestern(ctx, alias, eraYear, lang)
}

// buildConversion assembles the result record with both label sets populated.
func buildConversion(era domain.Era, eraYear, westernYear int, method domain.ConversionMethod, lang string) domain.Conversion {
	japaneseText := fmt.Sprintf("%s %d", era.NameEn, eraYear)
	if normalizeLang(lang) == LangJa {
		japaneseText = fmt.Sprintf("%s%d年", era.NameJa, eraYear)
	}

	return domain.Conversion{
		WesternText:  strconv.Itoa(westernYear),
		JapaneseText: japaneseText,
		EraEn:        era.NameEn,
		EraJa:        era.NameJa,
		EraYear:      eraYear,
		Year:         westernYear,
		EraStartDate: era.StartDateISO(),
		Method:       method,
	}
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
