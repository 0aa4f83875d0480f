package services

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/wareki-field/api/internal/domain"
)

func newTestConversionService(t *testing.T, clock func() time.Time) ConversionService {
	t.Helper()

	svc, err := NewConversionService(ConversionServiceDeps{Table: NewEraTable(), Clock: clock})
	if err != nil {
		t.Fatalf("new conversion service: %v", err)
	}
	return svc
}

func TestNewConversionServiceRequiresTable(t *testing.T) {
	if _, err := NewConversionService(ConversionServiceDeps{}); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestConversionServiceFromYear(t *testing.T) {
	svc := newTestConversionService(t, nil)
	ctx := context.Background()

	conv, err := svc.FromYear(ctx, 2025, "en")
	if err != nil {
		t.Fatalf("FromYear returned error: %v", err)
	}

	if conv.EraEn != "Reiwa" || conv.EraJa != "令和" {
		t.Fatalf("unexpected era labels %s/%s", conv.EraEn, conv.EraJa)
	}
	if conv.EraYear != 7 {
		t.Fatalf("expected era year 7, got %d", conv.EraYear)
	}
	if conv.Year != 2025 || conv.WesternText != "2025" {
		t.Fatalf("unexpected year %d/%s", conv.Year, conv.WesternText)
	}
	if conv.JapaneseText != "Reiwa 7" {
		t.Fatalf("unexpected english label %q", conv.JapaneseText)
	}
	if conv.Method != domain.MethodYearOnly {
		t.Fatalf("unexpected method %s", conv.Method)
	}
	if conv.EraStartDate != "2019-05-01" {
		t.Fatalf("unexpected era start %s", conv.EraStartDate)
	}
	if conv.DateUsed != "" {
		t.Fatalf("year-only conversion should not carry date_used, got %s", conv.DateUsed)
	}
}

func TestConversionServiceFromYearJapaneseLabel(t *testing.T) {
	svc := newTestConversionService(t, nil)

	conv, err := svc.FromYear(context.Background(), 2025, "ja")
	if err != nil {
		t.Fatalf("FromYear returned error: %v", err)
	}
	if conv.JapaneseText != "令和7年" {
		t.Fatalf("unexpected japanese label %q", conv.JapaneseText)
	}
	// Both label sets stay populated regardless of lang.
	if conv.EraEn != "Reiwa" || conv.EraJa != "令和" {
		t.Fatalf("expected both label sets, got %s/%s", conv.EraEn, conv.EraJa)
	}
}

func TestConversionServiceFromDate(t *testing.T) {
	svc := newTestConversionService(t, nil)

	conv, err := svc.FromDate(context.Background(), time.Date(2019, 4, 30, 0, 0, 0, 0, time.UTC), "en")
	if err != nil {
		t.Fatalf("FromDate returned error: %v", err)
	}

	if conv.EraEn != "Heisei" || conv.EraYear != 31 {
		t.Fatalf("expected Heisei 31, got %s %d", conv.EraEn, conv.EraYear)
	}
	if conv.Method != domain.MethodDate {
		t.Fatalf("expected method date, got %s", conv.Method)
	}
	if conv.DateUsed != "2019-04-30" {
		t.Fatalf("unexpected date_used %s", conv.DateUsed)
	}
	if conv.EraStartDate != "1989-01-08" {
		t.Fatalf("unexpected era_start_date %s", conv.EraStartDate)
	}
}

func TestConversionServiceFromDateShowaHeiseiBoundary(t *testing.T) {
	svc := newTestConversionService(t, nil)
	ctx := context.Background()

	for day := 1; day <= 7; day++ {
		conv, err := svc.FromDate(ctx, time.Date(1989, 1, day, 0, 0, 0, 0, time.UTC), "en")
		if err != nil {
			t.Fatalf("FromDate returned error: %v", err)
		}
		if conv.EraEn != "Showa" || conv.EraYear != 64 {
			t.Fatalf("1989-01-%02d: expected Showa 64, got %s %d", day, conv.EraEn, conv.EraYear)
		}
	}

	conv, err := svc.FromDate(ctx, time.Date(1989, 1, 8, 0, 0, 0, 0, time.UTC), "en")
	if err != nil {
		t.Fatalf("FromDate returned error: %v", err)
	}
	if conv.EraEn != "Heisei" || conv.EraYear != 1 {
		t.Fatalf("1989-01-08: expected Heisei 1, got %s %d", conv.EraEn, conv.EraYear)
	}
}

func TestConversionServiceNowUsesClock(t *testing.T) {
	svc := newTestConversionService(t, func() time.Time {
		return time.Date(2025, 8, 31, 15, 4, 5, 0, time.UTC)
	})

	conv, err := svc.Now(context.Background(), "ja")
	if err != nil {
		t.Fatalf("Now returned error: %v", err)
	}
	if conv.EraEn != "Reiwa" || conv.EraYear != 7 {
		t.Fatalf("expected Reiwa 7, got %s %d", conv.EraEn, conv.EraYear)
	}
	if conv.DateUsed != "2025-08-31" {
		t.Fatalf("unexpected date_used %s", conv.DateUsed)
	}
}

func TestConversionServiceToWestern(t *testing.T) {
	svc := newTestConversionService(t, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		era      string
		eraYear  int
		wantYear int
	}{
		{name: "showa 64", era: "昭和", eraYear: 64, wantYear: 1989},
		{name: "heisei 31", era: "Heisei", eraYear: 31, wantYear: 2019},
		{name: "reiwa 7", era: "reiwa", eraYear: 7, wantYear: 2025},
		{name: "meiji 1", era: "M", eraYear: 1, wantYear: 1868},
		{name: "future era year", era: "令和", eraYear: 40, wantYear: 2058},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv, err := svc.ToWestern(ctx, tc.era, tc.eraYear, "en")
			if err != nil {
				t.Fatalf("ToWestern returned error: %v", err)
			}
			if conv.Year != tc.wantYear {
				t.Fatalf("expected year %d, got %d", tc.wantYear, conv.Year)
			}
			if conv.Method != domain.MethodInverse {
				t.Fatalf("expected method inverse, got %s", conv.Method)
			}
		})
	}
}

func TestConversionServiceToWesternErrors(t *testing.T) {
	svc := newTestConversionService(t, nil)
	ctx := context.Background()

	t.Run("unknown era", func(t *testing.T) {
		_, err := svc.ToWestern(ctx, "unknownera", 3, "en")
		if !errors.Is(err, ErrUnknownEra) {
			t.Fatalf("expected ErrUnknownEra, got %v", err)
		}
	})

	t.Run("era year below one", func(t *testing.T) {
		_, err := svc.ToWestern(ctx, "令和", 0, "en")
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("expected ErrMalformedInput, got %v", err)
		}
		if err.Error() != "Era year must be >= 1." {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})
}

func TestConversionServiceFromText(t *testing.T) {
	svc := newTestConversionService(t, nil)
	ctx := context.Background()

	conv, err := svc.FromText(ctx, "令和7年", "ja")
	if err != nil {
		t.Fatalf("FromText returned error: %v", err)
	}
	if conv.Year != 2025 || conv.EraJa != "令和" || conv.EraYear != 7 {
		t.Fatalf("unexpected conversion %+v", conv)
	}
	if conv.JapaneseText != "令和7年" {
		t.Fatalf("unexpected label %q", conv.JapaneseText)
	}

	t.Run("gannen equals one", func(t *testing.T) {
		gannen, err := svc.FromText(ctx, "平成元年", "en")
		if err != nil {
			t.Fatalf("FromText returned error: %v", err)
		}
		explicit, err := svc.FromText(ctx, "平成1年", "en")
		if err != nil {
			t.Fatalf("FromText returned error: %v", err)
		}
		if gannen != explicit {
			t.Fatalf("gannen and explicit year diverge: %+v vs %+v", gannen, explicit)
		}
		if gannen.EraYear != 1 || gannen.Year != 1989 {
			t.Fatalf("expected Heisei 1 / 1989, got %+v", gannen)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.FromText(ctx, "ことし", "en")
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("expected ErrMalformedInput, got %v", err)
		}
	})

	t.Run("unknown era in well-formed text", func(t *testing.T) {
		_, err := svc.FromText(ctx, "unknownera5", "en")
		if !errors.Is(err, ErrUnknownEra) {
			t.Fatalf("expected ErrUnknownEra, got %v", err)
		}
	})
}

func TestConversionRoundTrip(t *testing.T) {
	svc := newTestConversionService(t, nil)
	ctx := context.Background()

	for year := MinYear; year <= 2030; year++ {
		conv, err := svc.FromDate(ctx, time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC), "en")
		if errors.Is(err, ErrDateOutOfRange) {
			// 1868-01-01 precedes the Meiji start.
			continue
		}
		if err != nil {
			t.Fatalf("FromDate(%d-01-01) returned error: %v", year, err)
		}

		back, err := svc.ToWestern(ctx, conv.EraJa, conv.EraYear, "en")
		if err != nil {
			t.Fatalf("ToWestern(%s, %d) returned error: %v", conv.EraJa, conv.EraYear, err)
		}
		if back.Year != year {
			t.Fatalf("round trip for %d produced %d via %s %d", year, back.Year, conv.EraEn, conv.EraYear)
		}
	}
}
