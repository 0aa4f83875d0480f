package services

import (
	"errors"
	"testing"
)

func TestParseEraYearText(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantAlias string
		wantYear  int
	}{
		{name: "kanji with year marker", input: "令和7年", wantAlias: "令和", wantYear: 7},
		{name: "kanji without marker", input: "令和7", wantAlias: "令和", wantYear: 7},
		{name: "gannen kanji", input: "平成元年", wantAlias: "平成", wantYear: 1},
		{name: "gannen romaji", input: "Heisei gannen", wantAlias: "Heisei", wantYear: 1},
		{name: "gannen romaji concatenated", input: "heiseigannen", wantAlias: "heisei", wantYear: 1},
		{name: "romaji concatenated", input: "Reiwa7", wantAlias: "Reiwa", wantYear: 7},
		{name: "romaji with space", input: "Heisei 31", wantAlias: "Heisei", wantYear: 31},
		{name: "hiragana", input: "れいわ3年", wantAlias: "れいわ", wantYear: 3},
		{name: "full-width digits", input: "令和７年", wantAlias: "令和", wantYear: 7},
		{name: "multi-digit", input: "昭和64年", wantAlias: "昭和", wantYear: 64},
		{name: "surrounding whitespace", input: "  大正1年  ", wantAlias: "大正", wantYear: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alias, year, err := ParseEraYearText(tc.input)
			if err != nil {
				t.Fatalf("ParseEraYearText(%q) returned error: %v", tc.input, err)
			}
			if alias != tc.wantAlias {
				t.Fatalf("ParseEraYearText(%q) alias = %q, want %q", tc.input, alias, tc.wantAlias)
			}
			if year != tc.wantYear {
				t.Fatalf("ParseEraYearText(%q) year = %d, want %d", tc.input, year, tc.wantYear)
			}
		})
	}
}

func TestParseEraYearTextGannenEqualsYearOne(t *testing.T) {
	_, gannen, err := ParseEraYearText("平成元年")
	if err != nil {
		t.Fatalf("gannen parse failed: %v", err)
	}
	_, explicit, err := ParseEraYearText("平成1年")
	if err != nil {
		t.Fatalf("explicit parse failed: %v", err)
	}
	if gannen != explicit || gannen != 1 {
		t.Fatalf("expected gannen == explicit == 1, got %d and %d", gannen, explicit)
	}
}

func TestParseEraYearTextMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no digits", input: "令和"},
		{name: "digits only", input: "2025"},
		{name: "year marker only", input: "元年"},
		{name: "trailing garbage", input: "令和7年です"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseEraYearText(tc.input)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("ParseEraYearText(%q): expected ErrMalformedInput, got %v", tc.input, err)
			}
		})
	}
}

func TestParseEraYearTextKeepsFailureClassesDistinct(t *testing.T) {
	// A well-shaped string with a bogus era parses fine; resolution failures
	// belong to the alias lookup stage, not the parser.
	alias, year, err := ParseEraYearText("unknownera5")
	if err != nil {
		t.Fatalf("expected shape match, got error: %v", err)
	}
	if alias != "unknownera" || year != 5 {
		t.Fatalf("unexpected parse %q/%d", alias, year)
	}
	if _, lookupErr := NewEraTable().ByAlias(alias); !errors.Is(lookupErr, ErrUnknownEra) {
		t.Fatalf("expected ErrUnknownEra from resolution, got %v", lookupErr)
	}
}
