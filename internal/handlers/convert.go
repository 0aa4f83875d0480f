package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wareki-field/api/internal/platform/httpx"
	"github.com/wareki-field/api/internal/services"
)

const maxConvertRequestBody = 4 * 1024

// ConvertHandlers exposes the wareki conversion endpoint.
type ConvertHandlers struct {
	conv services.ConversionService
}

// NewConvertHandlers constructs the conversion handler set.
func NewConvertHandlers(svc services.ConversionService) *ConvertHandlers {
	return &ConvertHandlers{conv: svc}
}

// Routes registers the conversion endpoint for both GET and POST.
func (h *ConvertHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/convert", h.convert)
	r.Post("/convert", h.convert)
}

// convertParams holds the raw request inputs before validation. All values
// are strings; JSON numbers and booleans are stringified on extraction so
// query and body inputs flow through the same path.
type convertParams struct {
	Year        string
	Date        string
	Now         string
	Era         string
	EraYear     string
	EraYearText string
	Lang        string
}

func (h *ConvertHandlers) convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.conv == nil {
		httpx.WriteError(ctx, w, httpx.NewError("Conversion service not available.", http.StatusServiceUnavailable))
		return
	}

	params, err := extractConvertParams(r)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError(err.Error(), http.StatusBadRequest))
		return
	}

	lang := strings.ToLower(strings.TrimSpace(params.Lang))
	if lang == "" {
		lang = "en"
	}

	// Combined Japanese-style input: "令和7年", "平成元年", "Reiwa7".
	if params.EraYearText != "" {
		conv, err := h.conv.FromText(ctx, params.EraYearText, lang)
		h.respond(ctx, w, conv, err)
		return
	}

	if isTruthy(params.Now) {
		conv, err := h.conv.Now(ctx, lang)
		h.respond(ctx, w, conv, err)
		return
	}

	if params.Date != "" {
		date, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("Invalid 'date'. Use YYYY-MM-DD.", http.StatusBadRequest))
			return
		}
		conv, convErr := h.conv.FromDate(ctx, date, lang)
		h.respond(ctx, w, conv, convErr)
		return
	}

	hasYear := params.Year != ""
	hasEra := params.Era != ""
	hasEraYear := params.EraYear != ""

	switch {
	case hasYear && !hasEra && !hasEraYear:
		year, err := strconv.Atoi(strings.TrimSpace(params.Year))
		if err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("Invalid 'year'. Must be an integer.", http.StatusBadRequest))
			return
		}
		conv, convErr := h.conv.FromYear(ctx, year, lang)
		h.respond(ctx, w, conv, convErr)

	case hasEra && hasEraYear && !hasYear:
		eraYear, err := strconv.Atoi(strings.TrimSpace(params.EraYear))
		if err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("Invalid 'era_year'. Must be an integer.", http.StatusBadRequest))
			return
		}
		conv, convErr := h.conv.ToWestern(ctx, params.Era, eraYear, lang)
		h.respond(ctx, w, conv, convErr)

	default:
		httpx.WriteError(ctx, w, httpx.NewError(
			"Provide either year/date/now OR (era and era_year) OR era_year_text, but not both.",
			http.StatusBadRequest,
		))
	}
}

func (h *ConvertHandlers) respond(ctx context.Context, w http.ResponseWriter, result any, err error) {
	if err != nil {
		writeConversionError(ctx, w, err)
		return
	}
	httpx.WriteResult(ctx, w, result)
}

func writeConversionError(ctx context.Context, w http.ResponseWriter, err error) {
	var conversion *services.ConversionError
	if errors.As(err, &conversion) {
		httpx.WriteError(ctx, w, httpx.NewError(conversion.Error(), http.StatusBadRequest))
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("Internal server error.", http.StatusInternalServerError))
}

// extractConvertParams reads inputs from the JSON body when one is supplied,
// falling back to query parameters otherwise.
func extractConvertParams(r *http.Request) (convertParams, error) {
	values := map[string]string{}

	if r.Body != nil && r.Method == http.MethodPost {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxConvertRequestBody+1))
		if err != nil {
			return convertParams{}, errors.New("Unable to read request body.")
		}
		if len(body) > maxConvertRequestBody {
			return convertParams{}, errors.New("Request body exceeds allowed size.")
		}
		if len(body) > 0 {
			var raw map[string]any
			if err := json.Unmarshal(body, &raw); err != nil {
				return convertParams{}, errors.New("Invalid JSON payload.")
			}
			for key, value := range raw {
				values[key] = stringifyParam(value)
			}
		}
	}

	if len(values) == 0 {
		query := r.URL.Query()
		for key := range query {
			values[key] = query.Get(key)
		}
	}

	return convertParams{
		Year:        strings.TrimSpace(values["year"]),
		Date:        strings.TrimSpace(values["date"]),
		Now:         strings.TrimSpace(values["now"]),
		Era:         values["era"],
		EraYear:     strings.TrimSpace(values["era_year"]),
		EraYearText: values["era_year_text"],
		Lang:        values["lang"],
	}, nil
}

// stringifyParam folds JSON scalars into the string form query parameters use.
func stringifyParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
