package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plastinin/leafguard/internal/adapter/http/handler"
	httpmiddleware "github.com/plastinin/leafguard/internal/adapter/http/middleware"
	"github.com/plastinin/leafguard/internal/adapter/metrics"
	"github.com/plastinin/leafguard/internal/adapter/repository"
	"github.com/plastinin/leafguard/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testMaxBodyBytes = 1 << 10

func newTestRouter(t *testing.T, withMetrics bool) http.Handler {
	t.Helper()

	logger := zap.NewNop()

	var (
		recorder    usecase.OutcomeRecorder
		httpMetrics *httpmiddleware.Metrics
	)
	if withMetrics {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewValidationRecorder(reg)
		httpMetrics = httpmiddleware.NewMetrics(reg)
	}

	validationUC := usecase.NewValidationUseCase(recorder, 3, logger)
	catalogUC := usecase.NewCatalogUseCase(repository.NewDefaultDiseaseCatalog(), logger)

	return NewRouter(
		handler.NewValidationHandler(validationUC, testMaxBodyBytes, logger),
		handler.NewDiseaseHandler(catalogUC, logger),
		handler.NewHealthHandler(logger),
		httpMetrics,
		logger,
	)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestRouter_Health(t *testing.T) {
	rec := do(t, newTestRouter(t, false), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestRouter_UploadPolicy(t *testing.T) {
	rec := do(t, newTestRouter(t, false), http.MethodGet, "/api/v1/upload-policy", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(16*1024*1024), body["max_size_bytes"])
	assert.Equal(t, "16MB", body["max_size_label"])
	assert.Equal(t, []any{"image/bmp", "image/gif", "image/jpeg", "image/png"}, body["allowed_types"])
	assert.Equal(t, []any{"png", "jpg", "jpeg", "gif", "bmp"}, body["allowed_extensions"])
}

func TestRouter_Validate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		want       map[string]any
	}{
		{
			name:       "accepted png",
			body:       `{"size": 1024, "media_type": "image/png"}`,
			wantStatus: http.StatusOK,
			want:       map[string]any{"accepted": true},
		},
		{
			name:       "oversized png",
			body:       `{"size": 17825792, "media_type": "image/png"}`,
			wantStatus: http.StatusOK,
			want: map[string]any{
				"accepted": false,
				"reason":   "oversized_file",
				"message":  "file size exceeds 16MB limit",
			},
		},
		{
			name:       "pdf",
			body:       `{"size": 1024, "media_type": "application/pdf"}`,
			wantStatus: http.StatusOK,
			want: map[string]any{
				"accepted": false,
				"reason":   "unsupported_type",
				"message":  "invalid file format. allowed: JPG, PNG, GIF, BMP",
			},
		},
		{
			name:       "bmp at limit",
			body:       `{"size": 16777216, "media_type": "image/bmp"}`,
			wantStatus: http.StatusOK,
			want:       map[string]any{"accepted": true},
		},
		{
			name:       "size checked first",
			body:       `{"size": 17825792, "media_type": "application/pdf"}`,
			wantStatus: http.StatusOK,
			want: map[string]any{
				"accepted": false,
				"reason":   "oversized_file",
				"message":  "file size exceeds 16MB limit",
			},
		},
		{
			name:       "missing media type",
			body:       `{"size": 10}`,
			wantStatus: http.StatusOK,
			want: map[string]any{
				"accepted": false,
				"reason":   "unsupported_type",
				"message":  "invalid file format. allowed: JPG, PNG, GIF, BMP",
			},
		},
		{
			name:       "missing size",
			body:       `{"media_type": "image/png"}`,
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"error": "size_required", "message": "Size is required"},
		},
		{
			name:       "negative size",
			body:       `{"size": -1, "media_type": "image/png"}`,
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"error": "invalid_size", "message": "Size must be a non-negative number of bytes"},
		},
		{
			name:       "fractional size",
			body:       `{"size": 1.5, "media_type": "image/png"}`,
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"error": "invalid_request", "message": "Request body must be valid JSON"},
		},
		{
			name:       "broken json",
			body:       `{"size":`,
			wantStatus: http.StatusBadRequest,
			want:       map[string]any{"error": "invalid_request", "message": "Request body must be valid JSON"},
		},
	}

	router := newTestRouter(t, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/v1/validations", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, decodeBody(t, rec))
		})
	}
}

func TestRouter_ValidateBodyTooLarge(t *testing.T) {
	body := `{"size": 1, "media_type": "` + strings.Repeat("x", testMaxBodyBytes) + `"}`

	rec := do(t, newTestRouter(t, false), http.MethodPost, "/api/v1/validations", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request_too_large", decodeBody(t, rec)["error"])
}

func TestRouter_ValidateBatch(t *testing.T) {
	body := `{"files": [
		{"size": 1024, "media_type": "image/png"},
		{"size": 17825792, "media_type": "application/pdf"},
		{"size": 1024, "media_type": "image/webp"}
	]}`

	rec := do(t, newTestRouter(t, false), http.MethodPost, "/api/v1/validations/batch", body)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.NotEmpty(t, resp["batch_id"])
	assert.Equal(t, float64(1), resp["accepted"])
	assert.Equal(t, float64(2), resp["rejected"])

	results, ok := resp["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	assert.Equal(t, map[string]any{
		"index":      float64(0),
		"size":       float64(1024),
		"media_type": "image/png",
		"accepted":   true,
	}, results[0])
	assert.Equal(t, map[string]any{
		"index":      float64(1),
		"size":       float64(17825792),
		"media_type": "application/pdf",
		"accepted":   false,
		"reason":     "oversized_file",
		"message":    "file size exceeds 16MB limit",
	}, results[1])
	assert.Equal(t, "oversized_file", results[1].(map[string]any)["reason"])
	assert.Equal(t, "unsupported_type", results[2].(map[string]any)["reason"])
}

func TestRouter_ValidateBatchErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"no files", `{"files": []}`, "empty_batch"},
		{"files missing", `{}`, "empty_batch"},
		{"too many files", `{"files": [{"size":1},{"size":1},{"size":1},{"size":1}]}`, "batch_too_large"},
		{"missing size", `{"files": [{"size":1},{"media_type":"image/png"}]}`, "size_required"},
		{"negative size", `{"files": [{"size":-5}]}`, "invalid_size"},
		{"not json", `files`, "invalid_request"},
	}

	router := newTestRouter(t, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/v1/validations/batch", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeBody(t, rec)["error"])
		})
	}
}

func TestRouter_ValidateBatchErrorNamesIndex(t *testing.T) {
	rec := do(t, newTestRouter(t, false), http.MethodPost, "/api/v1/validations/batch",
		`{"files": [{"size":1},{"media_type":"image/png"}]}`)

	assert.Equal(t, "files[1]: Size is required", decodeBody(t, rec)["message"])
}

func TestRouter_Diseases(t *testing.T) {
	router := newTestRouter(t, false)

	rec := do(t, router, http.MethodGet, "/api/v1/diseases?page=2&page_size=4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeBody(t, rec)
	assert.Equal(t, float64(9), list["total"])
	assert.Equal(t, float64(2), list["page"])
	assert.Equal(t, float64(4), list["page_size"])
	assert.Equal(t, float64(3), list["total_pages"])
	diseases := list["diseases"].([]any)
	require.Len(t, diseases, 4)
	assert.Equal(t, "septoria leaf spot", diseases[0].(map[string]any)["key"])

	rec = do(t, router, http.MethodGet, "/api/v1/diseases/Late%20Blight", "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody(t, rec)
	assert.Equal(t, "late blight", detail["key"])
	assert.Equal(t, "Caused by the oomycete pathogen Phytophthora infestans", detail["causes"])
	assert.Len(t, detail["treatment"], 4)

	rec = do(t, router, http.MethodGet, "/api/v1/diseases/healthy", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/diseases/rust", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody(t, rec)["error"])
}

func TestRouter_DiseasesPageBeyondRange(t *testing.T) {
	router := newTestRouter(t, false)

	for _, query := range []string{"page=92233720368547760&page_size=100", "page=50&page_size=4"} {
		t.Run(query, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/api/v1/diseases?"+query, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			list := decodeBody(t, rec)
			assert.Equal(t, float64(9), list["total"])
			assert.Equal(t, []any{}, list["diseases"])
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, false)

	rec := do(t, router, http.MethodGet, "/predictor", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody(t, rec)["error"])

	rec = do(t, router, http.MethodDelete, "/api/v1/upload-policy", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", decodeBody(t, rec)["error"])
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, true)

	do(t, router, http.MethodPost, "/api/v1/validations", `{"size": 1, "media_type": "image/gif"}`)
	do(t, router, http.MethodPost, "/api/v1/validations", `{"size": 1, "media_type": "image/tiff"}`)
	do(t, router, http.MethodGet, "/api/v1/diseases/leaf%20mold", "")

	rec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := rec.Body.String()
	assert.Contains(t, out, `leafguard_image_validations_total{outcome="accepted",reason="none"} 1`)
	assert.Contains(t, out, `leafguard_image_validations_total{outcome="rejected",reason="unsupported_type"} 1`)
	assert.Contains(t, out, `leafguard_http_requests_total{method="GET",route="/api/v1/diseases/{key}",status="200"} 1`)
	assert.Regexp(t, `leafguard_http_requests_total\{method="POST",route="/api/v1/validations/?",status="200"\} 2`, out)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	rec := do(t, newTestRouter(t, false), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
