package v0_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	v0 "github.com/quanb-duy/gooddata-go-sdk/internal/api/handlers/v0"
	"github.com/quanb-duy/gooddata-go-sdk/internal/schema"
)

func TestPingHandler(t *testing.T) {
	t.Run("returns status and version", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v0/ping", nil)
		w := httptest.NewRecorder()

		v0.PingHandler("1.2.3")(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "1.2.3", body["version"])
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v0/ping", nil)
		w := httptest.NewRecorder()

		v0.PingHandler("1.2.3")(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v0/health", nil)
	w := httptest.NewRecorder()

	v0.HealthHandler("dev", "flight.example.com:17001")(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body v0.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "flight.example.com:17001", body.AdvertiseAddr)
}

func TestModelsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v0/models", nil)
	w := httptest.NewRecorder()

	v0.ModelsHandler()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["models"], "ChatRequest")
	assert.Contains(t, body["models"], "SmtpDestination")
	assert.Contains(t, body["models"], "ExecutionResultGrandTotal")
}

func newValidateMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v0/validate/{model}", v0.ValidateHandler(zap.NewNop(), nil))
	return mux
}

func TestValidateHandler(t *testing.T) {
	testCases := []struct {
		name           string
		model          string
		body           string
		expectedStatus int
		expectValid    bool
		expectedCode   string
	}{
		{
			name:           "valid document",
			model:          "ChatRequest",
			body:           `{"question": "what changed?"}`,
			expectedStatus: http.StatusOK,
			expectValid:    true,
		},
		{
			name:           "missing required field",
			model:          "ChatRequest",
			body:           `{"limitSearch": 3}`,
			expectedStatus: http.StatusOK,
			expectValid:    false,
			expectedCode:   schema.CodeRequiredFieldMissing,
		},
		{
			name:           "type mismatch",
			model:          "SmtpDestination",
			body:           `{"host": "smtp.example.com", "port": "587", "username": "u", "password": "p", "fromEmail": "a@b.c"}`,
			expectedStatus: http.StatusOK,
			expectValid:    false,
			expectedCode:   schema.CodeInvalidType,
		},
		{
			name:           "unknown model",
			model:          "NoSuchModel",
			body:           `{}`,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newValidateMux(t)

			req := httptest.NewRequest(http.MethodPost, "/v0/validate/"+tc.model, strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var result schema.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tc.expectValid, result.Valid)
			if tc.expectedCode != "" {
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, tc.expectedCode, result.Errors[0].Code)
			}
		})
	}
}

func TestSwaggerDocHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v0/swagger/doc.yaml", nil)
	w := httptest.NewRecorder()

	v0.SwaggerDocHandler()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi:")
	assert.Contains(t, w.Body.String(), "/v0/validate/{model}")
}
