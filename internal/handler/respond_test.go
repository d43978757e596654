package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestQueryID(t *testing.T) {
	tests := []struct {
		query string
		want  *uint
	}{
		{query: "", want: nil},
		{query: "genre=abc", want: nil},
		{query: "genre=0", want: nil},
		{query: "genre=-4", want: nil},
		{query: "genre=%207%20", want: uintPtr(7)},
		{query: "genre=42", want: uintPtr(42)},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := testContext("/games?" + tt.query)
			assert.Equal(t, tt.want, queryID(c, "genre"))
		})
	}
}

func uintPtr(v uint) *uint { return &v }

func TestParseDate(t *testing.T) {
	empty, err := parseDate("date_of_birth", "  ")
	require.NoError(t, err)
	assert.Nil(t, empty)

	got, err := parseDate("date_of_birth", "1995-12-10")
	require.NoError(t, err)
	assert.Equal(t, "1995-12-10", got.Format("2006-01-02"))

	_, err = parseDate("date_of_birth", "10.12.1995")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "date_of_birth", appErr.Field)
}

func TestFail(t *testing.T) {
	h := &Handler{log: logger.Nop()}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		want       ErrorResponse
	}{
		{
			name:       "validation",
			err:        apperr.Validation("score", "score must be between 1 and 10"),
			wantStatus: http.StatusBadRequest,
			want:       ErrorResponse{Error: "score must be between 1 and 10", Code: "validation_error", Field: "score"},
		},
		{
			name:       "wrapped not found",
			err:        errors.Join(errors.New("lookup"), apperr.NotFound("game", 7)),
			wantStatus: http.StatusNotFound,
			want:       ErrorResponse{Error: "game 7 not found", Code: "not_found"},
		},
		{
			name:       "internal hides cause",
			err:        apperr.Internal("failed to count games", errors.New("connection reset")),
			wantStatus: http.StatusInternalServerError,
			want:       ErrorResponse{Error: "Internal server error", Code: "internal_error"},
		},
		{
			name:       "untyped",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			want:       ErrorResponse{Error: "Internal server error", Code: "internal_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("/")
			h.fail(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathID(t *testing.T) {
	h := &Handler{log: logger.Nop()}

	for _, raw := range []string{"abc", "0", "-1", "99999999999"} {
		c, w := testContext("/")
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := h.pathID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}

	c, _ := testContext("/")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, ok := h.pathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	issued := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(issued)
	require.NoError(t, err)
	assert.Equal(t, issued, w.Body.String())

	known := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, known)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, known, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	matched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/things/:id", "204")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	beforeMatched := testutil.ToFloat64(matched)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/things/1", "/things/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforeMatched+2, testutil.ToFloat64(matched))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
