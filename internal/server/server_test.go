package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildlens/buildlens/pkg/ai"
	"github.com/buildlens/buildlens/pkg/output"
	"github.com/buildlens/buildlens/pkg/parser"
)

type stubInsighter struct {
	insights *ai.Insights
	err      error
	calls    int
}

func (s *stubInsighter) Analyze(_ context.Context, _ *parser.LogAnalysis, _ string) (*ai.Insights, error) {
	s.calls++
	return s.insights, s.err
}

func doRequest(t *testing.T, handler *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	handler.Router().ServeHTTP(w, req)
	return w
}

func TestAnalyzeLog_Generic(t *testing.T) {
	handler := NewHandler(nil)

	body := `{"content":"Step 1: Build\nERROR: Compilation failed","format":"generic"}`
	w := doRequest(t, handler, "POST", "/api/analyze", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report output.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.Equal(t, 1, report.Analysis.TotalSteps)
	assert.Equal(t, 1, report.Analysis.FailedSteps)
	assert.Contains(t, report.Summary, "Build failed")
	assert.Nil(t, report.Insights)
}

func TestAnalyzeLog_DefaultsToGenericFormat(t *testing.T) {
	handler := NewHandler(nil)

	w := doRequest(t, handler, "POST", "/api/analyze", `{"content":"ERROR: boom"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var report output.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "generic", report.Metadata.Format)
	require.Len(t, report.Analysis.Steps, 1)
	assert.Equal(t, "Build Process", report.Analysis.Steps[0].Name)
}

func TestAnalyzeLog_BlankContentRejected(t *testing.T) {
	handler := NewHandler(nil)

	for _, body := range []string{`{"content":""}`, `{"content":"   \n  "}`, `{}`} {
		w := doRequest(t, handler, "POST", "/api/analyze", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestAnalyzeLog_MalformedJSON(t *testing.T) {
	handler := NewHandler(nil)

	w := doRequest(t, handler, "POST", "/api/analyze", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeLog_MergesInsights(t *testing.T) {
	stub := &stubInsighter{insights: &ai.Insights{RootCause: "flaky test"}}
	handler := NewHandler(stub)

	w := doRequest(t, handler, "POST", "/api/analyze", `{"content":"ERROR: boom","format":"jenkins"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var report output.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.NotNil(t, report.Insights)
	assert.Equal(t, "flaky test", report.Insights.RootCause)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeLog_InsightFailureIsNonFatal(t *testing.T) {
	stub := &stubInsighter{err: errors.New("rate limited")}
	handler := NewHandler(stub)

	w := doRequest(t, handler, "POST", "/api/analyze", `{"content":"ERROR: boom"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var report output.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Nil(t, report.Insights)
	assert.Equal(t, 1, report.Analysis.TotalSteps)
}

func TestListFormats(t *testing.T) {
	handler := NewHandler(nil)

	w := doRequest(t, handler, "GET", "/api/formats", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Formats []string `json:"formats"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"github-actions", "jenkins", "teamcity", "generic"}, resp.Formats)
	assert.Equal(t, "generic", resp.Default)
}

func TestHealth(t *testing.T) {
	handler := NewHandler(nil)

	w := doRequest(t, handler, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	handler := NewHandler(nil)

	// Generate one analysis so the counters exist.
	doRequest(t, handler, "POST", "/api/analyze", `{"content":"ERROR: x","format":"teamcity"}`)

	w := doRequest(t, handler, "GET", "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "buildlens_analyzes_total")
	assert.Contains(t, w.Body.String(), `format="teamcity"`)
}

func TestRequestIDHeader(t *testing.T) {
	handler := NewHandler(nil)

	w := doRequest(t, handler, "GET", "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// A caller-supplied ID is echoed back.
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
