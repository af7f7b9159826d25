package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"algoprep/internal/assist/service"

	"github.com/gin-gonic/gin"
)

type stubGenerator struct {
	text string
}

func (s *stubGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	return s.text, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestRouter(generator service.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAssistController(service.NewAssistService(generator)).RegisterRoutes(router.Group("/api"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, payload string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response failed: %v (%s)", err, w.Body.String())
	}
	return w, body
}

func TestHealthConfigured(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ai/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response failed: %v", err)
	}
	if body["success"] != true || body["configured"] != true {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHealthNotConfigured(t *testing.T) {
	router := newTestRouter(nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ai/health", nil))

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response failed: %v", err)
	}
	if body["configured"] != false {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestExplainSuccess(t *testing.T) {
	router := newTestRouter(&stubGenerator{text: "walkthrough"})
	w, body := postJSON(t, router, "/api/ai/explain", `{"title": "Two Sum"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	var text string
	if err := json.Unmarshal(body.Data, &text); err != nil {
		t.Fatalf("parse data failed: %v", err)
	}
	if text != "walkthrough" {
		t.Errorf("got %q", text)
	}
}

func TestExplainMissingTitle(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	w, body := postJSON(t, router, "/api/ai/explain", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if !strings.Contains(body.Message, "title required") {
		t.Errorf("got message %q", body.Message)
	}
}

func TestExplainMalformedBody(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	w, body := postJSON(t, router, "/api/ai/explain", `not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if !strings.Contains(body.Message, "title required") {
		t.Errorf("got message %q", body.Message)
	}
}

func TestSolutionUnsupportedLanguage(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	w, body := postJSON(t, router, "/api/ai/solution", `{"title": "Two Sum", "language": "go"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if !strings.Contains(body.Message, "language must be c | cpp | java") {
		t.Errorf("got message %q", body.Message)
	}
}

func TestSolutionNotConfigured(t *testing.T) {
	router := newTestRouter(nil)
	w, body := postJSON(t, router, "/api/ai/solution", `{"title": "Two Sum", "language": "cpp"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", w.Code)
	}
	if body.Success {
		t.Error("expected failure envelope")
	}
}

func TestHintsPassesThought(t *testing.T) {
	router := newTestRouter(&stubGenerator{text: "three hints"})
	w, body := postJSON(t, router, "/api/ai/hints", `{"title": "Two Sum", "currentThought": "sort first"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	var text string
	if err := json.Unmarshal(body.Data, &text); err != nil {
		t.Fatalf("parse data failed: %v", err)
	}
	if text != "three hints" {
		t.Errorf("got %q", text)
	}
}
