package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"algoprep/internal/catalog/model"
	"algoprep/internal/catalog/repository"
	"algoprep/internal/catalog/service"
	"algoprep/internal/catalog/source"
	"algoprep/internal/common/db"

	"github.com/gin-gonic/gin"
)

type stubDSAProvider struct {
	questions []source.LeetCodeQuestion
}

func (s *stubDSAProvider) FetchProblems(ctx context.Context, topic, difficulty string, limit int) ([]source.LeetCodeQuestion, error) {
	return s.questions, nil
}

func (s *stubDSAProvider) FormatProblem(q source.LeetCodeQuestion, topic string) model.Problem {
	return model.Problem{ID: q.FrontendQuestionID, Title: q.Title, Topic: topic}
}

type stubCPProvider struct{}

func (s *stubCPProvider) FetchProblems(ctx context.Context, ratingMin, ratingMax int, topic string) ([]source.CodeforcesProblem, error) {
	return nil, nil
}

func (s *stubCPProvider) FetchContests(ctx context.Context) ([]source.CodeforcesContest, error) {
	return nil, nil
}

func (s *stubCPProvider) FormatProblem(p source.CodeforcesProblem) model.Problem {
	return model.Problem{Title: p.Name}
}

func (s *stubCPProvider) FormatContest(c source.CodeforcesContest) model.Contest {
	return model.Contest{Name: c.Name}
}

type stubSheetRepo struct {
	metas []model.SheetMeta
}

func (s *stubSheetRepo) FindAll(ctx context.Context) ([]model.SheetMeta, error) {
	return s.metas, nil
}

func (s *stubSheetRepo) Upsert(ctx context.Context, tx db.Transaction, meta model.SheetMeta) error {
	return nil
}

func (s *stubSheetRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.metas)), nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Source  string          `json:"source"`
	Message string          `json:"message"`
}

func newTestRouter(sheets repository.SheetRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if sheets == nil {
		sheets = repository.NewNoStoreSheetRepository()
	}
	svc := service.NewCatalogService(
		&stubDSAProvider{},
		&stubCPProvider{},
		repository.NewNoStoreProblemRepository(),
		sheets,
	)
	router := gin.New()
	NewCatalogController(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response failed: %v (%s)", err, w.Body.String())
	}
	return w, body
}

func TestDSAProblemsDefaultsToFallback(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/dsa/problems")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if !body.Success {
		t.Error("expected success")
	}
	if body.Source != "fallback" {
		t.Errorf("got source %q, want fallback", body.Source)
	}

	var problems []model.Problem
	if err := json.Unmarshal(body.Data, &problems); err != nil {
		t.Fatalf("parse data failed: %v", err)
	}
	for _, p := range problems {
		if p.Topic != "array" {
			t.Errorf("default topic should be array, got %q", p.Topic)
		}
	}
}

func TestDSAProblemsInvalidLimit(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/dsa/problems?limit=abc")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if body.Success {
		t.Error("expected failure envelope")
	}
}

func TestDSAProblemsNonPositiveLimit(t *testing.T) {
	router := newTestRouter(nil)
	w, _ := doRequest(t, router, http.MethodGet, "/api/dsa/problems?limit=0")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestCPProblemsInvalidRatingParam(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/cp/problems?ratingMin=abc")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if !strings.Contains(body.Message, "ratingMin") {
		t.Errorf("got message %q", body.Message)
	}
}

func TestCPProblemsInvertedRange(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/cp/problems?ratingMin=1600&ratingMax=1200")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if body.Success {
		t.Error("expected failure envelope")
	}
}

func TestMetaEndpoints(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		path string
		want int
	}{
		{"/api/dsa/topics", 23},
		{"/api/dsa/difficulties", 3},
		{"/api/cp/topics", 25},
		{"/api/cp/rating-ranges", 5},
	}
	for _, tc := range cases {
		w, body := doRequest(t, router, http.MethodGet, tc.path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: got status %d", tc.path, w.Code)
		}
		var items []json.RawMessage
		if err := json.Unmarshal(body.Data, &items); err != nil {
			t.Fatalf("%s: parse data failed: %v", tc.path, err)
		}
		if len(items) != tc.want {
			t.Errorf("%s: got %d items, want %d", tc.path, len(items), tc.want)
		}
	}
}

func TestListSheetsFallbackExposesSource(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/sheets")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if body.Source != "fallback" {
		t.Errorf("got source %q, want fallback", body.Source)
	}
}

func TestListSheetsStoreHidesSource(t *testing.T) {
	router := newTestRouter(&stubSheetRepo{metas: []model.SheetMeta{{Key: "striver"}}})
	w, body := doRequest(t, router, http.MethodGet, "/api/sheets")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if body.Source != "" {
		t.Errorf("store-served sheets must not expose a source tag, got %q", body.Source)
	}
}

func TestSheetProblemsUnknownKeyIs404(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/sheets/unknown")

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if !strings.Contains(body.Message, "Sheet not found") {
		t.Errorf("got message %q", body.Message)
	}
}

func TestSheetProblemsKnownKey(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/sheets/striver")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if body.Source != "fallback" {
		t.Errorf("got source %q, want fallback", body.Source)
	}
	var items []model.SheetProblemItem
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("parse data failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected sheet items")
	}
}

func TestContestsEmptyList(t *testing.T) {
	router := newTestRouter(nil)
	w, body := doRequest(t, router, http.MethodGet, "/api/contests")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if !body.Success {
		t.Error("expected success")
	}
}
