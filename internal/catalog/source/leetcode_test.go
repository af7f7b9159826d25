package source

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newLeetCodeServer(t *testing.T, handler http.HandlerFunc) *LeetCodeClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewLeetCodeClient(server.URL, server.Client())
}

func TestLeetCodeFetchProblems(t *testing.T) {
	var captured map[string]interface{}
	client := newLeetCodeServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		_, _ = w.Write([]byte(`{
			"data": {"problemsetQuestionList": {"questions": [
				{"title": "Two Sum", "difficulty": "Easy", "frontendQuestionId": "1", "acRate": 45.5,
				 "topicTags": [{"name": "Array"}, {"name": "Hash Table"}]}
			]}}
		}`))
	})

	questions, err := client.FetchProblems(context.Background(), "array", "medium", 25)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(questions) != 1 || questions[0].Title != "Two Sum" {
		t.Fatalf("unexpected questions: %v", questions)
	}

	variables, _ := captured["variables"].(map[string]interface{})
	if variables == nil {
		t.Fatal("request missing variables")
	}
	filters, _ := variables["filters"].(map[string]interface{})
	if filters["difficulty"] != "MEDIUM" {
		t.Errorf("difficulty should be uppercased, got %v", filters["difficulty"])
	}
	if variables["limit"] != float64(25) {
		t.Errorf("got limit %v, want 25", variables["limit"])
	}
}

func TestLeetCodeFetchProblemsSwallowsHTTPError(t *testing.T) {
	client := newLeetCodeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	questions, err := client.FetchProblems(context.Background(), "array", "easy", 10)
	if err != nil {
		t.Fatalf("upstream failures must not surface, got %v", err)
	}
	if questions != nil {
		t.Errorf("got %v, want nil", questions)
	}
}

func TestLeetCodeFetchProblemsSwallowsBadPayload(t *testing.T) {
	client := newLeetCodeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	questions, err := client.FetchProblems(context.Background(), "array", "easy", 10)
	if err != nil || questions != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", questions, err)
	}
}

func TestLeetCodeFetchProblemsSwallowsMissingList(t *testing.T) {
	client := newLeetCodeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {}}`))
	})

	questions, err := client.FetchProblems(context.Background(), "array", "easy", 10)
	if err != nil || questions != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", questions, err)
	}
}

func TestLeetCodeFetchProblemsSwallowsConnectionError(t *testing.T) {
	client := NewLeetCodeClient("http://127.0.0.1:1", nil)

	questions, err := client.FetchProblems(context.Background(), "array", "easy", 10)
	if err != nil || questions != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", questions, err)
	}
}

func TestLeetCodeFormatProblem(t *testing.T) {
	client := NewLeetCodeClient("", nil)
	p := client.FormatProblem(LeetCodeQuestion{
		Title:              "Longest Palindromic Substring",
		Difficulty:         "Medium",
		FrontendQuestionID: "5",
		AcRate:             30.8,
		TopicTags:          []TopicTag{{Name: "String"}, {Name: "Dynamic Programming"}},
	}, "string")

	if p.ID != "5" {
		t.Errorf("got id %q", p.ID)
	}
	if p.Difficulty != "medium" {
		t.Errorf("difficulty should be lowercased, got %q", p.Difficulty)
	}
	if p.Topic != "string" {
		t.Errorf("requested topic should be stamped, got %q", p.Topic)
	}
	if p.URL != "https://leetcode.com/problems/longest-palindromic-substring/" {
		t.Errorf("got url %q", p.URL)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "String" {
		t.Errorf("got tags %v", p.Tags)
	}
	if p.Source != "leetcode" {
		t.Errorf("got source %q", p.Source)
	}
	if p.AcceptanceRate != 30.8 {
		t.Errorf("got acceptance rate %v", p.AcceptanceRate)
	}
}
