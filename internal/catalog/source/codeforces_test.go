package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"algoprep/pkg/errors"
)

func newCodeforcesServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *CodeforcesClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewCodeforcesClient(server.URL, server.Client())
}

func TestFetchProblemsFiltersRatingAndTopic(t *testing.T) {
	_, client := newCodeforcesServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/problemset.problems" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {"problems": [
				{"contestId": 1, "index": "A", "name": "in range", "rating": 1300, "tags": ["dp"]},
				{"contestId": 2, "index": "B", "name": "too high", "rating": 2100, "tags": ["dp"]},
				{"contestId": 3, "index": "C", "name": "unrated", "tags": ["dp"]},
				{"contestId": 4, "index": "D", "name": "wrong tag", "rating": 1300, "tags": ["geometry"]}
			]}
		}`))
	})

	problems, err := client.FetchProblems(context.Background(), 1200, 1500, "dp")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1", len(problems))
	}
	if problems[0].Name != "in range" {
		t.Errorf("got %q", problems[0].Name)
	}
}

func TestFetchProblemsTopicMatchesBothDirections(t *testing.T) {
	_, client := newCodeforcesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {"problems": [
				{"contestId": 1, "index": "A", "name": "tag contains topic", "rating": 1300, "tags": ["dfs and similar"]},
				{"contestId": 2, "index": "B", "name": "topic contains tag", "rating": 1300, "tags": ["Math"]}
			]}
		}`))
	})

	problems, err := client.FetchProblems(context.Background(), 1200, 1500, "dfs")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(problems) != 1 || problems[0].Name != "tag contains topic" {
		t.Fatalf("substring in tag should match: %v", problems)
	}

	problems, err = client.FetchProblems(context.Background(), 1200, 1500, "math and logic")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(problems) != 1 || problems[0].Name != "topic contains tag" {
		t.Fatalf("tag inside topic should match case-insensitively: %v", problems)
	}
}

func TestFetchProblemsFailedStatus(t *testing.T) {
	_, client := newCodeforcesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "FAILED", "comment": "problemset.problems: limit exceeded"}`))
	})

	_, err := client.FetchProblems(context.Background(), 800, 3500, "")
	if !errors.Is(err, errors.SourceBadResponse) {
		t.Fatalf("got %v, want SourceBadResponse", err)
	}
}

func TestFetchProblemsHTTPError(t *testing.T) {
	_, client := newCodeforcesServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchProblems(context.Background(), 800, 3500, "")
	if !errors.Is(err, errors.SourceBadResponse) {
		t.Fatalf("got %v, want SourceBadResponse", err)
	}
}

func TestFetchContestsFiltersAndSorts(t *testing.T) {
	_, client := newCodeforcesServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contest.list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": [
				{"id": 10, "name": "later", "phase": "BEFORE", "durationSeconds": 7200, "startTimeSeconds": 2000},
				{"id": 11, "name": "finished", "phase": "FINISHED", "durationSeconds": 7200, "startTimeSeconds": 100},
				{"id": 12, "name": "running", "phase": "CODING", "durationSeconds": 9000, "startTimeSeconds": 500}
			]
		}`))
	})

	contests, err := client.FetchContests(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(contests) != 2 {
		t.Fatalf("got %d contests, want 2", len(contests))
	}
	if contests[0].ID != 12 || contests[1].ID != 10 {
		t.Errorf("contests not sorted by start time: %v", contests)
	}
}

func TestFormatProblem(t *testing.T) {
	client := NewCodeforcesClient("", nil)
	p := client.FormatProblem(CodeforcesProblem{
		ContestID: 4,
		Index:     "A",
		Name:      "Watermelon",
		Rating:    800,
		Tags:      []string{"brute force", "math"},
	})

	if p.ID != "4A" {
		t.Errorf("got id %q, want 4A", p.ID)
	}
	if p.Topic != "brute force" {
		t.Errorf("got topic %q, want first tag", p.Topic)
	}
	if p.Difficulty != "easy" {
		t.Errorf("got difficulty %q, want easy", p.Difficulty)
	}
	if p.URL != "https://codeforces.com/problemset/problem/4/A" {
		t.Errorf("got url %q", p.URL)
	}
	if p.Source != "codeforces" {
		t.Errorf("got source %q", p.Source)
	}
}

func TestFormatProblemNoTags(t *testing.T) {
	client := NewCodeforcesClient("", nil)
	p := client.FormatProblem(CodeforcesProblem{ContestID: 1, Index: "A", Name: "bare", Rating: 2500})
	if p.Topic != "general" {
		t.Errorf("got topic %q, want general", p.Topic)
	}
	if p.Difficulty != "expert" {
		t.Errorf("got difficulty %q, want expert", p.Difficulty)
	}
}

func TestFormatContest(t *testing.T) {
	client := NewCodeforcesClient("", nil)
	c := client.FormatContest(CodeforcesContest{
		ID:               1234,
		Name:             "Round 900",
		Phase:            "BEFORE",
		DurationSeconds:  9000,
		StartTimeSeconds: 1700000000,
	})

	if c.Status != "upcoming" {
		t.Errorf("got status %q, want upcoming", c.Status)
	}
	if c.Duration != "2h 30m" {
		t.Errorf("got duration %q, want 2h 30m", c.Duration)
	}
	if c.Date != "2023-11-14 22:13 UTC" {
		t.Errorf("got date %q", c.Date)
	}
	if c.URL != "https://codeforces.com/contests/1234" {
		t.Errorf("got url %q", c.URL)
	}
	if c.Platform != "Codeforces" {
		t.Errorf("got platform %q", c.Platform)
	}
}

func TestFormatContestOngoing(t *testing.T) {
	client := NewCodeforcesClient("", nil)
	c := client.FormatContest(CodeforcesContest{ID: 1, Phase: "CODING", DurationSeconds: 3600})
	if c.Status != "ongoing" {
		t.Errorf("got status %q, want ongoing", c.Status)
	}
	if c.Duration != "1h 0m" {
		t.Errorf("got duration %q, want 1h 0m", c.Duration)
	}
}
