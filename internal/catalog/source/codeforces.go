package source

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"time"

	"algoprep/internal/catalog/model"
	"algoprep/pkg/errors"
)

const (
	defaultCodeforcesBaseURL = "https://codeforces.com/api"

	// Cap applied after shuffling so repeated calls vary instead of
	// always returning the same top slice.
	codeforcesResultCap = 1000
)

// CodeforcesProblem mirrors the provider's problemset entry.
type CodeforcesProblem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating"`
	Tags      []string `json:"tags"`
}

// CodeforcesContest mirrors the provider's contest entry.
type CodeforcesContest struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
}

type codeforcesEnvelope struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

type codeforcesProblemsResult struct {
	Problems []CodeforcesProblem `json:"problems"`
}

// CodeforcesClient fetches problems and contests from the Codeforces
// JSON API. Failures propagate to the caller; the pipeline decides
// whether to fall back.
type CodeforcesClient struct {
	baseURL string
	client  *http.Client
}

// NewCodeforcesClient creates a client. Empty baseURL and nil client
// select production defaults.
func NewCodeforcesClient(baseURL string, client *http.Client) *CodeforcesClient {
	if baseURL == "" {
		baseURL = defaultCodeforcesBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CodeforcesClient{baseURL: baseURL, client: client}
}

// FetchProblems issues one problemset call and filters client-side:
// the upstream has no native rating-range filter. Topic matching is a
// bidirectional case-insensitive substring test against the tags.
// Results are shuffled before truncation.
func (c *CodeforcesClient) FetchProblems(ctx context.Context, ratingMin, ratingMax int, topic string) ([]CodeforcesProblem, error) {
	var result codeforcesProblemsResult
	if err := c.get(ctx, "/problemset.problems", &result); err != nil {
		return nil, err
	}

	problems := result.Problems
	filtered := make([]CodeforcesProblem, 0, len(problems))
	for _, p := range problems {
		if p.Rating == 0 || p.Rating < ratingMin || p.Rating > ratingMax {
			continue
		}
		if topic != "" && !matchesTopic(p.Tags, topic) {
			continue
		}
		filtered = append(filtered, p)
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	if len(filtered) > codeforcesResultCap {
		filtered = filtered[:codeforcesResultCap]
	}
	return filtered, nil
}

// FetchContests returns upcoming and running contests sorted by start
// time ascending.
func (c *CodeforcesClient) FetchContests(ctx context.Context) ([]CodeforcesContest, error) {
	var contests []CodeforcesContest
	if err := c.get(ctx, "/contest.list", &contests); err != nil {
		return nil, err
	}

	active := make([]CodeforcesContest, 0, len(contests))
	for _, contest := range contests {
		if contest.Phase == "BEFORE" || contest.Phase == "CODING" {
			active = append(active, contest)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].StartTimeSeconds < active[j].StartTimeSeconds
	})
	return active, nil
}

// FormatProblem normalizes a provider record into the canonical shape.
func (c *CodeforcesClient) FormatProblem(p CodeforcesProblem) model.Problem {
	topic := "general"
	if len(p.Tags) > 0 {
		topic = p.Tags[0]
	}
	return model.Problem{
		ID:         fmt.Sprintf("%d%s", p.ContestID, p.Index),
		Title:      p.Name,
		Difficulty: model.DifficultyFromRating(p.Rating),
		Topic:      topic,
		Tags:       p.Tags,
		URL:        fmt.Sprintf("https://codeforces.com/problemset/problem/%d/%s", p.ContestID, p.Index),
		Source:     model.SourceCodeforces,
		Rating:     p.Rating,
	}
}

// FormatContest normalizes a contest record for display.
func (c *CodeforcesClient) FormatContest(contest CodeforcesContest) model.Contest {
	status := model.ContestEnded
	switch contest.Phase {
	case "BEFORE":
		status = model.ContestUpcoming
	case "CODING":
		status = model.ContestOngoing
	}

	hours := contest.DurationSeconds / 3600
	minutes := (contest.DurationSeconds % 3600) / 60
	start := time.Unix(contest.StartTimeSeconds, 0).UTC()

	return model.Contest{
		ID:       fmt.Sprintf("%d", contest.ID),
		Name:     contest.Name,
		Platform: "Codeforces",
		Date:     start.Format("2006-01-02 15:04") + " UTC",
		Duration: fmt.Sprintf("%dh %dm", hours, minutes),
		Status:   status,
		URL:      fmt.Sprintf("https://codeforces.com/contests/%d", contest.ID),
	}
}

func (c *CodeforcesClient) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, errors.SourceUnavailable)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.SourceUnavailable, "codeforces request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.SourceBadResponse, "codeforces returned status %d", resp.StatusCode)
	}

	var envelope codeforcesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, errors.SourceBadResponse)
	}
	if envelope.Status != "OK" {
		return errors.New(errors.SourceBadResponse)
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return errors.Wrap(err, errors.SourceBadResponse)
	}
	return nil
}

// matchesTopic reports whether any tag matches the topic in either
// direction: tag contains topic or topic contains tag.
func matchesTopic(tags []string, topic string) bool {
	if len(tags) == 0 {
		return false
	}
	topicLower := strings.ToLower(topic)
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		if strings.Contains(tagLower, topicLower) || strings.Contains(topicLower, tagLower) {
			return true
		}
	}
	return false
}
