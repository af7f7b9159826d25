package source

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"algoprep/internal/catalog/model"
	"algoprep/pkg/utils/logger"

	"go.uber.org/zap"
)

const (
	defaultLeetCodeBaseURL = "https://leetcode.com/graphql"
	leetCodeTimeout        = 10 * time.Second
)

const problemsetQuery = `
query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
  problemsetQuestionList: questionList(
    categorySlug: $categorySlug
    limit: $limit
    skip: $skip
    filters: $filters
  ) {
    total: totalNum
    questions: data {
      acRate
      difficulty
      frontendQuestionId: questionFrontendId
      title
      titleSlug
      topicTags {
        name
      }
    }
  }
}`

// LeetCodeQuestion mirrors the provider's question entry.
type LeetCodeQuestion struct {
	Title              string     `json:"title"`
	Difficulty         string     `json:"difficulty"`
	FrontendQuestionID string     `json:"frontendQuestionId"`
	AcRate             float64    `json:"acRate"`
	TopicTags          []TopicTag `json:"topicTags"`
}

// TopicTag is a provider classification label.
type TopicTag struct {
	Name string `json:"name"`
}

type leetCodeRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type leetCodeResponse struct {
	Data struct {
		ProblemsetQuestionList *struct {
			Questions []LeetCodeQuestion `json:"questions"`
		} `json:"problemsetQuestionList"`
	} `json:"data"`
}

// LeetCodeClient queries the provider's GraphQL problem list. Upstream
// instability must not reach the pipeline, so every failure is
// swallowed and reported as an empty result.
type LeetCodeClient struct {
	baseURL string
	client  *http.Client
}

// NewLeetCodeClient creates a client. Empty baseURL and nil client
// select production defaults, including the request timeout.
func NewLeetCodeClient(baseURL string, client *http.Client) *LeetCodeClient {
	if baseURL == "" {
		baseURL = defaultLeetCodeBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: leetCodeTimeout}
	}
	return &LeetCodeClient{baseURL: baseURL, client: client}
}

// FetchProblems issues one GraphQL call filtered by difficulty and
// topic tag. Network errors, non-success statuses, and unexpected
// payload shapes all yield an empty slice and a nil error.
func (c *LeetCodeClient) FetchProblems(ctx context.Context, topic, difficulty string, limit int) ([]LeetCodeQuestion, error) {
	body := leetCodeRequest{
		Query: problemsetQuery,
		Variables: map[string]interface{}{
			"categorySlug": "",
			"skip":         0,
			"limit":        limit,
			"filters": map[string]interface{}{
				"difficulty": strings.ToUpper(difficulty),
				"tags":       []string{strings.ToLower(topic)},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		logger.Warn(ctx, "leetcode request marshal failed", zap.Error(err))
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		logger.Warn(ctx, "leetcode request build failed", zap.Error(err))
		return nil, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn(ctx, "leetcode request failed, returning empty list", zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn(ctx, "leetcode returned non-OK status, returning empty list",
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var decoded leetCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Warn(ctx, "leetcode response decode failed, returning empty list", zap.Error(err))
		return nil, nil
	}

	if decoded.Data.ProblemsetQuestionList == nil {
		logger.Warn(ctx, "leetcode response missing question list, returning empty list")
		return nil, nil
	}
	return decoded.Data.ProblemsetQuestionList.Questions, nil
}

// FormatProblem normalizes a provider record. The requested topic is
// stamped as the primary category; the deep link is derived from the
// title the same way the provider slugs it.
func (c *LeetCodeClient) FormatProblem(q LeetCodeQuestion, topic string) model.Problem {
	tags := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		tags = append(tags, tag.Name)
	}
	return model.Problem{
		ID:             q.FrontendQuestionID,
		Title:          q.Title,
		Difficulty:     strings.ToLower(q.Difficulty),
		Topic:          topic,
		Tags:           tags,
		URL:            "https://leetcode.com/problems/" + titleSlug(q.Title) + "/",
		Source:         model.SourceLeetCode,
		AcceptanceRate: q.AcRate,
	}
}

func titleSlug(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
