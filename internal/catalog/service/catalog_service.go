package service

import (
	"context"

	"algoprep/internal/catalog/fallback"
	"algoprep/internal/catalog/model"
	"algoprep/internal/catalog/repository"
	"algoprep/internal/catalog/source"
	"algoprep/pkg/errors"
	"algoprep/pkg/utils/logger"

	"go.uber.org/zap"
)

// Provenance tags carried alongside every problem/sheet response.
const (
	ProvenanceAPI      = "api"
	ProvenanceCache    = "cache"
	ProvenanceFallback = "fallback"
)

// DSAProvider is the catalog-based upstream (topic/difficulty filters).
type DSAProvider interface {
	FetchProblems(ctx context.Context, topic, difficulty string, limit int) ([]source.LeetCodeQuestion, error)
	FormatProblem(q source.LeetCodeQuestion, topic string) model.Problem
}

// CPProvider is the rating-based upstream (numeric rating filters).
type CPProvider interface {
	FetchProblems(ctx context.Context, ratingMin, ratingMax int, topic string) ([]source.CodeforcesProblem, error)
	FetchContests(ctx context.Context) ([]source.CodeforcesContest, error)
	FormatProblem(p source.CodeforcesProblem) model.Problem
	FormatContest(c source.CodeforcesContest) model.Contest
}

// CatalogService is the resolution pipeline: per request it consults
// the tiers in a fixed order and returns the first non-empty result
// with its provenance.
//
// The two live problem paths are deliberately two-tier (live then
// static) and never touch the store; only the sheet paths read the
// store. Callers must not "unify" this into a three-tier chain.
type CatalogService struct {
	dsa      DSAProvider
	cp       CPProvider
	problems repository.ProblemRepository
	sheets   repository.SheetRepository
}

func NewCatalogService(dsa DSAProvider, cp CPProvider, problems repository.ProblemRepository, sheets repository.SheetRepository) *CatalogService {
	return &CatalogService{
		dsa:      dsa,
		cp:       cp,
		problems: problems,
		sheets:   sheets,
	}
}

// DSAProblems resolves a topic/difficulty request: live adapter first,
// bundled fallback second. Fallback records are stamped with the
// requested topic and difficulty.
func (s *CatalogService) DSAProblems(ctx context.Context, topic, difficulty string, limit int) ([]model.Problem, string, error) {
	questions, err := s.dsa.FetchProblems(ctx, topic, difficulty, limit)
	if err != nil {
		logger.Warn(ctx, "dsa source failed, falling back", zap.Error(err))
		questions = nil
	}

	if len(questions) > 0 {
		problems := make([]model.Problem, 0, len(questions))
		for _, q := range questions {
			problems = append(problems, s.dsa.FormatProblem(q, topic))
		}
		return model.DedupeProblems(problems), ProvenanceAPI, nil
	}

	logger.Info(ctx, "serving fallback dsa problems",
		zap.String("topic", topic),
		zap.String("difficulty", difficulty))

	problems := fallback.DSAProblems()
	for i := range problems {
		problems[i].Topic = topic
		problems[i].Difficulty = difficulty
	}
	return problems, ProvenanceFallback, nil
}

// CPProblems resolves a rating-range request: live adapter first,
// bundled fallback second. Fallback records missing a rating default
// to the requested range minimum.
func (s *CatalogService) CPProblems(ctx context.Context, ratingMin, ratingMax int, topic string) ([]model.Problem, string, error) {
	if ratingMin > ratingMax {
		return nil, "", errors.New(errors.InvalidRatingRange).
			WithDetail("ratingMin", ratingMin).
			WithDetail("ratingMax", ratingMax)
	}

	raw, err := s.cp.FetchProblems(ctx, ratingMin, ratingMax, topic)
	if err != nil {
		logger.Warn(ctx, "cp source failed, falling back", zap.Error(err))
		raw = nil
	}

	if len(raw) > 0 {
		problems := make([]model.Problem, 0, len(raw))
		for _, p := range raw {
			problems = append(problems, s.cp.FormatProblem(p))
		}
		return model.DedupeProblems(problems), ProvenanceAPI, nil
	}

	logger.Info(ctx, "serving fallback cp problems",
		zap.Int("ratingMin", ratingMin),
		zap.Int("ratingMax", ratingMax))

	problems := fallback.CPProblems()
	for i := range problems {
		if problems[i].Rating == 0 {
			problems[i].Rating = ratingMin
		}
	}
	return problems, ProvenanceFallback, nil
}

// ListSheets resolves the sheet list: store first, bundled fallback
// second. Store errors are treated identically to zero rows.
func (s *CatalogService) ListSheets(ctx context.Context) ([]model.SheetMeta, string, error) {
	metas, err := s.sheets.FindAll(ctx)
	if err != nil {
		logger.Warn(ctx, "sheet store read failed, falling back", zap.Error(err))
		metas = nil
	}
	if len(metas) > 0 {
		return metas, ProvenanceCache, nil
	}
	return fallback.ListSheets(), ProvenanceFallback, nil
}

// SheetProblems resolves a sheet-detail request: store first, bundled
// fallback second. An unknown key is a not-found, never a fallback
// list.
func (s *CatalogService) SheetProblems(ctx context.Context, key string) ([]model.SheetProblemItem, string, error) {
	stored, err := s.problems.FindBySheetKey(ctx, key)
	if err != nil {
		logger.Warn(ctx, "problem store read failed, falling back",
			zap.String("sheet", key), zap.Error(err))
		stored = nil
	}
	if len(stored) > 0 {
		items := make([]model.SheetProblemItem, 0, len(stored))
		for _, p := range stored {
			items = append(items, model.SheetProblemItem{
				ID:         p.ID,
				Title:      p.Title,
				URL:        p.URL,
				Topic:      p.Topic,
				Difficulty: p.Difficulty,
				Source:     p.Source,
			})
		}
		return items, ProvenanceCache, nil
	}

	items, ok := fallback.SheetProblems(key)
	if !ok {
		return nil, "", errors.New(errors.SheetNotFound).WithMessage("Sheet not found")
	}
	return items, ProvenanceFallback, nil
}

// Contests fetches upcoming and running contests. There is no
// fallback tier for contests; adapter failure surfaces to the caller.
func (s *CatalogService) Contests(ctx context.Context) ([]model.Contest, error) {
	raw, err := s.cp.FetchContests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ContestFetchFailed)
	}
	contests := make([]model.Contest, 0, len(raw))
	for _, c := range raw {
		contests = append(contests, s.cp.FormatContest(c))
	}
	return contests, nil
}
