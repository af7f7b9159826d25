package repository

import (
	"context"
	"time"

	"algoprep/internal/catalog/fallback"
	"algoprep/internal/catalog/model"
	"algoprep/internal/common/cache"
	"algoprep/internal/common/db"
	"algoprep/pkg/errors"
)

const (
	seedLockKey = "catalog:seed:lock"
	seedLockTTL = 2 * time.Minute
)

// Seeder populates the store from the bundled fallback catalog. The
// operation is idempotent: every write is an upsert keyed on the
// store's uniqueness constraints, so running it twice leaves counts
// unchanged.
type Seeder struct {
	db       db.Database
	problems ProblemRepository
	sheets   SheetRepository
	cache    cache.Cache
}

// NewSeeder creates a seeder. cacheClient may be nil; when present it
// is used to guard against concurrent seed runs.
func NewSeeder(database db.Database, problems ProblemRepository, sheets SheetRepository, cacheClient cache.Cache) *Seeder {
	return &Seeder{
		db:       database,
		problems: problems,
		sheets:   sheets,
		cache:    cacheClient,
	}
}

// Run creates the tables when absent and upserts the bundled sheets
// and fallback problem lists in one transaction.
func (s *Seeder) Run(ctx context.Context) error {
	if s.cache != nil {
		acquired, err := s.cache.TryLock(ctx, seedLockKey, seedLockTTL)
		if err == nil && !acquired {
			return errors.New(errors.SheetSeedFailed).WithMessage("seeding already in progress")
		}
		if err == nil {
			defer func() { _ = s.cache.Unlock(ctx, seedLockKey) }()
		}
	}

	if err := EnsureSchema(ctx, s.db); err != nil {
		return errors.Wrap(err, errors.SheetSeedFailed)
	}

	err := s.db.Transaction(ctx, func(tx db.Transaction) error {
		for _, sheet := range fallback.Sheets() {
			if err := s.sheets.Upsert(ctx, tx, sheet.Meta); err != nil {
				return err
			}
			for _, item := range sheet.Problems {
				if err := s.problems.Upsert(ctx, tx, sheetItemToProblem(item), sheet.Meta.Key); err != nil {
					return err
				}
			}
		}

		for _, problem := range fallback.DSAProblems() {
			if err := s.problems.Upsert(ctx, tx, problem, ""); err != nil {
				return err
			}
		}
		for _, problem := range fallback.CPProblems() {
			if err := s.problems.Upsert(ctx, tx, problem, ""); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.SheetSeedFailed)
	}
	return nil
}

// sheetItemToProblem widens a sheet item into a storable problem row.
// Sheet items carry no provider tags.
func sheetItemToProblem(item model.SheetProblemItem) model.Problem {
	return model.Problem{
		ID:         item.ID,
		Title:      item.Title,
		Difficulty: item.Difficulty,
		Topic:      item.Topic,
		Tags:       []string{},
		URL:        item.URL,
		Source:     item.Source,
	}
}
