package repository

import (
	"context"

	"algoprep/internal/catalog/model"
	"algoprep/internal/common/db"
	"algoprep/pkg/errors"
)

// NoStoreProblemRepository serves a deployment without a database. Reads
// report zero rows so the resolution pipeline falls through to the
// bundled data; writes fail.
type NoStoreProblemRepository struct{}

func NewNoStoreProblemRepository() ProblemRepository {
	return NoStoreProblemRepository{}
}

func (NoStoreProblemRepository) FindBySheetKey(ctx context.Context, key string) ([]model.Problem, error) {
	return nil, nil
}

func (NoStoreProblemRepository) Upsert(ctx context.Context, tx db.Transaction, problem model.Problem, sheetKey string) error {
	return errors.New(errors.DatabaseError).WithMessage("no database configured")
}

func (NoStoreProblemRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

// NoStoreSheetRepository is the sheet-side counterpart.
type NoStoreSheetRepository struct{}

func NewNoStoreSheetRepository() SheetRepository {
	return NoStoreSheetRepository{}
}

func (NoStoreSheetRepository) FindAll(ctx context.Context) ([]model.SheetMeta, error) {
	return nil, nil
}

func (NoStoreSheetRepository) Upsert(ctx context.Context, tx db.Transaction, meta model.SheetMeta) error {
	return errors.New(errors.DatabaseError).WithMessage("no database configured")
}

func (NoStoreSheetRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}
