package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"algoprep/internal/catalog/model"
	"algoprep/internal/common/cache"
	"algoprep/internal/common/db"
)

const (
	defaultSheetProblemsTTL      = 30 * time.Minute
	defaultSheetProblemsEmptyTTL = 5 * time.Minute
	sheetProblemsKeyPrefix       = "catalog:sheet:problems:"
)

// ProblemRepository stores previously resolved or seeded problems.
type ProblemRepository interface {
	FindBySheetKey(ctx context.Context, key string) ([]model.Problem, error)
	Upsert(ctx context.Context, tx db.Transaction, problem model.Problem, sheetKey string) error
	Count(ctx context.Context) (int64, error)
}

type MySQLProblemRepository struct {
	db       db.Database
	cache    cache.Cache
	ttl      time.Duration
	emptyTTL time.Duration
}

// NewProblemRepository creates a problem repository. cacheClient may
// be nil, in which case reads go straight to the database.
func NewProblemRepository(database db.Database, cacheClient cache.Cache) ProblemRepository {
	return NewProblemRepositoryWithTTL(database, cacheClient, defaultSheetProblemsTTL, defaultSheetProblemsEmptyTTL)
}

func NewProblemRepositoryWithTTL(database db.Database, cacheClient cache.Cache, ttl, emptyTTL time.Duration) ProblemRepository {
	if ttl <= 0 {
		ttl = defaultSheetProblemsTTL
	}
	if emptyTTL <= 0 {
		emptyTTL = defaultSheetProblemsEmptyTTL
	}
	return &MySQLProblemRepository{
		db:       database,
		cache:    cacheClient,
		ttl:      ttl,
		emptyTTL: emptyTTL,
	}
}

func (r *MySQLProblemRepository) FindBySheetKey(ctx context.Context, key string) ([]model.Problem, error) {
	if r.cache != nil {
		return cache.GetWithCached[[]model.Problem](
			ctx,
			r.cache,
			sheetProblemsKey(key),
			cache.JitterTTL(r.ttl),
			cache.JitterTTL(r.emptyTTL),
			func(problems []model.Problem) bool { return len(problems) == 0 },
			marshalProblems,
			unmarshalProblems,
			func(ctx context.Context) ([]model.Problem, error) {
				return r.findBySheetKeyFromDB(ctx, key)
			},
		)
	}
	return r.findBySheetKeyFromDB(ctx, key)
}

func (r *MySQLProblemRepository) findBySheetKeyFromDB(ctx context.Context, key string) ([]model.Problem, error) {
	query := `
		SELECT external_id, title, difficulty, topic, tags, url, source, rating, acceptance_rate
		FROM problem
		WHERE sheet_key = ?
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []model.Problem
	for rows.Next() {
		problem, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, problem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return problems, nil
}

func (r *MySQLProblemRepository) Upsert(ctx context.Context, tx db.Transaction, problem model.Problem, sheetKey string) error {
	tags, err := json.Marshal(problem.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO problem (external_id, title, difficulty, topic, tags, url, source, rating, acceptance_rate, sheet_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			title = VALUES(title),
			difficulty = VALUES(difficulty),
			topic = VALUES(topic),
			tags = VALUES(tags),
			url = VALUES(url),
			rating = VALUES(rating),
			acceptance_rate = VALUES(acceptance_rate),
			sheet_key = VALUES(sheet_key)`

	_, err = db.GetQuerier(r.db, tx).Exec(ctx, query,
		problem.ID,
		problem.Title,
		problem.Difficulty,
		problem.Topic,
		string(tags),
		problem.URL,
		string(problem.Source),
		nullableInt(problem.Rating),
		nullableFloat(problem.AcceptanceRate),
		nullableString(sheetKey),
	)
	if err != nil {
		return err
	}

	if r.cache != nil && sheetKey != "" {
		_ = r.cache.Del(ctx, sheetProblemsKey(sheetKey))
	}
	return nil
}

func (r *MySQLProblemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM problem")
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanProblem(rows db.Rows) (model.Problem, error) {
	var (
		problem        model.Problem
		tags           string
		source         string
		rating         sql.NullInt64
		acceptanceRate sql.NullFloat64
	)
	err := rows.Scan(
		&problem.ID,
		&problem.Title,
		&problem.Difficulty,
		&problem.Topic,
		&tags,
		&problem.URL,
		&source,
		&rating,
		&acceptanceRate,
	)
	if err != nil {
		return model.Problem{}, err
	}

	if tags != "" {
		_ = json.Unmarshal([]byte(tags), &problem.Tags)
	}
	problem.Source = model.Source(source)
	if rating.Valid {
		problem.Rating = int(rating.Int64)
	}
	if acceptanceRate.Valid {
		problem.AcceptanceRate = acceptanceRate.Float64
	}
	return problem, nil
}

func sheetProblemsKey(key string) string {
	return sheetProblemsKeyPrefix + key
}

func marshalProblems(problems []model.Problem) string {
	data, err := json.Marshal(problems)
	if err != nil {
		return ""
	}
	return string(data)
}

func unmarshalProblems(data string) ([]model.Problem, error) {
	var problems []model.Problem
	if err := json.Unmarshal([]byte(data), &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

func nullableInt(value int) interface{} {
	if value == 0 {
		return nil
	}
	return value
}

func nullableFloat(value float64) interface{} {
	if value == 0 {
		return nil
	}
	return value
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
