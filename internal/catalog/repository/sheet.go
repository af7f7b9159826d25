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
	defaultSheetListTTL      = 30 * time.Minute
	defaultSheetListEmptyTTL = 5 * time.Minute
	sheetListKey             = "catalog:sheet:list"
)

// SheetRepository stores curated sheet metadata.
type SheetRepository interface {
	FindAll(ctx context.Context) ([]model.SheetMeta, error)
	Upsert(ctx context.Context, tx db.Transaction, meta model.SheetMeta) error
	Count(ctx context.Context) (int64, error)
}

type MySQLSheetRepository struct {
	db       db.Database
	cache    cache.Cache
	ttl      time.Duration
	emptyTTL time.Duration
}

// NewSheetRepository creates a sheet repository. cacheClient may be
// nil, in which case reads go straight to the database.
func NewSheetRepository(database db.Database, cacheClient cache.Cache) SheetRepository {
	return NewSheetRepositoryWithTTL(database, cacheClient, defaultSheetListTTL, defaultSheetListEmptyTTL)
}

func NewSheetRepositoryWithTTL(database db.Database, cacheClient cache.Cache, ttl, emptyTTL time.Duration) SheetRepository {
	if ttl <= 0 {
		ttl = defaultSheetListTTL
	}
	if emptyTTL <= 0 {
		emptyTTL = defaultSheetListEmptyTTL
	}
	return &MySQLSheetRepository{
		db:       database,
		cache:    cacheClient,
		ttl:      ttl,
		emptyTTL: emptyTTL,
	}
}

func (r *MySQLSheetRepository) FindAll(ctx context.Context) ([]model.SheetMeta, error) {
	if r.cache != nil {
		return cache.GetWithCached[[]model.SheetMeta](
			ctx,
			r.cache,
			sheetListKey,
			cache.JitterTTL(r.ttl),
			cache.JitterTTL(r.emptyTTL),
			func(metas []model.SheetMeta) bool { return len(metas) == 0 },
			marshalSheetMetas,
			unmarshalSheetMetas,
			r.findAllFromDB,
		)
	}
	return r.findAllFromDB(ctx)
}

func (r *MySQLSheetRepository) findAllFromDB(ctx context.Context) ([]model.SheetMeta, error) {
	query := `
		SELECT sheet_key, title, author, description, topics, total, reference_url
		FROM sheet
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []model.SheetMeta
	for rows.Next() {
		var (
			meta         model.SheetMeta
			topics       string
			referenceURL sql.NullString
		)
		err := rows.Scan(&meta.Key, &meta.Title, &meta.Author, &meta.Description, &topics, &meta.Total, &referenceURL)
		if err != nil {
			return nil, err
		}
		if topics != "" {
			_ = json.Unmarshal([]byte(topics), &meta.Topics)
		}
		if referenceURL.Valid {
			meta.ReferenceURL = referenceURL.String
		}
		metas = append(metas, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return metas, nil
}

func (r *MySQLSheetRepository) Upsert(ctx context.Context, tx db.Transaction, meta model.SheetMeta) error {
	topics, err := json.Marshal(meta.Topics)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sheet (sheet_key, title, author, description, topics, total, reference_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			title = VALUES(title),
			author = VALUES(author),
			description = VALUES(description),
			topics = VALUES(topics),
			total = VALUES(total),
			reference_url = VALUES(reference_url)`

	_, err = db.GetQuerier(r.db, tx).Exec(ctx, query,
		meta.Key,
		meta.Title,
		meta.Author,
		meta.Description,
		string(topics),
		meta.Total,
		nullableString(meta.ReferenceURL),
	)
	if err != nil {
		return err
	}

	if r.cache != nil {
		_ = r.cache.Del(ctx, sheetListKey)
	}
	return nil
}

func (r *MySQLSheetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sheet")
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func marshalSheetMetas(metas []model.SheetMeta) string {
	data, err := json.Marshal(metas)
	if err != nil {
		return ""
	}
	return string(data)
}

func unmarshalSheetMetas(data string) ([]model.SheetMeta, error) {
	var metas []model.SheetMeta
	if err := json.Unmarshal([]byte(data), &metas); err != nil {
		return nil, err
	}
	return metas, nil
}
