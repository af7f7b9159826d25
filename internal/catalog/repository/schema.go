package repository

import (
	"context"

	"algoprep/internal/common/db"
)

// Table definitions for the persistent cache store. Uniqueness is
// enforced on (source, external_id) for problems and on sheet_key for
// sheets, matching the upsert keys used by the seeder.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS problem (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		external_id VARCHAR(64) NOT NULL,
		title VARCHAR(255) NOT NULL,
		difficulty VARCHAR(16) NOT NULL,
		topic VARCHAR(64) NOT NULL,
		tags TEXT NOT NULL,
		url VARCHAR(512) NOT NULL,
		source VARCHAR(16) NOT NULL,
		rating INT NULL,
		acceptance_rate DOUBLE NULL,
		sheet_key VARCHAR(64) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uk_source_external (source, external_id),
		KEY idx_sheet_key (sheet_key)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS sheet (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		sheet_key VARCHAR(64) NOT NULL,
		title VARCHAR(255) NOT NULL,
		author VARCHAR(128) NOT NULL,
		description TEXT NOT NULL,
		topics TEXT NOT NULL,
		total INT NOT NULL,
		reference_url VARCHAR(512) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uk_sheet_key (sheet_key)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the store tables when they do not exist yet.
func EnsureSchema(ctx context.Context, database db.Database) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
