package db

import (
	"database/sql"
)

// MigrateUp creates the schema. Statements are idempotent so the function can
// run at every startup.
//
// The UNIQUE constraint on interactions(user_id, article_id, kind) is load
// bearing: it is the backstop that keeps duplicate-interaction submissions
// idempotent under concurrent requests. Application-level existence checks
// race between check and insert; the constraint does not.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    username      VARCHAR(30) NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    interests     TEXT[] NOT NULL DEFAULT '{}',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER NOT NULL REFERENCES users(id),
    title      VARCHAR(200) NOT NULL,
    content    TEXT NOT NULL,
    author     TEXT NOT NULL DEFAULT '',
    summary    VARCHAR(500) NOT NULL,
    tags       TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// No FK to articles: interactions outlive article deletion (orphans are
	// tolerated and filtered at read time).
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS interactions (
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER NOT NULL REFERENCES users(id),
    article_id INTEGER NOT NULL,
    kind       VARCHAR(10) NOT NULL CHECK (kind IN ('view', 'like', 'share')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, article_id, kind)
)`); err != nil {
		return err
	}

	indexes := []string{
		// Interaction listing always sorts the requesting user's records by
		// recency.
		`CREATE INDEX IF NOT EXISTS idx_interactions_user_created ON interactions(user_id, created_at DESC)`,
		// Per-article filter within a user's records.
		`CREATE INDEX IF NOT EXISTS idx_interactions_article_id ON interactions(article_id)`,
		// Article listing sorts by recency.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// Owner lookups.
		`CREATE INDEX IF NOT EXISTS idx_articles_user_id ON articles(user_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the schema in reverse dependency order.
// Use with caution: this deletes all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS interactions`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS users`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
