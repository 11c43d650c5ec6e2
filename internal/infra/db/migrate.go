package db

import "database/sql"

// MigrateUp creates the schema if it does not exist. Every statement is
// idempotent; migrations run once at deployment time, never version-gated at
// runtime.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS sources (
    id           SERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    url          TEXT NOT NULL,
    crawl_url    TEXT NOT NULL,
    css_selector TEXT NOT NULL,
    last_url     TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    cycle_sec    INTEGER NOT NULL DEFAULT 0,
    disabled     BOOLEAN NOT NULL DEFAULT FALSE
)`); err != nil {
		return err
	}

	// Live and archive stores are two disjoint tables with identical shape.
	// A page row exists in exactly one of them at any time. Both tables draw
	// ids from one shared sequence so a page id identifies exactly one row
	// across both stores; id-keyed operations rely on that to try the live
	// store first and fall back to the archive.
	if _, err := database.Exec(`CREATE SEQUENCE IF NOT EXISTS page_ids`); err != nil {
		return err
	}
	for _, table := range []string{"pages", "archived_pages"} {
		if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS ` + table + ` (
    id           BIGINT PRIMARY KEY DEFAULT nextval('page_ids'),
    source_id    INTEGER NOT NULL DEFAULT 0,
    source_title TEXT NOT NULL DEFAULT '',
    title        TEXT NOT NULL,
    url          TEXT NOT NULL,
    image_path   TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    detected_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    is_read      BOOLEAN NOT NULL DEFAULT FALSE
)`); err != nil {
			return err
		}
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    name TEXT PRIMARY KEY
)`); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_pages_detected_at ON pages(detected_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_source_id ON pages(source_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_category ON pages(category)`,
		`CREATE INDEX IF NOT EXISTS idx_archived_pages_detected_at ON archived_pages(detected_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_archived_pages_category ON archived_pages(category)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
