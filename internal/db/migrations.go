package db

import (
	"fmt"

	"go.uber.org/zap"
)

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	if err := db.runProfilePicMigration(); err != nil {
		return err
	}

	if err := db.runTagsMigration(); err != nil {
		return err
	}

	return nil
}

// runProfilePicMigration adds profile_pic_path to databases created before
// profile pictures were supported.
func (db *DB) runProfilePicMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('contacts')
		WHERE name = 'profile_pic_path'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for profile_pic_path column: %w", err)
	}

	if count > 0 {
		return nil
	}

	db.logger.Info("running migration", zap.String("migration", "profile_pic_path"))

	_, err = db.conn.Exec(`ALTER TABLE contacts ADD COLUMN profile_pic_path TEXT`)
	if err != nil && err.Error() != "duplicate column name: profile_pic_path" {
		return fmt.Errorf("adding profile_pic_path column: %w", err)
	}

	db.logger.Info("migration completed", zap.String("migration", "profile_pic_path"))
	return nil
}

// runTagsMigration creates the contact_tags table for databases that
// predate tags.
func (db *DB) runTagsMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = 'contact_tags'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for contact_tags table: %w", err)
	}

	if count > 0 {
		return nil
	}

	db.logger.Info("running migration", zap.String("migration", "contact_tags"))

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE contact_tags (
			contact_id INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (contact_id, tag),
			FOREIGN KEY (contact_id) REFERENCES contacts (id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return fmt.Errorf("creating contact_tags table: %w", err)
	}

	if _, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_contact_tags_tag ON contact_tags (tag)`); err != nil {
		return fmt.Errorf("creating contact_tags index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tags migration: %w", err)
	}

	db.logger.Info("migration completed", zap.String("migration", "contact_tags"))
	return nil
}
