package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdxmph/clientbook/internal/model"
)

// ErrNotFound is returned when a contact id does not exist
var ErrNotFound = errors.New("contact not found")

// DB wraps the database connection
type DB struct {
	conn   *sql.DB
	logger *zap.Logger
}

const contactColumns = `
	id, name, phone, email, address, birthday,
	has_paid, frequency, profile_pic_path`

// Open creates a new database connection
func Open(dbPath string, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s\nRun 'clientbook init' to create it", dbPath)
	}

	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn, logger: logger.Named("db")}

	if err := db.RunMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContactRow(s rowScanner) (contactRow, error) {
	var r contactRow
	err := s.Scan(
		&r.ID, &r.Name, &r.Phone, &r.Email, &r.Address, &r.Birthday,
		&r.HasPaid, &r.Frequency, &r.ProfilePic,
	)
	return r, err
}

// ListContacts returns all contacts ordered by name, tags attached
func (db *DB) ListContacts() ([]model.Contact, error) {
	rows, err := db.conn.Query(`SELECT ` + contactColumns + ` FROM contacts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contactRows []contactRow
	for rows.Next() {
		r, err := scanContactRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contactRows = append(contactRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	tags, err := db.allTags()
	if err != nil {
		return nil, err
	}

	contacts := make([]model.Contact, 0, len(contactRows))
	for _, r := range contactRows {
		contacts = append(contacts, r.toContact(tags[r.ID]))
	}
	return contacts, nil
}

// allTags returns every tag keyed by contact id
func (db *DB) allTags() (map[int][]model.Tag, error) {
	rows, err := db.conn.Query(`SELECT contact_id, tag FROM contact_tags ORDER BY contact_id, tag`)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int][]model.Tag)
	for rows.Next() {
		var id int
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags[id] = append(tags[id], model.Tag(tag))
	}
	return tags, rows.Err()
}

// GetContact retrieves a single contact by ID
func (db *DB) GetContact(id int) (model.Contact, error) {
	r, err := scanContactRow(db.conn.QueryRow(`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Contact{}, ErrNotFound
	}
	if err != nil {
		return model.Contact{}, fmt.Errorf("querying contact: %w", err)
	}

	rows, err := db.conn.Query(`SELECT tag FROM contact_tags WHERE contact_id = ? ORDER BY tag`, id)
	if err != nil {
		return model.Contact{}, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return model.Contact{}, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, model.Tag(tag))
	}
	if err := rows.Err(); err != nil {
		return model.Contact{}, fmt.Errorf("iterating tags: %w", err)
	}

	return r.toContact(tags), nil
}

// AddContact creates a new contact with its tags
func (db *DB) AddContact(c model.Contact) (int64, error) {
	if strings.TrimSpace(c.Name) == "" {
		return 0, fmt.Errorf("contact name cannot be empty")
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO contacts (
			name, phone, email, address, birthday,
			has_paid, frequency, profile_pic_path,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`,
		c.Name,
		NewNullString(c.Phone),
		NewNullString(c.Email),
		NewNullString(c.Address),
		birthdayValue(c.Birthday),
		c.HasPaid,
		frequencyValue(c.Frequency),
		NewNullString(c.ProfilePic),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting insert ID: %w", err)
	}

	if err := insertTags(tx, int(id), c.Tags); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing contact: %w", err)
	}

	db.logger.Debug("added contact", zap.Int64("id", id), zap.Int("tags", len(c.Tags)))
	return id, nil
}

// UpdateContact replaces all fields and tags of the contact with c.ID
func (db *DB) UpdateContact(c model.Contact) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE contacts
		SET name = ?,
		    phone = ?,
		    email = ?,
		    address = ?,
		    birthday = ?,
		    has_paid = ?,
		    frequency = ?,
		    profile_pic_path = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		c.Name,
		NewNullString(c.Phone),
		NewNullString(c.Email),
		NewNullString(c.Address),
		birthdayValue(c.Birthday),
		c.HasPaid,
		frequencyValue(c.Frequency),
		NewNullString(c.ProfilePic),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM contact_tags WHERE contact_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	if err := insertTags(tx, c.ID, c.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// SetPaymentStatus records whether the contact has paid
func (db *DB) SetPaymentStatus(contactID int, paid bool) error {
	result, err := db.conn.Exec(
		`UPDATE contacts SET has_paid = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		paid, contactID)
	if err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}
	return requireAffected(result)
}

// SetTags replaces the contact's tags
func (db *DB) SetTags(contactID int, tags []model.Tag) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contact_tags WHERE contact_id = ?`, contactID); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	if err := insertTags(tx, contactID, tags); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteContact permanently deletes a contact and its tags
func (db *DB) DeleteContact(contactID int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contact_tags WHERE contact_id = ?`, contactID); err != nil {
		return fmt.Errorf("deleting tags: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM contacts WHERE id = ?`, contactID)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

// insertTags stores tags, skipping blanks and repeats of the same label
func insertTags(tx *sql.Tx, contactID int, tags []model.Tag) error {
	for _, tag := range tags {
		label := strings.TrimSpace(tag.String())
		if label == "" {
			continue
		}
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO contact_tags (contact_id, tag) VALUES (?, ?)`,
			contactID, label)
		if err != nil {
			return fmt.Errorf("inserting tag %q: %w", label, err)
		}
	}
	return nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
