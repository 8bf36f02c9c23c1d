package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/pdxmph/clientbook/internal/model"
)

// birthdayLayout is how birthdays are stored
const birthdayLayout = "2006-01-02"

// contactRow mirrors a row of the contacts table
type contactRow struct {
	ID         int
	Name       string
	Phone      sql.NullString
	Email      sql.NullString
	Address    sql.NullString
	Birthday   sql.NullString
	HasPaid    bool
	Frequency  string
	ProfilePic sql.NullString
}

// toContact converts a row and its tags to an immutable model value.
// Malformed birthdays are treated as unknown.
func (r contactRow) toContact(tags []model.Tag) model.Contact {
	c := model.Contact{
		ID:         r.ID,
		Name:       strings.TrimSpace(strings.ReplaceAll(r.Name, "\n", " ")),
		Phone:      r.Phone.String,
		Email:      r.Email.String,
		Address:    r.Address.String,
		HasPaid:    r.HasPaid,
		Frequency:  model.ParseFrequency(r.Frequency),
		ProfilePic: r.ProfilePic.String,
		Tags:       tags,
	}
	if r.Birthday.Valid {
		if t, err := time.Parse(birthdayLayout, r.Birthday.String); err == nil {
			c.Birthday = t
		}
	}
	return c
}

// NewNullString creates a sql.NullString from a string
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func birthdayValue(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return NewNullString(t.Format(birthdayLayout))
}

func frequencyValue(f model.Frequency) string {
	if f == "" {
		return string(model.FrequencyNone)
	}
	return string(f)
}
