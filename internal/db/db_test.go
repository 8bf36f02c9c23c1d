package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/pdxmph/clientbook/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clientbook.db")
	require.NoError(t, Initialize(path))

	database, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func names(contacts []model.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.Name)
	}
	return out
}

func TestInitialize_RefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clientbook.db")
	require.NoError(t, Initialize(path))

	err := Initialize(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clientbook init")
}

func TestAddAndGetContact(t *testing.T) {
	database := newTestDB(t)

	in := model.Contact{
		Name:       "Alice Tan",
		Phone:      "94351253",
		Email:      "alice@example.com",
		Address:    "123 Jurong West Ave 6",
		Birthday:   time.Date(1990, time.April, 1, 0, 0, 0, 0, time.UTC),
		HasPaid:    true,
		Frequency:  model.FrequencyQuarterly,
		ProfilePic: "alice.png",
		Tags:       []model.Tag{"midNetworth", "friends", "friends", " "},
	}

	id, err := database.AddContact(in)
	require.NoError(t, err)

	got, err := database.GetContact(int(id))
	require.NoError(t, err)

	want := in
	want.ID = int(id)
	want.Tags = []model.Tag{"friends", "midNetworth"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("contact mismatch (-want +got):\n%s", diff)
	}
}

func TestAddContact_RequiresName(t *testing.T) {
	database := newTestDB(t)
	_, err := database.AddContact(model.Contact{Name: "  "})
	assert.Error(t, err)
}

func TestAddContact_OptionalFieldsStayEmpty(t *testing.T) {
	database := newTestDB(t)

	id, err := database.AddContact(model.Contact{Name: "Bob Lee"})
	require.NoError(t, err)

	got, err := database.GetContact(int(id))
	require.NoError(t, err)
	assert.Empty(t, got.Phone)
	assert.True(t, got.Birthday.IsZero())
	assert.Equal(t, model.FrequencyNone, got.Frequency)
	assert.Empty(t, got.Tags)
}

func TestGetContact_NotFound(t *testing.T) {
	database := newTestDB(t)
	_, err := database.GetContact(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListContacts_OrderedWithTags(t *testing.T) {
	database := newTestDB(t)

	_, err := database.AddContact(model.Contact{Name: "Zed", Tags: []model.Tag{"b", "a"}})
	require.NoError(t, err)
	_, err = database.AddContact(model.Contact{Name: "Amy"})
	require.NoError(t, err)

	contacts, err := database.ListContacts()
	require.NoError(t, err)

	assert.Equal(t, []string{"Amy", "Zed"}, names(contacts))
	assert.Empty(t, contacts[0].Tags)
	assert.Equal(t, []model.Tag{"a", "b"}, contacts[1].Tags)
}

func TestUpdateContact(t *testing.T) {
	database := newTestDB(t)

	id, err := database.AddContact(model.Contact{Name: "Bob", Tags: []model.Tag{"old"}})
	require.NoError(t, err)

	updated := model.Contact{
		ID:        int(id),
		Name:      "Bob Lee",
		Email:     "bob@example.com",
		Frequency: model.FrequencyYearly,
		Tags:      []model.Tag{"highNetworth"},
	}
	require.NoError(t, database.UpdateContact(updated))

	got, err := database.GetContact(int(id))
	require.NoError(t, err)
	assert.Equal(t, "Bob Lee", got.Name)
	assert.Equal(t, "bob@example.com", got.Email)
	assert.Equal(t, model.FrequencyYearly, got.Frequency)
	assert.Equal(t, []model.Tag{"highNetworth"}, got.Tags)

	updated.ID = 999
	assert.ErrorIs(t, database.UpdateContact(updated), ErrNotFound)
}

func TestSetPaymentStatus(t *testing.T) {
	database := newTestDB(t)

	id, err := database.AddContact(model.Contact{Name: "Bob"})
	require.NoError(t, err)

	require.NoError(t, database.SetPaymentStatus(int(id), true))
	got, err := database.GetContact(int(id))
	require.NoError(t, err)
	assert.True(t, got.HasPaid)

	assert.ErrorIs(t, database.SetPaymentStatus(999, true), ErrNotFound)
}

func TestSetTags(t *testing.T) {
	database := newTestDB(t)

	id, err := database.AddContact(model.Contact{Name: "Bob", Tags: []model.Tag{"x"}})
	require.NoError(t, err)

	require.NoError(t, database.SetTags(int(id), []model.Tag{"lowNetworth", "family"}))
	got, err := database.GetContact(int(id))
	require.NoError(t, err)
	assert.Equal(t, []model.Tag{"family", "lowNetworth"}, got.Tags)

	require.NoError(t, database.SetTags(int(id), nil))
	got, err = database.GetContact(int(id))
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestDeleteContact(t *testing.T) {
	database := newTestDB(t)

	id, err := database.AddContact(model.Contact{Name: "Bob", Tags: []model.Tag{"x"}})
	require.NoError(t, err)

	require.NoError(t, database.DeleteContact(int(id)))
	_, err = database.GetContact(int(id))
	assert.ErrorIs(t, err, ErrNotFound)

	var orphans int
	require.NoError(t, database.conn.QueryRow(`SELECT COUNT(*) FROM contact_tags`).Scan(&orphans))
	assert.Zero(t, orphans)

	assert.ErrorIs(t, database.DeleteContact(int(id)), ErrNotFound)
}

func TestMigrations_UpgradeOldSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = conn.Exec(`
		CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			address TEXT,
			birthday TEXT,
			has_paid BOOLEAN NOT NULL DEFAULT 0,
			frequency TEXT NOT NULL DEFAULT 'none'
		);
		INSERT INTO contacts (name) VALUES ('Legacy Client');
	`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	database, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer database.Close()

	contacts, err := database.ListContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Legacy Client", contacts[0].Name)
	assert.Empty(t, contacts[0].ProfilePic)

	require.NoError(t, database.SetTags(contacts[0].ID, []model.Tag{"legacy"}))

	// running again is a no-op
	require.NoError(t, database.RunMigrations())
}

func TestCreateFixturesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.db")
	require.NoError(t, CreateFixturesDatabase(path, zap.NewNop()))

	database, err := Open(path, nil)
	require.NoError(t, err)
	defer database.Close()

	contacts, err := database.ListContacts()
	require.NoError(t, err)
	assert.Len(t, contacts, len(Fixtures()))

	high := model.ParseKeywords("highnetworth").Filter(contacts)
	assert.Equal(t, []string{"Charlotte Oliveiro", "Roy Balakrishnan"}, names(high))
}
