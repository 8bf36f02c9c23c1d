package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/clientbook/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFindCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "clientbook.db")
	configPath := filepath.Join(dir, "missing.toml")

	out, err := run(t, "--config", configPath, "--db", dbPath, "fixtures")
	require.NoError(t, err)
	assert.Contains(t, out, dbPath)

	out, err = run(t, "--config", configPath, "--db", dbPath, "find", "HIGHNETWORTH", "irfan")
	require.NoError(t, err)
	assert.Contains(t, out, "3 contacts listed!")
	assert.Contains(t, out, "Charlotte Oliveiro")
	assert.Contains(t, out, "Irfan Ibrahim")
	assert.Contains(t, out, "Roy Balakrishnan")
	assert.NotContains(t, out, "Alex Yeoh")
}

func TestFindCommand_RequiresKeyword(t *testing.T) {
	_, err := run(t, "find")
	assert.Error(t, err)
}

func TestInitCommand_RefusesExisting(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "clientbook.db")
	configPath := filepath.Join(dir, "missing.toml")

	_, err := run(t, "--config", configPath, "--db", dbPath, "init")
	require.NoError(t, err)

	_, err = run(t, "--config", configPath, "--db", dbPath, "init")
	assert.Error(t, err)
}

func TestPrintContacts(t *testing.T) {
	var out bytes.Buffer
	printContacts(&out, []model.Contact{
		{Name: "Bob Lee", Phone: "9123", Tags: []model.Tag{"z", "a"}},
	})
	assert.Equal(t, "1 contacts listed!\n1. Bob Lee  9123  [a, z]\n", out.String())
}
