package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	assert.NoError(t, db.Ping())
}

func TestMigrationsApply(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='clothing_items'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "clothing_items", tableName)
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	// A second run against an up-to-date database is a no-op.
	assert.NoError(t, runMigrations(db))
}

func TestOpenOnDisk(t *testing.T) {
	db, err := Open(t.TempDir() + "/wadrobe.db")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	_, err = db.Exec(`INSERT INTO clothing_items (user_id, name, category, color, image_path)
		VALUES (1, 'Tee', 'top', 'white', '/uploads/1.jpg')`)
	assert.NoError(t, err)
}
