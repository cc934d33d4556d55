package migration

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-service/app/utils/logger"
)

func newTestMigrator(t *testing.T, files fstest.MapFS) *Migrator {
	t.Helper()

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return NewMigrator(nil, testLogger, files)
}

func TestMigrator_LoadMigrations(t *testing.T) {
	files := fstest.MapFS{
		"002_create_drafts_table.up.sql":   {Data: []byte("CREATE TABLE drafts ()")},
		"002_create_drafts_table.down.sql": {Data: []byte("DROP TABLE drafts")},
		"001_create_posts_table.up.sql":    {Data: []byte("CREATE TABLE posts ()")},
		"001_create_posts_table.down.sql":  {Data: []byte("DROP TABLE posts")},
	}

	migrator := newTestMigrator(t, files)
	migrations, err := migrator.LoadMigrations()

	require.NoError(t, err)
	require.Len(t, migrations, 2)

	// Sorted by version regardless of filesystem order
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_posts_table", migrations[0].Name)
	assert.Equal(t, "CREATE TABLE posts ()", migrations[0].UpSQL)
	assert.Equal(t, "DROP TABLE posts", migrations[0].DownSQL)

	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "create_drafts_table", migrations[1].Name)
}

func TestMigrator_LoadMigrations_MissingDownFile(t *testing.T) {
	files := fstest.MapFS{
		"001_create_posts_table.up.sql": {Data: []byte("CREATE TABLE posts ()")},
	}

	migrator := newTestMigrator(t, files)
	_, err := migrator.LoadMigrations()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "down migration")
}

func TestMigrator_LoadMigrations_SkipsMalformedNames(t *testing.T) {
	files := fstest.MapFS{
		"notaversion_table.up.sql":   {Data: []byte("CREATE TABLE bad ()")},
		"notaversion_table.down.sql": {Data: []byte("DROP TABLE bad")},
		"README.md":                  {Data: []byte("docs")},
	}

	migrator := newTestMigrator(t, files)
	migrations, err := migrator.LoadMigrations()

	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestChecksum(t *testing.T) {
	a := checksum("CREATE TABLE posts ()")
	b := checksum("CREATE TABLE posts ()")
	c := checksum("CREATE TABLE drafts ()")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
