package migrations

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/repositories"
)

func TestLoadOrdersByFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.sql": {Data: []byte("SELECT 10;")},
		"002_next.sql":  {Data: []byte("SELECT 2;")},
		"001_init.sql":  {Data: []byte("SELECT 1;")},
		"README.md":     {Data: []byte("ignored")},
	}

	migrations, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	assert.Equal(t, "001", migrations[0].Version)
	assert.Equal(t, "002", migrations[1].Version)
	assert.Equal(t, "010", migrations[2].Version)
	assert.Equal(t, "SELECT 2;", migrations[1].SQL)
}

func TestLoadRejectsDuplicateVersions(t *testing.T) {
	_, err := Load(fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 1;")},
	})
	assert.Error(t, err)
}

func TestBundledSchemaCoversGatewayTables(t *testing.T) {
	migrations, err := Load(Files())
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	var all strings.Builder
	for _, m := range migrations {
		all.WriteString(m.SQL)
	}
	schema := all.String()

	gw := repositories.TableColumns()
	for table, columns := range gw {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
		for _, column := range columns {
			assert.Contains(t, schema, "    "+column+" ", "%s.%s", table, column)
		}
	}
	assert.Contains(t, schema, "pg_notify('message_inserted'")
	assert.Contains(t, schema, "CONSTRAINT users_email_key UNIQUE")
}
