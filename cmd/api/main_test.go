package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BACKEND_MODE", "memory")
	t.Setenv("SERVER_STORAGE_PATH", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestExportToStdout(t *testing.T) {
	out, err := runCLI(t, "export", "--severity", "mild")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,student_id,injury_type,severity,body_part,date_reported,date_returned,days_lost,status", lines[0])
	for _, line := range lines[1:] {
		assert.Contains(t, line, `"mild"`)
	}
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := runCLI(t, "export", "--start", "2024-04-01", "-o", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"inj-006"`)
	assert.Contains(t, string(content), `"inj-007"`)
	assert.NotContains(t, string(content), `"inj-001"`)
}

func TestExportRejectsBadFilter(t *testing.T) {
	_, err := runCLI(t, "export", "--severity", "extreme")
	assert.Error(t, err)
}

func TestMigrateNeedsPostgres(t *testing.T) {
	_, err := runCLI(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}
