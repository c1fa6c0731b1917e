package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdharness/internal/config"
	"mdharness/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.OutputJSONDir = filepath.Join(t.TempDir(), "nested", "storage")
	return cfg
}

func TestNewRecord_KeepsOnlyFailures(t *testing.T) {
	outcomes := []domain.Outcome{
		{Case: "a", Status: domain.StatusPassed},
		{Case: "b", Status: domain.StatusFailed, Output: "<p>b</p>"},
		{Case: "c", Status: domain.StatusErrored, ExitCode: 139},
	}
	tally := domain.Tally{Passed: 1, Failed: 1, Errored: 1}
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	record := NewRecord("md4c", "md2html", started, 1500*time.Millisecond, tally, outcomes)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, "md4c", record.Corpus)
	assert.Equal(t, "1.5s", record.Duration)
	require.Len(t, record.Details, 2)
	assert.Equal(t, "b", record.Details[0].Case)
	assert.Equal(t, "c", record.Details[1].Case)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := testConfig(t)
	s := NewJSONStorage(cfg)

	record := NewRecord("cmark", "engine:goldmark", time.Now().UTC().Truncate(time.Second), time.Second,
		domain.Tally{Failed: 1},
		[]domain.Outcome{{Case: "nested brackets", Status: domain.StatusFailed, Flags: []string{"--ftables"}}})

	require.NoError(t, s.Save(record))
	_, err := os.Stat(cfg.GetOutputPath())
	require.NoError(t, err)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, record.ID, loaded.ID)
	assert.True(t, record.StartedAt.Equal(loaded.StartedAt))
	assert.Equal(t, record.Tally, loaded.Tally)
	assert.Equal(t, record.Details, loaded.Details)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	_, err := NewJSONStorage(testConfig(t)).Load()
	assert.ErrorContains(t, err, "read record file")
}

func TestJSONStorage_LoadCorrupt(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.OutputJSONDir, 0755))
	require.NoError(t, os.WriteFile(cfg.GetOutputPath(), []byte("{not json"), 0644))

	_, err := NewJSONStorage(cfg).Load()
	assert.ErrorContains(t, err, "parse record")
}
