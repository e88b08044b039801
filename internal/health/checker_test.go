package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/milestone/internal/config"
	"github.com/Dallionking/milestone/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataDir:     dir,
		Theme:       config.ThemeConfig{Default: "light"},
		Celebration: config.CelebrationConfig{Seconds: 3},
		Log:         config.LogConfig{File: filepath.Join(dir, "milestone.log"), Level: "info"},
	}
}

func resultsByName(r *Report) map[string]CheckResult {
	out := make(map[string]CheckResult, len(r.Results))
	for _, res := range r.Results {
		out[res.Name] = res
	}
	return out
}

func TestStorageChecksOnFreshDir(t *testing.T) {
	c := NewChecker(testConfig(t), "")
	r := c.RunCategory(context.Background(), "storage")

	require.Equal(t, 4, r.Total)
	assert.True(t, r.Healthy)

	got := resultsByName(r)
	assert.Equal(t, StatusPass, got["data-dir"].Status)
	assert.Equal(t, "no saved progress yet", got["checklist-key"].Message)
	assert.Equal(t, "not set, using theme.default", got["theme-key"].Message)
	assert.Equal(t, StatusPass, got["log-file"].Status)
}

func TestStorageChecksReadSavedBoard(t *testing.T) {
	cfg := testConfig(t)
	kv, err := storage.OpenDisk(cfg.DataDir)
	require.NoError(t, err)
	bridge := storage.NewBridge(kv, nil)

	items := make([]bool, 1000)
	for i := 0; i < 300; i++ {
		items[i] = true
	}
	require.NoError(t, bridge.SaveChecklist(items))
	require.NoError(t, bridge.SaveDarkMode(true))

	got := resultsByName(NewChecker(cfg, "").RunCategory(context.Background(), "storage"))
	assert.Equal(t, "300 sold", got["checklist-key"].Message)
	assert.Equal(t, "dark", got["theme-key"].Message)
}

func TestMalformedKeysWarn(t *testing.T) {
	cfg := testConfig(t)
	kv, err := storage.OpenDisk(cfg.DataDir)
	require.NoError(t, err)
	require.NoError(t, kv.Write(storage.ChecklistKey, []byte("{nope")))
	require.NoError(t, kv.Write(storage.DarkModeKey, []byte("yes")))

	r := NewChecker(cfg, "").RunCategory(context.Background(), "storage")
	got := resultsByName(r)
	assert.Equal(t, StatusWarn, got["checklist-key"].Status)
	assert.Equal(t, StatusWarn, got["theme-key"].Status)
	assert.True(t, r.Healthy, "warnings do not fail the report")
	assert.Equal(t, 2, r.Warned)
}

func TestMissingDataDirWarns(t *testing.T) {
	cfg := testConfig(t)
	cfg.DataDir = filepath.Join(cfg.DataDir, "not-yet")

	got := resultsByName(NewChecker(cfg, "").RunCategory(context.Background(), "storage"))
	assert.Equal(t, StatusWarn, got["data-dir"].Status)
	assert.Equal(t, StatusPass, got["checklist-key"].Status)

	_, err := os.Stat(cfg.DataDir)
	assert.ErrorIs(t, err, os.ErrNotExist, "checks must not create the data directory")
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Columns = 2
	cfg.Celebration.Seconds = 0

	r := NewChecker(cfg, "/etc/milestone/config.json").RunCategory(context.Background(), "config")
	got := resultsByName(r)
	assert.False(t, r.Healthy)
	assert.Equal(t, StatusFail, got["config-valid"].Status)
	assert.Contains(t, got["config-valid"].Message, "+1 more")
	assert.Equal(t, "/etc/milestone/config.json", got["config-file"].Message)
}

func TestTerminalChecksOnPlainFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	c := NewChecker(testConfig(t), "")
	c.term = f

	got := resultsByName(c.RunCategory(context.Background(), "terminal"))
	assert.Equal(t, StatusWarn, got["tty"].Status)
	assert.Equal(t, StatusWarn, got["size"].Status)
	assert.Equal(t, StatusWarn, got["color"].Status)
}

func TestCancelledContextFailsRemainingChecks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewChecker(testConfig(t), "").RunAll(ctx)
	assert.Equal(t, r.Total, r.Failed)
	assert.False(t, r.Healthy)
}

func TestFormatReport(t *testing.T) {
	r := NewChecker(testConfig(t), "").RunCategory(context.Background(), "storage")
	out := FormatReport(r)

	assert.Contains(t, out, "Board Health Check")
	assert.Contains(t, out, "Saved Board")
	assert.Contains(t, out, "4/4 passed")
	assert.Contains(t, out, "HEALTHY")
	assert.NotContains(t, out, "Terminal")
}

func TestCategoriesMatchRegisteredChecks(t *testing.T) {
	cats := Categories()
	require.Equal(t, []string{"config", "storage", "terminal"}, cats)

	c := NewChecker(testConfig(t), "")
	total := 0
	for _, cat := range cats {
		r := c.RunCategory(context.Background(), cat)
		assert.NotZero(t, r.Total, cat)
		total += r.Total
	}
	assert.Equal(t, len(c.checks), total)

	cats[0] = "mutated"
	assert.Equal(t, "config", Categories()[0])
}
