package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, ws, content string) {
	t.Helper()
	dir := filepath.Join(ws, ".adpilot")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
}

func resetState() {
	CloseAll()
	configMu.Lock()
	config = loggingConfig{}
	configMu.Unlock()
	logsDir = ""
	workspace = ""
}

func TestInitializeWithoutConfigIsSilent(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()

	require.NoError(t, Initialize(ws))
	assert.False(t, IsDebugMode())

	// no logs directory is created in production mode
	_, err := os.Stat(filepath.Join(ws, ".adpilot", "logs"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitializeDebugModeWritesFiles(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()
	writeConfig(t, ws, `
logging:
  debug_mode: true
  level: debug
`)

	require.NoError(t, Initialize(ws))
	require.True(t, IsDebugMode())

	Mutate("created ad group %s", "123")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(ws, ".adpilot", "logs"))
	require.NoError(t, err)

	var mutateLog string
	for _, e := range entries {
		if strings.Contains(e.Name(), "mutate") {
			mutateLog = filepath.Join(ws, ".adpilot", "logs", e.Name())
		}
	}
	require.NotEmpty(t, mutateLog, "expected a mutate log file")

	data, err := os.ReadFile(mutateLog)
	require.NoError(t, err)
	assert.Contains(t, string(data), "created ad group 123")
}

func TestCategoryToggle(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()
	writeConfig(t, ws, `
logging:
  debug_mode: true
  level: info
  categories:
    api: false
`)

	require.NoError(t, Initialize(ws))
	assert.False(t, IsCategoryEnabled(CategoryAPI))
	assert.True(t, IsCategoryEnabled(CategoryMutate))
}

func TestReloadConfig(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()
	writeConfig(t, ws, `
logging:
  debug_mode: false
`)

	require.NoError(t, Initialize(ws))
	assert.False(t, IsDebugMode())

	writeConfig(t, ws, `
logging:
  debug_mode: true
`)
	require.NoError(t, ReloadConfig())
	assert.True(t, IsDebugMode())
}
