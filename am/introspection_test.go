package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the cascade at temp directories and clears UVAL_* vars.
// It returns the system, user and project config paths.
func isolate(t *testing.T) (system, user, project string) {
	t.Helper()

	root := t.TempDir()
	home := filepath.Join(root, "home")
	work := filepath.Join(root, "work", "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".uval"), 0755))
	require.NoError(t, os.MkdirAll(work, 0755))

	t.Setenv("HOME", home)
	t.Chdir(work)
	for _, key := range Keys() {
		t.Setenv(envName(key), "")
	}

	old := systemConfigPath
	systemConfigPath = filepath.Join(root, "etc", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(systemConfigPath), 0755))

	Reset()
	t.Cleanup(func() {
		systemConfigPath = old
		Reset()
	})

	return systemConfigPath, filepath.Join(home, ".uval", "am.toml"), filepath.Join(root, "work", ProjectConfigName)
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestMarkSettingsFromSource(t *testing.T) {
	t.Run("Flat settings", func(t *testing.T) {
		settings := map[string]interface{}{
			"precision": 3,
			"notation":  "fixed",
		}

		sourceMap := make(map[string]SourceInfo)
		markSettingsFromSource(settings, "", SourceUser, "/home/user/.uval/am.toml", sourceMap)

		assert.Len(t, sourceMap, 2)
		assert.Equal(t, SourceUser, sourceMap["precision"].Source)
		assert.Equal(t, "/home/user/.uval/am.toml", sourceMap["precision"].Path)
	})

	t.Run("Nested settings", func(t *testing.T) {
		settings := map[string]interface{}{
			"display": map[string]interface{}{
				"precision": 3,
				"notation":  "fixed",
			},
			"units": map[string]interface{}{
				"impedance": 75.0,
			},
		}

		sourceMap := make(map[string]SourceInfo)
		markSettingsFromSource(settings, "", SourceProject, "/test/am.toml", sourceMap)

		assert.Equal(t, SourceProject, sourceMap["display.precision"].Source)
		assert.Equal(t, SourceProject, sourceMap["display.notation"].Source)
		assert.Equal(t, SourceProject, sourceMap["units.impedance"].Source)
		assert.Equal(t, "/test/am.toml", sourceMap["units.impedance"].Path)
		assert.NotContains(t, sourceMap, "display")
	})
}

func TestCascadePrecedence(t *testing.T) {
	system, user, project := isolate(t)

	write(t, system, "[display]\nprecision = 2\nnotation = \"scientific\"\n[units]\nimpedance = 600.0\n")
	write(t, user, "[display]\nprecision = 3\n")
	write(t, project, "[display]\nnotation = \"fixed\"\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Display.Precision, "user beats system")
	assert.Equal(t, "fixed", cfg.Display.Notation, "project beats system")
	assert.Equal(t, 600.0, cfg.Units.Impedance, "system beats defaults")
	assert.Equal(t, "everforest", cfg.Log.Theme)

	assert.Equal(t, SourceUser, ConfigSources["display.precision"].Source)
	assert.Equal(t, SourceProject, ConfigSources["display.notation"].Source)
	assert.Equal(t, SourceSystem, ConfigSources["units.impedance"].Source)

	t.Run("environment beats files", func(t *testing.T) {
		t.Setenv("UVAL_DISPLAY_PRECISION", "5")
		t.Setenv("UVAL_TABLES", "a.toml,b.yaml")
		Reset()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Display.Precision)
		assert.Equal(t, []string{"a.toml", "b.yaml"}, cfg.Units.Tables)
	})
}

func TestLoadIsCached(t *testing.T) {
	_, user, _ := isolate(t)

	first, err := Load()
	require.NoError(t, err)

	write(t, user, "[display]\nprecision = 9\n")
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)

	Reset()
	third, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9, third.Display.Precision)
}

func TestGetConfigIntrospection(t *testing.T) {
	_, user, _ := isolate(t)
	write(t, user, "[display]\nprecision = 3\n")
	t.Setenv("UVAL_LOG_THEME", "gruvbox")

	intro, err := GetConfigIntrospection()
	require.NoError(t, err)

	byKey := make(map[string]SettingInfo)
	for _, s := range intro.Settings {
		byKey[s.Key] = s
	}

	assert.Equal(t, SourceUser, byKey["display.precision"].Source)
	assert.Equal(t, user, byKey["display.precision"].SourcePath)
	assert.Equal(t, SourceDefault, byKey["display.notation"].Source)
	assert.Equal(t, SourceEnvironment, byKey["log.theme"].Source)
	assert.Equal(t, "UVAL_LOG_THEME", byKey["log.theme"].SourcePath)
	assert.Equal(t, "gruvbox", byKey["log.theme"].Value)

	for i := 1; i < len(intro.Settings); i++ {
		assert.Less(t, intro.Settings[i-1].Key, intro.Settings[i].Key)
	}
}

func TestSources(t *testing.T) {
	system, user, project := isolate(t)
	write(t, user, "")
	write(t, project, "")
	t.Setenv("UVAL_LOG_JSON", "true")

	got := Sources()
	require.Len(t, got, 4)

	assert.Equal(t, SourceFile{Source: SourceSystem, Path: system, Exists: false}, got[0])
	assert.Equal(t, SourceFile{Source: SourceUser, Path: user, Exists: true}, got[1])
	assert.Equal(t, SourceProject, got[2].Source)
	assert.True(t, got[2].Exists)
	assert.Equal(t, SourceEnvironment, got[3].Source)
	assert.Contains(t, got[3].Path, "UVAL_LOG_JSON")
}
