package am

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
)

// EnvPrefix prefixes every environment override, e.g. UVAL_DISPLAY_PRECISION.
const EnvPrefix = "UVAL"

// ProjectConfigName is searched for from the working directory upward.
const ProjectConfigName = "am.toml"

var (
	globalConfig  *Config
	viperInstance *viper.Viper

	// systemConfigPath is a variable so tests can point it at a temp dir
	systemConfigPath = "/etc/uval/config.toml"

	// ConfigSources records which file each key was last set from during
	// the most recent load
	ConfigSources = make(map[string]SourceInfo)
)

// Load reads the uval configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path. The
// environment is not consulted.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = make(map[string]SourceInfo)
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	// system -> user -> project, env vars on top
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigDir returns ~/.uval
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".uval")
}

// UserConfigPath returns ~/.uval/am.toml
func UserConfigPath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "am.toml")
}

// findProjectConfig searches for am.toml by walking up the directory tree.
// Returns the first path found, or "".
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// cascade lists the config files in precedence order, lowest first
func cascade() []SourceInfo {
	files := []SourceInfo{
		{Source: SourceSystem, Path: systemConfigPath},
	}
	if p := UserConfigPath(); p != "" {
		files = append(files, SourceInfo{Source: SourceUser, Path: p})
	}
	if p := findProjectConfig(); p != "" && p != UserConfigPath() {
		files = append(files, SourceInfo{Source: SourceProject, Path: p})
	}
	return files
}

// mergeConfigFiles merges configuration files in precedence order.
// Files merge at config level, so UVAL_* variables still win.
func mergeConfigFiles(v *viper.Viper) {
	for _, src := range cascade() {
		if _, err := os.Stat(src.Path); err != nil {
			continue
		}

		fileViper := viper.New()
		fileViper.SetConfigFile(src.Path)
		fileViper.SetConfigType("toml")

		if err := fileViper.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file",
				logger.FieldFile, src.Path,
				logger.FieldError, err)
			continue
		}

		settings := fileViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			logger.Warnw("Failed to merge config file",
				logger.FieldFile, src.Path,
				logger.FieldError, err)
			continue
		}
		markSettingsFromSource(settings, "", src.Source, src.Path, ConfigSources)
		logger.AMInfow("Merged config file",
			logger.FieldFile, src.Path,
			"source", string(src.Source))
	}
}

// markSettingsFromSource records source for every leaf key of settings
func markSettingsFromSource(settings map[string]interface{}, prefix string, source ConfigSource, path string, sourceMap map[string]SourceInfo) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			markSettingsFromSource(nested, fullKey, source, path, sourceMap)
			continue
		}
		sourceMap[fullKey] = SourceInfo{Source: source, Path: path}
	}
}

// envName returns the environment variable that overrides key
func envName(key string) string {
	if key == "units.tables" {
		return "UVAL_TABLES"
	}
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// IsKnownKey reports whether key is a configuration key
func IsKnownKey(key string) bool {
	keys := Keys()
	i := sort.SearchStrings(keys, key)
	return i < len(keys) && keys[i] == key
}
