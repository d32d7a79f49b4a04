/*
Package config manages TOML config for BirdServe services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/hmeline/birdserve/internal/utils"
	"github.com/hmeline/birdserve/pkg/search"
)

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Matcher MatcherConfig `toml:"matcher"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MinQuery     int  `toml:"min_query"`
	MaxQuery     int  `toml:"max_query"`
	CacheEntries int  `toml:"cache_entries"`
	EnableCache  bool `toml:"enable_cache"`
}

// MatcherConfig holds the tiered matcher's caps and thresholds.
type MatcherConfig struct {
	MaxResults         int `toml:"max_results"`
	FuzzyCap           int `toml:"fuzzy_cap"`
	ShortQueryLen      int `toml:"short_query_len"`
	ShortQueryDistance int `toml:"short_query_distance"`
	LongQueryDistance  int `toml:"long_query_distance"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// Limits converts the matcher section into search.Limits.
func (m MatcherConfig) Limits() search.Limits {
	return search.Limits{
		MaxResults:         m.MaxResults,
		FuzzyCap:           m.FuzzyCap,
		ShortQueryLen:      m.ShortQueryLen,
		ShortQueryDistance: m.ShortQueryDistance,
		LongQueryDistance:  m.LongQueryDistance,
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "birdserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "birdserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/birdserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var cfg *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	cfg, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// DefaultConfig returns a Config with default values. The matcher
// numbers are the canonical ones: ten combined suggestions, five fuzzy,
// edit distance two up to six-character queries and three beyond.
func DefaultConfig() *Config {
	limits := search.DefaultLimits()
	return &Config{
		Server: ServerConfig{
			MaxLimit:     32,
			MinQuery:     1,
			MaxQuery:     60,
			CacheEntries: 256,
			EnableCache:  true,
		},
		Matcher: MatcherConfig{
			MaxResults:         limits.MaxResults,
			FuzzyCap:           limits.FuzzyCap,
			ShortQueryLen:      limits.ShortQueryLen,
			ShortQueryDistance: limits.ShortQueryDistance,
			LongQueryDistance:  limits.LongQueryDistance,
		},
		CLI: CliConfig{
			DefaultLimit:    10,
			DefaultNoFilter: false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	return cfg, nil
}

// tryPartialParse salvages whatever sections still parse from a broken
// config file, leaving defaults in place for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	parsed, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if section, ok := utils.ExtractSection(parsed, "server"); ok {
		extractServerConfig(section, &cfg.Server)
	}
	if section, ok := utils.ExtractSection(parsed, "matcher"); ok {
		extractMatcherConfig(section, &cfg.Matcher)
	}
	if section, ok := utils.ExtractSection(parsed, "cli"); ok {
		extractCliConfig(section, &cfg.CLI)
	}
	return cfg, nil
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_query"); ok {
		server.MinQuery = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query"); ok {
		server.MaxQuery = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_entries"); ok {
		server.CacheEntries = val
	}
	if val, ok := utils.ExtractBool(data, "enable_cache"); ok {
		server.EnableCache = val
	}
}

// extractMatcherConfig extracts matcher configuration from a map
func extractMatcherConfig(data map[string]any, matcher *MatcherConfig) {
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		matcher.MaxResults = val
	}
	if val, ok := utils.ExtractInt64(data, "fuzzy_cap"); ok {
		matcher.FuzzyCap = val
	}
	if val, ok := utils.ExtractInt64(data, "short_query_len"); ok {
		matcher.ShortQueryLen = val
	}
	if val, ok := utils.ExtractInt64(data, "short_query_distance"); ok {
		matcher.ShortQueryDistance = val
	}
	if val, ok := utils.ExtractInt64(data, "long_query_distance"); ok {
		matcher.LongQueryDistance = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Update changes server limit values and saves to file
func (c *Config) Update(configPath string, maxLimit, maxResults, fuzzyCap *int) error {
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if maxResults != nil {
		c.Matcher.MaxResults = *maxResults
	}
	if fuzzyCap != nil {
		c.Matcher.FuzzyCap = *fuzzyCap
	}
	return SaveConfig(c, configPath)
}
