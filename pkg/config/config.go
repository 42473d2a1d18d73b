/*
Package config manages TOML config for wordsplit.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordsplit/internal/utils"
	"github.com/bastiangx/wordsplit/pkg/corpus"
	"github.com/bastiangx/wordsplit/pkg/segment"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Segment SegmentConfig `toml:"segment"`
	Corpus  CorpusConfig  `toml:"corpus"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// SegmentConfig holds eager suffix matching options.
type SegmentConfig struct {
	MinSuffixLen int  `toml:"min_suffix_len"`
	ByFrequency  bool `toml:"by_frequency"`
}

// CorpusConfig holds corpus reading and output options.
type CorpusConfig struct {
	Encoding       string `toml:"encoding"`
	FirstFieldOnly bool   `toml:"first_field_only"`
	ComposeNFC     bool   `toml:"compose_nfc"`
	OutputFormat   string `toml:"output_format"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxWords   int `toml:"max_words"`
	MaxWordLen int `toml:"max_word_len"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowPieces       bool `toml:"show_pieces"`
	ShowDistribution bool `toml:"show_distribution"`
	MaxWordLen       int  `toml:"max_word_len"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordsplit")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordsplit")
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
// 2. Default path: [UserConfigDir]/wordsplit/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
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

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Segment: SegmentConfig{
			MinSuffixLen: 1,
			ByFrequency:  true,
		},
		Corpus: CorpusConfig{
			Encoding:       "utf8",
			FirstFieldOnly: true,
			ComposeNFC:     true,
			OutputFormat:   "positions",
		},
		Server: ServerConfig{
			MaxWords:   1000,
			MaxWordLen: 64,
		},
		CLI: CliConfig{
			ShowPieces:       true,
			ShowDistribution: false,
			MaxWordLen:       64,
		},
	}
}

// Options converts the segment section into engine options.
func (c *Config) Options() segment.Options {
	return segment.Options{
		MinSuffixLen: c.Segment.MinSuffixLen,
		ByFrequency:  c.Segment.ByFrequency,
	}
}

// CorpusOptions converts the corpus section into loader options.
func (c *Config) CorpusOptions() corpus.Options {
	return corpus.Options{
		Encoding:       c.Corpus.Encoding,
		FirstFieldOnly: c.Corpus.FirstFieldOnly,
		ComposeNFC:     c.Corpus.ComposeNFC,
	}
}

// Validate checks values that would otherwise fail later in a run.
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if _, err := corpus.LookupEncoding(c.Corpus.Encoding); err != nil {
		return err
	}
	_, err := corpus.ParseFormat(c.Corpus.OutputFormat)
	return err
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed value it can find and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "segment"); ok {
		extractSegmentConfig(section, &config.Segment)
	}
	if section, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		extractCorpusConfig(section, &config.Corpus)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractSegmentConfig(data map[string]any, seg *SegmentConfig) {
	if val, ok := utils.ExtractInt64(data, "min_suffix_len"); ok {
		seg.MinSuffixLen = val
	}
	if val, ok := utils.ExtractBool(data, "by_frequency"); ok {
		seg.ByFrequency = val
	}
}

func extractCorpusConfig(data map[string]any, c *CorpusConfig) {
	if val, ok := utils.ExtractString(data, "encoding"); ok {
		c.Encoding = val
	}
	if val, ok := utils.ExtractBool(data, "first_field_only"); ok {
		c.FirstFieldOnly = val
	}
	if val, ok := utils.ExtractBool(data, "compose_nfc"); ok {
		c.ComposeNFC = val
	}
	if val, ok := utils.ExtractString(data, "output_format"); ok {
		c.OutputFormat = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		server.MaxWords = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_pieces"); ok {
		cli.ShowPieces = val
	}
	if val, ok := utils.ExtractBool(data, "show_distribution"); ok {
		cli.ShowDistribution = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		cli.MaxWordLen = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the segment values and saves to file
func (c *Config) Update(configPath string, minSuffixLen *int, byFrequency *bool) error {
	if minSuffixLen != nil {
		c.Segment.MinSuffixLen = *minSuffixLen
	}
	if byFrequency != nil {
		c.Segment.ByFrequency = *byFrequency
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return SaveConfig(c, configPath)
}
