// Where: cli/internal/infra/config/global.go
// What: Global config load/save.
// Why: Manage ~/.functpl/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/infra/envutil"
	"github.com/poruru-code/functpl/cli/internal/infra/fileops"
	"github.com/poruru-code/functpl/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents ~/.functpl/config.yaml.
type GlobalConfig struct {
	Version         int      `yaml:"version"`
	FeedDir         string   `yaml:"feed_dir,omitempty"`
	Language        string   `yaml:"language,omitempty"`
	RecentTemplates []string `yaml:"recent_templates,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:         1,
		RecentTemplates: []string{},
	}
}

// GlobalConfigPath returns the config file path, honoring FUNCTPL_HOME.
func GlobalConfigPath() (string, error) {
	if home := envutil.GetHostEnv(envutil.SuffixHome); home != "" {
		return filepath.Join(home, meta.ConfigFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFile), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault returns the default config when the file does not exist.
func LoadGlobalConfigOrDefault(path string) (GlobalConfig, error) {
	cfg, err := LoadGlobalConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultGlobalConfig(), nil
	}
	return cfg, err
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := fileops.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("save global config: %w", err)
	}
	return nil
}

// RecordUsage stores the feed and template used by a successful command.
func RecordUsage(path, feedDir, templateID string) error {
	cfg, err := LoadGlobalConfigOrDefault(path)
	if err != nil {
		return err
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if feedDir != "" {
		if abs, err := filepath.Abs(feedDir); err == nil {
			feedDir = abs
		}
		cfg.FeedDir = feedDir
	}
	cfg.RecentTemplates = template.UpdateHistory(cfg.RecentTemplates, templateID, meta.MaxRecentTemplates)
	return SaveGlobalConfig(path, cfg)
}
