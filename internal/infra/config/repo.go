// Where: cli/internal/infra/config/repo.go
// What: Feed directory and language discovery.
// Why: Centralize lookup of the feed from flags, env, file system, or config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/infra/envutil"
	"github.com/poruru-code/functpl/cli/internal/meta"
)

var errFeedDirNotFound = errors.New("template feed not found")

// ResolveFeedDir determines the feed directory.
// Priority order.
// 1. Explicit flag value.
// 2. FUNCTPL_FEED_DIR environment variable.
// 3. Upward search from startDir for a directory holding templates/templates.*.
// 4. feed_dir in the global config.
func ResolveFeedDir(flagValue, startDir string, cfg GlobalConfig) (string, error) {
	if dir := strings.TrimSpace(flagValue); dir != "" {
		return dir, nil
	}
	if dir := envutil.GetHostEnv(envutil.SuffixFeedDir); dir != "" {
		return dir, nil
	}
	if startDir != "" {
		if root, ok := findFeedRoot(startDir); ok {
			return root, nil
		}
	}
	if dir := strings.TrimSpace(cfg.FeedDir); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("%w: pass --feed or set %s", errFeedDirNotFound, envutil.HostEnvKey(envutil.SuffixFeedDir))
}

// ResolveLanguage determines the resource language: flag, env, config, then English.
func ResolveLanguage(flagValue string, cfg GlobalConfig) string {
	if lang := strings.TrimSpace(flagValue); lang != "" {
		return lang
	}
	if lang := envutil.GetHostEnv(envutil.SuffixLang); lang != "" {
		return lang
	}
	if lang := strings.TrimSpace(cfg.Language); lang != "" {
		return lang
	}
	return meta.DefaultLanguage
}

func findFeedRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if isFeedRoot(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isFeedRoot(dir string) bool {
	for _, ext := range []string{".json", ".jsonc", ".yaml", ".yml"} {
		if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(meta.TemplatesFile)+ext)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
