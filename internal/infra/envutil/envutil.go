// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/meta"
)

const (
	// SuffixFeedDir names the feed directory override.
	SuffixFeedDir = "FEED_DIR"
	// SuffixLang names the resource language override.
	SuffixLang = "LANG"
	// SuffixHome names the config home override.
	SuffixHome = "HOME"
)

// HostEnvKey constructs a prefixed environment variable name.
// Example: HostEnvKey("LANG") returns "FUNCTPL_LANG".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a prefixed environment variable, trimmed.
// Example: GetHostEnv("FEED_DIR") returns the value of FUNCTPL_FEED_DIR.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// SetHostEnv sets a prefixed environment variable.
func SetHostEnv(suffix, value string) error {
	key := HostEnvKey(suffix)
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}
