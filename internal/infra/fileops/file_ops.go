// Where: cli/internal/infra/fileops/file_ops.go
// What: Shared filesystem writes for config and generated output.
// Why: Keep directory creation and permissions consistent across writers.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile writes payload to path, creating parent directories. An existing
// directory at path is an error rather than being replaced.
func WriteFile(path string, payload []byte, perm os.FileMode) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if err := os.WriteFile(path, payload, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
