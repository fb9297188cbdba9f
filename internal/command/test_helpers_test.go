package command

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

const testFeed = "testdata/feed"

type testEnv struct {
	deps       Dependencies
	out        *bytes.Buffer
	configPath string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	t.Setenv("FUNCTPL_FEED_DIR", "")
	t.Setenv("FUNCTPL_LANG", "")
	t.Setenv("NO_EMOJI", "")
	t.Setenv("CLI_CMD", "")

	out := &bytes.Buffer{}
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	workDir := t.TempDir()
	return testEnv{
		out:        out,
		configPath: configPath,
		deps: Dependencies{
			Out:        out,
			ErrOut:     out,
			Catalog:    catalog.NewService(),
			ConfigPath: func() (string, error) { return configPath, nil },
			Getwd:      func() (string, error) { return workDir, nil },
		},
	}
}

func (e testEnv) run(args ...string) int {
	return Run(args, e.deps)
}
