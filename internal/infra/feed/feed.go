// Where: cli/internal/infra/feed/feed.go
// What: On-disk script template feed loader.
// Why: Materialize raw feed JSON before parsing; parsing itself does no I/O.
package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/infra/script"
	"github.com/poruru-code/functpl/cli/internal/meta"
)

// supportedExtensions is the lookup order for feed files.
var supportedExtensions = []string{".json", ".jsonc", ".yaml", ".yml"}

// Loader reads feeds from a directory.
type Loader interface {
	Load(dir, language string) (script.RawFeed, error)
}

// DirLoader loads feeds laid out like the template API archive.
type DirLoader struct{}

// Load implements Loader.
func (DirLoader) Load(dir, language string) (script.RawFeed, error) {
	return Load(dir, language)
}

// Load reads templates, binding config and resources from dir.
func Load(dir, language string) (script.RawFeed, error) {
	root := strings.TrimSpace(dir)
	if root == "" {
		return script.RawFeed{}, fmt.Errorf("feed directory is required")
	}

	templatesJSON, err := readRequired(root, meta.TemplatesFile)
	if err != nil {
		return script.RawFeed{}, err
	}
	templates, err := script.SplitTemplates(templatesJSON)
	if err != nil {
		return script.RawFeed{}, fmt.Errorf("%s: %w", meta.TemplatesFile, err)
	}

	bindingsJSON, err := readRequired(root, meta.BindingsFile)
	if err != nil {
		return script.RawFeed{}, err
	}

	resources, err := loadResources(root, language)
	if err != nil {
		return script.RawFeed{}, err
	}

	return script.RawFeed{
		Resources: resources,
		Templates: templates,
		Config:    bindingsJSON,
	}, nil
}

// loadResources combines Resources.json and the best language table into
// the {"en": ..., "lang": ...} object the parser expects. Files may hold a
// flat key table or an object already wrapped in "en"/"lang".
func loadResources(root, language string) (json.RawMessage, error) {
	base := filepath.ToSlash(filepath.Join(meta.ResourcesDir, meta.ResourcesBaseName))
	english, err := readRequired(root, base)
	if err != nil {
		return nil, err
	}
	englishTable, err := unwrapTable(english, "en")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}

	combined := map[string]json.RawMessage{"en": englishTable}
	for _, candidate := range LanguageCandidates(language) {
		stem := base + "." + candidate
		payload, ok, err := readOptional(root, stem)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		langTable, err := unwrapTable(payload, "lang")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stem, err)
		}
		combined["lang"] = langTable
		break
	}

	out, err := json.Marshal(combined)
	if err != nil {
		return nil, fmt.Errorf("encode resources: %w", err)
	}
	return out, nil
}

func unwrapTable(payload []byte, key string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("decode resource table: %w", err)
	}
	if inner, ok := fields[key]; ok && bytes.HasPrefix(bytes.TrimSpace(inner), []byte("{")) {
		return inner, nil
	}
	return payload, nil
}

// LanguageCandidates returns resource file suffixes to try for a language
// tag, most specific first. English tags need no extra table.
func LanguageCandidates(language string) []string {
	tag := strings.TrimSpace(language)
	if tag == "" {
		return nil
	}
	primary := tag
	if idx := strings.IndexAny(tag, "-_"); idx > 0 {
		primary = tag[:idx]
	}
	if strings.EqualFold(primary, meta.DefaultLanguage) {
		return nil
	}
	candidates := []string{tag}
	if primary != tag {
		candidates = append(candidates, primary)
	}
	return candidates
}

func readRequired(root, stem string) ([]byte, error) {
	payload, ok, err := readOptional(root, stem)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("feed file %s not found in %s: %w", stem, root, fs.ErrNotExist)
	}
	return payload, nil
}

func readOptional(root, stem string) ([]byte, bool, error) {
	for _, ext := range supportedExtensions {
		path := filepath.Join(root, filepath.FromSlash(stem)+ext)
		payload, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, false, fmt.Errorf("read %s: %w", path, err)
		}
		normalized, err := Normalize(payload, ext)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", path, err)
		}
		return normalized, true, nil
	}
	return nil, false, nil
}
