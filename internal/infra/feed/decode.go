// Where: cli/internal/infra/feed/decode.go
// What: Feed file normalization to plain JSON.
// Why: Feeds ship JSON; locally authored feeds may use JSONC or YAML.
package feed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"sigs.k8s.io/yaml"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize converts a feed file payload to JSON according to its extension.
func Normalize(payload []byte, ext string) ([]byte, error) {
	payload = bytes.TrimPrefix(payload, utf8BOM)
	switch ext {
	case ".yaml", ".yml":
		out, err := yaml.YAMLToJSON(payload)
		if err != nil {
			return nil, fmt.Errorf("convert yaml to json: %w", err)
		}
		return out, nil
	case ".jsonc":
		payload = jsonc.ToJSON(payload)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("invalid json")
	}
	return payload, nil
}
