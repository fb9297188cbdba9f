// Where: cli/internal/infra/script/schema.go
// What: Embedded JSON schemas for raw feed records.
// Why: Reject shapes the parser cannot handle before parsing starts.
package script

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type schemaName string

const (
	schemaResources schemaName = "resources.schema.json"
	schemaConfig    schemaName = "config.schema.json"
	schemaTemplate  schemaName = "template.schema.json"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var (
	schemaOnce sync.Once
	schemaErr  error
	compiled   map[schemaName]*jsonschema.Schema
)

func validateDocument(name schemaName, document any) error {
	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	sch, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %s", name)
	}
	return sch.Validate(document)
}

func loadSchemas() (map[schemaName]*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		names := []schemaName{schemaResources, schemaConfig, schemaTemplate}
		for _, name := range names {
			payload, err := schemaFS.ReadFile("schema/" + string(name))
			if err != nil {
				schemaErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(string(name), bytes.NewReader(payload)); err != nil {
				schemaErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
		}
		out := make(map[schemaName]*jsonschema.Schema, len(names))
		for _, name := range names {
			sch, err := compiler.Compile(string(name))
			if err != nil {
				schemaErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			out[name] = sch
		}
		compiled = out
	})
	return compiled, schemaErr
}
