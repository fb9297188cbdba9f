// Where: cli/internal/infra/script/resources.go
// What: Resource and variable reference resolution for script feed strings.
// Why: Feed text is stored as "$key" and "[variables('x')]" references.
package script

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrResourceNotFound is matched by every ResourceNotFoundError.
var ErrResourceNotFound = errors.New("resource not found")

// ErrVariableNotFound is matched by every VariableNotFoundError.
var ErrVariableNotFound = errors.New("variable not found")

// ResourceNotFoundError reports a "$key" reference missing from both tables.
type ResourceNotFoundError struct {
	Raw string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("Resource %q not found.", e.Raw)
}

func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}

// VariableNotFoundError reports a "[variables('x')]" reference to an undefined variable.
type VariableNotFoundError struct {
	Name string
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("Variable %q not found.", e.Name)
}

func (e *VariableNotFoundError) Is(target error) bool {
	return target == ErrVariableNotFound
}

// Resources holds the localized string tables of a feed. En is always
// present in a feed; Lang is nil when only English is loaded.
type Resources struct {
	Lang map[string]string `json:"lang,omitempty"`
	En   map[string]string `json:"en"`
}

// Variables maps variable names to raw (possibly "$key") values.
type Variables map[string]string

var (
	resourcePattern = regexp.MustCompile(`\$(.*)`)
	variablePattern = regexp.MustCompile(`\[variables\('(.*)'\)\]`)
)

// ResolveResourceValue resolves a "$key" reference. Strings without a "$"
// are returned unchanged. A non-empty language entry wins over English.
func ResolveResourceValue(res Resources, raw string) (string, error) {
	match := resourcePattern.FindStringSubmatch(raw)
	if match == nil {
		return raw, nil
	}
	key := match[1]
	if localized := res.Lang[key]; localized != "" {
		return localized, nil
	}
	if english, ok := res.En[key]; ok {
		return english, nil
	}
	return "", &ResourceNotFoundError{Raw: raw}
}

// ResolveVariableValue resolves a "[variables('x')]" reference and then any
// resource reference in the result. Non-string values pass through.
func ResolveVariableValue(res Resources, vars Variables, raw any) (any, error) {
	data, ok := raw.(string)
	if !ok {
		return raw, nil
	}
	if match := variablePattern.FindStringSubmatch(data); match != nil {
		substituted, ok := vars[match[1]]
		if !ok {
			return nil, &VariableNotFoundError{Name: match[1]}
		}
		data = substituted
	}
	return ResolveResourceValue(res, data)
}
