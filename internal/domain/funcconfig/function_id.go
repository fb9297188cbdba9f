// Where: cli/internal/domain/funcconfig/function_id.go
// What: Function name extraction from management resource ids.
// Why: Remote function entries are addressed by full resource id.
package funcconfig

import (
	"errors"
	"regexp"
)

// ErrInvalidFunctionID is returned when an id does not address a function.
var ErrInvalidFunctionID = errors.New("invalid functions id")

var functionIDPattern = regexp.MustCompile(
	`/subscriptions/[^/]+/resourceGroups/[^/]+/providers/Microsoft\.Web/sites/[^/]+(?:/slots/[^/]+)?/functions/([^/]+)`,
)

// FunctionNameFromID returns the function name segment of a resource id.
func FunctionNameFromID(id string) (string, error) {
	match := functionIDPattern.FindStringSubmatch(id)
	if len(match) < 2 {
		return "", ErrInvalidFunctionID
	}
	return match[1], nil
}
