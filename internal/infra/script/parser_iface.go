// Where: cli/internal/infra/script/parser_iface.go
// What: Parser interface abstraction for feed parsing.
// Why: Allow swapping implementations in the catalog workflow and tests.
package script

import "github.com/poruru-code/functpl/cli/internal/domain/template"

type Parser interface {
	Parse(feed RawFeed) (template.Templates, error)
}

type DefaultParser struct{}

func (DefaultParser) Parse(feed RawFeed) (template.Templates, error) {
	return ParseTemplates(feed)
}
