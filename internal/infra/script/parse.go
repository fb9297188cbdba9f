// Where: cli/internal/infra/script/parse.go
// What: Whole-feed parsing with per-template failure isolation.
// Why: One malformed template must never hide the rest of the feed.
package script

import "github.com/poruru-code/functpl/cli/internal/domain/template"

// ParseTemplates parses resources and the binding config once, then each
// template independently. Failing templates are recorded in Failures and
// left out of FunctionTemplates; the returned error covers only the shared
// resources and binding config.
func ParseTemplates(feed RawFeed) (template.Templates, error) {
	res, err := DecodeResources(feed.Resources)
	if err != nil {
		return template.Templates{}, err
	}
	cfg, err := DecodeConfig(feed.Config)
	if err != nil {
		return template.Templates{}, err
	}
	bindings, err := ParseBindings(cfg, res)
	if err != nil {
		return template.Templates{}, err
	}

	result := template.Templates{
		FunctionTemplates: make([]template.FunctionTemplate, 0, len(feed.Templates)),
		BindingTemplates:  bindings,
	}
	for i, entry := range feed.Templates {
		parsed, err := parseEntry(entry, res, bindings)
		if err != nil {
			result.Failures = append(result.Failures, template.ParseFailure{
				Index:      i,
				TemplateID: peekTemplateID(entry),
				Err:        err,
			})
			continue
		}
		result.FunctionTemplates = append(result.FunctionTemplates, parsed)
	}
	return result, nil
}

func parseEntry(entry []byte, res Resources, bindings []template.BindingTemplate) (template.FunctionTemplate, error) {
	raw, err := DecodeTemplate(entry)
	if err != nil {
		return template.FunctionTemplate{}, err
	}
	return ParseTemplate(raw, res, bindings)
}
