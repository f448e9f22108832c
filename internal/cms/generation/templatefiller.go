package generation

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/siteforge-dev/siteforge/pkg/models"
)

// TemplateFiller is the built-in offline provider. It derives body fields
// from the template structure and the prompt without calling an external
// model, so the pipeline works end to end in development environments.
type TemplateFiller struct {
	model string
}

// NewTemplateFiller creates the offline provider. The model name is recorded
// on the generated body for traceability.
func NewTemplateFiller(model string) *TemplateFiller {
	if model == "" {
		model = "template-filler"
	}
	return &TemplateFiller{model: model}
}

var _ AIProvider = (*TemplateFiller)(nil)

// Generate fills every field declared by the template structure with
// deterministic prose derived from the prompt.
func (f *TemplateFiller) Generate(_ context.Context, template *models.ContentTemplate, prompt string) (map[string]any, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("empty prompt")
	}

	body := map[string]any{
		"generatedBy": f.model,
	}
	for _, name := range fieldNames(template) {
		body[name] = fillField(name, prompt)
	}
	return body, nil
}

// fieldNames extracts the declared field names, falling back to a minimal
// headline/body pair for templates without a structure.
func fieldNames(template *models.ContentTemplate) []string {
	if template == nil || template.Structure == nil {
		return []string{"headline", "body"}
	}
	raw, ok := template.Structure["fields"].([]any)
	if !ok || len(raw) == 0 {
		return []string{"headline", "body"}
	}
	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		field, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := field["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return []string{"headline", "body"}
	}
	return names
}

func fillField(name, prompt string) string {
	switch name {
	case "headline":
		return sentenceCase(prompt)
	case "metaDescription":
		return "About " + prompt + ". Written for search snippets."
	case "body":
		return sentenceCase(prompt) + ". This draft was generated from your prompt. " +
			"Review it before you publish. You can edit every section."
	default:
		return sentenceCase(prompt)
	}
}

func sentenceCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
