package vanilla

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	richPolicyOnce sync.Once
	richPolicy     *bluemonday.Policy
)

// plainText strips every tag from definition supplied copy (labels, tips,
// option labels). The result is unescaped text; templates escape it again.
func plainText(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(value)))
}

// richText keeps formatting markup for paragraph and html widgets.
func richText(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	richPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoReferrerOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		richPolicy = policy
	})
	return richPolicy.Sanitize(value)
}
