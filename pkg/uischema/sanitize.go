package uischema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// sanitizeMarkup polices metadata values that may end up rendered as rich
// text. Plain strings pass through untouched; anything containing markup is
// reduced to a small inline-formatting subset.
func sanitizeMarkup(raw string) string {
	if !strings.ContainsAny(raw, "<>") {
		return raw
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(raw))
}

func descriptionSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code", "small", "sub", "sup", "br")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowStandardURLs()
		markupPolicy = policy
	})
	return markupPolicy
}
