package tags

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-ixtags/pkg/attrs"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

var ariaAttributes = []string{
	"aria-describedby", "aria-details", "aria-hidden", "aria-label",
	"aria-labelledby", "aria-live", "aria-busy", "aria-current", "role",
}

// MarkupPolicy returns a shared bluemonday policy that keeps picture, source
// and img elements with the attributes the tags emit and strips everything
// else.
func MarkupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("picture", "source", "img")
		policy.AllowURLSchemes("http", "https")
		policy.AllowRelativeURLs(true)

		policy.AllowAttrs("src", "srcset", "data-srcset").OnElements("img")
		policy.AllowAttrs(attrs.HTMLAttributeNames()...).OnElements("img")
		policy.AllowAttrs("media", "srcset", "sizes", "type").OnElements("source")
		policy.AllowDataAttributes()
		policy.AllowAttrs(ariaAttributes...).Globally()

		markupPolicy = policy
	})
	return markupPolicy
}
