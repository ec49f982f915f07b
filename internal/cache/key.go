package cache

import (
	"net/url"
	"sort"
	"strings"
)

// Key derives a canonical cache key from a logical request: the endpoint
// plus its parameters serialized in sorted order, so equivalent requests
// collide predictably regardless of parameter insertion order.
func Key(endpoint string, params map[string]string) string {
	if len(params) == 0 {
		return endpoint
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[name]))
	}
	return b.String()
}
