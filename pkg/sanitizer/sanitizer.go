// Package sanitizer strips markup from user-supplied text before it is stored.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

// PlainText removes all HTML elements from s and trims surrounding whitespace.
// Entities produced by the policy are unescaped so that "a < b" survives intact.
func PlainText(s string) string {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
