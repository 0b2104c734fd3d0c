// Package playground hands lesson code off to an external playground.
package playground

import (
	"net/url"

	"github.com/atotto/clipboard"
)

// DefaultBaseURL is the hosted playground the site links to.
const DefaultBaseURL = "https://learnpy.dev/playground"

// BuildURL returns the playground URL with code percent-encoded into
// the code query parameter.
func BuildURL(base, code string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return base + "?code=" + url.QueryEscape(code)
}

// Copy places code on the system clipboard.
func Copy(code string) error {
	return clipboard.WriteAll(code)
}
