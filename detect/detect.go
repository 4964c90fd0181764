/*
Package detect locates hyperlinks within plain text, producing the
ordered match lists consumed by package segment.
*/
package detect

import (
	"regexp"
	"strings"

	"git.sr.ht/~gioverse/linktext/segment"
	"mvdan.cc/xurls/v2"
)

// Detector locates hyperlinks within a body of text. Implementations
// must return matches ordered by position and non-overlapping, each
// carrying a resolved URL.
type Detector interface {
	Detect(text string) []segment.LinkMatch
}

// schemePattern recognizes text that already begins with a URL scheme.
var schemePattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`)

// URLDetector finds URLs in text using the xurls pattern collection.
// The zero value is not useful; construct one with Strict or Relaxed.
type URLDetector struct {
	pattern *regexp.Regexp
	// addScheme prefixes schemeless matches with https:// so that
	// every match resolves to an openable URL.
	addScheme bool
}

// Strict returns a detector that only matches URLs carrying an
// explicit scheme, such as http:// or mailto:.
func Strict() *URLDetector {
	return &URLDetector{pattern: xurls.Strict()}
}

// Relaxed returns a detector that additionally matches schemeless
// hosts such as example.com, resolving them against https.
func Relaxed() *URLDetector {
	return &URLDetector{pattern: xurls.Relaxed(), addScheme: true}
}

// Detect implements Detector. Matches are returned in reading order
// and never overlap. The resolved URL of a schemeless match gains an
// https prefix when the detector was constructed with Relaxed.
func (d *URLDetector) Detect(text string) []segment.LinkMatch {
	locations := d.pattern.FindAllStringIndex(text, -1)
	if len(locations) == 0 {
		return nil
	}
	matches := make([]segment.LinkMatch, 0, len(locations))
	for _, loc := range locations {
		raw := text[loc[0]:loc[1]]
		url := raw
		if d.addScheme && !schemePattern.MatchString(raw) && !strings.Contains(raw, ":") {
			url = "https://" + raw
		}
		matches = append(matches, segment.LinkMatch{
			Start: loc[0],
			End:   loc[1],
			URL:   url,
		})
	}
	return matches
}
