package detect

import (
	"reflect"
	"testing"

	"git.sr.ht/~gioverse/linktext/segment"
)

// TestStrictDetect ensures that the strict detector finds scheme-ful
// URLs at the right offsets and nothing else.
func TestStrictDetect(t *testing.T) {
	type testcase struct {
		name    string
		text    string
		matches []segment.LinkMatch
	}

	for _, tc := range []testcase{
		{
			name: "empty text",
		},
		{
			name: "no links",
			text: "nothing to see here",
		},
		{
			name: "schemeless host is not matched",
			text: "visit example.com today",
		},
		{
			name: "interior link",
			text: "see http://a.com now",
			matches: []segment.LinkMatch{
				{Start: 4, End: 16, URL: "http://a.com"},
			},
		},
		{
			name: "link spanning the whole text",
			text: "http://a.com",
			matches: []segment.LinkMatch{
				{Start: 0, End: 12, URL: "http://a.com"},
			},
		},
		{
			name: "multiple links in reading order",
			text: "http://a.com then https://b.org/x",
			matches: []segment.LinkMatch{
				{Start: 0, End: 12, URL: "http://a.com"},
				{Start: 18, End: 33, URL: "https://b.org/x"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			matches := Strict().Detect(tc.text)
			if !reflect.DeepEqual(matches, tc.matches) {
				t.Errorf("expected matches %v, got %v", tc.matches, matches)
			}
		})
	}
}

// TestRelaxedDetect ensures that the relaxed detector resolves
// schemeless hosts against https while leaving explicit schemes
// untouched.
func TestRelaxedDetect(t *testing.T) {
	type testcase struct {
		name string
		text string
		urls []string
	}

	for _, tc := range []testcase{
		{
			name: "schemeless host gains https",
			text: "visit example.com today",
			urls: []string{"https://example.com"},
		},
		{
			name: "explicit scheme preserved",
			text: "see http://a.com now",
			urls: []string{"http://a.com"},
		},
		{
			name: "mixed",
			text: "example.com or http://a.com",
			urls: []string{"https://example.com", "http://a.com"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			matches := Relaxed().Detect(tc.text)
			urls := make([]string, 0, len(matches))
			for _, m := range matches {
				urls = append(urls, m.URL)
			}
			if !reflect.DeepEqual(urls, tc.urls) {
				t.Errorf("expected urls %v, got %v", tc.urls, urls)
			}
		})
	}
}

// TestDetectSatisfiesSegmentContract ensures that detector output is
// always valid input for the segmenter.
func TestDetectSatisfiesSegmentContract(t *testing.T) {
	for _, text := range []string{
		"",
		"plain text only",
		"see http://a.com now",
		"http://a.com then https://b.org/x and example.com",
		"wrapped (http://a.com/path?q=1) in punctuation",
	} {
		for name, d := range map[string]Detector{
			"strict":  Strict(),
			"relaxed": Relaxed(),
		} {
			matches := d.Detect(text)
			if err := segment.Validate(text, matches); err != nil {
				t.Errorf("%s detector violated segment contract on %q: %v", name, text, err)
			}
		}
	}
}
