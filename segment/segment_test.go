package segment

import (
	"reflect"
	"strings"
	"testing"
)

func segmentsEqual(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TestSplit ensures that splitting text on a list of link matches
// produces the expected alternation of plain and link segments.
func TestSplit(t *testing.T) {
	type testcase struct {
		name    string
		text    string
		matches []LinkMatch
		output  []Segment
	}

	for _, tc := range []testcase{
		{
			name: "empty text produces no segments",
		},
		{
			name: "no matches produce a single plain segment",
			text: "hello there",
			output: []Segment{
				{Kind: Plain, Text: "hello there", Start: 0, End: 11},
			},
		},
		{
			name: "interior match splits into three segments",
			text: "see http://a.com now",
			matches: []LinkMatch{
				{Start: 4, End: 16, URL: "http://a.com"},
			},
			output: []Segment{
				{Kind: Plain, Text: "see ", Start: 0, End: 4},
				{Kind: Link, Text: "http://a.com", URL: "http://a.com", Start: 4, End: 16},
				{Kind: Plain, Text: " now", Start: 16, End: 20},
			},
		},
		{
			name: "match covering the whole text produces a single link segment",
			text: "http://a.com",
			matches: []LinkMatch{
				{Start: 0, End: 12, URL: "http://a.com"},
			},
			output: []Segment{
				{Kind: Link, Text: "http://a.com", URL: "http://a.com", Start: 0, End: 12},
			},
		},
		{
			name: "adjacent matches emit no empty plain segment between them",
			text: "http://a.comhttp://b.com",
			matches: []LinkMatch{
				{Start: 0, End: 12, URL: "http://a.com"},
				{Start: 12, End: 24, URL: "http://b.com"},
			},
			output: []Segment{
				{Kind: Link, Text: "http://a.com", URL: "http://a.com", Start: 0, End: 12},
				{Kind: Link, Text: "http://b.com", URL: "http://b.com", Start: 12, End: 24},
			},
		},
		{
			name: "trailing match leaves no trailing plain segment",
			text: "go to http://a.com",
			matches: []LinkMatch{
				{Start: 6, End: 18, URL: "http://a.com"},
			},
			output: []Segment{
				{Kind: Plain, Text: "go to ", Start: 0, End: 6},
				{Kind: Link, Text: "http://a.com", URL: "http://a.com", Start: 6, End: 18},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := Split(tc.text, tc.matches)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !segmentsEqual(segments, tc.output) {
				t.Errorf("expected segments %v, got %v", tc.output, segments)
			}
		})
	}
}

// TestSplitReconstruction ensures that concatenating split output
// reproduces the source text exactly and that segment ranges tile the
// text without gaps or overlap.
func TestSplitReconstruction(t *testing.T) {
	type testcase struct {
		name    string
		text    string
		matches []LinkMatch
	}

	for _, tc := range []testcase{
		{
			name: "plain text",
			text: "nothing to see here",
		},
		{
			name: "single interior link",
			text: "see http://a.com now",
			matches: []LinkMatch{
				{Start: 4, End: 16, URL: "http://a.com"},
			},
		},
		{
			name: "links at both ends",
			text: "http://a.com and http://b.com",
			matches: []LinkMatch{
				{Start: 0, End: 12, URL: "http://a.com"},
				{Start: 17, End: 29, URL: "http://b.com"},
			},
		},
		{
			name: "multibyte text around a link",
			text: "héllo http://a.com wörld",
			matches: []LinkMatch{
				{Start: 7, End: 19, URL: "http://a.com"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := Split(tc.text, tc.matches)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var b strings.Builder
			cursor := 0
			for i, s := range segments {
				if s.Start != cursor {
					t.Errorf("segment %d starts at %d, expected %d", i, s.Start, cursor)
				}
				if s.End-s.Start != len(s.Text) {
					t.Errorf("segment %d range [%d,%d) does not cover its text %q", i, s.Start, s.End, s.Text)
				}
				b.WriteString(s.Text)
				cursor = s.End
			}
			if b.String() != tc.text {
				t.Errorf("expected reconstruction %q, got %q", tc.text, b.String())
			}
		})
	}
}

// TestSplitInvalid ensures that matches violating the detector
// contract are rejected instead of applied.
func TestSplitInvalid(t *testing.T) {
	type testcase struct {
		name    string
		text    string
		matches []LinkMatch
	}

	for _, tc := range []testcase{
		{
			name: "out of bounds",
			text: "short",
			matches: []LinkMatch{
				{Start: 0, End: 50, URL: "http://a.com"},
			},
		},
		{
			name: "negative start",
			text: "short",
			matches: []LinkMatch{
				{Start: -1, End: 4, URL: "http://a.com"},
			},
		},
		{
			name: "inverted range",
			text: "short",
			matches: []LinkMatch{
				{Start: 4, End: 2, URL: "http://a.com"},
			},
		},
		{
			name: "overlapping matches",
			text: "http://a.com http://b.com",
			matches: []LinkMatch{
				{Start: 0, End: 12, URL: "http://a.com"},
				{Start: 10, End: 25, URL: "http://b.com"},
			},
		},
		{
			name: "unordered matches",
			text: "http://a.com http://b.com",
			matches: []LinkMatch{
				{Start: 13, End: 25, URL: "http://b.com"},
				{Start: 0, End: 12, URL: "http://a.com"},
			},
		},
		{
			name: "missing URL",
			text: "see http://a.com now",
			matches: []LinkMatch{
				{Start: 4, End: 16},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if segments, err := Split(tc.text, tc.matches); err == nil {
				t.Errorf("expected error, got segments %v", segments)
			}
		})
	}
}

// TestMatchAt ensures that offsets map onto the match containing them
// and onto nothing otherwise.
func TestMatchAt(t *testing.T) {
	matches := []LinkMatch{
		{Start: 4, End: 16, URL: "http://a.com"},
		{Start: 20, End: 32, URL: "http://b.com"},
	}

	type testcase struct {
		name   string
		offset int
		url    string
		hit    bool
	}

	for _, tc := range []testcase{
		{name: "before all matches", offset: 0},
		{name: "first byte of a match", offset: 4, url: "http://a.com", hit: true},
		{name: "interior of a match", offset: 10, url: "http://a.com", hit: true},
		{name: "end offset is exclusive", offset: 16},
		{name: "between matches", offset: 18},
		{name: "second match", offset: 25, url: "http://b.com", hit: true},
		{name: "after all matches", offset: 40},
		{name: "negative offset", offset: -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := MatchAt(matches, tc.offset)
			if ok != tc.hit {
				t.Fatalf("expected hit=%v, got %v", tc.hit, ok)
			}
			if ok && m.URL != tc.url {
				t.Errorf("expected URL %q, got %q", tc.url, m.URL)
			}
		})
	}
}
