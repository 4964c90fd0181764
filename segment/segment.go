/*
Package segment splits raw message text into an ordered sequence of
plain and hyperlink runs suitable for styled rendering and hit testing.
*/
package segment

import "fmt"

// Kind describes the variety of a segment.
type Kind uint8

const (
	// Plain is ordinary text with no interactive behavior of its own.
	Plain Kind = iota
	// Link is a run of text backed by a resolved URL.
	Link
)

// LinkMatch is a hyperlink located within a body of text. Start and
// End are byte offsets forming the half-open interval [Start,End).
// Matches are produced by a detector and must be ordered by Start and
// non-overlapping.
type LinkMatch struct {
	Start, End int
	URL        string
}

// Segment is a contiguous run of text tagged as plain or link.
type Segment struct {
	Kind Kind
	// Text is the run's content, sliced from the source text.
	Text string
	// URL is the resolved link target. Only set when Kind is Link.
	URL string
	// Start and End locate the run within the source text.
	Start, End int
}

// Validate checks that the provided matches are usable against the
// given text: in bounds, ordered, non-overlapping, and each carrying
// a resolved URL. A detector producing matches that fail these checks
// is violating its contract.
func Validate(text string, matches []LinkMatch) error {
	cursor := 0
	for i, m := range matches {
		switch {
		case m.Start < 0 || m.End > len(text):
			return fmt.Errorf("match %d: range [%d,%d) outside text of length %d", i, m.Start, m.End, len(text))
		case m.End <= m.Start:
			return fmt.Errorf("match %d: empty or inverted range [%d,%d)", i, m.Start, m.End)
		case m.Start < cursor:
			return fmt.Errorf("match %d: range [%d,%d) overlaps or precedes an earlier match", i, m.Start, m.End)
		case m.URL == "":
			return fmt.Errorf("match %d: no resolved URL", i)
		}
		cursor = m.End
	}
	return nil
}

// Split partitions text into alternating plain and link segments
// covering the entire text in order. Concatenating the Text fields of
// the returned segments reproduces text exactly, and no empty plain
// segment is emitted between adjacent matches. Invalid matches are
// reported rather than applied.
func Split(text string, matches []LinkMatch) ([]Segment, error) {
	if err := Validate(text, matches); err != nil {
		return nil, err
	}
	var (
		segments []Segment
		cursor   int
	)
	for _, m := range matches {
		if m.Start > cursor {
			segments = append(segments, Segment{
				Kind:  Plain,
				Text:  text[cursor:m.Start],
				Start: cursor,
				End:   m.Start,
			})
		}
		segments = append(segments, Segment{
			Kind:  Link,
			Text:  text[m.Start:m.End],
			URL:   m.URL,
			Start: m.Start,
			End:   m.End,
		})
		cursor = m.End
	}
	if cursor < len(text) {
		segments = append(segments, Segment{
			Kind:  Plain,
			Text:  text[cursor:],
			Start: cursor,
			End:   len(text),
		})
	}
	return segments, nil
}

// MatchAt returns the match containing the provided byte offset, if
// any. Offsets falling outside every match report no match rather
// than an error.
func MatchAt(matches []LinkMatch, offset int) (LinkMatch, bool) {
	for _, m := range matches {
		if offset < m.Start {
			break
		}
		if offset < m.End {
			return m, true
		}
	}
	return LinkMatch{}, false
}
