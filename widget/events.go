package widget

// EventType describes a kind of interaction with link text.
type EventType uint8

const (
	// Open indicates that a link was tapped. Its URL has been handed
	// to the configured opener, if any.
	Open EventType = iota
	// Copy indicates that the text was long-pressed and written to
	// the system clipboard. Observers typically respond with a
	// transient confirmation UI.
	Copy
	// Delete indicates that a long-press occurred on a deletable
	// message and its removal should be confirmed by the observer.
	Delete
)

// Event describes an interaction with link text. Events replace
// shared feedback flags: observers drain them each frame and decide
// what UI to present.
type Event struct {
	Type EventType
	// URL is the link target. Populated for Open events.
	URL string
	// Text is the affected content. Populated for Copy and Delete
	// events.
	Text string
	// Tip marks a Copy event as originating from tip text, which
	// requests a different confirmation UI than a general copy.
	Tip bool
}
