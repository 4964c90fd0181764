package widget

import (
	"gioui.org/io/clipboard"
	"gioui.org/layout"
	"gioui.org/x/haptic"
	"gioui.org/x/richtext"
)

// Role describes how a piece of link text participates in the
// surrounding UI for the purpose of long-press handling.
type Role struct {
	// Tip marks the text as a tip, altering which confirmation UI
	// observers should present when it is copied.
	Tip bool
	// Deletable marks the text as a message whose removal may be
	// requested by a long-press.
	Deletable bool
}

// LinkText holds the state necessary to facilitate user interactions
// with a block of link-bearing text across frames.
type LinkText struct {
	richtext.InteractiveText
	// Opener hands a URL to the platform's URL dispatch. It is invoked
	// fire-and-forget on link taps. If nil, taps are still reported
	// via Events but no dispatch occurs.
	Opener func(url string)
	// Buzzer provides haptic feedback on long-press when non-nil.
	Buzzer *haptic.Buzzer

	events []Event
}

// OpenURL dispatches url to the configured opener and records the
// interaction. An empty url is silently ignored rather than treated
// as an error.
func (l *LinkText) OpenURL(url string) {
	if url == "" {
		return
	}
	if l.Opener != nil {
		l.Opener(url)
	}
	l.events = append(l.events, Event{Type: Open, URL: url})
}

// Copy writes text to the system clipboard, pulses the buzzer if one
// is configured, and records the copy. If role marks the text as
// deletable, a delete request is recorded as well.
func (l *LinkText) Copy(gtx layout.Context, text string, role Role) {
	clipboard.WriteOp{Text: text}.Add(gtx.Ops)
	if l.Buzzer != nil {
		l.Buzzer.Buzz()
	}
	l.events = append(l.events, Event{Type: Copy, Text: text, Tip: role.Tip})
	if role.Deletable {
		l.events = append(l.events, Event{Type: Delete, Text: text})
	}
}

// Events returns the interactions that have occurred since the last
// call.
func (l *LinkText) Events() []Event {
	out := l.events
	l.events = nil
	return out
}
