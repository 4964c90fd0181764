package widget

import (
	"reflect"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
)

// TestOpenURL ensures that link taps dispatch to the opener exactly
// once per tap and that empty URLs are ignored.
func TestOpenURL(t *testing.T) {
	type testcase struct {
		name   string
		urls   []string
		opened []string
		events []Event
	}

	for _, tc := range []testcase{
		{
			name:   "no taps",
			opened: []string{},
		},
		{
			name:   "single tap dispatches once",
			urls:   []string{"http://a.com"},
			opened: []string{"http://a.com"},
			events: []Event{{Type: Open, URL: "http://a.com"}},
		},
		{
			name:   "empty URL is a no-op",
			urls:   []string{""},
			opened: []string{},
		},
		{
			name:   "taps dispatch in order",
			urls:   []string{"http://a.com", "http://b.com"},
			opened: []string{"http://a.com", "http://b.com"},
			events: []Event{
				{Type: Open, URL: "http://a.com"},
				{Type: Open, URL: "http://b.com"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opened := []string{}
			state := LinkText{
				Opener: func(url string) {
					opened = append(opened, url)
				},
			}
			for _, url := range tc.urls {
				state.OpenURL(url)
			}
			if !reflect.DeepEqual(opened, tc.opened) {
				t.Errorf("expected opened %v, got %v", tc.opened, opened)
			}
			if events := state.Events(); !reflect.DeepEqual(events, tc.events) {
				t.Errorf("expected events %v, got %v", tc.events, events)
			}
		})
	}
}

// TestCopy ensures that a long-press always records exactly one copy
// and records a delete request if and only if the text is deletable.
func TestCopy(t *testing.T) {
	type testcase struct {
		name   string
		role   Role
		events []Event
	}

	for _, tc := range []testcase{
		{
			name:   "plain copy",
			events: []Event{{Type: Copy, Text: "hello"}},
		},
		{
			name: "tip copy",
			role: Role{Tip: true},
			events: []Event{
				{Type: Copy, Text: "hello", Tip: true},
			},
		},
		{
			name: "deletable message requests deletion",
			role: Role{Deletable: true},
			events: []Event{
				{Type: Copy, Text: "hello"},
				{Type: Delete, Text: "hello"},
			},
		},
		{
			name: "deletable tip",
			role: Role{Tip: true, Deletable: true},
			events: []Event{
				{Type: Copy, Text: "hello", Tip: true},
				{Type: Delete, Text: "hello"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var state LinkText
			gtx := layout.Context{Ops: new(op.Ops)}
			state.Copy(gtx, "hello", tc.role)
			if events := state.Events(); !reflect.DeepEqual(events, tc.events) {
				t.Errorf("expected events %v, got %v", tc.events, events)
			}
		})
	}
}

// TestEventsDrain ensures that draining events empties the queue.
func TestEventsDrain(t *testing.T) {
	var state LinkText
	state.OpenURL("http://a.com")
	if events := state.Events(); len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events := state.Events(); len(events) != 0 {
		t.Errorf("expected drained queue, got %v", events)
	}
}
