package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/widget/material"
	"gioui.org/x/richtext"
	colorful "github.com/lucasb-eyer/go-colorful"

	"git.sr.ht/~gioverse/linktext/detect"
	"git.sr.ht/~gioverse/linktext/segment"
	chatwidget "git.sr.ht/~gioverse/linktext/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// urlMetadataKey is the span metadata key carrying a link segment's
// resolved URL.
const urlMetadataKey = "url"

// DefaultLinkColor is the tint applied to link segments on light
// surfaces.
var DefaultLinkColor = color.NRGBA{R: 0x1a, G: 0x73, B: 0xe8, A: 0xff}

// LinkTextStyle renders a block of text with detected hyperlinks
// tinted and interactive. Tapping a link hands its URL to the state's
// opener, and a long-press anywhere on the text copies the entire
// content to the clipboard.
type LinkTextStyle struct {
	// State holds the cross-frame gesture state and event queue.
	State *chatwidget.LinkText
	// Text is the raw content being displayed.
	Text string
	// Role describes the text for long-press handling.
	Role chatwidget.Role
	// Matches locate the detected links within Text.
	Matches []segment.LinkMatch
	// Segments is the ordered plain/link partition of Text backing
	// the styled spans.
	Segments []segment.Segment
	// Content is the styled span sequence derived from Segments.
	Content richtext.TextStyle
}

// LinkText constructs a LinkTextStyle by running the provided detector
// over content and styling the resulting segments. Every span is
// interactive so that a long-press is recognized regardless of hit
// location; only link spans carry a URL.
func LinkText(th *material.Theme, state *chatwidget.LinkText, det detect.Detector, content string) LinkTextStyle {
	matches := det.Detect(content)
	segments, err := segment.Split(content, matches)
	if err != nil {
		// A detector violating its contract renders as plain text
		// rather than interrupting the frame.
		matches = nil
		segments, _ = segment.Split(content, nil)
	}
	base := material.Body1(th, "")
	spans := make([]richtext.SpanStyle, 0, len(segments))
	for _, seg := range segments {
		span := richtext.SpanStyle{
			Font:        base.Font,
			Size:        base.TextSize,
			Color:       th.Fg,
			Content:     seg.Text,
			Interactive: true,
		}
		if seg.Kind == segment.Link {
			span.Color = DefaultLinkColor
			span.Set(urlMetadataKey, seg.URL)
		}
		spans = append(spans, span)
	}
	return LinkTextStyle{
		State:    state,
		Text:     content,
		Matches:  matches,
		Segments: segments,
		Content:  richtext.Text(&state.InteractiveText, th.Shaper, spans...),
	}
}

// WithRole returns a copy of the style acting under the provided role.
func (l LinkTextStyle) WithRole(role chatwidget.Role) LinkTextStyle {
	l.Role = role
	return l
}

// WithColors returns a copy of the style with plain spans tinted fg
// and link spans tinted link.
func (l LinkTextStyle) WithColors(fg, link color.NRGBA) LinkTextStyle {
	for i := range l.Content.Styles {
		if l.Segments[i].Kind == segment.Link {
			l.Content.Styles[i].Color = link
		} else {
			l.Content.Styles[i].Color = fg
		}
	}
	return l
}

// Layout processes pending gestures and renders the text.
func (l LinkTextStyle) Layout(gtx C) D {
	l.update(gtx)
	return l.Content.Layout(gtx)
}

// update translates recognized richtext gestures into link text
// events. Taps act only once fully recognized, and the gesture state
// suppresses the tap that concludes a long-press, so each press
// produces at most one action.
func (l LinkTextStyle) update(gtx C) {
	for span, events := l.State.InteractiveText.Events(); span != nil; span, events = l.State.InteractiveText.Events() {
		for _, event := range events {
			url, _ := span.Get(urlMetadataKey).(string)
			l.dispatch(gtx, event.Type, url)
		}
	}
}

// dispatch routes a single recognized gesture to the interaction
// state. url is the tapped span's link target, empty for plain spans,
// so a tap outside every link silently does nothing. A long-press
// copies the full text regardless of which span was pressed.
func (l LinkTextStyle) dispatch(gtx C, event richtext.EventType, url string) {
	switch event {
	case richtext.Click:
		l.State.OpenURL(url)
	case richtext.LongPress:
		l.State.Copy(gtx, l.Text, l.Role)
	}
}

// LinkColorFor chooses a link tint legible against the provided
// background color.
func LinkColorFor(bg color.NRGBA) color.NRGBA {
	base, ok := colorful.MakeColor(color.NRGBA{R: DefaultLinkColor.R, G: DefaultLinkColor.G, B: DefaultLinkColor.B, A: 255})
	if !ok {
		return DefaultLinkColor
	}
	h, s, lum := base.Hsl()
	if Luminance(bg) < 0.5 {
		lum = 0.75
	}
	r, g, b := colorful.Hsl(h, s, lum).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Luminance computes the relative brightness of a color, normalized
// between [0,1]. Ignores alpha.
func Luminance(c color.NRGBA) float64 {
	return (float64(float64(0.299)*float64(c.R) + float64(0.587)*float64(c.G) + float64(0.114)*float64(c.B))) / 255
}
