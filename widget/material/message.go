package material

import (
	"image/color"
	"strings"
	"time"
	"unicode/utf8"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/linktext/detect"
	chatlayout "git.sr.ht/~gioverse/linktext/layout"
	chatwidget "git.sr.ht/~gioverse/linktext/widget"
)

// Note: the values chosen are a best-guess heuristic, open to change.
var (
	DefaultMaxMessageWidth = unit.Dp(600)
	DefaultBadgeSize       = unit.Dp(24)
)

// MessageConfig describes the aspects of a chat message relevant for
// displaying it within a widget.
type MessageConfig struct {
	Sender  string
	Content string
	SentAt  time.Time
	// Local indicates the message was sent by the local user.
	Local bool
	// Tip marks the content as a tip for copy handling.
	Tip bool
	// Deletable marks the message as removable via long-press.
	Deletable bool
}

// SenderStyle presents the sender of a message as a colored initial
// badge beside the sender's name.
type SenderStyle struct {
	// Badge is the sender's initial, displayed within the badge.
	Badge material.LabelStyle
	// BadgeColor fills the badge background.
	BadgeColor color.NRGBA
	// BadgeSize is the side length of the badge.
	BadgeSize unit.Dp
	// Name presents the sender's name.
	Name material.LabelStyle
	// Spacer is inserted between the badge and name fields.
	layout.Spacer
	// Local reverses the Left-to-Right ordering of layout.
	Local bool
}

// Sender constructs a SenderStyle with sensible defaults.
func Sender(th *material.Theme, name string, badge color.NRGBA) SenderStyle {
	s := SenderStyle{
		Badge:      material.Body2(th, initial(name)),
		BadgeColor: badge,
		BadgeSize:  DefaultBadgeSize,
		Name:       material.Body1(th, name),
		Spacer:     layout.Spacer{Width: unit.Dp(8)},
	}
	if Luminance(badge) < .5 {
		s.Badge.Color = th.Bg
	}
	return s
}

// initial returns the upper-cased first rune of name.
func initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return "?"
	}
	return strings.ToUpper(string(r))
}

// Layout the sender information.
func (s SenderStyle) Layout(gtx C) D {
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx,
		chatlayout.Reverse(s.Local,
			layout.Rigid(s.layoutBadge),
			layout.Rigid(s.Spacer.Layout),
			layout.Rigid(s.Name.Layout),
		)...,
	)
}

// layoutBadge lays out the initial atop a rounded colored surface.
func (s SenderStyle) layoutBadge(gtx C) D {
	side := gtx.Dp(s.BadgeSize)
	gtx.Constraints.Min.X = side
	gtx.Constraints.Min.Y = side
	gtx.Constraints.Max.X = side
	gtx.Constraints.Max.Y = side
	return chatlayout.Rounded(s.BadgeSize).Layout(gtx, func(gtx C) D {
		return chatlayout.Background(s.BadgeColor).Layout(gtx, func(gtx C) D {
			return layout.Center.Layout(gtx, s.Badge.Layout)
		})
	})
}

// MessageStyle configures the presentation of a chat message within
// a vertical list of chat messages.
type MessageStyle struct {
	// OuterMargin separates this message from its neighbors.
	OuterMargin chatlayout.VerticalMarginStyle
	chatlayout.GutterStyle
	// Local indicates that the message was sent by the local user,
	// and should be right-aligned.
	Local bool
	// Time is the timestamp associated with the message.
	Time material.LabelStyle
	// SenderStyle configures how the sender's information is displayed.
	SenderStyle
	// BubbleStyle configures the surface beneath the message text.
	BubbleStyle
	// ContentMargin configures space around the chat bubble.
	ContentMargin chatlayout.VerticalMarginStyle
	// ContentPadding separates the text from the bubble edges.
	ContentPadding layout.Inset
	// Content is the link-aware text of the message.
	Content LinkTextStyle
	// MaxMessageWidth constrains the display width of the bubble.
	MaxMessageWidth unit.Dp
}

// Message creates a style type that can lay out the data for a
// message. The provided detector locates hyperlinks within the
// message content.
func Message(th *material.Theme, state *chatwidget.LinkText, det detect.Detector, msg MessageConfig) MessageStyle {
	ms := MessageStyle{
		OuterMargin:    chatlayout.VerticalMargin(),
		GutterStyle:    chatlayout.Gutter(),
		Local:          msg.Local,
		Time:           material.Body2(th, msg.SentAt.Local().Format("15:04")),
		SenderStyle:    Sender(th, msg.Sender, th.ContrastBg),
		BubbleStyle:    Bubble(th),
		ContentMargin:  chatlayout.VerticalMargin(),
		ContentPadding: layout.UniformInset(unit.Dp(8)),
		Content: LinkText(th, state, det, msg.Content).WithRole(chatwidget.Role{
			Tip:       msg.Tip,
			Deletable: msg.Deletable,
		}),
		MaxMessageWidth: DefaultMaxMessageWidth,
	}
	ms.SenderStyle.Local = msg.Local
	return ms
}

// WithBubbleColor recolors the bubble surface, adjusting the text and
// link tints to remain legible against it.
func (c MessageStyle) WithBubbleColor(th *material.Theme, col color.NRGBA, luminance float64) MessageStyle {
	c.BubbleStyle.Color = col
	c.SenderStyle.BadgeColor = col
	c.SenderStyle.Badge.Color = th.Fg
	fg := th.Fg
	if luminance < .5 {
		fg = th.Bg
		c.SenderStyle.Badge.Color = th.Bg
	}
	c.Content = c.Content.WithColors(fg, LinkColorFor(col))
	return c
}

// Layout the message.
func (c MessageStyle) Layout(gtx C) D {
	return c.OuterMargin.Layout(gtx, func(gtx C) D {
		alignment := layout.W
		if c.Local {
			alignment = layout.E
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return c.GutterStyle.Layout(gtx,
					nil,
					func(gtx C) D {
						return alignment.Layout(gtx, c.SenderStyle.Layout)
					},
					nil,
				)
			}),
			layout.Rigid(func(gtx C) D {
				return c.GutterStyle.Layout(gtx,
					nil,
					func(gtx C) D {
						return alignment.Layout(gtx, c.layoutBubble)
					},
					func(gtx C) D {
						return layout.Center.Layout(gtx, c.Time.Layout)
					},
				)
			}),
		)
	})
}

// layoutBubble lays out the message text atop its bubble surface.
func (c MessageStyle) layoutBubble(gtx C) D {
	gtx.Constraints.Max.X = int(float32(gtx.Constraints.Max.X) * 0.8)
	max := gtx.Dp(c.MaxMessageWidth)
	if gtx.Constraints.Max.X > max {
		gtx.Constraints.Max.X = max
	}
	return c.ContentMargin.Layout(gtx, func(gtx C) D {
		return c.BubbleStyle.Layout(gtx, func(gtx C) D {
			return c.ContentPadding.Layout(gtx, c.Content.Layout)
		})
	})
}
