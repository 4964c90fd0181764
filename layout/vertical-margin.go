package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// VerticalMarginStyle insets a widget equally on its top and bottom
// edges. Wrapping every chat element in the same VerticalMarginStyle
// as its outermost layout type keeps rows evenly spaced without any
// one row crowding its neighbors.
type VerticalMarginStyle struct {
	Size unit.Dp
}

// VerticalMargin configures a vertical margin with a sensible default
// size.
func VerticalMargin() VerticalMarginStyle {
	return VerticalMarginStyle{Size: unit.Dp(4)}
}

// Layout the provided widget within the margin and return their
// combined dimensions.
func (v VerticalMarginStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Inset{
		Top:    v.Size,
		Bottom: v.Size,
	}.Layout(gtx, w)
}
