package layout

import (
	"gioui.org/layout"
)

// Reverse the order of the provided flex children if the boolean is
// true. Used to flip rows between local and remote alignment.
func Reverse(shouldReverse bool, items ...layout.FlexChild) []layout.FlexChild {
	if !shouldReverse {
		return items
	}
	for ii := 0; ii < len(items)/2; ii++ {
		var (
			head = ii
			tail = len(items) - 1 - ii
		)
		items[head], items[tail] = items[tail], items[head]
	}
	return items
}
