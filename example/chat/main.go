// Package main demonstrates interactive link text within a chat
// transcript: tapping a link opens it, long-pressing a message copies
// it and (for local messages) offers to delete it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/haptic"
	"gioui.org/x/notify"
	"github.com/pkg/browser"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~gioverse/linktext/detect"
	chatlayout "git.sr.ht/~gioverse/linktext/layout"
	"git.sr.ht/~gioverse/linktext/profile"
	chatwidget "git.sr.ht/~gioverse/linktext/widget"
	chatmaterial "git.sr.ht/~gioverse/linktext/widget/material"
)

var profileOpt = flag.String("profile", "none", "create the provided kind of profile. Use one of [none, cpu, mem, trace, gio]")

// DeleteIcon is the material design delete indicator.
var DeleteIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionDelete)
	return icon
}()

func main() {
	flag.Parse()
	var (
		w = app.NewWindow(
			app.Title("Link Text"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		ops op.Ops
		ui  = NewUI(w)
		pfn = profile.Opt(*profileOpt).NewProfiler()
	)
	pfn.Start()

	go func() {
		// Event loop executes indefinitely, until the app is signalled
		// to quit.
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				pfn.Stop()
				if err := event.Err; err != nil {
					fmt.Printf("error: premature window close: %v\n", err)
					os.Exit(1)
				}
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				pfn.Record(gtx)
				ui.Layout(gtx)
				event.Frame(&ops)
			}
		}
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

// Type alias common layout types for legibility.
type (
	C = layout.Context
	D = layout.Dimensions
)

// UI manages the state for the entire application's UI.
type UI struct {
	Theme    *Theme
	Detector detect.Detector
	RowsList layout.List
	Messages []chatmaterial.MessageConfig
	States   []*chatwidget.LinkText
	// Buzzer provides haptic feedback on long-press where the
	// platform supports it.
	Buzzer *haptic.Buzzer
	// Notifier surfaces copy confirmations as system notifications.
	Notifier notify.Notifier
	// Toast is the in-window copy confirmation.
	Toast Toast
	// PendingDelete is the index of the message awaiting deletion
	// confirmation, or -1.
	PendingDelete int
	DeleteBtn     widget.Clickable
	KeepBtn       widget.Clickable
	Bg            color.NRGBA
}

// NewUI constructs a UI and populates it with a generated
// conversation.
func NewUI(w *app.Window) *UI {
	ui := UI{
		Theme:         NewTheme(),
		Detector:      detect.Relaxed(),
		Buzzer:        haptic.NewBuzzer(w),
		Bg:            color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		PendingDelete: -1,
	}
	notifier, err := notify.NewNotifier()
	if err != nil {
		log.Printf("notifications unavailable: %v", err)
	} else {
		ui.Notifier = notifier
	}
	ui.Messages = GenConversation(40)
	for range ui.Messages {
		ui.States = append(ui.States, ui.newState())
	}
	return &ui
}

// newState allocates interaction state wired to the OS URL handler
// and the haptic buzzer.
func (ui *UI) newState() *chatwidget.LinkText {
	state := &chatwidget.LinkText{
		Buzzer: ui.Buzzer,
	}
	state.Opener = func(url string) {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				log.Printf("opening %s: %v", url, err)
			}
		}()
	}
	return state
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	paint.Fill(gtx.Ops, ui.Bg)
	ui.RowsList.Axis = layout.Vertical
	ui.RowsList.ScrollToEnd = true
	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutDeleteBanner),
		layout.Flexed(1, func(gtx C) D {
			return ui.RowsList.Layout(gtx, len(ui.Messages), func(gtx C, index int) D {
				return ui.row(index).Layout(gtx)
			})
		}),
		layout.Rigid(func(gtx C) D {
			return ui.Toast.Layout(gtx, ui.Theme.Theme)
		}),
	)
	ui.update()
	return dims
}

// row builds the style for the message at index, coloring remote
// messages per sender.
func (ui *UI) row(index int) chatmaterial.MessageStyle {
	msg := ui.Messages[index]
	style := chatmaterial.Message(ui.Theme.Theme, ui.States[index], ui.Detector, msg)
	if !msg.Local {
		uc := ui.Theme.UserColor(msg.Sender)
		style = style.WithBubbleColor(ui.Theme.Theme, uc.NRGBA, uc.Luminance)
	}
	return style
}

// update drains interaction events and reconciles the pending-delete
// confirmation.
func (ui *UI) update() {
	for index, state := range ui.States {
		for _, event := range state.Events() {
			switch event.Type {
			case chatwidget.Open:
				log.Printf("opened %s", event.URL)
			case chatwidget.Copy:
				title := "Copied"
				if event.Tip {
					title = "Tip copied"
				}
				ui.Toast.Show(title)
				if ui.Notifier != nil {
					if _, err := ui.Notifier.CreateNotification(title, event.Text); err != nil {
						log.Printf("notifying: %v", err)
					}
				}
			case chatwidget.Delete:
				ui.PendingDelete = index
			}
		}
	}
	if ui.DeleteBtn.Clicked() && ui.PendingDelete >= 0 {
		ui.Messages = append(ui.Messages[:ui.PendingDelete], ui.Messages[ui.PendingDelete+1:]...)
		ui.States = append(ui.States[:ui.PendingDelete], ui.States[ui.PendingDelete+1:]...)
		ui.PendingDelete = -1
	}
	if ui.KeepBtn.Clicked() {
		ui.PendingDelete = -1
	}
}

// layoutDeleteBanner lays out the deletion confirmation for the
// pending message, if any.
func (ui *UI) layoutDeleteBanner(gtx C) D {
	if ui.PendingDelete < 0 || ui.PendingDelete >= len(ui.Messages) {
		return D{}
	}
	th := ui.Theme.Theme
	return chatlayout.Background(th.ContrastBg).Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					side := gtx.Dp(unit.Dp(24))
					gtx.Constraints.Max.X = side
					gtx.Constraints.Max.Y = side
					gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
					return DeleteIcon.Layout(gtx, th.ContrastFg)
				}),
				layout.Flexed(1, func(gtx C) D {
					label := material.Body1(th, "Delete this message?")
					label.Color = th.ContrastFg
					return layout.UniformInset(unit.Dp(4)).Layout(gtx, label.Layout)
				}),
				layout.Rigid(material.Button(th, &ui.KeepBtn, "Keep").Layout),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(material.Button(th, &ui.DeleteBtn, "Delete").Layout),
			)
		})
	})
}

// Toast is a transient confirmation shown after a copy.
type Toast struct {
	Text  string
	Until time.Time
}

// Show displays the toast for a short duration.
func (t *Toast) Show(text string) {
	t.Text = text
	t.Until = time.Now().Add(2 * time.Second)
}

// Layout the toast while its duration lasts.
func (t *Toast) Layout(gtx C, th *material.Theme) D {
	if !time.Now().Before(t.Until) {
		return D{}
	}
	op.InvalidateOp{At: t.Until}.Add(gtx.Ops)
	return layout.Center.Layout(gtx, func(gtx C) D {
		return chatlayout.Rounded(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			return chatlayout.Background(color.NRGBA{A: 200}).Layout(gtx, func(gtx C) D {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
					label := material.Body2(th, t.Text)
					label.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
					return label.Layout(gtx)
				})
			})
		})
	})
}
