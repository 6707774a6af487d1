package screens

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/redmie/lutrisview/locale"
	"github.com/redmie/lutrisview/power"
	"github.com/redmie/lutrisview/style"
)

// ExitMenuScreen asks whether to return to the desktop, shut down or
// reboot
type ExitMenuScreen struct {
	callback      ScreenCallback
	loc           *locale.Localizer
	defaultAction power.Action

	buttons      map[power.Action]*widget.Button
	cancel       *widget.Button
	pendingFocus *widget.Button
}

// NewExitMenuScreen creates the exit menu. The button for defaultAction is
// focused when the menu opens.
func NewExitMenuScreen(callback ScreenCallback, loc *locale.Localizer, defaultAction power.Action) *ExitMenuScreen {
	return &ExitMenuScreen{
		callback:      callback,
		loc:           loc,
		defaultAction: defaultAction,
	}
}

// menuEntries lists the exit actions in display order
var menuEntries = []power.Action{power.Desktop, power.Shutdown, power.Reboot}

func actionLabel(loc *locale.Localizer, action power.Action) string {
	switch action {
	case power.Shutdown:
		return loc.Get(locale.MsgMenuShutdown)
	case power.Reboot:
		return loc.Get(locale.MsgMenuReboot)
	default:
		return loc.Get(locale.MsgMenuDesktop)
	}
}

// Build creates the exit menu UI
func (s *ExitMenuScreen) Build() *widget.Container {
	rootContainer := style.ScreenContainer()
	centerContent := style.CenteredContainer(style.DefaultSpacing)

	centerContent.AddChild(style.TitleText(s.loc.Get(locale.MsgMenuTitle)))

	buttonsContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)

	s.buttons = make(map[power.Action]*widget.Button, len(menuEntries))
	for _, action := range menuEntries {
		btn := style.MenuButton(actionLabel(s.loc, action), action == s.defaultAction, func(args *widget.ButtonClickedEventArgs) {
			s.callback.ChooseExit(action)
		})
		s.buttons[action] = btn
		buttonsContainer.AddChild(btn)
	}

	s.cancel = style.MenuButton(s.loc.Get(locale.MsgMenuCancel), false, func(args *widget.ButtonClickedEventArgs) {
		s.callback.CancelExit()
	})
	buttonsContainer.AddChild(s.cancel)

	centerContent.AddChild(buttonsContainer)
	rootContainer.AddChild(centerContent)

	s.pendingFocus = s.buttons[s.defaultAction]
	if s.pendingFocus == nil {
		s.pendingFocus = s.cancel
	}
	return rootContainer
}

// GetPendingFocusButton returns the button to focus after Build
func (s *ExitMenuScreen) GetPendingFocusButton() *widget.Button {
	return s.pendingFocus
}

// ClearPendingFocus clears the pending focus state
func (s *ExitMenuScreen) ClearPendingFocus() {
	s.pendingFocus = nil
}
