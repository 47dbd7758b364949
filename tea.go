package mosaic

import tea "github.com/charmbracelet/bubbletea"

// FromTea translates a bubbletea message into a mosaic event. It returns
// false for messages the dispatcher has no use for (blur/focus reports,
// custom host messages, and so on).
func FromTea(msg tea.Msg) (Event, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return keyFromTea(m)
	case tea.MouseMsg:
		return mouseFromTea(tea.MouseEvent(m))
	case tea.WindowSizeMsg:
		return ResizeEvent{Width: m.Width, Height: m.Height}, true
	case tea.QuitMsg:
		return QuitEvent{}, true
	}
	return nil, false
}

func keyFromTea(m tea.KeyMsg) (Event, bool) {
	var mods Modifiers
	if m.Alt {
		mods |= ModAlt
	}

	code := KeyRune
	var r rune
	switch m.Type {
	case tea.KeyRunes:
		if len(m.Runes) == 0 {
			return nil, false
		}
		r = m.Runes[0]
	case tea.KeyEnter:
		code = KeyEnter
	case tea.KeyTab:
		code = KeyTab
	case tea.KeyShiftTab:
		code = KeyTab
		mods |= ModShift
	case tea.KeyBackspace:
		code = KeyBackspace
	case tea.KeyEsc:
		code = KeyEscape
	case tea.KeySpace:
		code = KeySpace
	case tea.KeyUp:
		code = KeyUp
	case tea.KeyDown:
		code = KeyDown
	case tea.KeyLeft:
		code = KeyLeft
	case tea.KeyRight:
		code = KeyRight
	case tea.KeyShiftUp:
		code = KeyUp
		mods |= ModShift
	case tea.KeyShiftDown:
		code = KeyDown
		mods |= ModShift
	case tea.KeyShiftLeft:
		code = KeyLeft
		mods |= ModShift
	case tea.KeyShiftRight:
		code = KeyRight
		mods |= ModShift
	case tea.KeyCtrlUp:
		code = KeyUp
		mods |= ModCtrl
	case tea.KeyCtrlDown:
		code = KeyDown
		mods |= ModCtrl
	case tea.KeyCtrlLeft:
		code = KeyLeft
		mods |= ModCtrl
	case tea.KeyCtrlRight:
		code = KeyRight
		mods |= ModCtrl
	case tea.KeyHome:
		code = KeyHome
	case tea.KeyEnd:
		code = KeyEnd
	case tea.KeyPgUp:
		code = KeyPgUp
	case tea.KeyPgDown:
		code = KeyPgDown
	case tea.KeyDelete:
		code = KeyDelete
	default:
		// Ctrl+letter combinations arrive as dedicated key types whose
		// values are the ASCII control codes.
		if m.Type >= tea.KeyCtrlA && m.Type <= tea.KeyCtrlZ {
			r = 'a' + rune(m.Type-tea.KeyCtrlA)
			mods |= ModCtrl
			break
		}
		return nil, false
	}
	return KeyEvent{Code: code, Rune: r, Mods: mods}, true
}

func mouseFromTea(m tea.MouseEvent) (Event, bool) {
	var kind MouseKind
	switch m.Action {
	case tea.MouseActionPress:
		kind = MouseDown
	case tea.MouseActionRelease:
		kind = MouseUp
	case tea.MouseActionMotion:
		kind = MouseMove
	default:
		return nil, false
	}

	var button MouseButton
	switch m.Button {
	case tea.MouseButtonLeft:
		button = ButtonLeft
	case tea.MouseButtonMiddle:
		button = ButtonMiddle
	case tea.MouseButtonRight:
		button = ButtonRight
	case tea.MouseButtonWheelUp:
		button = ButtonWheelUp
	case tea.MouseButtonWheelDown:
		button = ButtonWheelDown
	}

	var mods Modifiers
	if m.Shift {
		mods |= ModShift
	}
	if m.Alt {
		mods |= ModAlt
	}
	if m.Ctrl {
		mods |= ModCtrl
	}

	return MouseEvent{Kind: kind, Button: button, Pos: Point{X: m.X, Y: m.Y}, Mods: mods}, true
}
