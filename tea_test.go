package mosaic

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromTeaKeys(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, KeyEvent{Code: KeyRune, Rune: 'x'}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, KeyEvent{Code: KeyRune, Rune: 'f', Mods: ModAlt}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyEvent{Code: KeyEnter}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, KeyEvent{Code: KeyTab, Mods: ModShift}},
		{"ctrl arrow", tea.KeyMsg{Type: tea.KeyCtrlRight}, KeyEvent{Code: KeyRight, Mods: ModCtrl}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlQ}, KeyEvent{Code: KeyRune, Rune: 'q', Mods: ModCtrl}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, KeyEvent{Code: KeyEscape}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromTea(tc.msg)
			if !ok {
				t.Fatal("message not translated")
			}
			if got != Event(tc.want) {
				t.Errorf("FromTea = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestFromTeaMouse(t *testing.T) {
	msg := tea.MouseMsg{
		X:      7,
		Y:      3,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		Ctrl:   true,
	}
	got, ok := FromTea(msg)
	if !ok {
		t.Fatal("mouse message not translated")
	}
	want := MouseEvent{Kind: MouseDown, Button: ButtonLeft, Pos: Point{X: 7, Y: 3}, Mods: ModCtrl}
	if got != Event(want) {
		t.Errorf("FromTea = %#v, want %#v", got, want)
	}
}

func TestFromTeaWindowAndQuit(t *testing.T) {
	if ev, ok := FromTea(tea.WindowSizeMsg{Width: 80, Height: 24}); !ok || ev != Event(ResizeEvent{Width: 80, Height: 24}) {
		t.Errorf("window size: %#v %v", ev, ok)
	}
	if ev, ok := FromTea(tea.QuitMsg{}); !ok {
		t.Errorf("quit: %#v %v", ev, ok)
	} else if _, isQuit := ev.(QuitEvent); !isQuit {
		t.Errorf("quit translated to %#v", ev)
	}
}

func TestFromTeaIgnoresHostMessages(t *testing.T) {
	type hostMsg struct{}
	if _, ok := FromTea(hostMsg{}); ok {
		t.Error("unknown message translated")
	}
	if _, ok := FromTea(tea.FocusMsg{}); ok {
		t.Error("focus report translated")
	}
}
