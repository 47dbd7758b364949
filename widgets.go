package mosaic

import "strings"

// Reference widgets. These exist so the demo and tests have something real
// to lay out; applications bring their own Widget implementations.

// Label displays static text. It is not focusable.
type Label struct {
	text  string
	style Style
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{text: text, style: DefaultStyle()}
}

// SetText updates the label's text.
func (l *Label) SetText(text string) *Label {
	l.text = text
	return l
}

// SetStyle updates the label's style.
func (l *Label) SetStyle(s Style) *Label {
	l.style = s
	return l
}

// Render implements Widget.
func (l *Label) Render(r *Region) {
	r.Fill(NewCell(' ', l.style))
	y := 0
	for _, line := range strings.Split(l.text, "\n") {
		if y >= r.Height() {
			break
		}
		r.WriteString(0, y, line, l.style)
		y++
	}
}

// TextBox is a minimal multi-line text editor: focusable, consumes
// printable keys, reports a caret position, and highlights while hovered.
type TextBox struct {
	lines   []string
	cursorX int
	cursorY int
	style   Style
	focused bool
	hovered bool
}

// NewTextBox creates an empty text box.
func NewTextBox() *TextBox {
	return &TextBox{lines: []string{""}, style: DefaultStyle()}
}

// Text returns the buffer contents joined with newlines.
func (t *TextBox) Text() string {
	return strings.Join(t.lines, "\n")
}

// SetText replaces the buffer contents and moves the caret to the end.
func (t *TextBox) SetText(text string) *TextBox {
	t.lines = strings.Split(text, "\n")
	t.cursorY = len(t.lines) - 1
	t.cursorX = len([]rune(t.lines[t.cursorY]))
	return t
}

// Render implements Widget.
func (t *TextBox) Render(r *Region) {
	bg := t.style
	if t.hovered && !t.focused {
		bg.Attr = bg.Attr.With(AttrDim)
	}
	r.Fill(NewCell(' ', bg))
	for y, line := range t.lines {
		if y >= r.Height() {
			break
		}
		r.WriteString(0, y, line, bg)
	}
}

// Focusable implements the focus capability.
func (t *TextBox) Focusable() bool {
	return true
}

// FocusGained implements FocusListener.
func (t *TextBox) FocusGained() {
	t.focused = true
}

// FocusLost implements FocusListener.
func (t *TextBox) FocusLost() {
	t.focused = false
}

// MouseEnter implements HoverListener.
func (t *TextBox) MouseEnter() {
	t.hovered = true
}

// MouseLeave implements HoverListener.
func (t *TextBox) MouseLeave() {
	t.hovered = false
}

// CursorPosition implements CursorProvider.
func (t *TextBox) CursorPosition() (Point, bool) {
	return Point{X: t.cursorX, Y: t.cursorY}, t.focused
}

// HandleMouse implements MouseHandler: clicking moves the caret.
func (t *TextBox) HandleMouse(e MouseEvent) bool {
	if e.Kind != MouseClick || e.Button != ButtonLeft {
		return false
	}
	t.cursorY = e.Pos.Y
	if t.cursorY >= len(t.lines) {
		t.cursorY = len(t.lines) - 1
	}
	t.cursorX = e.Pos.X
	if n := len([]rune(t.lines[t.cursorY])); t.cursorX > n {
		t.cursorX = n
	}
	return true
}

// HandleKey implements KeyHandler.
func (t *TextBox) HandleKey(e KeyEvent) bool {
	line := []rune(t.lines[t.cursorY])
	switch e.Code {
	case KeyRune:
		if e.Mods.Has(ModCtrl) || e.Mods.Has(ModAlt) {
			return false
		}
		line = append(line[:t.cursorX], append([]rune{e.Rune}, line[t.cursorX:]...)...)
		t.lines[t.cursorY] = string(line)
		t.cursorX++
	case KeySpace:
		line = append(line[:t.cursorX], append([]rune{' '}, line[t.cursorX:]...)...)
		t.lines[t.cursorY] = string(line)
		t.cursorX++
	case KeyEnter:
		rest := string(line[t.cursorX:])
		t.lines[t.cursorY] = string(line[:t.cursorX])
		t.lines = append(t.lines[:t.cursorY+1], append([]string{rest}, t.lines[t.cursorY+1:]...)...)
		t.cursorY++
		t.cursorX = 0
	case KeyBackspace:
		if t.cursorX > 0 {
			line = append(line[:t.cursorX-1], line[t.cursorX:]...)
			t.lines[t.cursorY] = string(line)
			t.cursorX--
		} else if t.cursorY > 0 {
			prev := []rune(t.lines[t.cursorY-1])
			t.cursorX = len(prev)
			t.lines[t.cursorY-1] = string(prev) + string(line)
			t.lines = append(t.lines[:t.cursorY], t.lines[t.cursorY+1:]...)
			t.cursorY--
		}
	case KeyLeft:
		if t.cursorX > 0 {
			t.cursorX--
		}
	case KeyRight:
		if t.cursorX < len(line) {
			t.cursorX++
		}
	case KeyUp:
		if t.cursorY > 0 {
			t.cursorY--
			t.clampX()
		}
	case KeyDown:
		if t.cursorY < len(t.lines)-1 {
			t.cursorY++
			t.clampX()
		}
	default:
		return false
	}
	return true
}

func (t *TextBox) clampX() {
	if n := len([]rune(t.lines[t.cursorY])); t.cursorX > n {
		t.cursorX = n
	}
}
