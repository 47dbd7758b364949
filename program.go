package mosaic

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Driver adapts a Session to bubbletea's Model interface, so a host
// application gets the poll → dispatch → render loop for free. bubbletea
// does the raw input decoding and terminal management; the driver feeds
// translated events into Dispatch and serializes the session's buffer as
// the view.
type Driver struct {
	session *Session
	buf     *Buffer
	quit    func(KeyEvent) bool
}

// NewDriver wraps a session. By default ctrl+c quits; override with QuitOn.
func NewDriver(s *Session) *Driver {
	b := s.Bounds()
	return &Driver{
		session: s,
		buf:     NewBuffer(b.W, b.H),
		quit: func(e KeyEvent) bool {
			return e.Code == KeyRune && e.Rune == 'c' && e.Mods.Has(ModCtrl)
		},
	}
}

// QuitOn replaces the predicate that ends the program. A nil predicate
// disables driver-level quitting entirely.
func (d *Driver) QuitOn(fn func(KeyEvent) bool) *Driver {
	d.quit = fn
	return d
}

// Session returns the wrapped session.
func (d *Driver) Session() *Session {
	return d.session
}

// Init implements tea.Model.
func (d *Driver) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model: translate, dispatch, re-render.
func (d *Driver) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	e, ok := FromTea(msg)
	if !ok {
		return d, nil
	}
	if ke, isKey := e.(KeyEvent); isKey && d.quit != nil && d.quit(ke) {
		return d, tea.Quit
	}
	if _, err := d.session.Dispatch(e); err != nil {
		// Dispatch errors indicate caller-side tree/handle misuse; the
		// driver drops the event rather than crashing the program.
		return d, nil
	}
	if re, isResize := e.(ResizeEvent); isResize {
		d.buf.Resize(re.Width, re.Height)
	}
	return d, nil
}

// View implements tea.Model: paint the session into the cell buffer and
// serialize it with ANSI styling.
func (d *Driver) View() string {
	d.buf.Clear()
	d.session.Render(d.buf)

	var sb strings.Builder
	sb.Grow(d.buf.Width() * d.buf.Height() * 2)
	last := DefaultStyle()
	for y := 0; y < d.buf.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < d.buf.Width(); x++ {
			cell := d.buf.Get(x, y)
			if cell.Rune == 0 {
				continue // placeholder half of a wide rune
			}
			if !cell.Style.Equal(last) {
				sb.Write(appendStyle(nil, cell.Style))
				last = cell.Style
			}
			sb.WriteRune(cell.Rune)
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}

// Run drives the session under a bubbletea program with the alternate
// screen and full mouse reporting enabled, blocking until quit.
func Run(s *Session) error {
	p := tea.NewProgram(NewDriver(s), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
