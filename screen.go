package mosaic

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Screen is a standalone rendering backend: a double-buffered terminal
// writer that diffs the back buffer against what is on screen and flushes
// only the cells that changed. Hosts that run under bubbletea use the
// Driver instead; Screen exists for hosts that own their terminal directly.
type Screen struct {
	front  *Buffer
	back   *Buffer
	writer io.Writer
	fd     int

	width  int
	height int

	origTermios *unix.Termios
	inRawMode   bool

	resizeChan chan Size
	sigChan    chan os.Signal

	lastStyle Style
	buf       bytes.Buffer

	// protects buffers during resize
	mu sync.Mutex
}

// Size represents terminal dimensions.
type Size struct {
	Width  int
	Height int
}

// NewScreen creates a screen writing to the given writer. Pass nil to use
// os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height := 80, 24
	if term.IsTerminal(fd) {
		if tw, th, err := terminalSize(fd); err == nil {
			width, height = tw, th
		}
	}

	return &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
	}, nil
}

func terminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode and switches to the
// alternate screen.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	s.origTermios = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	s.inRawMode = true

	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // enter alternate screen
	s.writeString("\x1b[2J")     // clear so the front buffer matches
	s.writeString("\x1b[H")
	s.writeString("\x1b[?25l") // hide cursor
	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?25h")
	s.writeString("\x1b[?1049l")

	signal.Stop(s.sigChan)

	if s.origTermios != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.origTermios); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := terminalSize(s.fd)
		if err != nil {
			continue
		}
		if width != s.width || height != s.height {
			s.mu.Lock()
			s.width = width
			s.height = height
			s.front.Resize(width, height)
			s.back.Resize(width, height)
			s.front.Clear()
			s.back.Clear()
			s.writeString("\x1b[2J")
			s.mu.Unlock()
			select {
			case s.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}

// Flush writes the back buffer to the terminal using a per-cell diff,
// skipping rows with no writes since the last frame.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()

	changed := false
	cursorX, cursorY := -1, -1

	for y := 0; y < s.height; y++ {
		if !s.back.RowDirty(y) {
			continue
		}
		for x := 0; x < s.width; x++ {
			backCell := s.back.Get(x, y)
			if backCell == s.front.Get(x, y) {
				continue
			}
			// placeholder half of a double-width char
			if backCell.Rune == 0 {
				s.front.Set(x, y, backCell)
				continue
			}
			changed = true

			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				s.buf.Write(appendInt(nil, y+1))
				s.buf.WriteByte(';')
				s.buf.Write(appendInt(nil, x+1))
				s.buf.WriteByte('H')
			}

			if !backCell.Style.Equal(s.lastStyle) {
				s.buf.Write(appendStyle(nil, backCell.Style))
				s.lastStyle = backCell.Style
			}
			s.buf.WriteRune(backCell.Rune)
			s.front.Set(x, y, backCell)

			rw := runewidth.RuneWidth(backCell.Rune)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if changed {
		s.buf.WriteString("\x1b[0m")
		s.lastStyle = DefaultStyle()
	}

	s.back.ClearDirtyFlags()

	if s.buf.Len() > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// ApplyCursor positions and shows (or hides) the terminal cursor from a
// render's cursor hint.
func (s *Screen) ApplyCursor(hint CursorHint) {
	if !hint.Visible {
		s.writeString("\x1b[?25l")
		return
	}
	var scratch [32]byte
	b := scratch[:0]
	b = append(b, "\x1b["...)
	b = appendInt(b, hint.Pos.Y+1)
	b = append(b, ';')
	b = appendInt(b, hint.Pos.X+1)
	b = append(b, 'H')
	b = append(b, "\x1b[?25h"...)
	s.writer.Write(b)
}

// Clear clears the back buffer.
func (s *Screen) Clear() {
	s.back.Clear()
}

func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}

// appendStyle appends the ANSI escape sequence for a style.
func appendStyle(b []byte, style Style) []byte {
	b = append(b, "\x1b[0"...)

	if style.Attr.Has(AttrBold) {
		b = append(b, ";1"...)
	}
	if style.Attr.Has(AttrDim) {
		b = append(b, ";2"...)
	}
	if style.Attr.Has(AttrItalic) {
		b = append(b, ";3"...)
	}
	if style.Attr.Has(AttrUnderline) {
		b = append(b, ";4"...)
	}
	if style.Attr.Has(AttrBlink) {
		b = append(b, ";5"...)
	}
	if style.Attr.Has(AttrInverse) {
		b = append(b, ";7"...)
	}
	if style.Attr.Has(AttrStrikethrough) {
		b = append(b, ";9"...)
	}

	b = appendColor(b, style.FG, true)
	b = appendColor(b, style.BG, false)
	return append(b, 'm')
}

// appendColor appends the ANSI parameter for a color.
func appendColor(b []byte, c Color, fg bool) []byte {
	switch c.Mode {
	case ColorDefault:
		if fg {
			return append(b, ";39"...)
		}
		return append(b, ";49"...)
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		b = append(b, ';')
		return appendInt(b, base+idx)
	case Color256:
		if fg {
			b = append(b, ";38;5;"...)
		} else {
			b = append(b, ";48;5;"...)
		}
		return appendInt(b, int(c.Index))
	case ColorRGB:
		if fg {
			b = append(b, ";38;2;"...)
		} else {
			b = append(b, ";48;2;"...)
		}
		b = appendInt(b, int(c.R))
		b = append(b, ';')
		b = appendInt(b, int(c.G))
		b = append(b, ';')
		return appendInt(b, int(c.B))
	}
	return b
}

// appendInt appends an integer without allocation.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
