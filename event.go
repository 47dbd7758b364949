package mosaic

// Event is a decoded input event. Raw escape-sequence parsing happens
// upstream (the bubbletea driver in this module, or any other decoder the
// host wires in); the dispatcher only ever sees these discrete values.
type Event interface {
	isEvent()
}

// KeyCode identifies a key. Printable keys use KeyRune with the rune set;
// everything else has a named code.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Has returns true if the mask contains the given modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// KeyEvent is a decoded keyboard event.
type KeyEvent struct {
	Code KeyCode
	Rune rune // set when Code == KeyRune
	Mods Modifiers
}

func (KeyEvent) isEvent() {}

// MouseKind discriminates mouse event types.
type MouseKind uint8

const (
	MouseMove MouseKind = iota
	MouseDown
	MouseUp
	// MouseClick is synthesized by the dispatcher when a down and up event
	// resolve to the same widget with no hover change in between. It is
	// never produced by input decoding.
	MouseClick
)

func (k MouseKind) String() string {
	switch k {
	case MouseMove:
		return "move"
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	}
	return "click"
}

// MouseButton identifies which button an event refers to.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// MouseEvent is a decoded mouse event. Pos is absolute when the event
// enters Dispatch and widget-local by the time a MouseHandler sees it.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
	Pos    Point
	Mods   Modifiers
}

func (MouseEvent) isEvent() {}

// ResizeEvent reports a new root size for the session. Dispatching one
// updates the session's bounds, which invalidates the layout cache.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// QuitEvent signals that the host loop should stop polling after the
// current dispatch cycle completes. The dispatcher itself treats it as
// consumed; observing it is the host's job.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// GlobalHandler inspects an event before focus- or position-based routing.
// Returning true consumes the event and stops propagation.
type GlobalHandler func(e Event) bool
