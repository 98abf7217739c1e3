package terminal

// EventType classifies terminal input events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventTick // synthetic, posted by animation tickers
	EventClosed
	EventError
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // printable character, check Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCtrlC
	KeyCtrlL
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// Event is a single terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	MouseX int
	MouseY int
	Button MouseButton
	Width  int // resize
	Height int // resize
	Err    error
}
