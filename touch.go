package forms

// TouchEventType identifies a touch state transition delivered to Touch.
type TouchEventType int

const (
	// TouchPress is a finger making contact.
	TouchPress TouchEventType = iota

	// TouchRelease is a finger leaving the surface.
	TouchRelease

	// TouchMove is a finger moving while in contact.
	TouchMove
)

// String returns the event name.
func (e TouchEventType) String() string {
	switch e {
	case TouchPress:
		return "press"
	case TouchRelease:
		return "release"
	case TouchMove:
		return "move"
	default:
		return "unknown"
	}
}

// MaxTouchPoints is the number of simultaneous contacts tracked. Events
// with a contact index at or above this are ignored.
const MaxTouchPoints = 10

// invalidContact marks a button or joystick with no owning contact.
const invalidContact = -1
