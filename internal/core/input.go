package core

// Button is a logical input the simulation polls, abstracted from physical
// keys, pads or terminal key events.
type Button int

const (
	ButtonUp    Button = iota // W, Z, Up arrow - jump, climb in top-down mode
	ButtonDown                // S, Down arrow - duck, descend in top-down mode
	ButtonLeft                // A, Q, Left arrow
	ButtonRight               // D, Right arrow
	ButtonFire                // Enter, Space, Shift - fire the honey gun
	ButtonDebug               // Debug overlay switch
	buttonCount
)

// Buttons lists every logical button in declaration order.
func Buttons() []Button {
	out := make([]Button, 0, buttonCount)
	for b := ButtonUp; b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonFire:
		return "Fire"
	case ButtonDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Input answers whether a logical button is currently held.
type Input interface {
	Held(b Button) bool
}

// ButtonState is a set of held buttons. Hosts fill it from their own event
// source; the simulation only reads it through Input.
type ButtonState struct {
	held map[Button]bool
}

// NewButtonState creates a state with nothing held.
func NewButtonState() *ButtonState {
	return &ButtonState{held: make(map[Button]bool)}
}

// Set marks a button as held.
func (s *ButtonState) Set(b Button) {
	if s.held == nil {
		s.held = make(map[Button]bool)
	}
	s.held[b] = true
}

// Release marks a button as no longer held.
func (s *ButtonState) Release(b Button) {
	delete(s.held, b)
}

// Held returns true if the button is currently held.
func (s *ButtonState) Held(b Button) bool {
	if s == nil || s.held == nil {
		return false
	}
	return s.held[b]
}

// Clear releases every button.
func (s *ButtonState) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// AnyMovement reports whether a direction button is held.
func AnyMovement(in Input) bool {
	return in.Held(ButtonUp) || in.Held(ButtonDown) || in.Held(ButtonLeft) || in.Held(ButtonRight)
}
