package core

// Key code definitions
type KeyCode uint16

const (
	KEY_UNKNOWN   KeyCode = 0x00
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20

	KEY_0 KeyCode = 0x30
	KEY_9 KeyCode = 0x39

	KEY_A KeyCode = 0x41
	KEY_Z KeyCode = 0x5A

	KEY_F1  KeyCode = 0x70
	KEY_F12 KeyCode = 0x7B

	KEYS_MAX_KEYS KeyCode = 0xFF
)

type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// InputState keeps the current and previous keyboard state.
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update copies the current state to the previous state. Call once per frame
// after all input has been processed.
func (s *InputState) Update() {
	s.KeyboardPrevious = s.KeyboardCurrent
}

func (s *InputState) IsKeyDown(key KeyCode) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return s.KeyboardCurrent.Keys[key]
}

func (s *InputState) WasKeyDown(key KeyCode) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return s.KeyboardPrevious.Keys[key]
}

// ProcessKey records the key state and reports whether it changed.
func (s *InputState) ProcessKey(key KeyCode, pressed bool) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	if s.KeyboardCurrent.Keys[key] == pressed {
		return false
	}
	s.KeyboardCurrent.Keys[key] = pressed
	return true
}
