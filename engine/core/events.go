package core

// EventContext carries the payload of a fired event. Only the fields relevant
// to the event code are set.
type EventContext struct {
	// EVENT_CODE_RESIZED
	Width  int32
	Height int32

	// EVENT_CODE_INPUT
	Key     KeyCode
	Pressed bool

	// EVENT_CODE_DRAW_HUD
	DeltaTime float64
}

// System internal event codes.
type EventCode int

const (
	// Resized/resolution changed from the OS.
	EVENT_CODE_RESIZED EventCode = 0x01

	// Keyboard key pressed or released.
	EVENT_CODE_INPUT EventCode = 0x02

	// The HUD overlay should be drawn for the current frame.
	EVENT_CODE_DRAW_HUD EventCode = 0x03

	MAX_EVENT_CODE EventCode = 0xFF
)

// Should return true if handled.
type FnOnEvent func(code EventCode, context EventContext) bool

type registeredEvent struct {
	name     string
	callback FnOnEvent
}

// Registry holds the callbacks bound to each event code. It is owned by a
// single engine instance; registrations are append-only and kept in order.
type Registry struct {
	registered map[EventCode][]*registeredEvent
}

func NewRegistry() *Registry {
	return &Registry{
		registered: make(map[EventCode][]*registeredEvent),
	}
}

// Register appends onEvent to the listeners of code. The name is only used
// for diagnostics.
func (r *Registry) Register(code EventCode, name string, onEvent FnOnEvent) {
	r.registered[code] = append(r.registered[code], &registeredEvent{
		name:     name,
		callback: onEvent,
	})
}

// Count returns the number of callbacks registered for code.
func (r *Registry) Count(code EventCode) int {
	return len(r.registered[code])
}

// Names returns the registered callback names for code, in registration order.
func (r *Registry) Names(code EventCode) []string {
	names := make([]string, 0, len(r.registered[code]))
	for _, e := range r.registered[code] {
		names = append(names, e.name)
	}
	return names
}

// Fire calls the listeners of code in registration order. If a callback
// returns true the event is considered handled and is not passed on.
func (r *Registry) Fire(code EventCode, context EventContext) bool {
	for _, e := range r.registered[code] {
		if e.callback(code, context) {
			return true
		}
	}
	return false
}
