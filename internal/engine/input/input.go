// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	// Drag deltas in pixels (left button held)
	DeltaX int
	DeltaY int
	// Wheel delta, positive away from the user
	Wheel int
}

// Input translates SDL events into viewer events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			if e.State&sdl.ButtonLMask() != 0 {
				i.events = append(i.events, Event{
					Type:   EventMouseDrag,
					DeltaX: int(e.XRel),
					DeltaY: int(e.YRel),
				})
			}

		case *sdl.MouseWheelEvent:
			if e.Y != 0 {
				i.events = append(i.events, Event{
					Type:  EventMouseWheel,
					Wheel: int(e.Y),
				})
			}
		}
	}

	return false
}

// Events returns the events collected by the last Update call.
func (i *Input) Events() []Event {
	return i.events
}
