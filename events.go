package nailbox

import "fmt"

// Event is a discrete input delivered to a Player. How events are
// produced (keys, buttons, a file picker) is up to the caller.
type Event interface {
	// Kind names the event for logs.
	Kind() string
}

// NextEvent advances one step.
type NextEvent struct{}

// PrevEvent goes back one step.
type PrevEvent struct{}

// JumpEvent jumps to a 1-based step typed by the user.
type JumpEvent struct{ Input string }

// LoadEvent replaces the sequence with fully read file contents.
type LoadEvent struct{ Contents string }

// ShowAllEvent toggles drawing of earlier segments.
type ShowAllEvent struct{ On bool }

func (NextEvent) Kind() string    { return "next" }
func (PrevEvent) Kind() string    { return "prev" }
func (JumpEvent) Kind() string    { return "jump" }
func (LoadEvent) Kind() string    { return "load" }
func (ShowAllEvent) Kind() string { return "show_all" }

// Handle applies ev and returns the resulting status. If ev is rejected
// the error is returned together with the unchanged status, and the
// player remains usable.
func (p *Player) Handle(ev Event) (Status, error) {
	var err error

	switch e := ev.(type) {
	case NextEvent:
		p.Next()
	case PrevEvent:
		p.Prev()
	case JumpEvent:
		err = p.JumpToInput(e.Input)
	case LoadEvent:
		err = p.LoadString(e.Contents)
	case ShowAllEvent:
		p.SetShowAll(e.On)
	default:
		err = fmt.Errorf("%w: unknown event %T", ErrInvalidInput, ev)
	}

	return p.Status(), err
}
