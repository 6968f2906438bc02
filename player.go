package nailbox

import (
	"fmt"
	"strconv"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// NoInstruction is shown when no segment is current.
const NoInstruction = "No instruction"

// Status is what the instruction display shows after each transition.
type Status struct {
	Step        int // 1-based; 0 when nothing is shown
	Total       int
	Instruction string
	ShowAll     bool
}

// ResolvedSegment is the current segment with both nails located.
type ResolvedSegment struct {
	Segment
	Step     int // 1-based
	StartPos v3.Vec
	EndPos   v3.Vec
}

// Player steps through a sequence of segments. Index -1 means nothing is
// shown; otherwise it is the 0-based current segment.
//
// A Player is not safe for concurrent use. Events are expected to be
// handled one at a time, each to completion.
type Player struct {
	box      *Box
	seq      *Sequence
	index    int
	showAll  bool
	onChange func(Status)
}

// NewPlayer creates an empty player resolving nails against box.
func NewPlayer(box *Box) *Player {
	return &Player{box: box, index: -1}
}

// OnChange sets a callback fired after every successful transition.
func (p *Player) OnChange(fn func(Status)) {
	p.onChange = fn
}

// Box returns the nail table the player resolves against.
func (p *Player) Box() *Box { return p.box }

// Loaded reports whether a sequence has been loaded.
func (p *Player) Loaded() bool { return p.seq != nil }

// Index returns the current 0-based index, -1 when nothing is shown.
func (p *Player) Index() int { return p.index }

// Len returns the number of segments loaded.
func (p *Player) Len() int {
	if p.seq == nil {
		return 0
	}
	return p.seq.Len()
}

// ShowAll reports whether earlier segments are drawn too.
func (p *Player) ShowAll() bool { return p.showAll }

// Sequence returns the loaded sequence, or nil.
func (p *Player) Sequence() *Sequence { return p.seq }

// Load replaces the sequence and rewinds to index -1.
func (p *Player) Load(seq *Sequence) {
	p.seq = seq
	p.index = -1
	p.changed()
}

// LoadString parses content and loads it. On error the previous
// sequence and index are kept.
func (p *Player) LoadString(content string) error {
	seq, err := ParseSequenceString(content)
	if err != nil {
		return err
	}
	p.Load(seq)
	return nil
}

// Next advances one segment. It stops at the last segment.
func (p *Player) Next() {
	if p.index < p.Len()-1 {
		p.index++
		p.changed()
	}
}

// Prev goes back one segment. It stops at -1.
func (p *Player) Prev() {
	if p.index >= 0 {
		p.index--
		p.changed()
	}
}

// JumpTo moves to the 1-based step k.
func (p *Player) JumpTo(k int) error {
	if k < 1 || k > p.Len() {
		return fmt.Errorf("%w: step %d not in [1, %d]", ErrInvalidInput, k, p.Len())
	}
	p.index = k - 1
	p.changed()
	return nil
}

// JumpToInput is JumpTo for user-typed text.
func (p *Player) JumpToInput(input string) error {
	k, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%w: %q is not a step number", ErrInvalidInput, input)
	}
	return p.JumpTo(k)
}

// SetShowAll switches between drawing every segment up to the current
// one and drawing only the current one.
func (p *Player) SetShowAll(on bool) {
	if p.showAll != on {
		p.showAll = on
		p.changed()
	}
}

// CurrentSegment returns the current segment with both nails located.
// ok is false when nothing is shown.
func (p *Player) CurrentSegment() (seg ResolvedSegment, ok bool, err error) {
	if p.seq == nil || p.index < 0 {
		return ResolvedSegment{}, false, nil
	}
	seg, err = p.resolve(p.index)
	if err != nil {
		return ResolvedSegment{}, false, err
	}
	return seg, true, nil
}

func (p *Player) resolve(i int) (ResolvedSegment, error) {
	s := p.seq.Segment(i)
	start, err := p.box.Position(s.Start)
	if err != nil {
		return ResolvedSegment{}, fmt.Errorf("step %d start: %w", i+1, err)
	}
	end, err := p.box.Position(s.End)
	if err != nil {
		return ResolvedSegment{}, fmt.Errorf("step %d end: %w", i+1, err)
	}
	return ResolvedSegment{Segment: s, Step: i + 1, StartPos: start, EndPos: end}, nil
}

// RenderView returns the lines to draw for the current index. With
// showAll every segment from the first to the current one is returned
// and only the current one is highlighted; otherwise just the current
// segment. It does not change the player.
func (p *Player) RenderView(showAll bool) ([]Line, error) {
	if p.seq == nil || p.index < 0 {
		return nil, nil
	}

	first := p.index
	if showAll {
		first = 0
	}

	lines := make([]Line, 0, p.index-first+1)
	for i := first; i <= p.index; i++ {
		seg, err := p.resolve(i)
		if err != nil {
			return nil, err
		}
		style := StyleNormal
		if i == p.index {
			style = StyleHighlighted
		}
		lines = append(lines, Line{Step: seg.Step, Start: seg.StartPos, End: seg.EndPos, Style: style})
	}
	return lines, nil
}

// Instruction returns the current segment's instruction text, or
// NoInstruction.
func (p *Player) Instruction() string {
	if p.seq == nil || p.index < 0 {
		return NoInstruction
	}
	return p.seq.Segment(p.index).Instruction()
}

// Status returns the current step, total and instruction.
func (p *Player) Status() Status {
	return Status{
		Step:        p.index + 1,
		Total:       p.Len(),
		Instruction: p.Instruction(),
		ShowAll:     p.showAll,
	}
}

func (p *Player) changed() {
	if p.onChange != nil {
		p.onChange(p.Status())
	}
}
