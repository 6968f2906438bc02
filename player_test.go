package nailbox

import (
	"errors"
	"testing"
)

func newTestPlayer(t *testing.T, content string) *Player {
	t.Helper()
	box, err := NewBox(WithNailsPerSide(10))
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	p := NewPlayer(box)
	if content != "" {
		if err := p.LoadString(content); err != nil {
			t.Fatalf("LoadString: %v", err)
		}
	}
	return p
}

const twoSegments = "(F1,R1,C1)\t(F1,R1,C2)\t(F1,R2,C1)"

func TestPlayer_EmptyState(t *testing.T) {
	p := newTestPlayer(t, "")
	if p.Loaded() {
		t.Error("new player should have nothing loaded")
	}
	if p.Index() != -1 {
		t.Errorf("index = %d, want -1", p.Index())
	}
	p.Next()
	p.Prev()
	if p.Index() != -1 {
		t.Errorf("next/prev on empty player moved index to %d", p.Index())
	}
	if got := p.Instruction(); got != NoInstruction {
		t.Errorf("Instruction() = %q, want %q", got, NoInstruction)
	}
	if _, ok, err := p.CurrentSegment(); ok || err != nil {
		t.Errorf("CurrentSegment() = ok %v, err %v", ok, err)
	}
}

func TestPlayer_NextSaturates(t *testing.T) {
	p := newTestPlayer(t, twoSegments)

	wants := []int{0, 1, 1}
	for i, want := range wants {
		p.Next()
		if p.Index() != want {
			t.Errorf("after next #%d index = %d, want %d", i+1, p.Index(), want)
		}
	}
}

func TestPlayer_PrevSaturates(t *testing.T) {
	p := newTestPlayer(t, twoSegments)
	p.Next()

	p.Prev()
	if p.Index() != -1 {
		t.Errorf("index = %d, want -1", p.Index())
	}
	p.Prev()
	if p.Index() != -1 {
		t.Errorf("index = %d, want -1 after second prev", p.Index())
	}
}

func TestPlayer_JumpTo(t *testing.T) {
	p := newTestPlayer(t, twoSegments)

	for _, k := range []int{0, 3, -1} {
		if err := p.JumpTo(k); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("JumpTo(%d): expected ErrInvalidInput, got %v", k, err)
		}
		if p.Index() != -1 {
			t.Errorf("failed JumpTo(%d) changed index to %d", k, p.Index())
		}
	}

	if err := p.JumpTo(1); err != nil {
		t.Fatalf("JumpTo(1): %v", err)
	}
	if p.Index() != 0 {
		t.Errorf("index = %d, want 0", p.Index())
	}
}

func TestPlayer_JumpToInput(t *testing.T) {
	p := newTestPlayer(t, twoSegments)

	for _, in := range []string{"", "one", "1.5", "2x"} {
		if err := p.JumpToInput(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("JumpToInput(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
	if err := p.JumpToInput(" 2 "); err != nil {
		t.Fatalf("JumpToInput: %v", err)
	}
	if p.Index() != 1 {
		t.Errorf("index = %d, want 1", p.Index())
	}
}

func TestPlayer_LoadResetsIndex(t *testing.T) {
	p := newTestPlayer(t, twoSegments)
	p.Next()
	p.Next()

	if err := p.LoadString("(F2,R1,C1) (F2,R1,C2)"); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if p.Index() != -1 || p.Len() != 1 {
		t.Errorf("after load index = %d, len = %d", p.Index(), p.Len())
	}
}

func TestPlayer_FailedLoadKeepsSequence(t *testing.T) {
	p := newTestPlayer(t, twoSegments)
	p.Next()

	err := p.LoadString("(F1,R1)")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if p.Len() != 2 || p.Index() != 0 {
		t.Errorf("failed load changed state: len %d, index %d", p.Len(), p.Index())
	}
}

func TestPlayer_Instruction(t *testing.T) {
	p := newTestPlayer(t, "(F1,R1,C1) (F2,R3,C4)")
	p.Next()
	if got := p.Instruction(); got != "(F1, R1, C1) to (F2, R3, C4)" {
		t.Errorf("Instruction() = %q", got)
	}
}

func TestPlayer_CurrentSegment(t *testing.T) {
	p := newTestPlayer(t, twoSegments)
	p.Next()

	seg, ok, err := p.CurrentSegment()
	if err != nil || !ok {
		t.Fatalf("CurrentSegment() = ok %v, err %v", ok, err)
	}
	wantStart, _ := p.Box().Position(Address{})
	wantEnd, _ := p.Box().Position(Address{Col: 1})
	if seg.StartPos != wantStart || seg.EndPos != wantEnd {
		t.Errorf("resolved %v -> %v, want %v -> %v", seg.StartPos, seg.EndPos, wantStart, wantEnd)
	}
	if seg.Step != 1 {
		t.Errorf("step = %d, want 1", seg.Step)
	}
}

func TestPlayer_UnresolvedNail(t *testing.T) {
	p := newTestPlayer(t, "(F1,R1,C1) (F6,R1,C1)")
	p.Next()

	if _, _, err := p.CurrentSegment(); !errors.Is(err, ErrUnresolvedNail) {
		t.Errorf("CurrentSegment: expected ErrUnresolvedNail, got %v", err)
	}
	if _, err := p.RenderView(false); !errors.Is(err, ErrUnresolvedNail) {
		t.Errorf("RenderView: expected ErrUnresolvedNail, got %v", err)
	}
}

func TestPlayer_RenderView(t *testing.T) {
	p := newTestPlayer(t, "(F1,R1,C1) (F1,R1,C2) (F1,R2,C1) (F1,R3,C3)")

	lines, err := p.RenderView(true)
	if err != nil || len(lines) != 0 {
		t.Fatalf("at index -1 expected no lines, got %d (%v)", len(lines), err)
	}

	p.Next()
	p.Next()
	p.Next()

	lines, err = p.RenderView(true)
	if err != nil {
		t.Fatalf("RenderView(true): %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("showAll: got %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		want := StyleNormal
		if i == 2 {
			want = StyleHighlighted
		}
		if l.Style != want || l.Step != i+1 {
			t.Errorf("line %d: step %d style %v, want step %d style %v", i, l.Step, l.Style, i+1, want)
		}
	}

	lines, err = p.RenderView(false)
	if err != nil {
		t.Fatalf("RenderView(false): %v", err)
	}
	if len(lines) != 1 || lines[0].Step != 3 || lines[0].Style != StyleHighlighted {
		t.Errorf("single view: %+v", lines)
	}

	if p.Index() != 2 {
		t.Errorf("RenderView changed index to %d", p.Index())
	}
}

func TestPlayer_Status(t *testing.T) {
	p := newTestPlayer(t, twoSegments)
	if s := p.Status(); s.Step != 0 || s.Total != 2 || s.Instruction != NoInstruction {
		t.Errorf("initial status %+v", s)
	}
	p.Next()
	p.Next()
	s := p.Status()
	if s.Step != 2 || s.Total != 2 || s.Instruction != "(F1, R1, C2) to (F1, R2, C1)" {
		t.Errorf("status %+v", s)
	}
}

func TestPlayer_Handle(t *testing.T) {
	p := newTestPlayer(t, "")

	steps := []struct {
		ev      Event
		step    int
		total   int
		wantErr error
	}{
		{NextEvent{}, 0, 0, nil},
		{LoadEvent{Contents: twoSegments}, 0, 2, nil},
		{NextEvent{}, 1, 2, nil},
		{JumpEvent{Input: "2"}, 2, 2, nil},
		{JumpEvent{Input: "3"}, 2, 2, ErrInvalidInput},
		{JumpEvent{Input: "abc"}, 2, 2, ErrInvalidInput},
		{LoadEvent{Contents: "(F1,R1)"}, 2, 2, ErrParse},
		{PrevEvent{}, 1, 2, nil},
		{ShowAllEvent{On: true}, 1, 2, nil},
		{nil, 1, 2, ErrInvalidInput},
	}

	for i, s := range steps {
		status, err := p.Handle(s.ev)
		if s.wantErr == nil && err != nil {
			t.Errorf("step %d: unexpected error %v", i, err)
		}
		if s.wantErr != nil && !errors.Is(err, s.wantErr) {
			t.Errorf("step %d: expected %v, got %v", i, s.wantErr, err)
		}
		if status.Step != s.step || status.Total != s.total {
			t.Errorf("step %d: status %d/%d, want %d/%d", i, status.Step, status.Total, s.step, s.total)
		}
	}
	if !p.ShowAll() {
		t.Error("show-all event was not applied")
	}
}

func TestPlayer_OnChange(t *testing.T) {
	p := newTestPlayer(t, twoSegments)

	var got []Status
	p.OnChange(func(s Status) {
		got = append(got, s)
	})

	p.Next()
	p.Next()
	p.Next() // saturated, no change
	_ = p.JumpTo(5)
	p.SetShowAll(true)

	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[1].Step != 2 || !got[2].ShowAll {
		t.Errorf("unexpected notifications %+v", got)
	}
}
