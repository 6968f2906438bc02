package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SeamusWaldron/nailbox"
)

func newPlayer(t *testing.T, content string) *nailbox.Player {
	t.Helper()
	box, err := nailbox.NewBox(nailbox.WithNailsPerSide(3), nailbox.WithCubeSize(10), nailbox.WithSpacing(2))
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	p := nailbox.NewPlayer(box)
	if err := p.LoadString(content); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	return p
}

func TestBuild(t *testing.T) {
	p := newPlayer(t, "(F1,R1,C1) (F2,R2,C2) (F3,R3,C3) (F5,R1,C3)")
	p.SetShowAll(true)
	p.Next()
	p.Next()

	snap, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(snap.Nails) != 45 {
		t.Errorf("got %d nails, want 45", len(snap.Nails))
	}
	if snap.Nails[9].Label != "(F2, R1, C1)" || snap.Nails[9].Face != "right" || snap.Nails[9].Tag != "corner" {
		t.Errorf("nail 9 = %+v", snap.Nails[9])
	}
	if len(snap.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(snap.Lines))
	}
	if snap.Lines[0].Style != "normal" || snap.Lines[1].Style != "highlighted" {
		t.Errorf("unexpected styles %q %q", snap.Lines[0].Style, snap.Lines[1].Style)
	}
	if snap.Step != 2 || snap.TotalSteps != 3 {
		t.Errorf("step %d/%d", snap.Step, snap.TotalSteps)
	}
	if snap.Box.FaceOrder[0] != "top" || snap.Box.FaceOrder[4] != "back" {
		t.Errorf("face order %v", snap.Box.FaceOrder)
	}
}

func TestBuildUnresolved(t *testing.T) {
	p := newPlayer(t, "(F1,R1,C1) (F1,R9,C1)")
	p.Next()

	if _, err := Build(p); !errors.Is(err, nailbox.ErrUnresolvedNail) {
		t.Errorf("expected ErrUnresolvedNail, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	p := newPlayer(t, "(F1,R1,C1) (F1,R1,C2)")
	p.Next()

	snap, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["instruction"] != "(F1, R1, C1) to (F1, R1, C2)" {
		t.Errorf("instruction = %v", decoded["instruction"])
	}
}
