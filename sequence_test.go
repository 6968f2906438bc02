package nailbox

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSequence_TabSeparated(t *testing.T) {
	seq, err := ParseSequenceString("(F1,R1,C1)\t(F1,R1,C2)\t(F1,R2,C1)")
	if err != nil {
		t.Fatalf("ParseSequenceString: %v", err)
	}
	if seq.Len() != 2 {
		t.Fatalf("expected 2 segments, got %d", seq.Len())
	}

	want := []Segment{
		{Start: Address{}, End: Address{Col: 1}},
		{Start: Address{Col: 1}, End: Address{Row: 1}},
	}
	for i, w := range want {
		if got := seq.Segment(i); got != w {
			t.Errorf("segment %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestParseSequence_Whitespace(t *testing.T) {
	content := "  (F1, R1, C1)\n\n( F2 ,R3,C4 )\r\n(F5,R1,C1)  \n"
	seq, err := ParseSequenceString(content)
	if err != nil {
		t.Fatalf("ParseSequenceString: %v", err)
	}
	if seq.Len() != 2 {
		t.Errorf("expected 2 segments, got %d", seq.Len())
	}
}

func TestParseSequence_TokenSpanningLines(t *testing.T) {
	seq, err := ParseSequenceString("(F1,\nR1,\nC1) (F1,R1,C2)")
	if err != nil {
		t.Fatalf("ParseSequenceString: %v", err)
	}
	if seq.Len() != 1 {
		t.Errorf("expected 1 segment, got %d", seq.Len())
	}
}

func TestParseSequence_Short(t *testing.T) {
	for _, content := range []string{"", "   \n", "(F1,R1,C1)"} {
		seq, err := ParseSequenceString(content)
		if err != nil {
			t.Errorf("ParseSequenceString(%q): %v", content, err)
			continue
		}
		if seq.Len() != 0 {
			t.Errorf("ParseSequenceString(%q) has %d segments, want 0", content, seq.Len())
		}
	}
}

func TestParseSequence_Errors(t *testing.T) {
	cases := []struct {
		content string
		token   int
		line    int
	}{
		{"(F1,R1,C1) (F1,R1)", 2, 1},
		{"(F1,R1,C1)\n(F1,R1,C2)\n(F1,Rx,C1)", 3, 3},
		{"(F1,R1,C1) junk (F1,R1,C2)", 0, 1},
		{"(F1,R1,C1)\n(F1,R1,C2", 2, 2},
		{"(F1,R1,(F1,R1,C2)", 1, 1},
		{"(F1,R1,C1))", 0, 1},
	}
	for _, c := range cases {
		_, err := ParseSequenceString(c.content)
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", c.content, err)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected *ParseError, got %T", c.content, err)
			continue
		}
		if pe.Token != c.token || pe.Line != c.line {
			t.Errorf("%q: error at token %d line %d, want token %d line %d", c.content, pe.Token, pe.Line, c.token, c.line)
		}
	}
}

func TestParseSequence_Reader(t *testing.T) {
	seq, err := ParseSequence(strings.NewReader("(F1,R1,C1) (F2,R3,C4)"))
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if got := seq.Segment(0).Instruction(); got != "(F1, R1, C1) to (F2, R3, C4)" {
		t.Errorf("instruction = %q", got)
	}
}

func TestSequence_StringRoundTrip(t *testing.T) {
	orig := NewSequence(
		Address{Face: FaceTop},
		Address{Face: FaceBack, Row: 9, Col: 2},
		Address{Face: FaceLeft, Row: 4, Col: 7},
	)
	parsed, err := ParseSequenceString(orig.String())
	if err != nil {
		t.Fatalf("ParseSequenceString: %v", err)
	}
	got, want := parsed.Nails(), orig.Nails()
	if len(got) != len(want) {
		t.Fatalf("got %d nails, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("nail %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSequence_Validate(t *testing.T) {
	box, err := NewBox(WithNailsPerSide(3), WithCubeSize(10), WithSpacing(2))
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}

	ok, _ := ParseSequenceString("(F1,R1,C1) (F5,R3,C3)")
	if err := ok.Validate(box); err != nil {
		t.Errorf("Validate: %v", err)
	}

	bad, _ := ParseSequenceString("(F1,R1,C1) (F1,R1,C2) (F1,R4,C1)")
	err = bad.Validate(box)
	if !errors.Is(err, ErrUnresolvedNail) {
		t.Fatalf("expected ErrUnresolvedNail, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 2") {
		t.Errorf("error should name step 2: %v", err)
	}
}
