package nailbox

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Segment is one thread pull from Start to End.
type Segment struct {
	Start Address
	End   Address
}

// Instruction returns the human-readable form,
// e.g. "(F1, R1, C1) to (F2, R3, C4)".
func (s Segment) Instruction() string {
	return s.Start.Label() + " to " + s.End.Label()
}

// Sequence is an ordered list of nails visited by a thread. Consecutive
// nails form the segments.
type Sequence struct {
	nails []Address
}

// NewSequence creates a sequence visiting the given nails in order.
func NewSequence(nails ...Address) *Sequence {
	out := make([]Address, len(nails))
	copy(out, nails)
	return &Sequence{nails: out}
}

// ParseSequence reads a sequence file: whitespace-separated tokens of the
// form (F<n>,R<n>,C<n>) with 1-based numbers. Line breaks are ordinary
// separators. Any other text, or a malformed token, yields a *ParseError.
func ParseSequence(r io.Reader) (*Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	return ParseSequenceString(string(data))
}

// ParseSequenceString is ParseSequence for in-memory content.
func ParseSequenceString(content string) (*Sequence, error) {
	var nails []Address
	line := 1
	i := 0

	for i < len(content) {
		c := content[i]
		switch {
		case c == '\n':
			line++
			i++

		case unicode.IsSpace(rune(c)):
			i++

		case c == '(':
			end := strings.IndexAny(content[i+1:], "()")
			if end < 0 || content[i+1+end] == '(' {
				return nil, &ParseError{
					Token:  len(nails) + 1,
					Line:   line,
					Text:   firstLine(content[i:]),
					Reason: "unterminated token",
				}
			}
			text := content[i : i+end+2]
			addr, reason := decodeToken(text)
			if reason != "" {
				return nil, &ParseError{Token: len(nails) + 1, Line: line, Text: text, Reason: reason}
			}
			nails = append(nails, addr)
			line += strings.Count(text, "\n")
			i += len(text)

		default:
			j := i
			for j < len(content) && content[j] != '(' && !unicode.IsSpace(rune(content[j])) {
				j++
			}
			return nil, &ParseError{Line: line, Text: content[i:j], Reason: "unexpected text between tokens"}
		}
	}

	return &Sequence{nails: nails}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Len returns the number of segments.
func (s *Sequence) Len() int {
	if len(s.nails) < 2 {
		return 0
	}
	return len(s.nails) - 1
}

// Segment returns segment i, formed by nails i and i+1.
func (s *Sequence) Segment(i int) Segment {
	return Segment{Start: s.nails[i], End: s.nails[i+1]}
}

// Segments returns every segment in order.
func (s *Sequence) Segments() []Segment {
	segs := make([]Segment, s.Len())
	for i := range segs {
		segs[i] = s.Segment(i)
	}
	return segs
}

// Nails returns the visited nails in order.
func (s *Sequence) Nails() []Address {
	out := make([]Address, len(s.nails))
	copy(out, s.nails)
	return out
}

// Validate checks that every nail in the sequence exists on box.
func (s *Sequence) Validate(box *Box) error {
	for i, a := range s.nails {
		if !a.Valid(box.N()) {
			seg := i
			if seg > 0 {
				seg--
			}
			return fmt.Errorf("%w: step %d references %s, box has %d nails per side",
				ErrUnresolvedNail, seg+1, a.Label(), box.N())
		}
	}
	return nil
}

// String serializes the sequence one token per line. The output parses
// back to an equal sequence.
func (s *Sequence) String() string {
	var b strings.Builder
	for _, a := range s.nails {
		fmt.Fprintf(&b, "(F%d,R%d,C%d)\n", int(a.Face)+1, a.Row+1, a.Col+1)
	}
	return b.String()
}
