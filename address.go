package nailbox

import (
	"fmt"
	"strconv"
	"strings"
)

// Address identifies a nail by face, row and column. All three are
// 0-based; labels shown to people are 1-based.
type Address struct {
	Face Face
	Row  int
	Col  int
}

// IndexToAddress converts a linear nail index into an Address for a box
// with n nails per side.
func IndexToAddress(n, i int) Address {
	perFace := n * n
	return Address{
		Face: Face(i / perFace),
		Row:  (i % perFace) / n,
		Col:  i % n,
	}
}

// AddressToIndex converts an Address into a linear nail index for a box
// with n nails per side. It is the inverse of IndexToAddress.
func AddressToIndex(n int, a Address) int {
	return int(a.Face)*n*n + a.Row*n + a.Col
}

// Valid reports whether a refers to a nail on a box with n nails per side.
func (a Address) Valid(n int) bool {
	return a.Face.Valid() && a.Row >= 0 && a.Row < n && a.Col >= 0 && a.Col < n
}

// Label returns the 1-based display form, e.g. "(F1, R2, C3)".
func (a Address) Label() string {
	return fmt.Sprintf("(F%d, R%d, C%d)", int(a.Face)+1, a.Row+1, a.Col+1)
}

func (a Address) String() string {
	return a.Label()
}

// ParseAddress decodes a single "(F<n>,R<n>,C<n>)" token. Whitespace
// around the parentheses and commas is ignored.
func ParseAddress(token string) (Address, error) {
	a, reason := decodeToken(token)
	if reason != "" {
		return Address{}, fmt.Errorf("%w: %q: %s", ErrParse, token, reason)
	}
	return a, nil
}

// tokenFields are the component prefixes, in order.
var tokenFields = [3]byte{'F', 'R', 'C'}

// decodeToken returns the decoded address, or a non-empty reason.
func decodeToken(token string) (Address, string) {
	s := strings.TrimSpace(token)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Address{}, "expected parenthesised token"
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != len(tokenFields) {
		return Address{}, fmt.Sprintf("expected 3 components, got %d", len(parts))
	}

	var vals [3]int
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part[0] != tokenFields[i] {
			return Address{}, fmt.Sprintf("component %d must start with %c", i+1, tokenFields[i])
		}
		digits := part[1:]
		if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			return Address{}, fmt.Sprintf("component %q is not an integer", part)
		}
		v, err := strconv.Atoi(digits)
		if err != nil {
			return Address{}, fmt.Sprintf("component %q: %v", part, err)
		}
		vals[i] = v - 1
	}

	return Address{Face: Face(vals[0]), Row: vals[1], Col: vals[2]}, ""
}
