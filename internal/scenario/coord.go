package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Anchor selects the reference point a Coord is measured from.
type Anchor uint8

const (
	// AnchorStart measures from the first cell.
	AnchorStart Anchor = iota
	// AnchorMid measures from size/2.
	AnchorMid
	// AnchorEnd measures from size, one past the last cell.
	AnchorEnd
)

// Coord is a grid coordinate expressed relative to an axis anchor, so a
// script can target "the middle" or "35 cells from the right edge" without
// knowing the terminal size. It decodes from an integer ("12") or an
// expression such as "mid", "mid-8", "end-35" or "start+5".
type Coord struct {
	Anchor Anchor
	Offset int
}

// Resolve converts c into an absolute coordinate on an axis of the given size.
func (c Coord) Resolve(size int) int {
	switch c.Anchor {
	case AnchorMid:
		return size/2 + c.Offset
	case AnchorEnd:
		return size + c.Offset
	default:
		return c.Offset
	}
}

// String renders c in the same syntax ParseCoord accepts.
func (c Coord) String() string {
	var base string
	switch c.Anchor {
	case AnchorMid:
		base = "mid"
	case AnchorEnd:
		base = "end"
	default:
		return strconv.Itoa(c.Offset)
	}
	switch {
	case c.Offset > 0:
		return fmt.Sprintf("%s+%d", base, c.Offset)
	case c.Offset < 0:
		return fmt.Sprintf("%s%d", base, c.Offset)
	}
	return base
}

// ParseCoord parses a coordinate expression.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coord{}, fmt.Errorf("%w: empty", ErrBadCoord)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Coord{Anchor: AnchorStart, Offset: n}, nil
	}

	var c Coord
	rest := s
	switch {
	case strings.HasPrefix(s, "start"):
		c.Anchor, rest = AnchorStart, s[len("start"):]
	case strings.HasPrefix(s, "mid"):
		c.Anchor, rest = AnchorMid, s[len("mid"):]
	case strings.HasPrefix(s, "end"):
		c.Anchor, rest = AnchorEnd, s[len("end"):]
	default:
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	rest = strings.ReplaceAll(rest, " ", "")
	if rest == "" {
		return c, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	c.Offset = n
	return c, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected scalar", node.Line, ErrBadCoord)
	}
	parsed, err := ParseCoord(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Coord) MarshalYAML() (any, error) {
	if c.Anchor == AnchorStart {
		return c.Offset, nil
	}
	return c.String(), nil
}
