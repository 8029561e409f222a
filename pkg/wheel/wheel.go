// Package wheel models the "infinite" scrolling wheel used by picker columns.
//
// A wheel column exposes a large, finite number of rows and maps them onto a
// short cycle of values. Values are initially placed around [Center] so the
// user can scroll a long way in either direction before reaching an edge.
package wheel

const (
	// Rows is the number of rows every cyclic column exposes.
	Rows = 32767

	// Center is the row the initial selection is anchored near.
	Center = Rows / 2
)

// Span is a cyclic range of values [Start, Start+Length).
type Span struct {
	Start  int
	Length int
}

// Value returns the value shown at row. Rows outside [0, Rows) still map onto
// the cycle.
func (s Span) Value(row int) int {
	return s.Start + floorMod(row, s.Length)
}

// CenterRow returns the row closest to Center (at or after the cycle start
// preceding it) that displays value.
func (s Span) CenterRow(value int) int {
	return Center - Center%s.Length + floorMod(value-s.Start, s.Length)
}

// RowNear returns the row in the same cycle as row that displays value.
// Corrections use it so the wheel does not jump back to Center.
func (s Span) RowNear(row, value int) int {
	out := row - floorMod(row, s.Length) + floorMod(value-s.Start, s.Length)
	if out >= Rows {
		out -= s.Length
	}
	return out
}

// Contains reports whether value is part of the cycle.
func (s Span) Contains(value int) bool {
	return value >= s.Start && value < s.Start+s.Length
}

// Clamp limits row to the rows a column exposes.
func Clamp(row int) int {
	if row < 0 {
		return 0
	}
	if row >= Rows {
		return Rows - 1
	}
	return row
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
