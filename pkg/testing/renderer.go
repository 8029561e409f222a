package testing

import "fmt"

// Selection is one SelectRow call received by a RecordingRenderer.
type Selection struct {
	Column   int
	Row      int
	Animated bool
}

func (s Selection) String() string {
	if s.Animated {
		return fmt.Sprintf("col %d -> row %d (animated)", s.Column, s.Row)
	}
	return fmt.Sprintf("col %d -> row %d", s.Column, s.Row)
}

// RecordingRenderer is a picker renderer that records every call.
// It is not safe for concurrent use.
type RecordingRenderer struct {
	Selections []Selection
	Reloads    int
}

// NewRecordingRenderer returns an empty RecordingRenderer.
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

// SelectRow records the selection.
func (r *RecordingRenderer) SelectRow(column, row int, animated bool) {
	r.Selections = append(r.Selections, Selection{Column: column, Row: row, Animated: animated})
}

// ReloadAllColumns counts the reload.
func (r *RecordingRenderer) ReloadAllColumns() {
	r.Reloads++
}

// Reset forgets everything recorded so far.
func (r *RecordingRenderer) Reset() {
	r.Selections = nil
	r.Reloads = 0
}

// LastSelection returns the most recent selection of column.
func (r *RecordingRenderer) LastSelection(column int) (Selection, bool) {
	for i := len(r.Selections) - 1; i >= 0; i-- {
		if r.Selections[i].Column == column {
			return r.Selections[i], true
		}
	}
	return Selection{}, false
}

// SelectedColumns returns the columns that received a selection, in the
// order of their first selection.
func (r *RecordingRenderer) SelectedColumns() []int {
	var cols []int
	seen := make(map[int]bool)
	for _, s := range r.Selections {
		if !seen[s.Column] {
			seen[s.Column] = true
			cols = append(cols, s.Column)
		}
	}
	return cols
}
