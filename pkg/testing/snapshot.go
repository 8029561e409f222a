package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Columns is the query surface of a picker core.
type Columns interface {
	ColumnCount() int
	RowCount(column int) int
	Title(column, row int) string
	IsRowEnabled(column, row int) bool
	SelectedRow(column int) int
}

// Snapshot captures what a picker displays around its selected rows.
type Snapshot struct {
	Columns []ColumnSnapshot `json:"columns"`
}

// ColumnSnapshot is one column of a Snapshot.
type ColumnSnapshot struct {
	Selected int           `json:"selected"`
	Rows     []RowSnapshot `json:"rows"`
}

// RowSnapshot is one visible row. Offset is relative to the selected row.
type RowSnapshot struct {
	Offset   int    `json:"offset"`
	Title    string `json:"title"`
	Disabled bool   `json:"disabled,omitempty"`
}

// CaptureColumns records the selected row of every column and radius rows on
// either side of it.
func CaptureColumns(c Columns, radius int) *Snapshot {
	snap := &Snapshot{}
	for col := 0; col < c.ColumnCount(); col++ {
		selected := c.SelectedRow(col)
		column := ColumnSnapshot{Selected: selected}
		for off := -radius; off <= radius; off++ {
			row := selected + off
			if row < 0 || row >= c.RowCount(col) {
				continue
			}
			column.Rows = append(column.Rows, RowSnapshot{
				Offset:   off,
				Title:    c.Title(col, row),
				Disabled: !c.IsRowEnabled(col, row),
			})
		}
		snap.Columns = append(snap.Columns, column)
	}
	return snap
}

// String renders the snapshot as one line per column, with the selected
// title in brackets and disabled titles in parentheses.
func (s *Snapshot) String() string {
	var sb strings.Builder
	for _, col := range s.Columns {
		for i, row := range col.Rows {
			if i > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case row.Offset == 0:
				sb.WriteString("[" + row.Title + "]")
			case row.Disabled:
				sb.WriteString("(" + row.Title + ")")
			default:
				sb.WriteString(row.Title)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// DYNTYPE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("DYNTYPE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: DYNTYPE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: DYNTYPE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff produces a simple line-oriented diff.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}
	return buf.String()
}
