package dyntype

import "fmt"

// ColumnPadding is added to the widest sample of a column.
const ColumnPadding = 25

// rowSample is the text whose height sets the row height.
const rowSample = "99"

// SampleSource provides the strings a column must fit. The picker cores
// implement it.
type SampleSource interface {
	ColumnCount() int
	WidthSamples(column int) []string
}

// ColumnSizer turns column samples into size hints for a text style.
type ColumnSizer struct {
	metrics *Metrics
	style   TextStyle
}

// NewColumnSizer returns a sizer measuring with m. A nil m uses
// DefaultMetrics.
func NewColumnSizer(m *Metrics, style TextStyle) (*ColumnSizer, error) {
	if m == nil {
		var err error
		if m, err = DefaultMetricsErr(); err != nil {
			return nil, err
		}
	}
	return &ColumnSizer{metrics: m, style: style}, nil
}

// ColumnWidth returns the widest sample of column plus ColumnPadding.
func (s *ColumnSizer) ColumnWidth(src SampleSource, column int, c ContentSizeCategory) (float64, error) {
	size := s.style.PointSize(c)
	widest := 0.0
	for _, sample := range src.WidthSamples(column) {
		m, err := s.metrics.Measure(sample, size)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", column, err)
		}
		widest = max(widest, m.Width)
	}
	return widest + ColumnPadding, nil
}

// ColumnWidths returns ColumnWidth for every column of src.
func (s *ColumnSizer) ColumnWidths(src SampleSource, c ContentSizeCategory) ([]float64, error) {
	widths := make([]float64, src.ColumnCount())
	for i := range widths {
		w, err := s.ColumnWidth(src, i, c)
		if err != nil {
			return nil, err
		}
		widths[i] = w
	}
	return widths, nil
}

// RowHeight returns the height of a row at category c.
func (s *ColumnSizer) RowHeight(c ContentSizeCategory) (float64, error) {
	m, err := s.metrics.Measure(rowSample, s.style.PointSize(c))
	if err != nil {
		return 0, err
	}
	return m.Height, nil
}
