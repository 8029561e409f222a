package dyntype

import (
	"fmt"
	"sync"

	"github.com/go-drift/dyntype/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Size is a measured extent in points.
type Size struct {
	Width  float64
	Height float64
}

// Metrics measures text in one font. Faces are created on first use per
// point size and cached. Metrics is safe for concurrent use.
type Metrics struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

var (
	defaultMetrics     *Metrics
	defaultMetricsErr  error
	defaultMetricsOnce sync.Once
)

// NewMetrics parses TrueType or OpenType data.
func NewMetrics(data []byte) (*Metrics, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Metrics{font: f, faces: make(map[float64]font.Face)}, nil
}

// DefaultMetricsErr returns shared metrics for the bundled Go regular font
// together with any error from loading it.
func DefaultMetricsErr() (*Metrics, error) {
	defaultMetricsOnce.Do(func() {
		m, err := NewMetrics(goregular.TTF)
		if err != nil {
			defaultMetricsErr = err
			errors.Report(&errors.ControlError{
				Op:   "dyntype.DefaultMetrics",
				Kind: errors.KindConfig,
				Err:  err,
			})
			return
		}
		defaultMetrics = m
	})
	return defaultMetrics, defaultMetricsErr
}

// DefaultMetrics returns shared metrics for the bundled Go regular font, or
// nil if it could not be loaded.
func DefaultMetrics() *Metrics {
	m, _ := DefaultMetricsErr()
	return m
}

// Face returns the face for size points at 72 DPI, so one pixel is one
// point.
func (m *Metrics) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %g must be positive", size)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("face at %gpt: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Measure returns the advance width of text and the line height of the
// face at size points.
func (m *Metrics) Measure(text string, size float64) (Size, error) {
	face, err := m.Face(size)
	if err != nil {
		return Size{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	metrics := face.Metrics()
	return Size{
		Width:  toFloat(font.MeasureString(face, text)),
		Height: toFloat(metrics.Ascent + metrics.Descent),
	}, nil
}

// Close releases every cached face.
func (m *Metrics) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(m.faces, size)
	}
	return nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
