// Package config loads control presets from a YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/dyntype"
	"github.com/go-drift/dyntype/pkg/locale"
	"github.com/go-drift/dyntype/pkg/picker"
	"github.com/go-drift/dyntype/pkg/stepper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when no path is given.
const DefaultPath = "dyntype.yaml"

// Config represents the optional dyntype.yaml configuration.
type Config struct {
	Locale      string            `yaml:"locale,omitempty"`
	Timezone    string            `yaml:"timezone,omitempty"`
	DynamicType DynamicTypeConfig `yaml:"dynamicType"`
	Picker      PickerConfig      `yaml:"picker"`
	Stepper     StepperConfig     `yaml:"stepper"`
}

// DynamicTypeConfig contains the preferred text size.
type DynamicTypeConfig struct {
	Category string `yaml:"category,omitempty"`
}

// PickerConfig contains date picker settings. Dates are written
// "2006-01-02" or "2006-01-02 15:04".
type PickerConfig struct {
	Mode        string `yaml:"mode,omitempty"`
	Date        string `yaml:"date,omitempty"`
	MinimumDate string `yaml:"minimumDate,omitempty"`
	MaximumDate string `yaml:"maximumDate,omitempty"`
	TodayLabel  string `yaml:"todayLabel,omitempty"`
}

// StepperConfig contains stepper settings. Unset numbers keep the stepper
// defaults.
type StepperConfig struct {
	Value      *float64         `yaml:"value,omitempty"`
	Minimum    *float64         `yaml:"minimum,omitempty"`
	Maximum    *float64         `yaml:"maximum,omitempty"`
	StepSize   *float64         `yaml:"stepSize,omitempty"`
	AutoRepeat AutoRepeatConfig `yaml:"autoRepeat"`
}

// AutoRepeatConfig contains the press-and-hold timing as duration strings
// such as "150ms".
type AutoRepeatConfig struct {
	InitialDelay        string `yaml:"initialDelay,omitempty"`
	Interval            string `yaml:"interval,omitempty"`
	AccelerateAfter     *int   `yaml:"accelerateAfter,omitempty"`
	AcceleratedInterval string `yaml:"acceleratedInterval,omitempty"`
}

// Resolved contains validated configuration values with defaults applied.
type Resolved struct {
	Path     string
	Locale   locale.Locale
	Calendar calendar.Calendar
	Category dyntype.ContentSizeCategory
	Picker   PickerSettings
	Stepper  StepperSettings
}

// PickerSettings are the resolved picker values.
type PickerSettings struct {
	Mode picker.Mode
	// Date is the initial date when HasDate is set; otherwise the picker
	// starts at the current time.
	Date       calendar.Date
	HasDate    bool
	Range      calendar.Range
	TodayLabel string
}

// StepperSettings are the resolved stepper values.
type StepperSettings struct {
	Value      float64
	Minimum    float64
	Maximum    float64
	StepSize   float64
	AutoRepeat stepper.AutoRepeat
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty Config.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads path (if present) and resolves defaults.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Resolve validates cfg and applies defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Locale:   locale.Default(),
		Calendar: calendar.UTC(),
		Category: dyntype.DefaultCategory,
	}

	if id := strings.TrimSpace(cfg.Locale); id != "" {
		loc, err := locale.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
		r.Locale = loc
	}

	if name := strings.TrimSpace(cfg.Timezone); name != "" {
		tz, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("timezone: %w", err)
		}
		r.Calendar = calendar.New(tz)
	}

	if name := strings.TrimSpace(cfg.DynamicType.Category); name != "" {
		c, err := dyntype.ParseContentSizeCategory(name)
		if err != nil {
			return nil, fmt.Errorf("dynamicType.category: %w", err)
		}
		r.Category = c
	}

	p, err := cfg.Picker.resolve()
	if err != nil {
		return nil, err
	}
	r.Picker = p

	s, err := cfg.Stepper.resolve()
	if err != nil {
		return nil, err
	}
	r.Stepper = s

	return r, nil
}

func (c PickerConfig) resolve() (PickerSettings, error) {
	p := PickerSettings{
		Range:      calendar.DefaultRange(),
		TodayLabel: picker.DefaultTodayLabel,
	}

	if mode := strings.TrimSpace(c.Mode); mode != "" {
		m, err := picker.ParseMode(mode)
		if err != nil {
			return p, fmt.Errorf("picker.mode: %w", err)
		}
		p.Mode = m
	}

	if label := strings.TrimSpace(c.TodayLabel); label != "" {
		p.TodayLabel = label
	}

	if c.Date != "" {
		d, err := parseDate("picker.date", c.Date)
		if err != nil {
			return p, err
		}
		p.Date = d
		p.HasDate = true
	}

	if c.MinimumDate != "" {
		d, err := parseDate("picker.minimumDate", c.MinimumDate)
		if err != nil {
			return p, err
		}
		p.Range.Min = d
	}
	if c.MaximumDate != "" {
		d, err := parseDate("picker.maximumDate", c.MaximumDate)
		if err != nil {
			return p, err
		}
		p.Range.Max = d
	}
	if !p.Range.Min.Before(p.Range.Max) {
		return p, fmt.Errorf("picker.minimumDate %s must precede picker.maximumDate %s", p.Range.Min, p.Range.Max)
	}

	return p, nil
}

func parseDate(field, s string) (calendar.Date, error) {
	d, err := calendar.Parse(strings.TrimSpace(s))
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func (c StepperConfig) resolve() (StepperSettings, error) {
	def := stepper.New()
	s := StepperSettings{
		Value:      def.Value(),
		Minimum:    def.Minimum(),
		Maximum:    def.Maximum(),
		StepSize:   def.StepSize(),
		AutoRepeat: stepper.DefaultAutoRepeat(),
	}
	for _, f := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"stepper.value", c.Value, &s.Value},
		{"stepper.minimum", c.Minimum, &s.Minimum},
		{"stepper.maximum", c.Maximum, &s.Maximum},
		{"stepper.stepSize", c.StepSize, &s.StepSize},
	} {
		if f.src == nil {
			continue
		}
		if math.IsNaN(*f.src) || math.IsInf(*f.src, 0) {
			return s, fmt.Errorf("%s must be a finite number", f.name)
		}
		*f.dst = *f.src
	}

	if s.Minimum >= s.Maximum {
		return s, fmt.Errorf("stepper.minimum %g must be below stepper.maximum %g", s.Minimum, s.Maximum)
	}
	if s.StepSize <= 0 {
		return s, fmt.Errorf("stepper.stepSize %g must be positive", s.StepSize)
	}

	a, err := c.AutoRepeat.resolve(s.AutoRepeat)
	if err != nil {
		return s, err
	}
	s.AutoRepeat = a
	return s, nil
}

func (c AutoRepeatConfig) resolve(a stepper.AutoRepeat) (stepper.AutoRepeat, error) {
	for _, f := range []struct {
		name string
		src  string
		dst  *time.Duration
	}{
		{"stepper.autoRepeat.initialDelay", c.InitialDelay, &a.InitialDelay},
		{"stepper.autoRepeat.interval", c.Interval, &a.Interval},
		{"stepper.autoRepeat.acceleratedInterval", c.AcceleratedInterval, &a.AcceleratedInterval},
	} {
		if f.src == "" {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(f.src))
		if err != nil {
			return a, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = d
	}
	if c.AccelerateAfter != nil {
		a.AccelerateAfter = *c.AccelerateAfter
	}
	if err := a.Validate(); err != nil {
		return a, fmt.Errorf("stepper.autoRepeat: %w", err)
	}
	return a, nil
}

// PickerOptions returns the picker options for the resolved values.
func (r *Resolved) PickerOptions() []picker.Option {
	return []picker.Option{
		picker.WithLocale(r.Locale),
		picker.WithCalendar(r.Calendar),
		picker.WithMode(r.Picker.Mode),
		picker.WithRange(r.Picker.Range),
		picker.WithTodayLabel(r.Picker.TodayLabel),
	}
}

// NewPicker builds a picker from the resolved values. Options in extra are
// applied after the configured ones.
func (r *Resolved) NewPicker(extra ...picker.Option) *picker.Picker {
	p := picker.New(append(r.PickerOptions(), extra...)...)
	if r.Picker.HasDate {
		p.SetDate(r.Picker.Date, false)
	}
	return p
}

// NewStepper builds a stepper from the resolved values.
func (r *Resolved) NewStepper() *stepper.Stepper {
	s := stepper.New()
	s.SetBounds(r.Stepper.Minimum, r.Stepper.Maximum)
	s.SetStepSize(r.Stepper.StepSize)
	s.SetValue(r.Stepper.Value)
	return s
}
