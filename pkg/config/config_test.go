package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/dyntype"
	"github.com/go-drift/dyntype/pkg/picker"
	"github.com/go-drift/dyntype/pkg/stepper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
locale: de
timezone: UTC
dynamicType:
  category: accessibility-large
picker:
  mode: dateAndTime
  date: "2000-01-31"
  minimumDate: "2000-01-01"
  maximumDate: "2000-02-29 23:59"
  todayLabel: Heute
stepper:
  value: 4
  minimum: 0
  maximum: 10
  stepSize: 2
  autoRepeat:
    initialDelay: 400ms
    interval: 100ms
    accelerateAfter: 5
    acceleratedInterval: 25ms
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptionalMalformed(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "picker: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestResolveDefaults(t *testing.T) {
	r, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "en-US", r.Locale.String())
	assert.Equal(t, dyntype.Large, r.Category)
	assert.Equal(t, picker.ModeDate, r.Picker.Mode)
	assert.False(t, r.Picker.HasDate)
	assert.Equal(t, calendar.DefaultRange(), r.Picker.Range)
	assert.Equal(t, picker.DefaultTodayLabel, r.Picker.TodayLabel)
	assert.Equal(t, StepperSettings{
		Value:      0,
		Minimum:    0,
		Maximum:    100,
		StepSize:   1,
		AutoRepeat: stepper.DefaultAutoRepeat(),
	}, r.Stepper)
}

func TestResolveFullConfig(t *testing.T) {
	path := writeConfig(t, fullConfig)
	r, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, path, r.Path)
	assert.Equal(t, "de", r.Locale.String())
	assert.Equal(t, dyntype.AccessibilityLarge, r.Category)
	assert.Equal(t, picker.ModeDateAndTime, r.Picker.Mode)
	assert.True(t, r.Picker.HasDate)
	assert.Equal(t, calendar.NewDate(2000, time.January, 31), r.Picker.Date)
	assert.Equal(t, calendar.NewDateTime(2000, time.February, 29, 23, 59), r.Picker.Range.Max)
	assert.Equal(t, "Heute", r.Picker.TodayLabel)
	assert.Equal(t, StepperSettings{
		Value:    4,
		Minimum:  0,
		Maximum:  10,
		StepSize: 2,
		AutoRepeat: stepper.AutoRepeat{
			InitialDelay:        400 * time.Millisecond,
			Interval:            100 * time.Millisecond,
			AccelerateAfter:     5,
			AcceleratedInterval: 25 * time.Millisecond,
		},
	}, r.Stepper)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"locale", "locale: zu", "locale"},
		{"timezone", "timezone: Mars/Olympus", "timezone"},
		{"category", "dynamicType:\n  category: huge", "dynamicType.category"},
		{"mode", "picker:\n  mode: time", "picker.mode"},
		{"date", "picker:\n  date: 31/01/2000", "picker.date"},
		{"range", "picker:\n  minimumDate: \"2001-01-01\"\n  maximumDate: \"2000-01-01\"", "must precede"},
		{"bounds", "stepper:\n  minimum: 5\n  maximum: 5", "stepper.minimum"},
		{"step", "stepper:\n  stepSize: 0", "stepper.stepSize"},
		{"duration", "stepper:\n  autoRepeat:\n    interval: soon", "stepper.autoRepeat.interval"},
		{"policy", "stepper:\n  autoRepeat:\n    accelerateAfter: -2", "stepper.autoRepeat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewPickerAppliesSettings(t *testing.T) {
	r, err := Resolve(writeConfig(t, "picker:\n  date: \"2000-01-31\"\n  maximumDate: \"2000-01-15\"\n"))
	require.NoError(t, err)

	p := r.NewPicker()
	assert.Equal(t, picker.ModeDate, p.Mode())
	assert.Equal(t, calendar.NewDate(2000, time.January, 15), p.Date())
}

func TestNewStepperAppliesSettings(t *testing.T) {
	r, err := Resolve(writeConfig(t, fullConfig))
	require.NoError(t, err)

	s := r.NewStepper()
	assert.Equal(t, 4.0, s.Value())
	assert.True(t, s.Increment())
	assert.Equal(t, 6.0, s.Value())
	assert.Equal(t, 10.0, s.Maximum())
}
