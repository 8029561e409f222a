// Package testing provides test doubles for dyntype controls.
//
// # Renderers
//
// RecordingRenderer records the calls a picker core makes so tests can
// assert which columns moved and whether they animated:
//
//	r := dyntest.NewRecordingRenderer()
//	p := picker.New(picker.WithRenderer(r))
//	p.SelectRow(0, p.SelectedRow(0)+1)
//	last, _ := r.LastSelection(2)
//
// # Time
//
// FakeClock is both a clock for the date-and-time picker and a timer
// scheduler for the stepper's auto-repeat:
//
//	clock := dyntest.NewFakeClock()
//	repeater := stepper.NewRepeater(fire, stepper.DefaultAutoRepeat(), clock.AfterFunc, nil)
//	repeater.Press()
//	clock.Advance(500 * time.Millisecond)
//
// # Snapshot Testing
//
// Capture the visible rows of a picker and compare them against a golden
// file:
//
//	dyntest.CaptureColumns(p, 1).MatchesFile(t, "testdata/picker.snapshot.json")
//
// Update snapshots with:
//
//	DYNTYPE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import dyntest "github.com/go-drift/dyntype/pkg/testing"
package testing
