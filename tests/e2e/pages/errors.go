package pages

import "fmt"

// NavigationError reports that a view's route was requested but its
// marker element never appeared.
type NavigationError struct {
	Route  string
	Marker string
	Err    error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed (marker %q): %v", e.Route, e.Marker, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ElementNotReadyError reports that a composite action's sub-step timed
// out waiting for its target element to become actionable.
type ElementNotReadyError struct {
	TestID string
	Err    error
}

func (e *ElementNotReadyError) Error() string {
	return fmt.Sprintf("element %q not actionable: %v", e.TestID, e.Err)
}

func (e *ElementNotReadyError) Unwrap() error { return e.Err }

// DialogTimeout reports that a dialog-producing action fired but no
// confirmation dialog arrived within the step timeout.
type DialogTimeout struct {
	TestID string
}

func (e *DialogTimeout) Error() string {
	return fmt.Sprintf("no confirmation dialog after clicking %q", e.TestID)
}
