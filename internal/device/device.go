// Package device controls display brightness through an external
// command-line utility.
package device

import "errors"

// ErrBadOutput indicates the brightness utility produced output that could
// not be interpreted as an absolute brightness value.
var ErrBadOutput = errors.New("brightness utility returned unusable output")

// Port is the brightness control surface the convergence logic runs against.
type Port interface {
	// Current returns the display's brightness as a percentage of its
	// maximum, in [0,100], rounding down.
	Current() (int, error)

	// Set drives the display to the given percentage. Fire-and-forget:
	// the device is not re-queried to confirm the level was reached.
	Set(percent int) error
}
