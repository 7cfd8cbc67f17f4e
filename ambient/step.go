package ambient

import (
	"github.com/scheerer/ambient-brightness/internal/device"
)

// Stepper moves the display one percentage point toward a target brightness
// per call. Single-unit steps keep the ramp visually smooth and rate-limit
// brightness changes under noisy sensor input; large jumps simply take more
// iterations to converge.
type Stepper struct {
	port     device.Port
	barWidth int
}

func NewStepper(port device.Port, barWidth int) *Stepper {
	return &Stepper{port: port, barWidth: barWidth}
}

// Step queries the current brightness and, unless it already matches target,
// applies a single ±1 adjustment and emits the progress line. It reports
// whether an adjustment occurred. The port is assumed to be the sole writer;
// a concurrent external change (e.g. a brightness hotkey) may be overwritten
// on the next step.
func (s *Stepper) Step(target, lux int) (bool, error) {
	current, err := s.port.Current()
	if err != nil {
		return false, err
	}

	if current == target {
		logger.Debug("Brightness is already at target")
		return false, nil
	}

	delta := 1
	if target < current {
		delta = -1
	}
	current += delta

	if err := s.port.Set(current); err != nil {
		return false, err
	}

	logger.Info(ProgressLine(current, target, lux, s.barWidth))
	return true, nil
}
