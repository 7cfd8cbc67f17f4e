// Package ambient implements the control loop that converges display
// brightness toward a target derived from ambient light readings.
package ambient

import (
	"context"
	"time"

	"github.com/scheerer/ambient-brightness/internal/logging"
	"github.com/scheerer/ambient-brightness/internal/sensor"
	"go.uber.org/zap"
)

var logger = logging.New("ambient")

// Loop drives one sense → compute → step cycle per tick. It never terminates
// on its own; sensor and device failures are logged and retried on the next
// tick after the long sleep.
type Loop struct {
	config  Config
	sensor  sensor.Reader
	stepper *Stepper
}

func NewLoop(config Config, reader sensor.Reader, stepper *Stepper) *Loop {
	return &Loop{
		config:  config,
		sensor:  reader,
		stepper: stepper,
	}
}

// Tick executes exactly one iteration and returns how long the caller should
// sleep before the next one: the short sleep while actively converging, the
// long sleep once converged or when the sensor or device is unavailable.
func (l *Loop) Tick() time.Duration {
	lux, err := l.sensor.Read()
	if err != nil {
		// Already logged by the reader. No reading means no brightness
		// action this cycle.
		return l.config.LongSleep
	}

	target := TargetBrightness(lux, l.config.MaxLux, l.config.MinBrightness)
	logger.With(zap.Int("lux", lux), zap.Int("target", target)).Debug("Calculated target brightness")

	adjusted, err := l.stepper.Step(target, lux)
	if err != nil {
		logger.With(zap.Error(err)).Warn("Brightness adjustment failed")
		return l.config.LongSleep
	}

	if adjusted {
		return l.config.ShortSleep
	}
	return l.config.LongSleep
}

// Run ticks until the context is cancelled. The sleep between ticks is
// interruptible so shutdown is prompt even mid long-sleep.
func (l *Loop) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		sleep := l.Tick()
		logger.With(zap.Duration("sleep", sleep)).Debug("Sleeping until next cycle")
		timer.Reset(sleep)
	}
}
