package ambient

import (
	"fmt"
	"time"
)

// Config holds the loop configuration. It is populated once at startup from
// environment variables and command-line flags and never mutated afterwards.
type Config struct {
	SensorPath    string        `env:"SENSOR_PATH" envDefault:"/sys/bus/iio/devices/iio:device0/in_illuminance_raw"`
	MaxLux        int           `env:"MAX_LUX" envDefault:"300"`
	MinBrightness int           `env:"MIN_BRIGHTNESS" envDefault:"1"`
	MaxWidth      int           `env:"MAX_WIDTH" envDefault:"25"`
	ShortSleep    time.Duration `env:"SHORT_SLEEP" envDefault:"100ms"`
	LongSleep     time.Duration `env:"LONG_SLEEP" envDefault:"1s"`
}

func (c Config) Validate() error {
	if c.SensorPath == "" {
		return fmt.Errorf("sensor path must not be empty")
	}
	if c.MaxLux <= 0 {
		return fmt.Errorf("max lux must be positive, got %d", c.MaxLux)
	}
	if c.MinBrightness < 0 || c.MinBrightness > 100 {
		return fmt.Errorf("min brightness must be in [0,100], got %d", c.MinBrightness)
	}
	if c.MaxWidth <= 0 {
		return fmt.Errorf("bar width must be positive, got %d", c.MaxWidth)
	}
	if c.ShortSleep <= 0 || c.LongSleep <= 0 {
		return fmt.Errorf("sleep durations must be positive, got short=%v long=%v", c.ShortSleep, c.LongSleep)
	}
	return nil
}
