// Package sensor reads ambient light levels from an iio sysfs attribute.
package sensor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scheerer/ambient-brightness/internal/logging"
	"go.uber.org/zap"
)

var logger = logging.New("sensor")

var (
	// ErrUnavailable indicates the sensor source could not be opened.
	ErrUnavailable = errors.New("ambient light sensor unavailable")

	// ErrMalformed indicates the sensor source did not contain an integer.
	ErrMalformed = errors.New("ambient light sensor reading malformed")
)

// Reader yields one ambient light measurement per call.
type Reader interface {
	// Read returns the current ambient light level in lux. Failures are
	// classified as ErrUnavailable or ErrMalformed via errors.Is.
	Read() (int, error)
}

// FileReader reads lux values from a sysfs-style file whose entire content is
// a single integer, e.g. /sys/bus/iio/devices/iio:device0/in_illuminance_raw.
type FileReader struct {
	path string
}

var _ Reader = (*FileReader)(nil)

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

func (r *FileReader) Read() (int, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		logger.With(zap.String("path", r.path), zap.Error(err)).Warn("Ambient light sensor reading failed")
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	raw := strings.TrimSpace(string(data))
	lux, err := strconv.Atoi(raw)
	if err != nil {
		logger.With(zap.String("path", r.path), zap.String("content", raw)).Warn("Ambient light sensor returned a non-integer value")
		return 0, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	logger.With(zap.Int("lux", lux)).Debug("Read ambient light level")
	return lux, nil
}
