package device

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/scheerer/ambient-brightness/internal/logging"
	"go.uber.org/zap"
)

var logger = logging.New("device")

// Brightnessctl drives the backlight through the brightnessctl utility:
// `brightnessctl g` for the current absolute value, `brightnessctl m` for the
// maximum, and `brightnessctl s N%` to set a percentage.
type Brightnessctl struct {
	command string
}

var _ Port = (*Brightnessctl)(nil)

func NewBrightnessctl() *Brightnessctl {
	return &Brightnessctl{command: "brightnessctl"}
}

func (b *Brightnessctl) Current() (int, error) {
	current, err := b.queryInt("g")
	if err != nil {
		return 0, err
	}

	max, err := b.queryInt("m")
	if err != nil {
		return 0, err
	}
	if max <= 0 {
		// A non-positive maximum is outside the device contract; refuse
		// the reading rather than divide by it.
		return 0, fmt.Errorf("%w: maximum brightness %d", ErrBadOutput, max)
	}

	return current * 100 / max, nil
}

func (b *Brightnessctl) Set(percent int) error {
	// Output is discarded; the caller only cares that the command was issued.
	cmd := exec.Command(b.command, "s", fmt.Sprintf("%d%%", percent))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("set brightness to %d%%: %w", percent, err)
	}
	return nil
}

func (b *Brightnessctl) queryInt(arg string) (int, error) {
	out, err := exec.Command(b.command, arg).Output()
	if err != nil {
		logger.With(zap.String("arg", arg), zap.Error(err)).Warn("Brightness query command failed")
		return 0, fmt.Errorf("run %s %s: %w", b.command, arg, err)
	}

	raw := strings.TrimSpace(string(out))
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.With(zap.String("arg", arg), zap.String("output", raw)).Warn("Brightness query returned a non-integer")
		return 0, fmt.Errorf("%w: %q from %s %s", ErrBadOutput, raw, b.command, arg)
	}
	return v, nil
}
