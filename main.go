package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scheerer/ambient-brightness/ambient"
	"github.com/scheerer/ambient-brightness/internal/device"
	"github.com/scheerer/ambient-brightness/internal/logging"
	"github.com/scheerer/ambient-brightness/internal/sensor"
)

var (
	logger = logging.New("main")
	config = ambient.Config{}

	verbose bool
	quiet   bool
)

func main() {
	defer logger.Sync()

	if err := env.Parse(&config); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "ambientbrightd",
		Short: "Adjust screen brightness based on ambient light",
		Long: `ambientbrightd polls an ambient light sensor and smoothly converges the
display's brightness toward a level derived from the reading, one percentage
point at a time. Brightness is driven through brightnessctl.

Flags default to the matching environment variables (SENSOR_PATH, MAX_LUX,
MIN_BRIGHTNESS, MAX_WIDTH, SHORT_SLEEP, LONG_SLEEP) when those are set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	flags.StringVar(&config.SensorPath, "sensor-path", config.SensorPath, "Path to the ambient light sensor value")
	flags.IntVar(&config.MaxLux, "max-lux", config.MaxLux, "Lux level mapping to 100% brightness")
	flags.IntVar(&config.MinBrightness, "min-brightness", config.MinBrightness, "Floor brightness percentage")
	flags.IntVar(&config.MaxWidth, "max-width", config.MaxWidth, "Width of the brightness display bar")
	flags.DurationVar(&config.ShortSleep, "short-sleep", config.ShortSleep, "Sleep after an adjustment was made")
	flags.DurationVar(&config.LongSleep, "long-sleep", config.LongSleep, "Sleep when no adjustment was made or the sensor failed")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	switch {
	case verbose:
		logging.GetLeveler().SetAllLevels(zap.DebugLevel)
	case quiet:
		logging.GetLeveler().SetAllLevels(zap.ErrorLevel)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	logger.With(zap.Any("config", config)).Info("Starting ambient brightness control")
	logger.Info("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := ambient.NewLoop(config,
		sensor.NewFileReader(config.SensorPath),
		ambient.NewStepper(device.NewBrightnessctl(), config.MaxWidth))

	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown
	logger.Info("Shutting down")
	cancel()
	<-done
	return nil
}
