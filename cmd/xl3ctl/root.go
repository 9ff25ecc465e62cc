package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	custom  bool
	settle  time.Duration
	channel int
)

var rootCmd = &cobra.Command{
	Use:   "xl3ctl",
	Short: "Launch Control XL 3 LED, display and input tool",
	Long: `xl3ctl talks to a Novation Launch Control XL 3 over MIDI.

LED and display commands use the DAW port and enable DAW mode for as long
as the command runs; DAW mode is disabled again on exit. Pass --custom to
leave the device in Custom Mode (LED and display commands then have no
defined effect).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log protocol activity")
	rootCmd.PersistentFlags().BoolVar(&custom, "custom", false, "Do not enable DAW mode")
	rootCmd.PersistentFlags().DurationVar(&settle, "settle", xl3.DefaultSettleDelay, "Delay after opening the DAW port")
	rootCmd.PersistentFlags().IntVarP(&channel, "channel", "c", 0, "Input MIDI channel 1-16 (0 = any)")
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func driverOptions(log *zap.Logger) []xl3.Option {
	return []xl3.Option{
		xl3.WithLogger(log),
		xl3.WithSettleDelay(settle),
		xl3.WithInputChannel(channel),
	}
}

// withDevice sets up the DAW output device, runs fn and shuts the
// device down again.
func withDevice(fn func(ctx context.Context, d *xl3.Device) error) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	d := xl3.NewDevice(driverOptions(log)...)
	if err := d.Setup(!custom); err != nil {
		return fmt.Errorf("error while opening connection to launchctl: %w", err)
	}
	defer func() {
		if err := d.Shutdown(); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	ctx, cancel := signalContext()
	defer cancel()
	return fn(ctx, d)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
