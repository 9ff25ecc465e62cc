package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
)

var (
	chaseDuration time.Duration
	chaseStep     time.Duration
)

var chaseCmd = &cobra.Command{
	Use:   "chase",
	Short: "Run a lit LED around every control, then flash the button rows",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return checkChaseFlags(chaseDuration, chaseStep)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, d *xl3.Device) error {
			ctx, cancel := context.WithTimeout(ctx, chaseDuration)
			defer cancel()

			leds := d.LEDs()
			defer leds.ClearAllLEDs()

			ticker := time.NewTicker(chaseStep)
			defer ticker.Stop()

			start := time.Now()
			prev := 0
			for i := 0; time.Since(start) < chaseDuration/2; i++ {
				idx := xl3.ControlIndexFirst + i%xl3.NumControlIndices
				if prev != 0 {
					leds.SetLED(prev, xl3.ColorOff)
				}
				leds.SetLED(idx, xl3.EightColors[i%len(xl3.EightColors)])
				d.Display().ShowTemporary("index", fmt.Sprint(idx))
				prev = idx

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
			if prev != 0 {
				leds.SetLED(prev, xl3.ColorOff)
			}

			for i := 0; ; i++ {
				if i%2 == 0 {
					leds.SetTopButtonRowLEDs(xl3.ColorYellow)
					leds.SetBottomButtonRowLEDs(xl3.ColorSoftBlue)
				} else {
					leds.SetTopButtonRowLEDs(xl3.ColorSoftYellow)
					leds.SetBottomButtonRowLEDs(xl3.ColorBlue)
				}
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(433 * time.Millisecond):
				}
			}
		})
	},
}

func checkChaseFlags(duration, step time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("--duration must be positive, got %v", duration)
	}
	if step <= 0 {
		return fmt.Errorf("--step must be positive, got %v", step)
	}
	return nil
}

func init() {
	chaseCmd.Flags().DurationVarP(&chaseDuration, "duration", "d", 10*time.Second, "How long to run")
	chaseCmd.Flags().DurationVar(&chaseStep, "step", 50*time.Millisecond, "Time each LED stays lit")
	rootCmd.AddCommand(chaseCmd)
}
