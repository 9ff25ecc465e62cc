package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print control changes until interrupted",
	Long: `Print every control change. In DAW mode (the default) the moved
control's LED follows its value and the overlay display shows it; with
--custom the main port is read and nothing is sent to the device.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		mode := xl3.ModeDaw
		if custom {
			mode = xl3.ModeCustom
		}
		l, err := xl3.Open(mode, driverOptions(log)...)
		if err != nil {
			return fmt.Errorf("error while opening connection to launchctl: %w", err)
		}
		defer func() {
			if err := l.Close(); err != nil {
				log.Error("close", zap.Error(err))
			}
		}()

		w := cmd.OutOrStdout()
		for con := xl3.Control(0); con < xl3.NumControls; con++ {
			name := controlName(con)
			l.AddCallback(con, func(ch int, con xl3.Control, v xl3.Value) {
				fmt.Fprintf(w, "ch %2d  %-10s %3d  %.3f\n", ch+1, name, v, v.Float())
				if !l.DawModeActive() {
					return
				}
				if idx, err := xl3.LEDIndex(con); err == nil {
					l.LEDs().SetLED(idx, xl3.RGB(int(v), 0, 127-int(v)))
				}
				l.Display().ShowTemporary(name, fmt.Sprint(v))
			})
		}
		if l.DawModeActive() {
			l.LEDs().ClearAllLEDs()
			l.Display().SetStationary(xl3.DeviceName, "monitor")
		}

		ctx, cancel := signalContext()
		defer cancel()
		if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("error running launchctl: %w", err)
		}
		return nil
	},
}

func controlName(con xl3.Control) string {
	switch {
	case con < xl3.ControlFader[0]:
		return fmt.Sprintf("encoder %d", int(con-xl3.ControlEncoderRow1[0])+1)
	case con < xl3.ControlButtonTop[0]:
		return fmt.Sprintf("fader %d", int(con-xl3.ControlFader[0])+1)
	}
	return fmt.Sprintf("button %d", int(con-xl3.ControlButtonTop[0])+1)
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
