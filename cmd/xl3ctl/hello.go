package main

import (
	"context"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Paint every LED and show a title until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, d *xl3.Device) error {
			leds := d.LEDs()
			for i := 0; i < 8; i++ {
				c := xl3.EightColors[i]
				soft := xl3.EightSoftColors[i]

				leds.SetEncoderLED(1+i, c)
				leds.SetEncoderLED(9+i, soft)
				leds.SetEncoderLED(17+i, c)
				leds.SetFaderLED(1+i, soft)
				leds.SetButtonLED(1+i, c)
				leds.SetButtonLED(9+i, soft)
			}
			d.Display().SetStationary3Line(xl3.DeviceName, "hello", "from xl3ctl")

			<-ctx.Done()
			leds.ClearAllLEDs()
			d.Display().ClearStationary()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
