package main

import (
	"context"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Turn off every LED and cancel both displays",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, d *xl3.Device) error {
			d.LEDs().ClearAllLEDs()
			d.Display().ClearStationary()
			d.Display().ClearTemporary()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
