package main

import (
	"context"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
)

var textTemporary bool

var textCmd = &cobra.Command{
	Use:   "text LINE1 LINE2 [LINE3]",
	Short: "Show two or three lines on the display",
	Long: `Show text on the display. With three arguments the permanent display
uses its title, name and value arrangement. With --temporary the lines are
shown on the overlay, which the device dismisses on its own; otherwise the
text stays until the command is interrupted.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, d *xl3.Device) error {
			disp := d.Display()
			switch {
			case textTemporary:
				disp.ShowTemporary(args[0], args[1])
			case len(args) == 3:
				disp.SetStationary3Line(args[0], args[1], args[2])
			default:
				disp.SetStationary(args[0], args[1])
			}
			if !textTemporary {
				// The permanent display is released with DAW mode.
				<-ctx.Done()
			}
			return nil
		})
	},
}

func init() {
	textCmd.Flags().BoolVarP(&textTemporary, "temporary", "t", false, "Use the overlay display")
	rootCmd.AddCommand(textCmd)
}
