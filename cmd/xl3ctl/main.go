// Command xl3ctl drives the LEDs and display of a Novation Launch
// Control XL 3 and prints its control changes.
package main

import (
	"os"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func main() {
	err := Execute()
	midi.CloseDriver()
	if err != nil {
		os.Exit(1)
	}
}
