package main

import (
	"fmt"

	"github.com/jmacd/launchxl3/launchctl/xl3"
	"github.com/spf13/cobra"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, outs := xl3.PortNames(xl3.SystemPorts())
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "inputs:")
		for i, name := range ins {
			fmt.Fprintf(w, "  %2d %-40s %s\n", i, name, portRole(name))
		}
		fmt.Fprintln(w, "outputs:")
		for i, name := range outs {
			fmt.Fprintf(w, "  %2d %-40s %s\n", i, name, portRole(name))
		}
		return nil
	},
}

func portRole(name string) string {
	switch {
	case xl3.IsDawPortName(name):
		return "[daw]"
	case xl3.IsMainPortName(name):
		return "[main]"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
