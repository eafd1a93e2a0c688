package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottcagno/hashtables/pkg/hashmap/mode"
)

func newModeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mode VALUE...",
		Short: "Print the most frequent values and their frequency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logMap("mode")
			m, err := newMap(a.cfg, a.log)
			if err != nil {
				return err
			}
			modes, freq := mode.FindMode(m, args)
			fmt.Fprintf(cmd.OutOrStdout(), "mode: %s, frequency: %d\n", strings.Join(modes, " "), freq)
			return nil
		},
	}
}
