package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// prober is implemented by maps that can report on their probe sequences
type prober interface {
	Tombstones() int
	LongestProbe() int
}

func newStatsCommand(a *app) *cobra.Command {
	var keys, removeEvery int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Insert generated keys and print the table shape at every growth step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStats(cmd.OutOrStdout(), keys, removeEvery)
		},
	}
	cmd.Flags().IntVarP(&keys, "keys", "n", 150, "number of keys to insert")
	cmd.Flags().IntVar(&removeEvery, "remove-every", 0, "remove every nth key once inserted (0 keeps all)")
	return cmd
}

func (a *app) runStats(out io.Writer, keys, removeEvery int) error {
	a.logMap("stats")
	m, err := newMap(a.cfg, a.log)
	if err != nil {
		return err
	}
	printStats(out, m)
	capacity := m.Capacity()
	for i := 0; i < keys; i++ {
		m.Put("str"+strconv.Itoa(i), i*100)
		if m.Capacity() != capacity {
			capacity = m.Capacity()
			printStats(out, m)
		}
	}
	if removeEvery > 0 {
		var removed int
		for i := 0; i < keys; i += removeEvery {
			if _, ok := m.Remove("str" + strconv.Itoa(i)); ok {
				removed++
			}
		}
		a.log.Info("removed keys", zap.Int("count", removed))
	}
	printStats(out, m)
	return nil
}

func printStats(out io.Writer, m hashmap.Map[string, int]) {
	fmt.Fprintf(out, "size=%d capacity=%d load=%.2f empty=%d",
		m.Len(), m.Capacity(), m.TableLoad(), m.EmptyBuckets())
	if p, ok := m.(prober); ok {
		fmt.Fprintf(out, " tombstones=%d longest_probe=%d", p.Tombstones(), p.LongestProbe())
	}
	fmt.Fprintln(out)
}
