package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottcagno/hashtables/pkg/hashmap/mode"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the basic put, get, resize and mode walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd)
		},
	}
}

func (a *app) runDemo(cmd *cobra.Command) error {
	a.logMap("demo")
	m, err := newMap(a.cfg, a.log)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	m.Put("key1", 10)
	v, _ := m.Get("key1")
	fmt.Fprintf(out, "get key1: %d\n", v)

	m.Put("key1", 20)
	v, _ = m.Get("key1")
	fmt.Fprintf(out, "get key1: %d\n", v)

	fmt.Fprintf(out, "contains key2: %t\n", m.ContainsKey("key2"))
	fmt.Fprintf(out, "empty buckets: %d\n", m.EmptyBuckets())

	if err := m.Resize(20); err != nil {
		return err
	}
	fmt.Fprintf(out, "resize 20: capacity %d\n", m.Capacity())
	for _, p := range m.Pairs() {
		fmt.Fprintf(out, "pair: (%s, %d)\n", p.Key, p.Value)
	}

	counts, err := newMap(a.cfg, a.log)
	if err != nil {
		return err
	}
	values := []string{"a", "b", "a", "c", "b", "b"}
	modes, freq := mode.FindMode(counts, values)
	fmt.Fprintf(out, "mode %v: %v %d\n", values, modes, freq)
	return nil
}
