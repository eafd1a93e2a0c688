package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every sub command needs once the config is resolved
type app struct {
	cfgFile  string
	strategy string
	capacity int
	hash     string
	level    string

	cfg *Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "hashtables",
		Short:         "Exercise the open addressing and separate chaining hash maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "path to a toml config file")
	flags.StringVar(&a.strategy, "strategy", "", "collision strategy: openaddr or chained")
	flags.IntVar(&a.capacity, "capacity", 0, "initial capacity, rounded up to a prime")
	flags.StringVar(&a.hash, "hash", "", "hash function: sum, weighted, xxhash or murmur3")
	flags.StringVar(&a.level, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newDemoCommand(a),
		newModeCommand(a),
		newStatsCommand(a),
	)
	return cmd
}

// setup loads the config file, applies any flags that were set on top of
// it and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Map.Strategy = a.strategy
	}
	if flags.Changed("capacity") {
		cfg.Map.Capacity = a.capacity
	}
	if flags.Changed("hash") {
		cfg.Map.Hash = a.hash
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) logMap(name string) {
	a.log.Info(name,
		zap.String("strategy", a.cfg.Map.Strategy),
		zap.Int("capacity", a.cfg.Map.Capacity),
		zap.String("hash", a.cfg.Map.Hash))
}
