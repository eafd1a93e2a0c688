package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scottcagno/hashtables/pkg/hashmap"
	"github.com/scottcagno/hashtables/pkg/hashmap/chained"
	"github.com/scottcagno/hashtables/pkg/hashmap/openaddr"
)

const (
	strategyOpenAddr = "openaddr"
	strategyChained  = "chained"
)

// Config is the toml configuration of the command line tool
type Config struct {
	Map MapConfig `toml:"map"`
	Log LogConfig `toml:"log"`
}

type MapConfig struct {
	Strategy string `toml:"strategy"`
	Capacity int    `toml:"capacity"`
	Hash     string `toml:"hash"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Strategy: strategyOpenAddr,
			Capacity: hashmap.DefaultCapacity,
			Hash:     "sum",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	return cfg, nil
}

// Validate checks every field, returning the first problem found
func (c *Config) Validate() error {
	if c.Map.Capacity < 1 {
		return errors.Wrapf(hashmap.ErrInvalidCapacity, "map.capacity %d", c.Map.Capacity)
	}
	switch strings.ToLower(c.Map.Strategy) {
	case strategyOpenAddr, strategyChained:
	default:
		return errors.Wrapf(hashmap.ErrUnknownStrategy, "map.strategy %q", c.Map.Strategy)
	}
	if _, err := hashmap.StringHash(c.Map.Hash); err != nil {
		return errors.Wrap(err, "map.hash")
	}
	var lvl zap.AtomicLevel
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errors.Wrapf(err, "log.level %q", c.Log.Level)
	}
	return nil
}

// newLogger builds a console logger writing to stderr at level
func newLogger(level string) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// newMap builds the configured map for string keys and int values
func newMap(cfg *Config, log *zap.Logger) (hashmap.Map[string, int], error) {
	hash, err := hashmap.StringHash(cfg.Map.Hash)
	if err != nil {
		return nil, err
	}
	opts := &hashmap.Options{Logger: log}
	switch strings.ToLower(cfg.Map.Strategy) {
	case strategyOpenAddr:
		m, err := openaddr.NewHashMap[string, int](cfg.Map.Capacity, hash, opts)
		if err != nil {
			return nil, err
		}
		return m, nil
	case strategyChained:
		m, err := chained.NewHashMap[string, int](cfg.Map.Capacity, hash, opts)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, errors.Wrapf(hashmap.ErrUnknownStrategy, "%q", cfg.Map.Strategy)
}
