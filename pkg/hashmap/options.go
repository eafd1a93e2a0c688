package hashmap

import "go.uber.org/zap"

const (
	DefaultCapacity = 11 // prime
)

// Options are the optional settings shared by every strategy
type Options struct {
	// Logger receives table rebuild events at debug level
	Logger *zap.Logger
}

// DefaultOptions returns a fresh set of defaults
func DefaultOptions() *Options {
	return &Options{
		Logger: zap.NewNop(),
	}
}

// CheckOptions returns usable options, filling in anything left unset
func CheckOptions(options *Options) *Options {
	if options == nil {
		return DefaultOptions()
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return options
}
