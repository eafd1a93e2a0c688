package hashmap

import "errors"

var (
	ErrInvalidCapacity = errors.New("hashmap: invalid capacity")
	ErrProbeExhausted  = errors.New("hashmap: probe sequence exhausted")

	ErrUnknownHash     = errors.New("hashmap: unknown hash function")
	ErrUnknownStrategy = errors.New("hashmap: unknown strategy")
)
