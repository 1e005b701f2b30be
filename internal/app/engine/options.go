package engine

import "time"

// Options represents configuration options for the Engine.
type Options struct {
	// QueueSize is the capacity of the channel between the command reader
	// and the processor.
	QueueSize int
	// ReadBackoff is the pause after a failed read before reading again.
	ReadBackoff time.Duration
	// ValidateOnStop runs the book's structural checks once processing stops.
	ValidateOnStop bool
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		QueueSize:      1024,
		ReadBackoff:    100 * time.Millisecond,
		ValidateOnStop: false,
	}
}
