package reportv1

import "context"

// Recorder defines the interface for storing command timings.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=reportv1_mock
type Recorder interface {
	// Record stores one entry.
	Record(ctx context.Context, entry Entry) error
	// Flush writes buffered entries to the destination.
	Flush() error
	// Close flushes and releases the destination.
	Close() error
}
