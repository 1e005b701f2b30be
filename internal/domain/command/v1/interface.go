package commandv1

import (
	"context"
	"errors"
)

// ErrUnknownCommand is returned for a verb outside the command vocabulary.
var ErrUnknownCommand = errors.New("unknown command")

// Reader defines the interface for reading commands from a source.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=commandv1_mock
type Reader interface {
	// ReadCommand returns the next command. It returns io.EOF once the source is exhausted.
	ReadCommand(ctx context.Context) (Command, error)
	// Close closes the reader
	Close() error
}
