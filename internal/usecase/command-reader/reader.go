package commandreader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	commandv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/command/v1"
	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
	"github.com/muhammadchandra19/limit-order-book/pkg/logger"
)

const maxLineSize = 1024 * 1024

// Reader reads whitespace separated commands, one per line.
// Blank lines and lines starting with '#' are skipped.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	logger  *logger.Logger
	line    int
}

var _ commandv1.Reader = (*Reader)(nil)

// NewReader creates a Reader over r. If r is an io.Closer it is closed by Close.
func NewReader(r io.Reader, log *logger.Logger) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	reader := &Reader{
		scanner: scanner,
		logger:  log,
	}
	if closer, ok := r.(io.Closer); ok {
		reader.closer = closer
	}
	return reader
}

// Open creates a Reader over the file at path.
func Open(path string, log *logger.Logger) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewCodeTracer(errors.CommandReadError).Wrap(err)
	}
	return NewReader(f, log), nil
}

// ReadCommand returns the next command of the stream, or io.EOF at its end.
// A line that cannot be parsed returns a *errors.BaseError; the next call
// continues with the following line.
func (r *Reader) ReadCommand(ctx context.Context) (commandv1.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return commandv1.Command{}, err
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				tracer := errors.NewCodeTracer(errors.CommandReadError).Wrap(err)
				r.logger.ErrorContext(ctx, tracer, logger.NewField("line", r.line+1))
				return commandv1.Command{}, tracer
			}
			return commandv1.Command{}, io.EOF
		}
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return Parse(text, r.line)
	}
}

// Close closes the underlying source.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return errors.NewCodeTracer(errors.CommandReadError).Wrap(err)
	}
	return nil
}

// Parse parses a single command line. lineNo is recorded on the command and
// in error messages.
func Parse(text string, lineNo int) (commandv1.Command, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return commandv1.Command{}, errors.NewBaseError(
			errors.NewErrorDetails(fmt.Sprintf("line %d: empty command", lineNo), errors.MalformedCommand, ""),
		)
	}

	cmd := commandv1.Command{Type: commandv1.Type(tokens[0]), Line: lineNo}
	layout, ok := cmd.Type.Fields()
	if !ok {
		return cmd, errors.NewBaseError(
			errors.NewErrorDetails(fmt.Sprintf("line %d: unknown command %q", lineNo, tokens[0]), errors.UnknownCommand, "type"),
		)
	}

	args := tokens[1:]
	if len(args) != len(layout) {
		return cmd, errors.NewBaseError(
			errors.NewErrorDetails(
				fmt.Sprintf("line %d: %s expects %d arguments, got %d", lineNo, cmd.Type, len(layout), len(args)),
				errors.MalformedCommand,
				"",
			),
		)
	}

	baseErr := errors.NewBaseError()
	for i, field := range layout {
		if field == commandv1.FieldSide {
			side, err := commandv1.ParseSide(args[i])
			if err != nil {
				baseErr.AddErrorDetails(errors.NewErrorDetails(
					fmt.Sprintf("line %d: side must be 1, 0, buy or sell, got %q", lineNo, args[i]),
					errors.MalformedCommand,
					string(field),
				))
				continue
			}
			cmd.Side = side
			continue
		}

		v, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil {
			baseErr.AddErrorDetails(errors.NewErrorDetails(
				fmt.Sprintf("line %d: %s must be an integer, got %q", lineNo, field, args[i]),
				errors.MalformedCommand,
				string(field),
			))
			continue
		}
		assign(&cmd, field, v)
	}

	if baseErr.HasDetails() {
		baseErr.PrependFields(strings.ToLower(string(cmd.Type)) + ".")
		return cmd, baseErr
	}
	return cmd, nil
}

func assign(cmd *commandv1.Command, field commandv1.Field, v int64) {
	switch field {
	case commandv1.FieldOrderID:
		cmd.OrderID = v
	case commandv1.FieldQty:
		cmd.Qty = v
	case commandv1.FieldLimitPrice:
		cmd.LimitPrice = v
	case commandv1.FieldStopPrice:
		cmd.StopPrice = v
	}
}
