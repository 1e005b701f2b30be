package reportrecorder

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"sync"

	reportv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/report/v1"
	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
	"github.com/muhammadchandra19/limit-order-book/pkg/logger"
)

// Recorder writes timing entries as CSV rows.
type Recorder struct {
	mu     sync.Mutex
	writer *csv.Writer
	closer io.Closer
	logger *logger.Logger
	rows   int
}

var _ reportv1.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder writing to w and writes the header row.
// If w is an io.Closer it is closed by Close.
func NewRecorder(w io.Writer, log *logger.Logger) (*Recorder, error) {
	r := &Recorder{
		writer: csv.NewWriter(w),
		logger: log,
	}
	if closer, ok := w.(io.Closer); ok {
		r.closer = closer
	}

	if err := r.writer.Write(reportv1.Header); err != nil {
		return nil, errors.NewCodeTracer(errors.ReportWriteError).Wrap(err)
	}
	return r, nil
}

// Create creates or truncates the file at path and returns a Recorder writing to it.
func Create(path string, log *logger.Logger) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.NewCodeTracer(errors.ReportWriteError).Wrap(err)
	}

	r, err := NewRecorder(f, log)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// Record appends one row.
func (r *Recorder) Record(ctx context.Context, entry reportv1.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.writer.Write(entry.Row()); err != nil {
		tracer := errors.NewCodeTracer(errors.ReportWriteError).Wrap(err)
		r.logger.ErrorContext(ctx, tracer, logger.NewField("command", entry.Command))
		return tracer
	}
	r.rows++
	return nil
}

// Flush writes buffered rows to the destination.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.flush()
}

func (r *Recorder) flush() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return errors.NewCodeTracer(errors.ReportWriteError).Wrap(err)
	}
	return nil
}

// Close flushes pending rows and closes the destination.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.flush(); err != nil {
		return err
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			return errors.NewCodeTracer(errors.ReportWriteError).Wrap(err)
		}
	}

	r.logger.Debug("Timing report closed", logger.NewField("rows", r.rows))
	return nil
}

// Rows returns the number of entries recorded, header excluded.
func (r *Recorder) Rows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}
