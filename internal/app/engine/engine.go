package engine

import (
	"context"
	stderrors "errors"
	"io"
	"sync"
	"time"

	commandv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/command/v1"
	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
	reportv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/report/v1"
	"github.com/muhammadchandra19/limit-order-book/pkg/config"
	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
	"github.com/muhammadchandra19/limit-order-book/pkg/logger"
	"github.com/muhammadchandra19/limit-order-book/pkg/util"
	"github.com/oklog/ulid/v2"
)

// ErrEngineStopped is returned by Submit when the engine is not running.
var ErrEngineStopped = errors.NewCodeTracer(errors.EngineStopped)

type result struct {
	report orderbookv1.Report
	err    error
}

type request struct {
	id      string
	command commandv1.Command
	// reply is nil for commands coming from the reader.
	reply chan result
	// endOfStream marks that the reader has no more commands.
	endOfStream bool
}

// Engine applies commands to a single order book. Commands from the reader
// and from Submit are applied in arrival order by one processor goroutine,
// which is the only goroutine touching the book while the engine runs.
type Engine struct {
	book     orderbookv1.Book
	reader   commandv1.Reader
	recorder reportv1.Recorder
	logger   *logger.Logger
	config   *config.Config

	requests chan request
	done     chan struct{}
	doneOnce sync.Once

	mu      sync.RWMutex
	running bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	readBackoff    time.Duration
	validateOnStop bool

	statsMu   sync.RWMutex
	processed int64
	failed    int64
}

// NewEngine creates a new instance of Engine with the provided dependencies.
// reader and recorder may be nil.
func NewEngine(
	book orderbookv1.Book,
	reader commandv1.Reader,
	recorder reportv1.Recorder,
	logger *logger.Logger,
	config *config.Config,
) *Engine {
	return NewEngineWithOptions(book, reader, recorder, logger, config, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options
func NewEngineWithOptions(
	book orderbookv1.Book,
	reader commandv1.Reader,
	recorder reportv1.Recorder,
	logger *logger.Logger,
	config *config.Config,
	options *Options,
) *Engine {
	return &Engine{
		book:     book,
		reader:   reader,
		recorder: recorder,
		logger:   logger,
		config:   config,

		requests: make(chan request, options.QueueSize),
		done:     make(chan struct{}),

		readBackoff:    options.ReadBackoff,
		validateOnStop: options.ValidateOnStop,
	}
}

// Start starts the processor and, when a reader is set, the reader routine.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return nil
	}

	ctx = util.WithInstrument(util.WithRunID(ctx, ""), e.config.Instrument)
	e.ctx, e.cancel = context.WithCancel(ctx)
	e.running = true

	e.wg.Add(1)
	go e.runProcessor()
	if e.reader != nil {
		e.wg.Add(1)
		go e.runReader()
	}

	e.logger.InfoContext(e.ctx, "Engine started", logger.Field{
		Key:   "queue_size",
		Value: cap(e.requests),
	})
	return nil
}

// Stop gracefully shuts down the engine
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}

	// Wait for goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}

	var errs []error
	if e.recorder != nil {
		if err := e.recorder.Flush(); err != nil {
			e.logger.Error(err, logger.Field{Key: "action", Value: "flush_report"})
			errs = append(errs, err)
		}
	}
	if e.validateOnStop {
		if err := e.book.Validate(); err != nil {
			e.logger.Error(err, logger.Field{Key: "action", Value: "validate_book"})
			errs = append(errs, err)
		} else {
			e.logger.Debug("Book validated", logger.Field{Key: "orders", Value: e.book.Len()})
		}
	}

	e.logger.Info("Engine stopped",
		logger.Field{Key: "processed", Value: e.Processed()},
		logger.Field{Key: "failed", Value: e.Failed()},
	)
	return stderrors.Join(errs...)
}

// Submit applies cmd through the processor and returns its report.
func (e *Engine) Submit(ctx context.Context, cmd commandv1.Command) (orderbookv1.Report, error) {
	e.mu.RLock()
	running, engineCtx := e.running, e.ctx
	e.mu.RUnlock()
	if !running {
		return orderbookv1.Report{}, ErrEngineStopped
	}

	req := request{
		id:      ulid.Make().String(),
		command: cmd,
		reply:   make(chan result, 1),
	}

	select {
	case e.requests <- req:
	case <-ctx.Done():
		return orderbookv1.Report{}, ctx.Err()
	case <-engineCtx.Done():
		return orderbookv1.Report{}, ErrEngineStopped
	}

	select {
	case res := <-req.reply:
		return res.report, res.err
	case <-ctx.Done():
		return orderbookv1.Report{}, ctx.Err()
	case <-engineCtx.Done():
		return orderbookv1.Report{}, ErrEngineStopped
	}
}

// Done is closed once every command of the reader has been processed.
// Without a reader it is closed when the processor stops.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Processed returns the number of commands applied without error.
func (e *Engine) Processed() int64 {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()
	return e.processed
}

// Failed returns the number of commands that were rejected or could not be parsed.
func (e *Engine) Failed() int64 {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()
	return e.failed
}

func (e *Engine) runReader() {
	defer e.wg.Done()
	defer func() {
		if err := e.reader.Close(); err != nil {
			e.logger.Error(err, logger.Field{Key: "action", Value: "close_command_reader"})
		}
	}()

	for {
		cmd, err := e.reader.ReadCommand(e.ctx)
		switch {
		case err == nil:
			if !e.enqueue(request{id: ulid.Make().String(), command: cmd}) {
				return
			}
		case stderrors.Is(err, io.EOF):
			e.logger.InfoContext(e.ctx, "Command stream exhausted")
			e.enqueue(request{endOfStream: true})
			return
		case e.ctx.Err() != nil:
			return
		case isParseError(err):
			e.countFailure()
			e.logger.ErrorContext(e.ctx, err, logger.Field{Key: "action", Value: "parse_command"})
		default:
			e.logger.ErrorContext(e.ctx, err, logger.Field{Key: "action", Value: "read_command"})
			select {
			case <-e.ctx.Done():
				return
			case <-time.After(e.readBackoff):
			}
		}
	}
}

func (e *Engine) enqueue(req request) bool {
	select {
	case e.requests <- req:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (e *Engine) runProcessor() {
	defer e.wg.Done()
	defer e.closeDone()

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Command processor shutting down")
			return
		case req := <-e.requests:
			if req.endOfStream {
				e.closeDone()
				continue
			}

			report, err := e.process(req)
			if req.reply != nil {
				req.reply <- result{report: report, err: err}
			}
		}
	}
}

// process applies one command and records its timing.
func (e *Engine) process(req request) (orderbookv1.Report, error) {
	start := time.Now()
	report, err := commandv1.Apply(e.book, req.command)
	elapsed := time.Since(start)

	if err != nil {
		e.countFailure()
		e.logger.WarnContext(e.ctx, "Command rejected",
			logger.Field{Key: "command_id", Value: req.id},
			logger.Field{Key: "command", Value: req.command.String()},
			logger.Field{Key: "line", Value: req.command.Line},
			logger.Field{Key: "code", Value: orderbookv1.CodeOf(err)},
			logger.Field{Key: "error", Value: err.Error()},
		)
	} else {
		e.countSuccess()
		e.logger.DebugContext(e.ctx, "Command processed",
			logger.Field{Key: "command_id", Value: req.id},
			logger.Field{Key: "command", Value: req.command.String()},
			logger.Field{Key: "fills", Value: len(report.Fills)},
			logger.Field{Key: "executed", Value: report.Executed},
			logger.Field{Key: "triggered", Value: report.Triggered},
			logger.Field{Key: "nanoseconds", Value: elapsed.Nanoseconds()},
		)
	}

	if e.recorder != nil {
		if rerr := e.recorder.Record(e.ctx, reportv1.NewEntry(req.command.Type, elapsed, report)); rerr != nil {
			e.logger.ErrorContext(e.ctx, rerr, logger.Field{Key: "action", Value: "record_timing"})
		}
	}
	return report, err
}

func (e *Engine) closeDone() {
	e.doneOnce.Do(func() { close(e.done) })
}

func (e *Engine) countSuccess() {
	e.statsMu.Lock()
	e.processed++
	e.statsMu.Unlock()
}

func (e *Engine) countFailure() {
	e.statsMu.Lock()
	e.failed++
	e.statsMu.Unlock()
}

func isParseError(err error) bool {
	return errors.ErrorCodeEquals(err, errors.MalformedCommand) || errors.ErrorCodeEquals(err, errors.UnknownCommand)
}
