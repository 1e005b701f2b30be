package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/limit-order-book/internal/app/engine"
	commandreader "github.com/muhammadchandra19/limit-order-book/internal/usecase/command-reader"
	"github.com/muhammadchandra19/limit-order-book/internal/usecase/orderbook"
	reportrecorder "github.com/muhammadchandra19/limit-order-book/internal/usecase/report-recorder"
	"github.com/muhammadchandra19/limit-order-book/pkg/config"
	"github.com/muhammadchandra19/limit-order-book/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg = &config.Config{}
	err = config.Load(cfg)
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.LogLevel)),
		logger.WithEncoding(logger.Encoding(cfg.LogEncoding)),
	)
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	options := engine.DefaultEngineOptions()
	options.QueueSize = cfg.QueueSize
	options.ValidateOnStop = cfg.ValidateBook

	ob := orderbook.NewOrderbook()

	// Initial orders seed the book and are not timed.
	if cfg.InitialFile != "" {
		reader, err := commandreader.Open(cfg.InitialFile, log)
		if err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "open_initial_orders"})
			return
		}

		seeder := engine.NewEngineWithOptions(ob, reader, nil, log, cfg, options)
		if !run(ctx, seeder, sigChan, "initial_orders") {
			return
		}
	}

	reader, err := commandreader.Open(cfg.OrdersFile, log)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "open_orders"})
		return
	}

	recorder, err := reportrecorder.Create(cfg.ReportFile, log)
	if err != nil {
		_ = reader.Close()
		log.Error(err, logger.Field{Key: "action", Value: "create_report"})
		return
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "close_report"})
		}
	}()

	eng := engine.NewEngineWithOptions(ob, reader, recorder, log, cfg, options)
	if !run(ctx, eng, sigChan, "orders") {
		return
	}

	log.Info("Order processing complete",
		logger.Field{Key: "orders_resting", Value: ob.Len()},
		logger.Field{Key: "book_digest", Value: ob.Snapshot().Digest()},
		logger.Field{Key: "report_rows", Value: recorder.Rows()},
		logger.Field{Key: "report_file", Value: cfg.ReportFile},
	)
}

// run drives eng until its command stream is exhausted or a signal arrives.
// It returns false when processing was interrupted or failed.
func run(ctx context.Context, eng *engine.Engine, sigChan <-chan os.Signal, stage string) bool {
	if err := eng.Start(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "start_engine"})
		return false
	}

	log.Info("Processing commands", logger.Field{Key: "stage", Value: stage})
	start := time.Now()

	completed := true
	select {
	case <-eng.Done():
	case sig := <-sigChan:
		log.Info("Received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
		completed = false
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := eng.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "stop_engine"})
		completed = false
	}

	log.Info("Stage finished",
		logger.Field{Key: "stage", Value: stage},
		logger.Field{Key: "processed", Value: eng.Processed()},
		logger.Field{Key: "failed", Value: eng.Failed()},
		logger.Field{Key: "elapsed", Value: time.Since(start).String()},
	)
	return completed
}
