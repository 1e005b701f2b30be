package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/limit-order-book/internal/usecase/generator"
	"github.com/muhammadchandra19/limit-order-book/internal/usecase/orderbook"
	"github.com/muhammadchandra19/limit-order-book/pkg/config"
	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The generator keeps its own book so every cancel and modify it writes
	// refers to an order that is resting when the line is replayed.
	gen := generator.NewGenerator(cfg.GeneratorConfig, orderbook.NewOrderbook(), log)

	if err := writeFile(cfg.InitialOutputFile, func(f *os.File) error {
		return gen.WriteInitialOrders(ctx, f)
	}); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "write_initial_orders"})
		os.Exit(1)
	}

	if err := writeFile(cfg.OutputFile, func(f *os.File) error {
		return gen.WriteOrders(ctx, f, cfg.Orders)
	}); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "write_orders"})
		os.Exit(1)
	}

	log.Info("Order files generated",
		logger.Field{Key: "initial_file", Value: cfg.InitialOutputFile},
		logger.Field{Key: "initial_orders", Value: cfg.InitialOrders},
		logger.Field{Key: "orders_file", Value: cfg.OutputFile},
		logger.Field{Key: "orders", Value: cfg.Orders},
	)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewCodeTracer(errors.OrderWriteError).Wrap(err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return errors.NewCodeTracer(errors.OrderWriteError).Wrap(err)
	}
	return nil
}
