package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and an optional .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load()

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
// A missing .env file is not an error.
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return env.Parse(cfg)
}

// Config holds the configuration for the order book executables.
type Config struct {
	Instrument      string `env:"INSTRUMENT" envDefault:"LOB"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding     string `env:"LOG_ENCODING" envDefault:"json"`
	PipelineConfig  `envPrefix:"PIPELINE_"`
	GeneratorConfig `envPrefix:"GENERATOR_"`
}

// PipelineConfig holds the configuration for replaying a command file.
type PipelineConfig struct {
	OrdersFile   string `env:"ORDERS_FILE" envDefault:"orders.txt"`
	InitialFile  string `env:"INITIAL_FILE"`
	ReportFile   string `env:"REPORT_FILE" envDefault:"order_processing_times.csv"`
	QueueSize    int    `env:"QUEUE_SIZE" envDefault:"1024"`
	ValidateBook bool   `env:"VALIDATE_BOOK" envDefault:"false"`
}

// GeneratorConfig holds the configuration for the synthetic order stream.
type GeneratorConfig struct {
	OutputFile        string  `env:"OUTPUT_FILE" envDefault:"orders.txt"`
	InitialOutputFile string  `env:"INITIAL_OUTPUT_FILE" envDefault:"initial_orders.txt"`
	InitialOrders     int     `env:"INITIAL_ORDERS" envDefault:"10000"`
	Orders            int     `env:"ORDERS" envDefault:"1000000"`
	CentrePrice       int64   `env:"CENTRE_PRICE" envDefault:"300"`
	PriceStdDev       float64 `env:"PRICE_STDDEV" envDefault:"50"`
	MinLimitPool      int     `env:"MIN_LIMIT_POOL" envDefault:"10000"`
	MinStopPool       int     `env:"MIN_STOP_POOL" envDefault:"500"`
	Seed              uint64  `env:"SEED" envDefault:"0"`
}
