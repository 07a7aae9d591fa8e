package bootstrap

import (
	"fmt"

	coreconfig "github.com/pawfund/charitybot/core/config"
	"github.com/pawfund/charitybot/core/logger"
	"github.com/pawfund/charitybot/donation/catalog"
)

// Options control the generic bootstrap pipeline.
type Options struct {
	Config *coreconfig.Config

	LoggerInit  func(*coreconfig.Config) error
	OpenCatalog func(path string) (*catalog.Store, error)
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Catalog *catalog.Store
}

// Run initializes the logger and opens the project catalog.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	open := opts.OpenCatalog
	if open == nil {
		open = catalog.Open
	}
	store, err := open(opts.Config.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: catalog initialization failed: %w", err)
	}

	return &Result{Catalog: store}, nil
}
