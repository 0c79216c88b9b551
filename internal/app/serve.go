package app

import (
	"context"
	"time"

	"github.com/guttosm/inventory-optimizer/config"
)

// writeTimeoutSlack is added on top of the longest request budget.
const writeTimeoutSlack = 15 * time.Second

// Serve wires the application from cfg and blocks until the process is
// signalled, then releases its resources.
func Serve(cfg config.Config) error {
	application := InitializeApp(cfg)

	server := NewServer(application.Router, cfg.Server.Port, WithWriteTimeout(writeTimeout(cfg)))
	err := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	application.Close(ctx)

	return err
}

func writeTimeout(cfg config.Config) time.Duration {
	budget := max(cfg.Server.RequestTimeout, cfg.Optimizer.SolveTimeout)
	return budget + writeTimeoutSlack
}
