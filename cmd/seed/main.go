package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"talentboard/internal/app"
	"talentboard/internal/config"
	"talentboard/internal/database/seeder"
	"talentboard/internal/logger"

	"go.uber.org/zap"
)

func main() {
	only := flag.String("collections", "", "comma separated collections to seed (default: all)")
	timeout := flag.Duration("timeout", 30*time.Second, "overall seeding timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	if err := run(cfg, lg, splitNames(*only), *timeout); err != nil {
		lg.Fatal("seeding failed", zap.Error(err))
	}
	_ = lg.Sync()
}

func run(cfg config.Config, lg *zap.Logger, names []string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(context.Background()); err != nil {
			lg.Warn("cleanup error", zap.Error(err))
		}
	}()

	runner := seeder.Runner{Seeders: seeder.Defaults(c.Freelancers, c.Recruiters, names...), Logger: lg}
	return runner.Run(ctx)
}

func splitNames(raw string) []string {
	var names []string
	for _, n := range strings.Split(raw, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
