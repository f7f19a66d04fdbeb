package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/therapprove/provider-portal/backend/internal/config"
	"github.com/therapprove/provider-portal/backend/internal/repository"
	"github.com/therapprove/provider-portal/backend/internal/seed"
)

func main() {
	var sessions int
	var referrals int

	flag.IntVar(&sessions, "sessions", -1, "number of random availability sessions to seed (default from config)")
	flag.IntVar(&referrals, "referrals", -1, "number of random referrals to seed (default from config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if sessions < 0 {
		sessions = cfg.Seed.Sessions
	}
	if referrals < 0 {
		referrals = cfg.Seed.Referrals
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		return
	}

	store := repository.NewRedisStore(cfg, rdb, logger)

	seed.SeedDemoData(store, sessions, referrals)
}
