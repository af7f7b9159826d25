package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"algoprep/internal/catalog/repository"
	"algoprep/internal/common/cache"
	"algoprep/internal/common/db"
	"algoprep/pkg/utils/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "configs/server.yaml"
	defaultTimeout    = 2 * time.Minute
)

// seedConfig reads the same file as the server but only needs the
// store-facing sections.
type seedConfig struct {
	Logger   logger.Config     `yaml:"logger"`
	Database db.MySQLConfig    `yaml:"database"`
	Redis    cache.RedisConfig `yaml:"redis"`
}

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	timeout := flag.Duration("timeout", defaultTimeout, "Seed run timeout")
	flag.Parse()

	cfg, err := loadSeedConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	mysqlDB, err := db.NewMySQLWithConfig(&cfg.Database)
	if err != nil {
		logger.Error(context.Background(), "init database failed", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		_ = mysqlDB.Close()
	}()

	redisCache, err := cache.NewRedisCacheWithConfig(&cfg.Redis)
	if err != nil {
		logger.Error(context.Background(), "init redis failed", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		_ = redisCache.Close()
	}()

	problemRepo := repository.NewProblemRepository(mysqlDB, redisCache)
	sheetRepo := repository.NewSheetRepository(mysqlDB, redisCache)
	seeder := repository.NewSeeder(mysqlDB, problemRepo, sheetRepo, redisCache)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := seeder.Run(ctx); err != nil {
		logger.Error(ctx, "seed failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info(ctx, "seed completed")
}

func loadSeedConfig(path string) (*seedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file failed: %w", err)
	}
	var cfg seedConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file failed: %w", err)
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	return &cfg, nil
}
