package main

import (
	"fmt"
	"os"

	auction "agro-trade/internal/auctionService"
	"agro-trade/internal/config"
	"agro-trade/internal/repository"
	"agro-trade/internal/server"
	"agro-trade/utils"

	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	repo, err := buildCropStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	auctionSvc := auction.NewAuctionService(repo)

	router := server.SetupRouter(auctionSvc)

	utils.Info("Starting crop auction server", map[string]any{
		"addr":    cfg.Server.Addr(),
		"backend": cfg.Storage.Backend,
	})
	if err := router.Run(cfg.Server.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildCropStore selects the storage backend from configuration.
func buildCropStore(cfg *config.Config) (repository.CropStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return repository.NewMemoryRepo(), nil
	case config.BackendFile:
		return repository.NewFileRepo(cfg.Storage.FilePath), nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return repository.NewRedisRepo(client, cfg.Redis.Key, cfg.Redis.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
