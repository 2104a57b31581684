package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"arriendo-compra/config"
	httpLayer "arriendo-compra/http"
	"arriendo-compra/repository"
	"arriendo-compra/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	simulationRepo := repository.NewSimulationRepositoryMemory(cfg.MaxStoredSimulations)

	var cache repository.CacheRepository = repository.NewMockCache()
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPrefix, cfg.CacheTTL)
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Warning: redis at %s unreachable, using in-memory cache: %v", cfg.RedisAddr, err)
		} else {
			cache = redisCache
		}
	}

	scenarioService := service.NewScenarioService(cache)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService)

	sensitivityService := service.NewSensitivityService(simulationRepo, cfg.MaxSimulations)
	simulationHandler := httpLayer.NewSimulationHandler(sensitivityService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.NewRouter(scenarioHandler, simulationHandler, rateLimiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  2 * cfg.ReadTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API corriendo en %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
