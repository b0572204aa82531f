package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/petalwhisper/storefront/internal/cart/app"
	"github.com/petalwhisper/storefront/internal/cart/infra/localstore"
	"github.com/petalwhisper/storefront/pkg/config"
	"github.com/petalwhisper/storefront/pkg/logger"
	"github.com/petalwhisper/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	stores, cleanup, err := buildStores(cfg)
	if err != nil {
		log.Error("store setup failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer cleanup()

	srv, err := newServer(log, stores)
	if err != nil {
		log.Error("server setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("store", cfg.StoreBackend))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

// buildStores picks the cart persistence backend. The returned cleanup
// releases whatever the backend holds open.
func buildStores(cfg config.Config) (storeFactory, func(), error) {
	switch cfg.StoreBackend {
	case "file":
		factory := func(sid string) (app.Store, error) {
			return localstore.NewFile(cfg.StorePath, "cart-"+sid)
		}
		return factory, func() {}, nil

	case "sqlite":
		db, err := localstore.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		factory := func(sid string) (app.Store, error) {
			return db.Store("cart:" + sid), nil
		}
		return factory, func() { _ = db.Close() }, nil

	case "memory":
		var mu sync.Mutex
		sessions := make(map[string]*localstore.Memory)
		factory := func(sid string) (app.Store, error) {
			mu.Lock()
			defer mu.Unlock()
			st, ok := sessions[sid]
			if !ok {
				st = localstore.NewMemory()
				sessions[sid] = st
			}
			return st, nil
		}
		return factory, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
