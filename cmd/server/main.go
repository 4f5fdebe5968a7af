package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cubedrafter/draft-backend/internal/cards"
	"github.com/cubedrafter/draft-backend/internal/httpapi"
	"github.com/cubedrafter/draft-backend/internal/hub"
	"github.com/cubedrafter/draft-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st store.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		gs, err := store.OpenPostgres(dsn)
		if err != nil {
			logger.Fatal("open postgres", zap.Error(err))
		}
		st = gs
	} else {
		logger.Warn("DATABASE_URL not set, drafts will not survive restarts")
		st = store.NewMemory()
	}

	cubeURL := os.Getenv("CUBE_API_URL")
	if cubeURL == "" {
		cubeURL = "https://cubecobra.com"
	}

	h := hub.NewHub(ctx, st, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, cards.NewClient(cubeURL))

	addr := os.Getenv("DRAFT_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: handler}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
