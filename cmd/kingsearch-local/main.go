package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"kingsearch/internal/engine"
	httpserver "kingsearch/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	depth := flag.Int("depth", engine.DefaultDepth, "default search depth (ply)")
	noMoves := flag.String("no-moves", "static", "score for a side without moves: static, stalemate or loss")
	flag.Parse()

	cfg := engine.SearchConfig{
		Depth:   *depth,
		NoMoves: engine.ParseNoMovesRule(*noMoves),
	}
	h := httpserver.NewHandler(cfg)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s (depth %d, no-moves %s)", *addr, cfg.Depth, cfg.NoMoves)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
