package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/config"
	"github.com/kurumaya/storefront/internal/store/httpserver"
)

func main() {
	cfg, err := config.Load(getEnv("STOREFRONT_CONFIG", "configs/app.yaml"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	srv := httpserver.New(httpserver.Config{
		Address:        cfg.Server.Address,
		CatalogService: buildCatalog(cfg),
		FeaturedCount:  cfg.Site.FeaturedCount,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	log.Printf("storefront listening on %s", cfg.Server.Address)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		cancel()
		stop()
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func buildCatalog(cfg config.Config) catalog.Service {
	if cfg.CMS.Demo {
		log.Printf("demo mode: serving the seeded catalog, no CMS required")
		return catalog.NewStaticService()
	}

	client := &http.Client{Timeout: cfg.CMS.Timeout()}
	svc, err := catalog.NewHTTPService(cfg.CMS.BaseURL, client)
	if err != nil {
		log.Printf("cms client unavailable (%v); falling back to the seeded catalog", err)
		return catalog.NewStaticService()
	}

	log.Printf("cms catalog enabled (base=%s timeout=%s)", cfg.CMS.BaseURL, cfg.CMS.Timeout())
	return svc
}
