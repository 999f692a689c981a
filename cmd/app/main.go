package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"social-service/configs"
	"social-service/internal/follower"
	"social-service/internal/migrate"
	"social-service/internal/observability"
	"social-service/internal/post"
	"social-service/internal/user"
	"social-service/pkg/di"
	"social-service/pkg/middleware"
)

func App(cfg *configs.Config, container *di.Container) http.Handler {
	router := http.NewServeMux()

	user.NewHandler(router, container.UserService)
	post.NewHandler(router, container.PostService)
	follower.NewHandler(router, container.FollowerService)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	stack := middleware.Chain(
		middleware.CORS,
		middleware.Logging,
		observability.Metrics,
	)
	return stack(router)
}

func main() {
	ctx := context.Background()

	shutdownTracing := observability.InitTracing(ctx, "social-service")
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdownTracing(c)
	}()

	cfg := configs.LoadConfig()
	container := di.BuildContainer(cfg)
	defer container.Producer.Close()

	if cfg.AutoMigrate {
		if err := migrate.AutoMigrateAll(container.DB); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	server := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(App(cfg, container), "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("social-service listening on %s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down social-service...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
