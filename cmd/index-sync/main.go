// cmd/index-sync/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"admissions-skill/internal/common/config"
	"admissions-skill/internal/common/database"
	"admissions-skill/internal/common/logger"
	"admissions-skill/internal/feedsync"
	"admissions-skill/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting index sync...")

	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		zapLog.Fatal("elasticsearch client initialization failed", zap.Error(err))
	}
	if cfg.Database.Elasticsearch.Address != "" {
		if err := esClient.Ping(); err != nil {
			zapLog.Warn("elasticsearch not reachable at startup", zap.Error(err))
		}
	} else {
		zapLog.Warn("elasticsearch address not configured; sync calls will fail until it is set")
	}

	handler := feedsync.NewHandler(feedsync.Config{
		Index:   cfg.Database.Elasticsearch.Index,
		Timeout: config.GetDuration(cfg.Sync.Timeout),
	}, esClient.Client, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/sync", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read failed", http.StatusBadRequest)
			return
		}

		var batch models.ChangeBatch
		if err := json.Unmarshal(body, &batch); err != nil {
			http.Error(w, "invalid change batch", http.StatusBadRequest)
			return
		}

		// The summary string is the invocation result either way; a
		// failed batch reports the error message with a 200, matching
		// the function-style contract.
		summary, err := handler.Process(r.Context(), &batch)
		if err != nil {
			log.WithError(err).Error("batch failed", map[string]interface{}{
				"records": len(batch.Records),
			})
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, summary)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("Index sync listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down server", zap.Error(err))
	}

	zapLog.Info("Index sync stopped gracefully")
}
