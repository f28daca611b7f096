// cmd/skill-server/main.go
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

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"admissions-skill/internal/common/config"
	"admissions-skill/internal/common/database"
	commonerrors "admissions-skill/internal/common/errors"
	"admissions-skill/internal/common/logger"
	"admissions-skill/internal/common/observability"
	"admissions-skill/internal/common/validation"
	"admissions-skill/internal/lookup"
	"admissions-skill/internal/models"
	"admissions-skill/internal/search"
	"admissions-skill/internal/skill"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting skill server...")

	obs := observability.New("skill-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init DynamoDB with retry ---
	var ddb *database.DynamoDBClient
	err = retryWithBackoff(func() error {
		var err error
		ddb, err = database.NewDynamoDB(ctx, cfg.Database.DynamoDB)
		return err
	}, 5, 2*time.Second, zapLog, "DynamoDB client initialization")
	if err != nil {
		zapLog.Fatal("dynamodb failed after retries", zap.Error(err))
	}
	zapLog.Info("DynamoDB client initialized",
		zap.String("table", cfg.Database.DynamoDB.TableName))

	// --- Init Elasticsearch ---
	// Missing address or credentials is not a boot failure; signed calls
	// surface it when the first lookup runs.
	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		zapLog.Fatal("elasticsearch client initialization failed", zap.Error(err))
	}
	if cfg.Database.Elasticsearch.Address != "" {
		if err := esClient.Ping(); err != nil {
			zapLog.Warn("elasticsearch not reachable at startup", zap.Error(err))
		}
	} else {
		zapLog.Warn("elasticsearch address not configured; lookups will fail until it is set")
	}

	searcher := search.NewClient(esClient.Client, cfg.Database.Elasticsearch.Index, log)
	lookupSvc := lookup.NewService(ddb.Client, searcher, cfg.Database.DynamoDB.TableName, log)
	router := skill.NewRouter(lookupSvc, cfg.Skill.DefaultLocale, log)

	lookupTimeout := config.GetDuration(cfg.Skill.LookupTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/skill", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		start := time.Now()
		turnID := uuid.NewString()
		turnLog := log.WithFields(map[string]interface{}{"turnId": turnID})

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read failed", http.StatusBadRequest)
			return
		}

		result, err := validation.ValidateEnvelope(body)
		if err != nil || !result.Valid {
			if err == nil {
				turnLog.WithError(commonerrors.NewEnvelopeInvalidError(fmt.Sprintf("%v", result.Errors))).Warn(
					"invalid request envelope", nil)
			}
			obs.RecordTurnProcessed(r.Context(), "invalid")
			http.Error(w, "invalid request envelope", http.StatusBadRequest)
			return
		}

		var env models.RequestEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			http.Error(w, "invalid request envelope", http.StatusBadRequest)
			return
		}

		turnCtx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
		defer cancel()

		resp := router.HandleRequest(turnCtx, &env)
		if resp == nil {
			obs.RecordTurnProcessed(r.Context(), "failed")
			obs.RecordTurnDuration(r.Context(), time.Since(start), "failed")
			http.Error(w, "turn failed", http.StatusInternalServerError)
			return
		}

		obs.RecordTurnProcessed(r.Context(), "ok")
		obs.RecordTurnDuration(r.Context(), time.Since(start), "ok")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			turnLog.WithError(err).Error("response encode failed", nil)
		}
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
		zapLog.Info("Skill server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down server", zap.Error(err))
	}

	zapLog.Info("Skill server stopped gracefully")
}
