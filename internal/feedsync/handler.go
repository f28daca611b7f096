// Package feedsync mirrors university table change events into the search
// index so name matching stays current.
package feedsync

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	commonerrors "admissions-skill/internal/common/errors"
	"admissions-skill/internal/common/logger"
	"admissions-skill/internal/common/metrics"
	"admissions-skill/internal/models"
)

// Config holds the sync handler settings.
type Config struct {
	Index   string
	Timeout time.Duration
}

// Handler applies change batches to the search index.
type Handler struct {
	config Config
	es     *elasticsearch.Client
	logger logger.Logger
}

func NewHandler(cfg Config, es *elasticsearch.Client, log logger.Logger) *Handler {
	return &Handler{
		config: cfg,
		es:     es,
		logger: log.WithFields(map[string]interface{}{"index": cfg.Index}),
	}
}

// DocumentID derives the search-index document id for a university name. Ids
// must stay stable across inserts and removes of the same name.
func DocumentID(universityName string) string {
	sum := md5.Sum([]byte(universityName))
	return strings.ToUpper(fmt.Sprintf("%x", sum))
}

// Process applies a change batch sequentially and returns a human-readable
// summary. The first failing record aborts the batch; already-applied
// records are not rolled back, and the error's message doubles as the
// summary.
func (h *Handler) Process(ctx context.Context, batch *models.ChangeBatch) (string, error) {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	count := 0
	for _, record := range batch.Records {
		if err := h.apply(ctx, record); err != nil {
			h.logger.WithError(err).Error("change record failed", map[string]interface{}{
				"eventName": record.EventName,
				"key":       record.KeyName(),
				"processed": count,
			})
			metrics.SyncFailures.Inc()
			return err.Error(), err
		}
		count++
	}
	return fmt.Sprintf("%d records processed.", count), nil
}

func (h *Handler) apply(ctx context.Context, record models.ChangeRecord) error {
	name := record.KeyName()
	id := DocumentID(name)

	switch record.EventName {
	case models.EventRemove:
		req := esapi.DeleteRequest{
			Index:      h.config.Index,
			DocumentID: id,
		}
		res, err := req.Do(ctx, h.es)
		if err != nil {
			return commonerrors.NewSyncDeleteFailedError(id, err)
		}
		defer res.Body.Close()
		if res.IsError() {
			h.logger.Warn("index delete returned error status", map[string]interface{}{
				"documentId": id,
				"status":     res.Status(),
			})
		}
		metrics.SyncRecords.WithLabelValues(record.EventName).Inc()

	case models.EventInsert, models.EventModify:
		body, err := json.Marshal(map[string]string{"name": name})
		if err != nil {
			return commonerrors.NewSyncWriteFailedError(id, err)
		}
		req := esapi.IndexRequest{
			Index:      h.config.Index,
			DocumentID: id,
			Body:       strings.NewReader(string(body)),
		}
		res, err := req.Do(ctx, h.es)
		if err != nil {
			return commonerrors.NewSyncWriteFailedError(id, err)
		}
		defer res.Body.Close()
		if res.IsError() {
			h.logger.Warn("index write returned error status", map[string]interface{}{
				"documentId": id,
				"status":     res.Status(),
			})
		}
		metrics.SyncRecords.WithLabelValues(record.EventName).Inc()

	default:
		// Unknown events are skipped but still count toward the summary.
		h.logger.Warn("skipping unrecognized event", map[string]interface{}{
			"eventName": record.EventName,
			"key":       name,
		})
	}
	return nil
}
