// Package search queries the university name index for candidate canonical
// names matching a raw, possibly misspelled spoken name.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	commonerrors "admissions-skill/internal/common/errors"
	"admissions-skill/internal/common/logger"
)

// Client issues match queries against the name index.
type Client struct {
	es     *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewClient(es *elasticsearch.Client, index string, log logger.Logger) *Client {
	return &Client{
		es:     es,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"index": index}),
	}
}

// Search returns candidate canonical names ranked by match quality. No hits,
// or a response whose field shape doesn't match, yields an empty slice with
// no error; transport and query failures propagate.
func (c *Client) Search(ctx context.Context, rawName string) ([]string, error) {
	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": rawName,
			},
		},
	}
	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{c.index},
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return nil, commonerrors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, commonerrors.NewSearchQueryFailedError(fmt.Errorf("search query failed: %s", res.Status()))
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, commonerrors.NewSearchQueryFailedError(err)
	}

	names := extractNames(r)
	c.logger.Debug("search candidates", map[string]interface{}{
		"rawName":    rawName,
		"candidates": len(names),
	})
	return names, nil
}

// extractNames pulls hit source names out of a search response. Any shape
// mismatch is treated as zero results, not an error.
func extractNames(r map[string]interface{}) []string {
	hits, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil
	}
	rawHits, ok := hits["hits"].([]interface{})
	if !ok {
		return nil
	}

	names := make([]string, 0, len(rawHits))
	for _, h := range rawHits {
		hit, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hit["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		if name, ok := source["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}
