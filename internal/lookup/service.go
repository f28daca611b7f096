// Package lookup resolves a spoken university name to a stored attribute
// value, using the search index to correct spelling before hitting the table.
package lookup

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	commonerrors "admissions-skill/internal/common/errors"
	"admissions-skill/internal/common/logger"
	"admissions-skill/internal/common/metrics"
	"admissions-skill/internal/models"
)

// StoreClient is the subset of the DynamoDB API the service needs.
type StoreClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Searcher supplies candidate canonical names for a raw spoken name.
type Searcher interface {
	Search(ctx context.Context, rawName string) ([]string, error)
}

type Service struct {
	store    StoreClient
	searcher Searcher
	table    string
	logger   logger.Logger
}

func NewService(store StoreClient, searcher Searcher, table string, log logger.Logger) *Service {
	return &Service{
		store:    store,
		searcher: searcher,
		table:    table,
		logger:   log,
	}
}

// Lookup fetches the requested attribute for the first search candidate that
// exists in the table. It returns (nil, nil) when no candidate matches a
// stored record.
func (s *Service) Lookup(ctx context.Context, rawName string, attr models.Attribute) (*models.LookupResult, error) {
	start := time.Now()
	defer func() {
		metrics.LookupDuration.WithLabelValues(string(attr)).Observe(time.Since(start).Seconds())
	}()

	candidates, err := s.searcher.Search(ctx, rawName)
	if err != nil {
		metrics.LookupRequests.WithLabelValues(string(attr), "error").Inc()
		return nil, err
	}

	for _, name := range candidates {
		item, err := s.getItem(ctx, name, attr)
		if err != nil {
			metrics.LookupRequests.WithLabelValues(string(attr), "error").Inc()
			return nil, err
		}
		if item == nil {
			continue
		}

		result := &models.LookupResult{
			UniversityName: name,
			Value:          stringAttr(item[string(attr)]),
			ImageLink:      stringAttr(item[models.ImageAttributeName]),
		}
		s.logger.Debug("lookup matched", map[string]interface{}{
			"rawName":   rawName,
			"matched":   name,
			"attribute": string(attr),
		})
		metrics.LookupRequests.WithLabelValues(string(attr), "found").Inc()
		return result, nil
	}

	s.logger.Info("no stored record for any candidate", map[string]interface{}{
		"rawName":    rawName,
		"candidates": len(candidates),
	})
	metrics.LookupRequests.WithLabelValues(string(attr), "not_found").Inc()
	return nil, nil
}

func (s *Service) getItem(ctx context.Context, name string, attr models.Attribute) (map[string]types.AttributeValue, error) {
	projection := fmt.Sprintf("%s, %s, %s", models.KeyAttributeName, string(attr), models.ImageAttributeName)

	out, err := s.store.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			models.KeyAttributeName: &types.AttributeValueMemberS{Value: name},
		},
		ProjectionExpression: aws.String(projection),
	})
	if err != nil {
		return nil, commonerrors.NewStoreGetFailedError(name, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// stringAttr extracts a string from a DynamoDB attribute value. Numbers come
// back as their decimal string form; anything else is treated as absent.
func stringAttr(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	default:
		return ""
	}
}
