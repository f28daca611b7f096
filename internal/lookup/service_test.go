package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-skill/internal/common/logger"
	"admissions-skill/internal/models"
)

type fakeSearcher struct {
	names []string
	err   error
}

func (f *fakeSearcher) Search(ctx context.Context, rawName string) ([]string, error) {
	return f.names, f.err
}

// fakeStore maps university names to stored items and records requested keys.
type fakeStore struct {
	items       map[string]map[string]types.AttributeValue
	err         error
	requested   []string
	projections []string
}

func (f *fakeStore) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := params.Key[models.KeyAttributeName].(*types.AttributeValueMemberS).Value
	f.requested = append(f.requested, key)
	if params.ProjectionExpression != nil {
		f.projections = append(f.projections, *params.ProjectionExpression)
	}
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func item(name, attr, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.KeyAttributeName: &types.AttributeValueMemberS{Value: name},
		attr:                    &types.AttributeValueMemberS{Value: value},
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		searcher *fakeSearcher
		store    *fakeStore
		attr     models.Attribute
		wantErr  bool
		validate func(t *testing.T, store *fakeStore, result *models.LookupResult)
	}{
		{
			name:     "first stored candidate wins",
			searcher: &fakeSearcher{names: []string{"Brawn College", "Brown University"}},
			store: &fakeStore{items: map[string]map[string]types.AttributeValue{
				"Brown University": item("Brown University", "Tuition", "58,404"),
			}},
			attr: models.AttributeTuition,
			validate: func(t *testing.T, store *fakeStore, result *models.LookupResult) {
				require.NotNil(t, result)
				assert.Equal(t, "Brown University", result.UniversityName)
				assert.Equal(t, "58,404", result.Value)
				assert.Equal(t, []string{"Brawn College", "Brown University"}, store.requested)
			},
		},
		{
			name:     "candidates checked in order and earlier match short-circuits",
			searcher: &fakeSearcher{names: []string{"Reed College", "Reading College"}},
			store: &fakeStore{items: map[string]map[string]types.AttributeValue{
				"Reed College":    item("Reed College", "ApplicationFee", "75"),
				"Reading College": item("Reading College", "ApplicationFee", "80"),
			}},
			attr: models.AttributeApplicationFee,
			validate: func(t *testing.T, store *fakeStore, result *models.LookupResult) {
				require.NotNil(t, result)
				assert.Equal(t, "Reed College", result.UniversityName)
				assert.Equal(t, []string{"Reed College"}, store.requested)
			},
		},
		{
			name:     "record present with blank attribute keeps empty value",
			searcher: &fakeSearcher{names: []string{"Reed College"}},
			store: &fakeStore{items: map[string]map[string]types.AttributeValue{
				"Reed College": {
					models.KeyAttributeName: &types.AttributeValueMemberS{Value: "Reed College"},
				},
			}},
			attr: models.AttributeFinancialAid,
			validate: func(t *testing.T, store *fakeStore, result *models.LookupResult) {
				require.NotNil(t, result)
				assert.Equal(t, "Reed College", result.UniversityName)
				assert.Empty(t, result.Value)
			},
		},
		{
			name:     "numeric attribute read as decimal string",
			searcher: &fakeSearcher{names: []string{"Stanford University"}},
			store: &fakeStore{items: map[string]map[string]types.AttributeValue{
				"Stanford University": {
					models.KeyAttributeName: &types.AttributeValueMemberS{Value: "Stanford University"},
					"AdmissionRate":         &types.AttributeValueMemberN{Value: "4"},
				},
			}},
			attr: models.AttributeAdmissionRate,
			validate: func(t *testing.T, store *fakeStore, result *models.LookupResult) {
				require.NotNil(t, result)
				assert.Equal(t, "4", result.Value)
			},
		},
		{
			name:     "no candidate stored yields empty result",
			searcher: &fakeSearcher{names: []string{"Brawn College"}},
			store:    &fakeStore{items: map[string]map[string]types.AttributeValue{}},
			attr:     models.AttributeTuition,
			validate: func(t *testing.T, store *fakeStore, result *models.LookupResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:     "no search candidates yields empty result",
			searcher: &fakeSearcher{},
			store:    &fakeStore{},
			attr:     models.AttributeTuition,
			validate: func(t *testing.T, store *fakeStore, result *models.LookupResult) {
				assert.Nil(t, result)
				assert.Empty(t, store.requested)
			},
		},
		{
			name:     "search failure propagates",
			searcher: &fakeSearcher{err: errors.New("index unreachable")},
			store:    &fakeStore{},
			attr:     models.AttributeTuition,
			wantErr:  true,
		},
		{
			name:     "store failure propagates",
			searcher: &fakeSearcher{names: []string{"Brown University"}},
			store:    &fakeStore{err: errors.New("throttled")},
			attr:     models.AttributeTuition,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.store, tt.searcher, "Universities", logger.NewNoOpLogger())

			result, err := svc.Lookup(context.Background(), "raw name", tt.attr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, tt.store, result)
		})
	}
}

func TestLookupProjectsRequestedAttribute(t *testing.T) {
	store := &fakeStore{items: map[string]map[string]types.AttributeValue{
		"Brown University": item("Brown University", "Tuition", "58,404"),
	}}
	svc := NewService(store, &fakeSearcher{names: []string{"Brown University"}}, "Universities", logger.NewNoOpLogger())

	_, err := svc.Lookup(context.Background(), "brown", models.AttributeTuition)
	require.NoError(t, err)
	require.Len(t, store.projections, 1)
	assert.Equal(t, "UniversityName, Tuition, ImageLink", store.projections[0])
}
