package metrics

import (
	"context"
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MetricMongoRepository serves the metric-definition catalog, cached whole
// like the billing-program catalog.
type MetricMongoRepository struct {
	Collection *mongo.Collection
	RedisRepo  contracts.RedisRepository
	CacheTTL   time.Duration
	Log        *zap.Logger
}

func NewMetricMongoRepository(
	db *mongo.Client,
	driverConfig *config.DriverConfig,
	redisRepo contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.MetricRepository {
	return &MetricMongoRepository{
		Collection: db.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionMetrics),
		RedisRepo:  redisRepo,
		CacheTTL:   cacheTTL,
		Log:        logger,
	}
}

func (r *MetricMongoRepository) FindAll(ctx context.Context) ([]models.MetricDefinition, error) {
	cached, err := r.RedisRepo.Get(ctx, constvars.MetricCatalogCacheKey)
	if err == nil && cached != "" {
		var catalog []models.MetricDefinition
		if unmarshalErr := json.Unmarshal([]byte(cached), &catalog); unmarshalErr == nil {
			return catalog, nil
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "key", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var catalog []models.MetricDefinition
	if err := cursor.All(ctx, &catalog); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	if cacheErr := r.RedisRepo.Set(ctx, constvars.MetricCatalogCacheKey, catalog, r.CacheTTL); cacheErr != nil {
		r.Log.Warn("metricMongoRepository.FindAll failed to cache catalog",
			zap.Error(cacheErr),
		)
	}
	return catalog, nil
}
