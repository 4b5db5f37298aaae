package programs

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

// ProgramMongoRepository serves the billing-program catalog. The catalog is
// small, externally curated and read on every matching request, so FindAll
// goes through a Redis read-through cache keyed on the whole catalog.
type ProgramMongoRepository struct {
	Collection *mongo.Collection
	RedisRepo  contracts.RedisRepository
	CacheTTL   time.Duration
	Log        *zap.Logger
}

func NewProgramMongoRepository(
	db *mongo.Client,
	driverConfig *config.DriverConfig,
	redisRepo contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.ProgramRepository {
	return &ProgramMongoRepository{
		Collection: db.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionPrograms),
		RedisRepo:  redisRepo,
		CacheTTL:   cacheTTL,
		Log:        logger,
	}
}

func (r *ProgramMongoRepository) FindAll(ctx context.Context) ([]models.BillingProgramDefinition, error) {
	cached, err := r.RedisRepo.Get(ctx, constvars.ProgramCatalogCacheKey)
	if err == nil && cached != "" {
		var catalog []models.BillingProgramDefinition
		if unmarshalErr := json.Unmarshal([]byte(cached), &catalog); unmarshalErr == nil {
			return catalog, nil
		}
	}

	// Declaration order is the matcher's tie-breaker, so the sort matters.
	findOptions := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var catalog []models.BillingProgramDefinition
	if err := cursor.All(ctx, &catalog); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	if cacheErr := r.RedisRepo.Set(ctx, constvars.ProgramCatalogCacheKey, catalog, r.CacheTTL); cacheErr != nil {
		r.Log.Warn("programMongoRepository.FindAll failed to cache catalog",
			zap.Error(cacheErr),
		)
	}
	return catalog, nil
}

func (r *ProgramMongoRepository) FindByProgramType(ctx context.Context, programType string) (*models.BillingProgramDefinition, error) {
	catalog, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ProgramType == programType {
			return &catalog[i], nil
		}
	}
	return nil, nil
}
