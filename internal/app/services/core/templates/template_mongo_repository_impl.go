package templates

import (
	"context"
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// TemplateMongoRepository reads the assessment-template catalog through a
// Redis read-through cache; templates are admin-curated reference data and
// change rarely.
type TemplateMongoRepository struct {
	Collection *mongo.Collection
	RedisRepo  contracts.RedisRepository
	CacheTTL   time.Duration
	Log        *zap.Logger
}

func NewTemplateMongoRepository(
	db *mongo.Client,
	driverConfig *config.DriverConfig,
	redisRepo contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.TemplateRepository {
	return &TemplateMongoRepository{
		Collection: db.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionTemplates),
		RedisRepo:  redisRepo,
		CacheTTL:   cacheTTL,
		Log:        logger,
	}
}

func (r *TemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*models.AssessmentTemplate, error) {
	cacheKey := fmt.Sprintf(constvars.TemplateCacheKeyFormat, templateID)
	cached, err := r.RedisRepo.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var template models.AssessmentTemplate
		if unmarshalErr := json.Unmarshal([]byte(cached), &template); unmarshalErr == nil {
			return &template, nil
		}
	}

	var template models.AssessmentTemplate
	err = r.Collection.FindOne(ctx, bson.M{"_id": templateID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	if cacheErr := r.RedisRepo.Set(ctx, cacheKey, template, r.CacheTTL); cacheErr != nil {
		r.Log.Warn("templateMongoRepository.FindByID failed to cache template",
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(cacheErr),
		)
	}
	return &template, nil
}

func (r *TemplateMongoRepository) FindAll(ctx context.Context) ([]models.AssessmentTemplate, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var templateList []models.AssessmentTemplate
	if err := cursor.All(ctx, &templateList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templateList, nil
}
