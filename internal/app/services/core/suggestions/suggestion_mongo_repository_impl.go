package suggestions

import (
	"context"
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SuggestionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSuggestionMongoRepository(db *mongo.Client, driverConfig *config.DriverConfig) contracts.SuggestionRepository {
	return &SuggestionMongoRepository{
		Collection: db.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionSuggestions),
	}
}

func (r *SuggestionMongoRepository) CreateSuggestion(ctx context.Context, suggestion *models.Suggestion) (string, error) {
	_, err := r.Collection.InsertOne(ctx, suggestion)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return suggestion.ID, nil
}

func (r *SuggestionMongoRepository) FindByID(ctx context.Context, suggestionID string) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.Collection.FindOne(ctx, bson.M{"_id": suggestionID}).Decode(&suggestion)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &suggestion, nil
}

func (r *SuggestionMongoRepository) FindAll(ctx context.Context, filter contracts.SuggestionFilter) ([]models.Suggestion, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize))
		findOptions.SetLimit(int64(filter.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, buildSuggestionFilter(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var suggestionList []models.Suggestion
	if err := cursor.All(ctx, &suggestionList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return suggestionList, nil
}

func (r *SuggestionMongoRepository) Count(ctx context.Context, filter contracts.SuggestionFilter) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, buildSuggestionFilter(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(total), nil
}

func buildSuggestionFilter(filter contracts.SuggestionFilter) bson.M {
	mongoFilter := bson.M{}
	if filter.PatientID != "" {
		mongoFilter["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		mongoFilter["status"] = filter.Status
	}
	return mongoFilter
}

// UpdateIfPending replaces the stored document only while it is still
// PENDING. The filter doubles as an optimistic-concurrency check: when two
// reviews race, the second one matches nothing and reports false.
func (r *SuggestionMongoRepository) UpdateIfPending(ctx context.Context, suggestion *models.Suggestion) (bool, error) {
	filter := bson.M{
		"_id":    suggestion.ID,
		"status": constvars.SuggestionStatusPending,
	}
	result, err := r.Collection.ReplaceOne(ctx, filter, suggestion)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}
