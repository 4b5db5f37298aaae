package observations

import (
	"context"
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ObservationMongoRepository struct {
	Collection *mongo.Collection
}

func NewObservationMongoRepository(db *mongo.Client, driverConfig *config.DriverConfig) contracts.ObservationRepository {
	return &ObservationMongoRepository{
		Collection: db.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionObservations),
	}
}

func (r *ObservationMongoRepository) FindByPatientInWindow(ctx context.Context, patientID string, from, to time.Time) ([]models.Observation, error) {
	filter := bson.M{
		"patientId": patientID,
		"recordedAt": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var observations []models.Observation
	if err := cursor.All(ctx, &observations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return observations, nil
}
