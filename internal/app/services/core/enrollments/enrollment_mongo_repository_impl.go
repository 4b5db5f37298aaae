package enrollments

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

type EnrollmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewEnrollmentMongoRepository(db *mongo.Client, driverConfig *config.DriverConfig) contracts.EnrollmentRepository {
	return &EnrollmentMongoRepository{
		Collection: db.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionEnrollments),
	}
}

func (r *EnrollmentMongoRepository) CreateEnrollments(ctx context.Context, enrollments []models.Enrollment) ([]string, error) {
	documents := make([]interface{}, 0, len(enrollments))
	for i := range enrollments {
		documents = append(documents, enrollments[i])
	}

	if _, err := r.Collection.InsertMany(ctx, documents); err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	enrollmentIDs := make([]string, 0, len(enrollments))
	for i := range enrollments {
		enrollmentIDs = append(enrollmentIDs, enrollments[i].ID)
	}
	return enrollmentIDs, nil
}

func (r *EnrollmentMongoRepository) DeleteByIDs(ctx context.Context, enrollmentIDs []string) error {
	if len(enrollmentIDs) == 0 {
		return nil
	}
	if _, err := r.Collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": enrollmentIDs}}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *EnrollmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Enrollment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var enrollmentList []models.Enrollment
	if err := cursor.All(ctx, &enrollmentList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return enrollmentList, nil
}
