package serviceRequests

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceRequestMongoRepository(db *mongo.Client, dbName string) *ServiceRequestMongoRepository {
	return &ServiceRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServiceRequests),
	}
}

func (r *ServiceRequestMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: constvars.MongoFieldRequestID, Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexRequestID).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: constvars.MongoFieldClientID, Value: 1}, {Key: constvars.MongoFieldCreatedAt, Value: -1}},
		},
		{
			Keys: bson.D{{Key: constvars.MongoFieldProviderID, Value: 1}, {Key: constvars.MongoFieldCreatedAt, Value: -1}},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ServiceRequestMongoRepository) Insert(ctx context.Context, request *models.ServiceRequest) error {
	_, err := r.Collection.InsertOne(ctx, request)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ServiceRequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := r.Collection.FindOne(ctx, bson.M{constvars.MongoFieldRequestID: requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (r *ServiceRequestMongoRepository) FindByParticipant(ctx context.Context, userID string) ([]models.ServiceRequest, error) {
	filter := bson.M{
		constvars.MongoOperatorOr: []bson.M{
			{constvars.MongoFieldClientID: userID},
			{constvars.MongoFieldProviderID: userID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.ServiceRequest, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

// UpdateIf is a single FindOneAndUpdate whose filter carries the expected
// revision, status and provider, so any concurrent writer makes it miss.
func (r *ServiceRequestMongoRepository) UpdateIf(ctx context.Context, requestID string, cond models.ServiceRequestCondition, patch models.ServiceRequestPatch) (*models.ServiceRequest, bool, error) {
	filter := bson.M{
		constvars.MongoFieldRequestID: requestID,
		constvars.MongoFieldRevision:  cond.Revision,
		constvars.MongoFieldStatus:    cond.Status,
	}
	if cond.ProviderID == "" {
		filter[constvars.MongoFieldProviderID] = nil
	} else {
		filter[constvars.MongoFieldProviderID] = cond.ProviderID
	}

	set := bson.M{constvars.MongoFieldUpdatedAt: patch.UpdatedAt}
	if patch.Status != nil {
		set[constvars.MongoFieldStatus] = *patch.Status
	}
	if patch.ProviderID != nil {
		set[constvars.MongoFieldProviderID] = *patch.ProviderID
	}
	if patch.PriceAgreed != nil {
		set[constvars.MongoFieldPriceAgreed] = *patch.PriceAgreed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ServiceRequest
	update := bson.M{
		constvars.MongoOperatorSet: set,
		constvars.MongoOperatorInc: bson.M{constvars.MongoFieldRevision: 1},
	}
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, true, nil
}
