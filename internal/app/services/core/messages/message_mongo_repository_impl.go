package messages

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) *MessageMongoRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: constvars.MongoFieldRequestID, Value: 1}, {Key: constvars.MongoFieldCreatedAt, Value: 1}},
		Options: options.Index().SetName(constvars.MongoIndexConversation),
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MessageMongoRepository) Insert(ctx context.Context, message *models.Message) error {
	_, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *MessageMongoRepository) FindByRequestID(ctx context.Context, requestID string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{constvars.MongoFieldRequestID: requestID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Message, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *MessageMongoRepository) MarkRead(ctx context.Context, requestID, receiverID string) (int64, error) {
	filter := bson.M{
		constvars.MongoFieldRequestID:  requestID,
		constvars.MongoFieldReceiverID: receiverID,
		constvars.MongoFieldRead:       false,
	}
	result, err := r.Collection.UpdateMany(ctx, filter, bson.M{constvars.MongoOperatorSet: bson.M{constvars.MongoFieldRead: true}})
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}
