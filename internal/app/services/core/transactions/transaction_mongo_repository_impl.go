package transactions

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) *TransactionMongoRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPaymentTransactions),
	}
}

// EnsureIndexes creates the unique session index and the partial index that
// allows a single pending transaction per request.
func (r *TransactionMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: constvars.MongoFieldSessionID, Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexSessionID).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: constvars.MongoFieldRequestID, Value: 1}},
			Options: options.Index().
				SetName(constvars.MongoIndexPendingPerReq).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{constvars.MongoFieldStatus: models.TransactionStatusPending}),
		},
		{
			Keys: bson.D{{Key: constvars.MongoFieldStatus, Value: 1}, {Key: constvars.MongoFieldCreatedAt, Value: 1}},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TransactionMongoRepository) Insert(ctx context.Context, transaction *models.PaymentTransaction) (*models.PaymentTransaction, bool, error) {
	_, err := r.Collection.InsertOne(ctx, transaction)
	if err == nil {
		return transaction, true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return nil, false, exceptions.ErrMongoDBInsertDocument(err)
	}

	existing, findErr := r.FindPendingByRequestID(ctx, transaction.RequestID)
	if findErr != nil {
		return nil, false, findErr
	}
	if existing == nil {
		return nil, false, exceptions.ErrMongoDBInsertDocument(err)
	}
	return existing, false, nil
}

func (r *TransactionMongoRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	return r.findOne(ctx, bson.M{constvars.MongoFieldSessionID: sessionID})
}

func (r *TransactionMongoRepository) FindPendingByRequestID(ctx context.Context, requestID string) (*models.PaymentTransaction, error) {
	return r.findOne(ctx, bson.M{
		constvars.MongoFieldRequestID: requestID,
		constvars.MongoFieldStatus:    models.TransactionStatusPending,
	})
}

func (r *TransactionMongoRepository) FindPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]models.PaymentTransaction, error) {
	filter := bson.M{
		constvars.MongoFieldStatus:    models.TransactionStatusPending,
		constvars.MongoFieldCreatedAt: bson.M{constvars.MongoOperatorLessThan: before},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.PaymentTransaction, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *TransactionMongoRepository) UpdateStatusIf(ctx context.Context, sessionID string, from, to models.TransactionStatus, updatedAt time.Time) (*models.PaymentTransaction, bool, error) {
	filter := bson.M{
		constvars.MongoFieldSessionID: sessionID,
		constvars.MongoFieldStatus:    from,
	}
	update := bson.M{constvars.MongoOperatorSet: bson.M{
		constvars.MongoFieldStatus:    to,
		constvars.MongoFieldUpdatedAt: updatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.PaymentTransaction
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, true, nil
}

func (r *TransactionMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.PaymentTransaction, error) {
	var transaction models.PaymentTransaction
	err := r.Collection.FindOne(ctx, filter).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}
