package providers

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) *ProviderMongoRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

// EnsureIndexes creates the unique provider_id and user_id indexes and the
// search index used by Find.
func (r *ProviderMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: constvars.MongoFieldProviderID, Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexProviderID).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: constvars.MongoFieldUserID, Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexProviderUser).SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: constvars.MongoFieldCategories, Value: 1},
				{Key: constvars.MongoFieldPostalCode, Value: 1},
				{Key: constvars.MongoFieldRating, Value: -1},
			},
			Options: options.Index().SetName(constvars.MongoIndexProviderSkill),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) Insert(ctx context.Context, profile *models.ProviderProfile) (bool, error) {
	_, err := r.Collection.InsertOne(ctx, profile)
	if err == nil {
		return true, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	return false, exceptions.ErrMongoDBInsertDocument(err)
}

func (r *ProviderMongoRepository) FindByID(ctx context.Context, providerID string) (*models.ProviderProfile, error) {
	return r.findOne(ctx, bson.M{constvars.MongoFieldProviderID: providerID})
}

func (r *ProviderMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	return r.findOne(ctx, bson.M{constvars.MongoFieldUserID: userID})
}

func (r *ProviderMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.Collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProviderMongoRepository) Find(ctx context.Context, filter models.ProviderFilter, limit int) ([]models.ProviderProfile, error) {
	query := bson.M{
		constvars.MongoFieldAvailability: bson.M{constvars.MongoOperatorNotEqual: models.ProviderOffline},
	}
	if filter.CategoryID != "" {
		query[constvars.MongoFieldCategories] = filter.CategoryID
	}
	if filter.PostalCode != "" {
		query[constvars.MongoFieldPostalCode] = filter.PostalCode
	}

	opts := options.Find().SetSort(bson.D{
		{Key: constvars.MongoFieldRating, Value: -1},
		{Key: constvars.MongoFieldProviderID, Value: 1},
	})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.ProviderProfile, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *ProviderMongoRepository) Replace(ctx context.Context, profile *models.ProviderProfile) error {
	filter := bson.M{constvars.MongoFieldProviderID: profile.ProviderID}
	_, err := r.Collection.ReplaceOne(ctx, filter, profile)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
