package categories

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewCategoryMongoRepository(db *mongo.Client, dbName string) *CategoryMongoRepository {
	return &CategoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCategories),
	}
}

func (r *CategoryMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: constvars.MongoFieldCategoryID, Value: 1}},
		Options: options.Index().SetName(constvars.MongoIndexCategoryID).SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CategoryMongoRepository) FindActive(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCategoryID, Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{constvars.MongoFieldIsActive: true}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Category, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *CategoryMongoRepository) Upsert(ctx context.Context, category *models.Category) error {
	filter := bson.M{constvars.MongoFieldCategoryID: category.CategoryID}
	_, err := r.Collection.ReplaceOne(ctx, filter, category, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
