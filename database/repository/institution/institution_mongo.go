package institutionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quadralink/database"
	"quadralink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInstitutionRepo implements InstitutionRepository using MongoDB.
type MongoInstitutionRepo struct {
	coll *mongo.Collection
}

// NewMongoInstitutionRepo creates a new instance of InstitutionRepository using MongoDB.
func NewMongoInstitutionRepo() InstitutionRepository {
	coll := database.Collection("institutions")
	repo := &MongoInstitutionRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shortcode", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		fmt.Printf("failed to create institution indexes: %v\n", err)
	}
	return repo
}

// GetByShortcode retrieves an institution by shortcode. Returns (nil, nil)
// when not found.
func (r *MongoInstitutionRepo) GetByShortcode(ctx context.Context, shortcode string) (*models.Institution, error) {
	var inst models.Institution
	err := r.coll.FindOne(ctx, bson.M{"shortcode": shortcode}).Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch institution %s: %w", shortcode, err)
	}
	return &inst, nil
}

// GetAll retrieves all institutions.
func (r *MongoInstitutionRepo) GetAll(ctx context.Context) ([]models.Institution, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	defer cursor.Close(ctx)

	var insts []models.Institution
	if err := cursor.All(ctx, &insts); err != nil {
		return nil, fmt.Errorf("failed to decode institutions: %w", err)
	}
	return insts, nil
}

// Create inserts a new institution document.
func (r *MongoInstitutionRepo) Create(ctx context.Context, inst *models.Institution) error {
	now := time.Now()
	inst.CreatedAt = now
	inst.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inst); err != nil {
		return fmt.Errorf("failed to create institution: %w", err)
	}
	return nil
}
