package counselorRepo

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

// MongoCounselorRepo implements CounselorRepository using MongoDB.
type MongoCounselorRepo struct {
	coll *mongo.Collection
}

// NewMongoCounselorRepo creates a new instance of CounselorRepository using MongoDB.
func NewMongoCounselorRepo() CounselorRepository {
	coll := database.Collection("counselors")
	repo := &MongoCounselorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create counselor indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCounselorRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a counselor by ID. Returns (nil, nil) when not found.
func (r *MongoCounselorRepo) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	var c models.Counselor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch counselor with id %s: %w", id, err)
	}
	return &c, nil
}

// GetByUserID retrieves the counselor profile owned by a user. Returns
// (nil, nil) when the user has no profile.
func (r *MongoCounselorRepo) GetByUserID(ctx context.Context, userID string) (*models.Counselor, error) {
	var c models.Counselor
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch counselor for user %s: %w", userID, err)
	}
	return &c, nil
}

// GetAll retrieves all counselor profiles.
func (r *MongoCounselorRepo) GetAll(ctx context.Context) ([]models.Counselor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list counselors: %w", err)
	}
	defer cursor.Close(ctx)

	var counselors []models.Counselor
	if err := cursor.All(ctx, &counselors); err != nil {
		return nil, fmt.Errorf("failed to decode counselors: %w", err)
	}
	return counselors, nil
}

// Create inserts a new counselor document.
func (r *MongoCounselorRepo) Create(ctx context.Context, c *models.Counselor) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create counselor: %w", err)
	}
	return nil
}

func (r *MongoCounselorRepo) setFields(ctx context.Context, id string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update counselor with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("counselor with id %s not found", id)
	}
	return nil
}

// SetAvailability replaces the counselor's weekly availability map.
func (r *MongoCounselorRepo) SetAvailability(ctx context.Context, id string, availability map[string][]string) error {
	return r.setFields(ctx, id, bson.M{"availability": availability})
}

// SetStatus updates the counselor's presence status.
func (r *MongoCounselorRepo) SetStatus(ctx context.Context, id string, status string) error {
	return r.setFields(ctx, id, bson.M{"status": status})
}

// SetLimits updates the weekly session cap and maximum session duration.
func (r *MongoCounselorRepo) SetLimits(ctx context.Context, id string, maxSessions, sessionDuration int) error {
	return r.setFields(ctx, id, bson.M{"maxSessions": maxSessions, "sessionDuration": sessionDuration})
}
