package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quadralink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOverlapping returns a non-cancelled booking for the counselor whose
// interval overlaps [start, end), or nil when the slot is free. Half-open
// semantics: intervals [a,b) and [c,d) overlap iff a < d and c < b, so a
// booking ending exactly when another starts does not conflict.
func (r *MongoBookingRepo) FindOverlapping(ctx context.Context, councillorID string, start, end time.Time, excludeID string) (*models.Booking, error) {
	filter := bson.M{
		"councillorId": councillorID,
		"status":       bson.M{"$ne": models.BookingCancelled},
		"startTime":    bson.M{"$lt": end},
		"endTime":      bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	var b models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	return &b, nil
}

// CountInWeek counts non-cancelled bookings whose startTime falls within the
// inclusive [weekStart, weekEnd] window.
func (r *MongoBookingRepo) CountInWeek(ctx context.Context, councillorID string, weekStart, weekEnd time.Time) (int64, error) {
	filter := bson.M{
		"councillorId": councillorID,
		"status":       bson.M{"$ne": models.BookingCancelled},
		"startTime":    bson.M{"$gte": weekStart, "$lte": weekEnd},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count weekly bookings: %w", err)
	}
	return count, nil
}

// ListByCounselor returns a page of non-cancelled bookings ordered by
// startTime ascending, plus the total non-cancelled count.
func (r *MongoBookingRepo) ListByCounselor(ctx context.Context, councillorID string, offset, limit int64) ([]models.Booking, int64, error) {
	filter := bson.M{
		"councillorId": councillorID,
		"status":       bson.M{"$ne": models.BookingCancelled},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return bookings, total, nil
}
