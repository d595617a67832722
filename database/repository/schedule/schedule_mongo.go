package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"mealroom/database"
	"mealroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new ScheduleRepository backed by MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database("mealroom").Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create schedule indexes: %v\n", err)
	}
	return repo
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "weekStart", Value: 1}, {Key: "roomCode", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) GetWeek(ctx context.Context, weekStart, roomCode string) (*models.ScheduleRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"weekStart": weekStart, "roomCode": roomCode}
	var record models.ScheduleRecord
	err := r.coll.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule %s/%s: %w", roomCode, weekStart, err)
	}
	return &record, nil
}

func (r *MongoScheduleRepo) UpsertWeek(ctx context.Context, record *models.ScheduleRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	record.UpdatedAt = time.Now().UTC()
	filter := bson.M{"weekStart": record.WeekStart, "roomCode": record.RoomCode}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, record, opts); err != nil {
		return fmt.Errorf("error upserting schedule %s/%s: %w", record.RoomCode, record.WeekStart, err)
	}
	return nil
}
