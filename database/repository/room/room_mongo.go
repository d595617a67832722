package roomRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new RoomRepository backed by MongoDB.
func NewMongoRoomRepo() RoomRepository {
	coll := database.MongoClient.Database("mealroom").Collection("rooms")
	repo := &MongoRoomRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create room indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes enforces code uniqueness at the storage layer. The bounded
// retry loop in the room service depends on this constraint.
func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrCodeTaken, room.Code)
		}
		return fmt.Errorf("error creating room %s: %w", room.Code, err)
	}
	return nil
}

func (r *MongoRoomRepo) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", code, err)
	}
	return &room, nil
}
