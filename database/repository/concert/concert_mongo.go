package concertRepo

import (
	"context"
	"fmt"
	"time"

	"chorus/database"
	"chorus/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConcertRepo implements ConcertRepository using MongoDB.
type MongoConcertRepo struct {
	coll *mongo.Collection
}

// NewMongoConcertRepo creates a new instance of ConcertRepository using MongoDB.
func NewMongoConcertRepo() ConcertRepository {
	coll := database.DB().Collection("concerts")
	repo := &MongoConcertRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConcertRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a concert by its unique ID.
func (r *MongoConcertRepo) GetByID(id string) (*models.Concert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var concert models.Concert
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&concert); err != nil {
		return nil, fmt.Errorf("failed to fetch concert with id %s: %w", id, err)
	}
	return &concert, nil
}

// GetAll retrieves all concert records.
func (r *MongoConcertRepo) GetAll() ([]models.Concert, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve concerts: %w", err)
	}
	defer cursor.Close(ctx)

	var concerts []models.Concert
	for cursor.Next(ctx) {
		var c models.Concert
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode concert: %w", err)
		}
		concerts = append(concerts, c)
	}
	return concerts, nil
}

// Create inserts a new concert document.
func (r *MongoConcertRepo) Create(concert *models.Concert) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, concert)
	if err != nil {
		return fmt.Errorf("failed to create concert: %w", err)
	}
	return nil
}

// Update modifies an existing concert document.
func (r *MongoConcertRepo) Update(concert *models.Concert) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": concert.ID}
	update := bson.M{"$set": concert}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update concert with id %s: %w", concert.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("concert with id %s not found", concert.ID)
	}
	return nil
}

// Delete removes a concert document by its ID.
func (r *MongoConcertRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete concert with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("concert with id %s not found", id)
	}
	return nil
}
