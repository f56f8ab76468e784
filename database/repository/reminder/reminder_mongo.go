package reminderRepo

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

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo creates a new instance of ReminderRepository using MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	coll := database.DB().Collection("reminders")
	repo := &MongoReminderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReminderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "eventDate", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a reminder by its unique ID.
func (r *MongoReminderRepo) GetByID(id string) (*models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var reminder models.Reminder
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reminder); err != nil {
		return nil, fmt.Errorf("failed to fetch reminder with id %s: %w", id, err)
	}
	return &reminder, nil
}

// GetActive retrieves all active reminders, newest event first.
func (r *MongoReminderRepo) GetActive() ([]models.Reminder, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "eventDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	for cursor.Next(ctx) {
		var rem models.Reminder
		if err := cursor.Decode(&rem); err != nil {
			return nil, fmt.Errorf("failed to decode reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, nil
}

// Create inserts a new reminder document.
func (r *MongoReminderRepo) Create(reminder *models.Reminder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, reminder)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// Update modifies an existing reminder document.
func (r *MongoReminderRepo) Update(reminder *models.Reminder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	reminder.UpdatedAt = time.Now()
	filter := bson.M{"id": reminder.ID}
	update := bson.M{"$set": reminder}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reminder with id %s: %w", reminder.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder with id %s not found", reminder.ID)
	}
	return nil
}

// Deactivate marks a reminder inactive without deleting it.
func (r *MongoReminderRepo) Deactivate(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate reminder with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	return nil
}
