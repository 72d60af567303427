package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection  = "users"
	EventsCollection = "events"
	RSVPsCollection  = "rsvps"
)

type MongoRepo struct {
	client *mongo.Client
	dbName string
}

func MongoNewRepo(client *mongo.Client, dbName string) *MongoRepo {
	return &MongoRepo{
		client: client,
		dbName: dbName,
	}
}

func (m *MongoRepo) collection(name string) *mongo.Collection {
	return m.client.Database(m.dbName).Collection(name)
}

// EnsureIndexes creates the unique username index. Registration relies
// on it for the atomic check-then-insert.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %v", err)
	}
	_, err = m.collection(RSVPsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create rsvp event index: %v", err)
	}
	return nil
}

func (m *MongoRepo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoRepo) CreateUser(ctx context.Context, user *User) error {
	_, err := m.collection(UsersCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

func (m *MongoRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := m.collection(UsersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}
	return &user, nil
}

func (m *MongoRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := m.collection(UsersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}
	return &user, nil
}

func (m *MongoRepo) CreateEvent(ctx context.Context, event *Event) error {
	_, err := m.collection(EventsCollection).InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to insert event: %v", err)
	}
	return nil
}

func (m *MongoRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := m.collection(EventsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up event: %v", err)
	}
	return &event, nil
}

func (m *MongoRepo) ListEvents(ctx context.Context, offset, limit int) ([]*Event, int, error) {
	col := m.collection(EventsCollection)

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %v", err)
	}
	defer cursor.Close(ctx)

	events := make([]*Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("failed to decode events: %v", err)
	}
	return events, int(total), nil
}

func (m *MongoRepo) CreateRSVP(ctx context.Context, rsvp *RSVP) error {
	_, err := m.collection(RSVPsCollection).InsertOne(ctx, rsvp)
	if err != nil {
		return fmt.Errorf("failed to insert rsvp: %v", err)
	}
	return nil
}

func (m *MongoRepo) ListRSVPsForEvent(ctx context.Context, eventID uuid.UUID) ([]*RSVP, error) {
	cursor, err := m.collection(RSVPsCollection).Find(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %v", err)
	}
	defer cursor.Close(ctx)

	rsvps := make([]*RSVP, 0)
	if err := cursor.All(ctx, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to decode rsvps: %v", err)
	}
	return rsvps, nil
}
