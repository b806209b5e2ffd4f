package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// QuoteStateDocument is the MongoDB shape of a persisted quote state.
type QuoteStateDocument struct {
	Key        string                     `bson:"_id"`
	Items      map[string]model.QuoteItem `bson:"items"`
	ClientType string                     `bson:"client_type"`
	ClientName string                     `bson:"client_name"`
	SearchTerm string                     `bson:"search_term"`
	UpdatedAt  time.Time                  `bson:"updated_at"`
}

func toQuoteStateDocument(key string, s model.QuoteState) QuoteStateDocument {
	items := s.Items
	if items == nil {
		items = map[string]model.QuoteItem{}
	}
	return QuoteStateDocument{
		Key:        key,
		Items:      items,
		ClientType: string(s.ClientTier),
		ClientName: s.ClientName,
		SearchTerm: s.SearchTerm,
		UpdatedAt:  time.Now().UTC(),
	}
}

func (d QuoteStateDocument) toModel() model.QuoteState {
	s := model.QuoteState{
		Items:      d.Items,
		ClientTier: model.ClientTier(d.ClientType),
		ClientName: d.ClientName,
		SearchTerm: d.SearchTerm,
	}
	s.Normalize()
	return s
}

// MongoQuoteStateRepository stores one document per state key.
type MongoQuoteStateRepository struct {
	collection *mongo.Collection
}

// NewMongoQuoteStateRepository creates a repository on the quote_states collection.
func NewMongoQuoteStateRepository(db *MongoDB) *MongoQuoteStateRepository {
	return &MongoQuoteStateRepository{collection: db.QuoteStates}
}

// Load returns the state stored under key, or nil when there is none.
func (r *MongoQuoteStateRepository) Load(ctx context.Context, key string) (*model.QuoteState, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": key})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	var doc QuoteStateDocument
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	state := doc.toModel()
	return &state, nil
}

// Save replaces the document for key, inserting it when missing.
func (r *MongoQuoteStateRepository) Save(ctx context.Context, key string, state model.QuoteState) error {
	doc := toQuoteStateDocument(key, state)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}
