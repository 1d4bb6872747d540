package mongostore

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brainvault/internal/model"
	"brainvault/internal/repository"
)

type contentStore struct {
	collection *mongo.Collection
}

// NewContentStore returns a MongoDB-backed ContentRepository.
func NewContentStore(db *mongo.Database) repository.ContentRepository {
	return &contentStore{collection: db.Collection(contentsCollection)}
}

func (s *contentStore) Create(ctx context.Context, content *model.Content) error {
	stamp(&content.ID, &content.CreatedAt, &content.UpdatedAt)
	if content.Tags == nil {
		content.Tags = []string{}
	}
	_, err := s.collection.InsertOne(ctx, toContentDocument(content))
	return translate(err)
}

func (s *contentStore) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Content, error) {
	var doc contentDocument
	filter := bson.M{"_id": id.String(), "user_id": ownerID.String()}
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toModel()
}

func (s *contentStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, contentType model.ContentType) ([]model.Content, error) {
	filter := bson.M{"user_id": ownerID.String()}
	if contentType != "" {
		filter["type"] = string(contentType)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var docs []contentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}

	contents := make([]model.Content, 0, len(docs))
	for _, doc := range docs {
		c, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		contents = append(contents, *c)
	}
	return contents, nil
}

func (s *contentStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id.String(), "user_id": ownerID.String()})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
