package mongostore

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brainvault/internal/model"
	"brainvault/internal/repository"
)

type shareLinkStore struct {
	collection *mongo.Collection
}

// NewShareLinkStore returns a MongoDB-backed ShareLinkRepository. The unique
// indexes from EnsureIndexes enforce one link per user.
func NewShareLinkStore(db *mongo.Database) repository.ShareLinkRepository {
	return &shareLinkStore{collection: db.Collection(shareLinksCollection)}
}

func (s *shareLinkStore) Create(ctx context.Context, link *model.ShareLink) error {
	stamp(&link.ID, &link.CreatedAt, nil)
	_, err := s.collection.InsertOne(ctx, toShareLinkDocument(link))
	return translate(err)
}

func (s *shareLinkStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ShareLink, error) {
	return s.findOne(ctx, bson.M{"user_id": userID.String()})
}

func (s *shareLinkStore) FindByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	return s.findOne(ctx, bson.M{"hash": hash})
}

func (s *shareLinkStore) HashExists(ctx context.Context, hash string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"hash": hash})
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *shareLinkStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID.String()})
	return translate(err)
}

func (s *shareLinkStore) findOne(ctx context.Context, filter bson.M) (*model.ShareLink, error) {
	var doc shareLinkDocument
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toModel()
}
