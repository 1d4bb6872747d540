package mongostore

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brainvault/internal/model"
	"brainvault/internal/repository"
)

type userStore struct {
	collection *mongo.Collection
}

// NewUserStore returns a MongoDB-backed UserRepository.
func NewUserStore(db *mongo.Database) repository.UserRepository {
	return &userStore{collection: db.Collection(usersCollection)}
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	_, err := s.collection.InsertOne(ctx, toUserDocument(user))
	return translate(err)
}

func (s *userStore) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *userStore) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDocument
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toModel()
}
