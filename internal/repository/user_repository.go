package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "userhub/internal/errors"
	"userhub/internal/model"
)

// UserUpdate carries the fields of a partial user update. Empty fields are
// left untouched. PasswordHash must already be hashed by the caller.
type UserUpdate struct {
	Name         string
	Email        string
	PasswordHash string
}

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDAndUpdate(ctx context.Context, id string, update UserUpdate) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(model.CollectionName)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDAndUpdate(ctx context.Context, id string, update UserUpdate) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidation("invalid user id")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Email != "" {
		set["email"] = update.Email
	}
	if update.PasswordHash != "" {
		set["password"] = update.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user model.User
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
