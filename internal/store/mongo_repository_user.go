package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUserRepository is the MongoDB-backed implementation of [UserRepository].
// Uniqueness of name and email relies on the indexes created by
// [MongoDB.EnsureIndexes].
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over the "users"
// collection.
func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: db.database.Collection(usersCollection),
		logger:     logger,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, duplicateKeyError(err)
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

// FindUserByID treats a malformed ObjectID as a missing user.
func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc userDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*mongoUserRepository.findOne").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}

	return users, nil
}

// UpdateUser applies the non-nil fields with $set. A malformed id matches
// nothing.
func (r *mongoUserRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	set := userUpdateDocument(update)
	if len(set) == 0 {
		return models.UpdateResult{}, ErrEmptyUpdate
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{Acknowledged: true}, nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.UpdateResult{}, duplicateKeyError(err)
		}
		log.Err(err).Str("func", "*mongoUserRepository.UpdateUser").Str("user_id", id).Msg("error updating user")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (r *mongoUserRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteUser").Str("user_id", id).Msg("error deleting user")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func userUpdateDocument(update models.UserUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	return set
}
