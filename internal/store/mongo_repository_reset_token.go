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
)

type mongoResetTokenRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoResetTokenRepository constructs a [ResetTokenRepository] over the
// "resetTokens" collection.
func NewMongoResetTokenRepository(db *MongoDB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating mongo reset token repository")
	return &mongoResetTokenRepository{
		collection: db.database.Collection(resetTokensCollection),
		logger:     logger,
	}
}

func (r *mongoResetTokenRepository) SaveResetToken(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	userID, err := primitive.ObjectIDFromHex(token.UserID)
	if err != nil {
		return fmt.Errorf("%w: malformed user id %q", ErrUserNotFound, token.UserID)
	}

	doc := resetTokenDocument{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}
	if _, err = r.collection.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "*mongoResetTokenRepository.SaveResetToken").Str("user_id", token.UserID).Msg("error saving reset token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoResetTokenRepository) FindResetToken(ctx context.Context, token string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	var doc resetTokenDocument
	if err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*mongoResetTokenRepository.FindResetToken").Msg("error finding reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoResetTokenRepository) DeleteResetToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.collection.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		log.Err(err).Str("func", "*mongoResetTokenRepository.DeleteResetToken").Msg("error deleting reset token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoResetTokenRepository) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		log.Err(err).Str("func", "*mongoResetTokenRepository.DeleteExpiredResetTokens").Msg("error deleting expired reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.DeletedCount, nil
}
