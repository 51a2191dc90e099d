package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoURLRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoURLRepository constructs a read-only [URLRepository] over the
// shortener's "urls" collection.
func NewMongoURLRepository(db *MongoDB, logger *logger.Logger) URLRepository {
	return &mongoURLRepository{
		collection: db.database.Collection(urlsCollection),
		logger:     logger,
	}
}

func (r *mongoURLRepository) CountURLsByUser(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := r.collection.CountDocuments(ctx, urlOwnerFilter(userID))
	if err != nil {
		log.Err(err).Str("func", "*mongoURLRepository.CountURLsByUser").Str("user_id", userID).Msg("error counting urls")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *mongoURLRepository) RecentURLsByUser(ctx context.Context, userID string, limit int) ([]models.ShortURL, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, urlOwnerFilter(userID), opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoURLRepository.RecentURLsByUser").Str("user_id", userID).Msg("error finding urls")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []urlDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoURLRepository.RecentURLsByUser").Msg("error decoding urls")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	urls := make([]models.ShortURL, 0, len(docs))
	for _, doc := range docs {
		urls = append(urls, doc.toModel())
	}

	return urls, nil
}

// urlOwnerFilter matches urls whose userId is the session id string, as the
// shortener stores it, or the equivalent ObjectID.
func urlOwnerFilter(userID string) bson.M {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return bson.M{"userId": userID}
	}

	return bson.M{"userId": bson.M{"$in": bson.A{userID, oid}}}
}
