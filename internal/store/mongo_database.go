package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared with the shortener service.
const (
	usersCollection       = "users"
	resetTokensCollection = "resetTokens"
	urlsCollection        = "urls"
)

// MongoDB wraps a connected client and the database the repositories use.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to cfg.DSN with retries, verifies the
// connection with a ping, and creates the unique indexes on users.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	err = withRetry(ctx, cfg.ConnectRetries, alwaysRetry, func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.Name).Msg("connected to mongo successfully")

	db := newMongoDB(client.Database(cfg.Name), log)
	if err = db.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return db, nil
}

func newMongoDB(database *mongo.Database, log *logger.Logger) *MongoDB {
	return &MongoDB{
		client:   database.Client(),
		database: database,
		logger:   log,
	}
}

// EnsureIndexes creates the unique name and email indexes that make
// concurrent signups with the same credentials fail atomically, and the
// lookup indexes used by reset tokens and statistics.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Msg("error creating user indexes")
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	_, err = m.database.Collection(resetTokensCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Msg("error creating reset token index")
		return fmt.Errorf("error creating reset token index: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// duplicateKeyError maps a Mongo E11000 error to the violated index.
// The server names the index in the message ("index: email_1 dup key").
func duplicateKeyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "email_1"):
		return ErrEmailAlreadyExists
	case strings.Contains(msg, "name_1"):
		return ErrNameAlreadyExists
	default:
		return ErrConflict
	}
}
