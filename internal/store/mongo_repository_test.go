package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNamespace = "shortener.users"

func newMockMongo(mt *mtest.T) *MongoDB {
	return newMongoDB(mt.DB, logger.Nop())
}

func userDoc(id primitive.ObjectID, name, email string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "phone", Value: "555"},
		{Key: "password", Value: "hash"},
		{Key: "createdAt", Value: createdAt},
	}
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ctx := context.Background()

	mt.Run("create success", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.CreateUser(ctx, models.User{Name: "bob", Email: "bob@example.com", Password: "hash"})
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(created.ID)
		assert.NoError(mt, err)
		assert.Equal(mt, "bob", created.Name)
		assert.False(mt, created.CreatedAt.IsZero())
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: `E11000 duplicate key error collection: shortener.users index: email_1 dup key: { email: "bob@example.com" }`,
		}))

		_, err := repo.CreateUser(ctx, models.User{Name: "bob", Email: "bob@example.com"})
		assert.ErrorIs(mt, err, ErrEmailAlreadyExists)
	})

	mt.Run("create duplicate name", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: `E11000 duplicate key error collection: shortener.users index: name_1 dup key: { name: "bob" }`,
		}))

		_, err := repo.CreateUser(ctx, models.User{Name: "bob", Email: "other@example.com"})
		assert.ErrorIs(mt, err, ErrNameAlreadyExists)
	})

	mt.Run("create command error", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := repo.CreateUser(ctx, models.User{Name: "bob"})
		assert.ErrorIs(mt, err, ErrExecutingQuery)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		id := primitive.NewObjectID()
		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			userDoc(id, "bob", "bob@example.com", createdAt)))

		user, err := repo.FindUserByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), user.ID)
		assert.Equal(mt, "bob@example.com", user.Email)
		assert.True(mt, createdAt.Equal(user.CreatedAt))
	})

	mt.Run("find by malformed id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())

		_, err := repo.FindUserByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("find by name not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		_, err := repo.FindUserByName(ctx, "ghost")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			userDoc(id, "bob", "bob@example.com", time.Now())))

		user, err := repo.FindUserByEmail(ctx, "bob@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "bob", user.Name)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		now := time.Now()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "alice", "alice@example.com", now),
			userDoc(primitive.NewObjectID(), "bob", "bob@example.com", now),
		))

		users, err := repo.ListUsers(ctx)
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "alice", users[0].Name)
		assert.Equal(mt, "bob", users[1].Name)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		users, err := repo.ListUsers(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})

	mt.Run("update", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 1},
		})

		phone := "777"
		res, err := repo.UpdateUser(ctx, primitive.NewObjectID().Hex(), models.UserUpdate{Phone: &phone})
		require.NoError(mt, err)
		assert.Equal(mt, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)
	})

	mt.Run("update malformed id matches nothing", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())

		phone := "777"
		res, err := repo.UpdateUser(ctx, "bad", models.UserUpdate{Phone: &phone})
		require.NoError(mt, err)
		assert.Equal(mt, models.UpdateResult{Acknowledged: true}, res)
	})

	mt.Run("update empty", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())

		_, err := repo.UpdateUser(ctx, primitive.NewObjectID().Hex(), models.UserUpdate{})
		assert.ErrorIs(mt, err, ErrEmptyUpdate)
	})

	mt.Run("update duplicate name", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: `E11000 duplicate key error collection: shortener.users index: name_1 dup key: { name: "alice" }`,
		}))

		name := "alice"
		_, err := repo.UpdateUser(ctx, primitive.NewObjectID().Hex(), models.UserUpdate{Name: &name})
		assert.ErrorIs(mt, err, ErrNameAlreadyExists)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		res, err := repo.DeleteUser(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, models.DeleteResult{Acknowledged: true, DeletedCount: 1}, res)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		res, err := repo.DeleteUser(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, models.DeleteResult{Acknowledged: true}, res)
	})
}

func TestMongoResetTokenRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ctx := context.Background()
	ns := "shortener.resetTokens"

	mt.Run("round trip", func(mt *mtest.T) {
		repo := NewMongoResetTokenRepository(newMockMongo(mt), logger.Nop())
		userID := primitive.NewObjectID()
		expires := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)

		mt.AddMockResponses(
			// insert
			mtest.CreateSuccessResponse(),
			// find
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: userID},
				{Key: "token", Value: "tok"},
				{Key: "expiresAt", Value: expires},
			}),
			// delete
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}},
			// find after delete
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		token := models.ResetToken{Token: "tok", UserID: userID.Hex(), ExpiresAt: expires}
		require.NoError(mt, repo.SaveResetToken(ctx, token))

		found, err := repo.FindResetToken(ctx, "tok")
		require.NoError(mt, err)
		assert.Equal(mt, "tok", found.Token)
		assert.Equal(mt, userID.Hex(), found.UserID)
		assert.True(mt, expires.Equal(found.ExpiresAt))

		require.NoError(mt, repo.DeleteResetToken(ctx, "tok"))

		_, err = repo.FindResetToken(ctx, "tok")
		assert.ErrorIs(mt, err, ErrResetTokenNotFound)
	})

	mt.Run("save with malformed user id", func(mt *mtest.T) {
		repo := NewMongoResetTokenRepository(newMockMongo(mt), logger.Nop())

		err := repo.SaveResetToken(ctx, models.ResetToken{Token: "tok", UserID: "nope"})
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("delete expired", func(mt *mtest.T) {
		repo := NewMongoResetTokenRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 4}})

		deleted, err := repo.DeleteExpiredResetTokens(ctx, time.Now())
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), deleted)
	})
}

func TestMongoURLRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ctx := context.Background()
	ns := "shortener.urls"

	mt.Run("count matches string and object ids", func(mt *mtest.T) {
		repo := NewMongoURLRepository(newMockMongo(mt), logger.Nop())
		userID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		count, err := repo.CountURLsByUser(ctx, userID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)

		in, err := mt.GetStartedEvent().Command.LookupErr("pipeline", "0", "$match", "userId", "$in")
		require.NoError(mt, err)
		values, err := in.Array().Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)
		assert.Equal(mt, userID.Hex(), values[0].StringValue())
		assert.Equal(mt, userID, values[1].ObjectID())
	})

	mt.Run("count non-hex user id", func(mt *mtest.T) {
		repo := NewMongoURLRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		count, err := repo.CountURLsByUser(ctx, "legacy-user")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), count)

		owner, err := mt.GetStartedEvent().Command.LookupErr("pipeline", "0", "$match", "userId")
		require.NoError(mt, err)
		assert.Equal(mt, "legacy-user", owner.StringValue())
	})

	mt.Run("recent with string owner", func(mt *mtest.T) {
		repo := NewMongoURLRepository(newMockMongo(mt), logger.Nop())
		userID := primitive.NewObjectID().Hex()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: userID},
				{Key: "longUrl", Value: "https://c.example"},
				{Key: "shortUrl", Value: "ccc"},
				{Key: "clicks", Value: int64(0)},
				{Key: "createdAt", Value: time.Now()},
			},
		))

		urls, err := repo.RecentURLsByUser(ctx, userID, 5)
		require.NoError(mt, err)
		require.Len(mt, urls, 1)
		assert.Equal(mt, userID, urls[0].UserID)

		in, err := mt.GetStartedEvent().Command.LookupErr("filter", "userId", "$in")
		require.NoError(mt, err)
		values, err := in.Array().Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)
		assert.Equal(mt, userID, values[0].StringValue())
	})

	mt.Run("recent", func(mt *mtest.T) {
		repo := NewMongoURLRepository(newMockMongo(mt), logger.Nop())
		userID := primitive.NewObjectID()
		now := time.Now()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: userID},
				{Key: "longUrl", Value: "https://b.example"},
				{Key: "shortUrl", Value: "bbb"},
				{Key: "clicks", Value: int64(2)},
				{Key: "createdAt", Value: now},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: userID},
				{Key: "longUrl", Value: "https://a.example"},
				{Key: "shortUrl", Value: "aaa"},
				{Key: "clicks", Value: int64(5)},
				{Key: "createdAt", Value: now.Add(-time.Hour)},
			},
		))

		urls, err := repo.RecentURLsByUser(ctx, userID.Hex(), 5)
		require.NoError(mt, err)
		require.Len(mt, urls, 2)
		assert.Equal(mt, "bbb", urls[0].ShortURL)
		assert.Equal(mt, userID.Hex(), urls[1].UserID)
		assert.Equal(mt, int64(5), urls[1].Clicks)
	})
}

func TestMongoEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		assert.NoError(mt, newMockMongo(mt).EnsureIndexes(context.Background()))
	})

	mt.Run("failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error collection: shortener.users index: email_1",
			Name:    "DuplicateKey",
		}))

		assert.Error(mt, newMockMongo(mt).EnsureIndexes(context.Background()))
	})
}

func TestDuplicateKeyError(t *testing.T) {
	assert.ErrorIs(t, duplicateKeyError(errString("index: email_1 dup key")), ErrEmailAlreadyExists)
	assert.ErrorIs(t, duplicateKeyError(errString("index: name_1 dup key")), ErrNameAlreadyExists)
	assert.ErrorIs(t, duplicateKeyError(errString("index: token_1 dup key")), ErrConflict)
}

type errString string

func (e errString) Error() string { return string(e) }
