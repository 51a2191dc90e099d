package store

import (
	"time"

	"github.com/MKhiriev/go-shortener-users/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

type resetTokenDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Token     string             `bson:"token"`
	ExpiresAt time.Time          `bson:"expiresAt"`
}

func (d resetTokenDocument) toModel() models.ResetToken {
	return models.ResetToken{
		Token:     d.Token,
		UserID:    d.UserID.Hex(),
		ExpiresAt: d.ExpiresAt,
	}
}

type urlDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    bson.RawValue      `bson:"userId"`
	LongURL   string             `bson:"longUrl"`
	ShortURL  string             `bson:"shortUrl"`
	Clicks    int64              `bson:"clicks"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d urlDocument) toModel() models.ShortURL {
	return models.ShortURL{
		ID:        d.ID.Hex(),
		UserID:    ownerID(d.UserID),
		LongURL:   d.LongURL,
		ShortURL:  d.ShortURL,
		Clicks:    d.Clicks,
		CreatedAt: d.CreatedAt,
	}
}

// ownerID reads a url's userId whether it was written as a string or an ObjectID.
func ownerID(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if id, ok := v.StringValueOK(); ok {
		return id
	}
	return ""
}
