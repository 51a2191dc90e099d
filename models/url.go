package models

import "time"

// ShortURL is a shortened link owned by a user. The accounts service only
// reads these records to build per-user statistics.
type ShortURL struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	LongURL   string    `json:"longUrl"`
	ShortURL  string    `json:"shortUrl"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStats is the response of the stats endpoint.
type UserStats struct {
	TotalURLs int64      `json:"totalUrls"`
	Recent    []ShortURL `json:"recent"`
}
