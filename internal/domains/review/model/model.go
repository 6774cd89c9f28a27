package model

import (
	"time"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldSpotID    = "spot_id"
	FieldUserID    = "user_id"
	FieldUserName  = "user_name"
	FieldRating    = "rating"
	FieldComment   = "comment"
	FieldCreatedAt = "created_at"

	RatingMin = 1
	RatingMax = 5

	CommentMaxRunes = 500
)

// Review is immutable once written: there is no update path, only
// deletion by its author. Comment is nil rather than empty, the store
// never holds an empty string.
type Review struct {
	ID        string    `db:"id"`
	SpotID    string    `db:"spot_id"`
	UserID    string    `db:"user_id"`
	UserName  string    `db:"user_name"`
	Rating    int       `db:"rating"`
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
