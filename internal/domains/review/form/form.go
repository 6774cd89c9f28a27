// Package form models the review composer as a pure state container: a
// star rating with a transient hover preview and a capped comment.
package form

import (
	"strings"

	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/failure"
)

type Draft struct {
	Rating      int    `json:"rating"`
	HoverRating int    `json:"hover_rating"`
	Comment     string `json:"comment"`
}

func (d *Draft) SetRating(stars int) {
	d.Rating = stars
}

// Preview shows a candidate rating while the pointer hovers a star. It
// does not touch the committed rating.
func (d *Draft) Preview(stars int) {
	d.HoverRating = stars
}

func (d *Draft) ClearPreview() {
	d.HoverRating = 0
}

// EffectiveRating is what the stars display: the hover preview while
// one is active, the committed rating otherwise.
func (d *Draft) EffectiveRating() int {
	if d.HoverRating > 0 {
		return d.HoverRating
	}

	return d.Rating
}

// SetComment stores the comment, hard capped at the maximum length in
// runes so multibyte input never splits mid character.
func (d *Draft) SetComment(value string) {
	runes := []rune(value)
	if len(runes) > model.CommentMaxRunes {
		value = string(runes[:model.CommentMaxRunes])
	}

	d.Comment = value
}

// Validate rejects submission while the rating is unset. The star
// control only produces values inside the valid range, so an unset
// rating is the one local failure mode.
func (d *Draft) Validate() error {
	if d.Rating < model.RatingMin || d.Rating > model.RatingMax {
		return failure.BadRequestFromString("a star rating is required") // nolint:wrapcheck
	}

	return nil
}

// NormalizeComment trims the comment for storage. An empty result is
// nil, never an empty string.
func (d *Draft) NormalizeComment() *string {
	trimmed := strings.TrimSpace(d.Comment)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func (d *Draft) Reset() {
	*d = Draft{}
}
