package dto

import (
	"fmt"
	"strconv"

	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/form"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"  validate:"omitempty,min=0,max=5"`
	Comment string `json:"comment" validate:"omitempty"`
}

// Draft stages the submission through the composer rules, so the
// comment cap applies on entry.
func (c *CreateReviewRequest) Draft() form.Draft {
	draft := form.Draft{Rating: c.Rating}
	draft.SetComment(c.Comment)

	return draft
}

func (c *CreateReviewRequest) ToModel(spotID, userID, userName string) model.Review {
	draft := c.Draft()

	return model.Review{
		ID:        uuid.NewString(),
		SpotID:    spotID,
		UserID:    userID,
		UserName:  userName,
		Rating:    draft.Rating,
		Comment:   draft.NormalizeComment(),
		CreatedAt: timezone.Now(),
	}
}

type ReviewResponse struct {
	ID        string  `json:"id"`
	SpotID    string  `json:"spot_id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
	CanDelete bool    `json:"can_delete"`
}

func (r *ReviewResponse) FromModel(model model.Review, viewer string) {
	r.ID = model.ID
	r.SpotID = model.SpotID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.CanDelete = model.UserID == viewer
}

// ReviewSummary is the aggregate header over a spot's reviews. Average
// is the arithmetic mean rendered to one decimal, matching what the
// rating badge displays.
type ReviewSummary struct {
	Average         string `json:"average"`
	Count           int    `json:"count"`
	CountLabel      string `json:"count_label"`
	HasUserReviewed bool   `json:"has_user_reviewed"`
}

type GetReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Summary ReviewSummary    `json:"summary"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, viewer string) {
	r.Reviews = make([]ReviewResponse, len(models))

	total := 0
	hasReviewed := false

	for i, mod := range models {
		r.Reviews[i].FromModel(mod, viewer)
		total += mod.Rating

		if mod.UserID == viewer {
			hasReviewed = true
		}
	}

	average := 0.0
	if len(models) > 0 {
		average = float64(total) / float64(len(models))
	}

	r.Summary = ReviewSummary{
		Average:         strconv.FormatFloat(average, 'f', 1, 64),
		Count:           len(models),
		CountLabel:      countLabel(len(models)),
		HasUserReviewed: hasReviewed,
	}
}

func countLabel(count int) string {
	if count == 1 {
		return "1 review"
	}

	return fmt.Sprintf("%d reviews", count)
}

// FormView bootstraps the review composer: a zeroed draft plus whether
// submission is disabled because the viewer already reviewed the spot.
type FormView struct {
	Draft          form.Draft `json:"draft"`
	SubmitDisabled bool       `json:"submit_disabled"`
}
