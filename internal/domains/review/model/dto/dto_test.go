package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/timezone"
)

func review(id, userID string, rating int) model.Review {
	return model.Review{
		ID:        id,
		SpotID:    "spot-1",
		UserID:    userID,
		UserName:  "Reviewer",
		Rating:    rating,
		CreatedAt: timezone.Now(),
	}
}

func TestGetReviewsResponse_FromModels(t *testing.T) {
	tests := []struct {
		name        string
		models      []model.Review
		viewer      string
		wantAverage string
		wantLabel   string
	}{
		{
			name: "mean rendered to one decimal",
			models: []model.Review{
				review("r1", "u1", 5),
				review("r2", "u2", 4),
				review("r3", "u3", 3),
			},
			viewer:      "u9",
			wantAverage: "4.0",
			wantLabel:   "3 reviews",
		},
		{
			name:        "single review uses the singular label",
			models:      []model.Review{review("r1", "u1", 5)},
			viewer:      "u1",
			wantAverage: "5.0",
			wantLabel:   "1 review",
		},
		{
			name: "fractional mean rounds at one decimal",
			models: []model.Review{
				review("r1", "u1", 3),
				review("r2", "u2", 4),
				review("r3", "u3", 4),
			},
			viewer:      "u9",
			wantAverage: "3.7",
			wantLabel:   "3 reviews",
		},
		{
			name:        "no reviews",
			models:      nil,
			viewer:      "u1",
			wantAverage: "0.0",
			wantLabel:   "0 reviews",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var res dto.GetReviewsResponse
			res.FromModels(test.models, test.viewer)

			assert.Equal(t, test.wantAverage, res.Summary.Average)
			assert.Equal(t, len(test.models), res.Summary.Count)
			assert.Equal(t, test.wantLabel, res.Summary.CountLabel)
		})
	}
}

func TestGetReviewsResponse_ViewerFlags(t *testing.T) {
	models := []model.Review{
		review("r1", "author", 5),
		review("r2", "someone-else", 3),
	}

	var res dto.GetReviewsResponse
	res.FromModels(models, "author")

	assert.True(t, res.Summary.HasUserReviewed)
	assert.True(t, res.Reviews[0].CanDelete)
	assert.False(t, res.Reviews[1].CanDelete)

	var other dto.GetReviewsResponse
	other.FromModels(models, "a-third-user")

	assert.False(t, other.Summary.HasUserReviewed)
	assert.False(t, other.Reviews[0].CanDelete)
	assert.False(t, other.Reviews[1].CanDelete)
}

func TestCreateReviewRequest_ToModel(t *testing.T) {
	req := dto.CreateReviewRequest{
		Rating:  4,
		Comment: "  clean rooms, friendly staff  ",
	}

	mod := req.ToModel("spot-1", "user-1", "Juan Dela Cruz")

	assert.NotEmpty(t, mod.ID)
	assert.Equal(t, "spot-1", mod.SpotID)
	assert.Equal(t, "user-1", mod.UserID)
	assert.Equal(t, "Juan Dela Cruz", mod.UserName)
	assert.Equal(t, 4, mod.Rating)
	assert.NotNil(t, mod.Comment)
	assert.Equal(t, "clean rooms, friendly staff", *mod.Comment)
	assert.False(t, mod.CreatedAt.IsZero())
}

func TestCreateReviewRequest_ToModel_EmptyComment(t *testing.T) {
	req := dto.CreateReviewRequest{Rating: 5, Comment: "   "}

	mod := req.ToModel("spot-1", "user-1", "Juan Dela Cruz")

	assert.Nil(t, mod.Comment)
}
