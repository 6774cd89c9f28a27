package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/form"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/repository"
	userModel "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/user/model"
	userRepository "github.com/git-nard/wanderer-albay-guide-remake/internal/domains/user/repository"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/events"
	"github.com/git-nard/wanderer-albay-guide-remake/shared"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	gDto "github.com/git-nard/wanderer-albay-guide-remake/shared/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Review interface {
	ListBySpot(ctx context.Context, spotID string) (dto.GetReviewsResponse, error)
	Create(ctx context.Context, spotID string, req dto.CreateReviewRequest) error
	Delete(ctx context.Context, id string) error
	Form(ctx context.Context, spotID string) (dto.FormView, error)
}

type serviceImpl struct {
	repo     repository.Review
	userRepo userRepository.User
	cfg      *config.Config
	otel     otel.Otel
	events   events.Publisher
}

func New(repo repository.Review, userRepo userRepository.User, cfg *config.Config, otel otel.Otel, events events.Publisher) Review {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
		events:   events,
	}
}

// ListBySpot returns a spot's reviews newest first together with the
// aggregate summary. The viewer from the request context drives the
// has_user_reviewed and can_delete flags.
func (s *serviceImpl) ListBySpot(ctx context.Context, spotID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBySpot")
	defer scope.End()
	defer scope.TraceIfError(err)

	viewer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filterBySpot(spotID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, viewer)

	return res, nil
}

// Create validates the draft locally before touching the store: an
// unset rating never reaches the repository. The unique constraint on
// (spot_id, user_id) is the authoritative duplicate guard and maps to
// a conflict failure.
func (s *serviceImpl) Create(ctx context.Context, spotID string, req dto.CreateReviewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := req.Draft()
	if err = draft.Validate(); err != nil {
		return err
	}

	viewer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(viewer, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviewer")

		return fmt.Errorf("failed to get reviewer: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.Unauthorized("reviewer not found") // nolint:wrapcheck
	}

	review := req.ToModel(spotID, user.ID, displayName(user))

	if err = s.repo.Insert(ctx, review); err != nil {
		if isUniqueViolation(err) {
			return failure.Conflict("you have already reviewed this spot") // nolint:wrapcheck
		}

		return err
	}

	s.events.Publish(ctx, constant.EventReviewSubmitted, review.ID)

	return nil
}

// Delete removes a review if and only if the viewer wrote it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	viewer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return failure.NotFound("review not found") // nolint:wrapcheck
	}

	if review.UserID != viewer {
		return failure.Forbidden("you can only delete your own review") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.events.Publish(ctx, constant.EventReviewDeleted, id)

	return nil
}

// Form bootstraps the composer with a zeroed draft and whether the
// viewer has already reviewed the spot, which disables submission on
// the client.
func (s *serviceImpl) Form(ctx context.Context, spotID string) (res dto.FormView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form")
	defer scope.End()
	defer scope.TraceIfError(err)

	viewer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reviewed, err := s.repo.Exist(ctx, filterBySpotAndUser(spotID, viewer))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	res.Draft = form.Draft{}
	res.SubmitDisabled = reviewed

	return res, nil
}

func filterBySpot(spotID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSpotID,
				Value:    spotID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterBySpotAndUser(spotID, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSpotID,
				Value:    spotID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func displayName(user userModel.User) string {
	if user.FullName != nil && *user.FullName != constant.Empty {
		return *user.FullName
	}

	return user.Email
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
