package review

import (
	"net/http"

	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/model/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/review/service"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/validator"
	"github.com/git-nard/wanderer-albay-guide-remake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/spots/{spotID}/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSpotReviews)
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/form", handler.GetReviewForm)
	})

	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// GetSpotReviews retrieves a spot's reviews together with the summary.
// @Summary Get reviews for a spot
// @Description Retrieve the reviews of a spot newest first, with the average rating and review count.
// @Tags Review
// @Accept json
// @Produce json
// @Param spotID path string true "Spot ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "Reviews with summary"
// @Failure 500 {object} response.Error
// @Router /v1/spots/{spotID}/reviews [get]
func (handler *Handler) GetSpotReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpotReviews")
	defer scope.End()

	spotID := chi.URLParam(r, constant.RequestParamSpotID)

	reviews, err := handler.service.ListBySpot(ctx, spotID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// CreateReview submits a review for a spot.
// @Summary Submit a review
// @Description Submit a star rating with an optional comment for a spot. One review per user per spot.
// @Tags Review
// @Accept json
// @Produce json
// @Param spotID path string true "Spot ID"
// @Param request body dto.CreateReviewRequest true "Review Request"
// @Success 201 {object} response.Message "Review submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spots/{spotID}/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	spotID := chi.URLParam(r, constant.RequestParamSpotID)

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, spotID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review submitted successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Review submitted successfully")
}

// GetReviewForm bootstraps the review composer for a spot.
// @Summary Get the review form
// @Description Retrieve a zeroed review draft and whether the viewer has already reviewed the spot.
// @Tags Review
// @Accept json
// @Produce json
// @Param spotID path string true "Spot ID"
// @Success 200 {object} response.Data[dto.FormView] "Review form view"
// @Failure 500 {object} response.Error
// @Router /v1/spots/{spotID}/reviews/form [get]
// @Security BearerAuth
func (handler *Handler) GetReviewForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewForm")
	defer scope.End()

	spotID := chi.URLParam(r, constant.RequestParamSpotID)

	formView, err := handler.service.Form(ctx, spotID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build review form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review form built successfully")

	response.WithJSON(w, http.StatusOK, formView)
}

// DeleteReview deletes a review by its ID.
// @Summary Delete a review by ID
// @Description Delete a review. Only the review's author may delete it.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
