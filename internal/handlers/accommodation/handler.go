package accommodation

import (
	"net/http"

	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/service"
	"github.com/git-nard/wanderer-albay-guide-remake/shared"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/validator"
	"github.com/git-nard/wanderer-albay-guide-remake/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accommodations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAccommodations)
		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Get("/form", handler.GetNewForm)
		routerGroup.Get("/{id}", handler.GetAccommodationByID)
		routerGroup.Get("/{id}/form", handler.GetEditForm)
		routerGroup.Patch("/{id}", handler.UpdateAccommodation)
		routerGroup.Delete("/{id}", handler.DeleteAccommodation)
	})
}

// GetAccommodations retrieves the full directory ordered by name.
// @Summary Get all accommodations
// @Description Retrieve every accommodation ordered by name. The directory is not paginated.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse] "List of accommodations"
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [get]
func (handler *Handler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodations")
	defer scope.End()

	accommodations, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodations retrieved successfully")

	response.WithJSON(w, http.StatusOK, accommodations)
}

// CreateAccommodation handles the creation of a new accommodation.
// @Summary Create a new accommodation
// @Description Create a new accommodation with the provided details. Category and amenities are comma separated strings.
// @Tags Accommodation
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Accommodation name"
// @Param description formData string false "Description"
// @Param category formData string false "Comma separated categories"
// @Param location formData string false "Barangay or street"
// @Param municipality formData string false "Municipality or city name"
// @Param image_url formData string false "External image URL"
// @Param contact_number formData string false "Contact number"
// @Param email formData string false "Contact email"
// @Param price_range formData string false "Price range"
// @Param amenities formData string false "Comma separated amenities"
// @Param rating formData number false "Rating"
// @Param image formData file false "Accommodation image"
// @Success 201 {object} response.Message "Accommodation created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [post]
// @Security BearerAuth
func (handler *Handler) CreateAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodation")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateAccommodationRequest{
		Name:          request.FormValue("name"),
		Description:   request.FormValue("description"),
		Category:      request.FormValue("category"),
		Location:      request.FormValue("location"),
		Municipality:  request.FormValue("municipality"),
		ImageURL:      request.FormValue("image_url"),
		ContactNumber: request.FormValue("contact_number"),
		Email:         request.FormValue("email"),
		PriceRange:    request.FormValue("price_range"),
		Amenities:     request.FormValue("amenities"),
	}

	if ratingStr := request.FormValue("rating"); ratingStr != "" {
		if rating, err := shared.ConvertStringToFloat(ratingStr); err == nil {
			req.Rating = rating
		}
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Accommodation created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Accommodation created successfully")
}

// GetAccommodationByID retrieves an accommodation by its ID.
// @Summary Get an accommodation by ID
// @Description Retrieve an accommodation by its unique identifier.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.AccommodationResponse] "Accommodation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [get]
func (handler *Handler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	accommodation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation retrieved successfully")

	response.WithJSON(w, http.StatusOK, accommodation)
}

// GetNewForm returns a blank accommodation form view.
// @Summary Get a blank accommodation form
// @Description Retrieve an empty draft together with the selectable municipality options.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.FormView] "Blank form view"
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/form [get]
// @Security BearerAuth
func (handler *Handler) GetNewForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNewForm")
	defer scope.End()

	formView, err := handler.service.NewForm(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build accommodation form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation form built successfully")

	response.WithJSON(w, http.StatusOK, formView)
}

// GetEditForm returns an accommodation form view hydrated from a record.
// @Summary Get a prefilled accommodation form
// @Description Retrieve a draft hydrated from an existing record, with municipality and barangay options.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.FormView] "Prefilled form view"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id}/form [get]
// @Security BearerAuth
func (handler *Handler) GetEditForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEditForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	formView, err := handler.service.EditForm(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build accommodation edit form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation edit form built successfully")

	response.WithJSON(w, http.StatusOK, formView)
}

// UpdateAccommodation updates an existing accommodation by its ID.
// @Summary Update an accommodation by ID
// @Description Update the details of an existing accommodation. Empty fields are left untouched.
// @Tags Accommodation
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param name formData string false "Accommodation name"
// @Param description formData string false "Description"
// @Param category formData string false "Comma separated categories"
// @Param location formData string false "Barangay or street"
// @Param municipality formData string false "Municipality or city name"
// @Param image_url formData string false "External image URL"
// @Param contact_number formData string false "Contact number"
// @Param email formData string false "Contact email"
// @Param price_range formData string false "Price range"
// @Param amenities formData string false "Comma separated amenities"
// @Param rating formData number false "Rating"
// @Param image formData file false "Accommodation image"
// @Success 200 {object} response.Message "Accommodation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateAccommodationRequest{
		Name:          r.FormValue("name"),
		Description:   r.FormValue("description"),
		Category:      r.FormValue("category"),
		Location:      r.FormValue("location"),
		Municipality:  r.FormValue("municipality"),
		ImageURL:      r.FormValue("image_url"),
		ContactNumber: r.FormValue("contact_number"),
		Email:         r.FormValue("email"),
		PriceRange:    r.FormValue("price_range"),
		Amenities:     r.FormValue("amenities"),
	}

	if ratingStr := r.FormValue("rating"); ratingStr != "" {
		if rating, err := shared.ConvertStringToFloat(ratingStr); err == nil {
			req.Rating = &rating
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update accommodation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Accommodation updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Accommodation updated successfully")
}

// DeleteAccommodation deletes an accommodation by its ID.
// @Summary Delete an accommodation by ID
// @Description Delete an accommodation using its unique identifier.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Message "Accommodation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete accommodation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Accommodation deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Accommodation deleted successfully")
}
