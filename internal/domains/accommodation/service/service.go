package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/s3"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/form"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/repository"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/events"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/external/psgc"
	"github.com/git-nard/wanderer-albay-guide-remake/shared"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/constant"
	gDto "github.com/git-nard/wanderer-albay-guide-remake/shared/dto"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/failure"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	noticeMunicipalitiesUnavailable = "municipality list is unavailable right now"
	noticeBarangaysUnavailable      = "barangay list is unavailable right now"
)

type Accommodation interface {
	List(ctx context.Context) (dto.GetAccommodationsResponse, error)
	Get(ctx context.Context, id string) (dto.AccommodationResponse, error)
	Create(ctx context.Context, req dto.CreateAccommodationRequest) error
	Update(ctx context.Context, req dto.UpdateAccommodationRequest, id string) error
	Delete(ctx context.Context, id string) error
	NewForm(ctx context.Context) (dto.FormView, error)
	EditForm(ctx context.Context, id string) (dto.FormView, error)
}

type serviceImpl struct {
	repo   repository.Accommodation
	cfg    *config.Config
	otel   otel.Otel
	s3     s3.S3
	geo    psgc.Client
	events events.Publisher
}

func New(repo repository.Accommodation, cfg *config.Config, otel otel.Otel, s3 s3.S3, geo psgc.Client, events events.Publisher) Accommodation {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		otel:   otel,
		s3:     s3,
		geo:    geo,
		events: events,
	}
}

// List returns every record ordered by name. The directory is small by
// design, so there is no pagination and every call reads the store.
func (s *serviceImpl) List(ctx context.Context) (res dto.GetAccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodations")

		return res, fmt.Errorf("failed to get accommodations: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return res, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return res, failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	res.FromModel(accommodation)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	image := req.ImageURL
	var uploadedObjectName string
	if req.Image != nil {
		url, objectName, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return err
		}
		image = url
		uploadedObjectName = objectName
	}

	accommodation := req.ToModel(user, image)

	if err = s.repo.Insert(ctx, accommodation); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	s.events.Publish(ctx, constant.EventAccommodationCreated, accommodation.ID)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAccommodationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check accommodation existence")

		return err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("accommodation not found")

		return failure.NotFound("accommodation not found")
	}

	return s.updateInternal(ctx, req, current, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateAccommodationRequest, current model.Accommodation, user string, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		url, objectName, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return err
		}
		imageURL = url
		uploadedObjectName = objectName
	}

	updatedFields := shared.TransformFields(req, user)
	if req.Category != constant.Empty {
		updatedFields[model.FieldCategory] = pq.StringArray(form.SplitTags(req.Category))
	}

	if req.Amenities != constant.Empty {
		updatedFields[model.FieldAmenities] = pq.StringArray(form.SplitTags(req.Amenities))
	}

	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	} else if req.ImageURL != constant.Empty {
		updatedFields[model.FieldImage] = req.ImageURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update accommodation")

		// Cleanup: delete newly uploaded image if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update accommodation: %w", err)
	}

	// Delete old image if update succeeded and new image was uploaded
	if imageURL != constant.Empty && current.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.events.Publish(ctx, constant.EventAccommodationUpdated, current.ID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if accommodation exists")

		return fmt.Errorf("failed to check if accommodation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("accommodation not found")

		return failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete accommodation")

		return fmt.Errorf("failed to delete accommodation: %w", err)
	}

	s.events.Publish(ctx, constant.EventAccommodationDeleted, id)

	return nil
}

// NewForm builds the blank admin form. A failed municipality lookup
// degrades to an empty selectable set plus a notice so the rest of the
// form stays usable.
func (s *serviceImpl) NewForm(ctx context.Context) (res dto.FormView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NewForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := form.State{}

	municipalities, err := s.geo.Municipalities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load municipalities for form")

		res.Notices = append(res.Notices, noticeMunicipalitiesUnavailable)
	} else {
		draft.SetMunicipalities(geoOptions(municipalities))
	}

	res.Draft = draft

	return res, nil
}

// EditForm hydrates the form from a stored record. Barangays are loaded
// eagerly when the record's municipality resolves against the fresh
// reference set, so the location selector works without another round
// trip. Reference failures degrade to notices, never errors.
func (s *serviceImpl) EditForm(ctx context.Context, id string) (res dto.FormView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EditForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation for form")

		return res, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return res, failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	options := []form.Option{}

	municipalities, err := s.geo.Municipalities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load municipalities for form")

		res.Notices = append(res.Notices, noticeMunicipalitiesUnavailable)
	} else {
		options = geoOptions(municipalities)
	}

	draft := form.State{}

	if draft.HydrateRecord(accommodation, options) {
		barangays, err := s.geo.Barangays(ctx, draft.MunicipalityCode)
		if err != nil {
			log.Error().Err(err).Msg("failed to load barangays for form")

			res.Notices = append(res.Notices, noticeBarangaysUnavailable)
		} else {
			draft.SetBarangays(geoOptions(barangays))
		}
	}

	res.Draft = draft

	return res, nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	// Get original extension
	parts := strings.Split(header.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, bucketName, model.EntityName, file, header, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, filename, nil
}

func geoOptions(places []psgc.Place) []form.Option {
	options := make([]form.Option, len(places))
	for i, place := range places {
		options[i] = form.Option{Code: place.Code, Name: place.Name}
	}

	return options
}
