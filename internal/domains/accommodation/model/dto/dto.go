package dto

import (
	"mime/multipart"

	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/form"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model"
	gDto "github.com/git-nard/wanderer-albay-guide-remake/shared/dto"
	gModel "github.com/git-nard/wanderer-albay-guide-remake/shared/model"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateAccommodationRequest struct {
	Name          string                `json:"name"           validate:"required,max=150"`
	Description   string                `json:"description"    validate:"omitempty"`
	Category      string                `json:"category"       validate:"omitempty,max=255"`
	Location      string                `json:"location"       validate:"omitempty,max=150"`
	Municipality  string                `json:"municipality"   validate:"omitempty,max=150"`
	Image         *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	ImageURL      string                `json:"image_url"      validate:"omitempty,url"`
	ContactNumber string                `json:"contact_number" validate:"omitempty,max=50"`
	Email         string                `json:"email"          validate:"omitempty,email"`
	PriceRange    string                `json:"price_range"    validate:"omitempty,max=100"`
	Amenities     string                `json:"amenities"      validate:"omitempty,max=500"`
	Rating        float64               `json:"rating"         validate:"omitempty,min=0"`
}

// ToModel tokenizes the comma separated category and amenities entries
// verbatim: order kept, duplicates and empty tokens preserved.
func (c *CreateAccommodationRequest) ToModel(user string, image string) model.Accommodation {
	return model.Accommodation{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Description:   c.Description,
		Category:      pq.StringArray(form.SplitTags(c.Category)),
		Location:      c.Location,
		Municipality:  c.Municipality,
		Image:         image,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		PriceRange:    c.PriceRange,
		Amenities:     pq.StringArray(form.SplitTags(c.Amenities)),
		Rating:        c.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAccommodationRequest struct {
	Name          string                `db:"name"           json:"name"           validate:"omitempty,max=150"`
	Description   string                `db:"description"    json:"description"    validate:"omitempty"`
	Category      string                `json:"category"      validate:"omitempty,max=255"`
	Location      string                `db:"location"       json:"location"       validate:"omitempty,max=150"`
	Municipality  string                `db:"municipality"   json:"municipality"   validate:"omitempty,max=150"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	ImageURL      string                `json:"image_url"     validate:"omitempty,url"`
	ContactNumber string                `db:"contact_number" json:"contact_number" validate:"omitempty,max=50"`
	Email         string                `db:"email"          json:"email"          validate:"omitempty,email"`
	PriceRange    string                `db:"price_range"    json:"price_range"    validate:"omitempty,max=100"`
	Amenities     string                `json:"amenities"     validate:"omitempty,max=500"`
	Rating        *float64              `db:"rating"         json:"rating"         validate:"omitempty,min=0"`
}

type AccommodationResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      []string `json:"category"`
	Location      string   `json:"location"`
	Municipality  string   `json:"municipality"`
	Image         string   `json:"image"`
	ContactNumber string   `json:"contact_number"`
	Email         string   `json:"email"`
	PriceRange    string   `json:"price_range"`
	Amenities     []string `json:"amenities"`
	Rating        float64  `json:"rating"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(model model.Accommodation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Category = []string(model.Category)
	r.Location = model.Location
	r.Municipality = model.Municipality
	r.Image = model.Image
	r.ContactNumber = model.ContactNumber
	r.Email = model.Email
	r.PriceRange = model.PriceRange
	r.Amenities = []string(model.Amenities)
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.Accommodation) {
	r.TotalData = len(models)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}

// FormView is the admin form bootstrap payload. The draft carries the
// selectable municipality and barangay sets; notices report degraded
// reference lookups without blocking the form.
type FormView struct {
	Draft   form.State `json:"draft"`
	Notices []string   `json:"notices,omitempty"`
}
