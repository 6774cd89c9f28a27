package model

import (
	"github.com/lib/pq"

	"github.com/git-nard/wanderer-albay-guide-remake/shared/model"
)

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldCategory      = "category"
	FieldLocation      = "location"
	FieldMunicipality  = "municipality"
	FieldImage         = "image"
	FieldContactNumber = "contact_number"
	FieldEmail         = "email"
	FieldPriceRange    = "price_range"
	FieldAmenities     = "amenities"
	FieldRating        = "rating"
)

// Accommodation is a directory listing. Location is a barangay name and
// is only meaningful together with Municipality.
type Accommodation struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Description   string         `db:"description"`
	Category      pq.StringArray `db:"category"`
	Location      string         `db:"location"`
	Municipality  string         `db:"municipality"`
	Image         string         `db:"image"`
	ContactNumber string         `db:"contact_number"`
	Email         string         `db:"email"`
	PriceRange    string         `db:"price_range"`
	Amenities     pq.StringArray `db:"amenities"`
	Rating        float64        `db:"rating"`
	model.Metadata
}
