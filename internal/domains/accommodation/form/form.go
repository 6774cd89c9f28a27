// Package form models the admin accommodation form as a pure state
// container: entered field values plus the cascading municipality and
// barangay selector sets. It performs no I/O; callers load reference
// data and feed it in.
package form

import (
	"strings"

	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model"
)

// Option is a selectable (code, name) pair sourced from the geographic
// reference data.
type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type State struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	Location         string  `json:"location"`
	Municipality     string  `json:"municipality"`
	MunicipalityCode string  `json:"municipality_code"`
	Image            string  `json:"image"`
	ContactNumber    string  `json:"contact_number"`
	Email            string  `json:"email"`
	PriceRange       string  `json:"price_range"`
	Amenities        string  `json:"amenities"`
	Rating           float64 `json:"rating"`

	Municipalities []Option `json:"municipalities"`
	Barangays      []Option `json:"barangays"`
}

func (s *State) SetMunicipalities(options []Option) {
	s.Municipalities = options
}

// SelectMunicipality picks a municipality by code and resolves its
// display name. Changing the municipality always invalidates the
// current barangay selection, so Location and the barangay set are
// cleared even when the code is unknown.
func (s *State) SelectMunicipality(code string) {
	s.Municipality = ""
	s.MunicipalityCode = ""

	for _, option := range s.Municipalities {
		if option.Code == code {
			s.Municipality = option.Name
			s.MunicipalityCode = option.Code

			break
		}
	}

	s.Location = ""
	s.Barangays = nil
}

func (s *State) SetBarangays(options []Option) {
	s.Barangays = options
}

func (s *State) SelectBarangay(code string) {
	s.Location = ""

	for _, option := range s.Barangays {
		if option.Code == code {
			s.Location = option.Name

			break
		}
	}
}

// HydrateRecord fills the form from a stored record for editing. Array
// fields are joined back to comma separated display strings and the
// municipality code is resolved by name against the given reference
// set. It reports whether the barangay set still has to be loaded so
// the location selector is immediately usable.
func (s *State) HydrateRecord(rec model.Accommodation, municipalities []Option) (needBarangays bool) {
	s.Name = rec.Name
	s.Description = rec.Description
	s.Category = JoinTags(rec.Category)
	s.Location = rec.Location
	s.Municipality = rec.Municipality
	s.Image = rec.Image
	s.ContactNumber = rec.ContactNumber
	s.Email = rec.Email
	s.PriceRange = rec.PriceRange
	s.Amenities = JoinTags(rec.Amenities)
	s.Rating = rec.Rating

	s.Municipalities = municipalities
	s.MunicipalityCode = ""
	s.Barangays = nil

	for _, option := range municipalities {
		if option.Name == rec.Municipality {
			s.MunicipalityCode = option.Code

			break
		}
	}

	return s.MunicipalityCode != ""
}

// Reset clears the entered values and the barangay set. The
// municipality reference set is kept; it is reference data, not form
// input.
func (s *State) Reset() {
	municipalities := s.Municipalities

	*s = State{Municipalities: municipalities}
}

// SplitTags tokenizes a comma separated entry field. Tokens are
// trimmed but otherwise kept as entered: order preserved, empties and
// duplicates included.
func SplitTags(value string) []string {
	tokens := strings.Split(value, ",")
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}

	return tokens
}

// JoinTags renders tokens back to the display form used in edit
// fields.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
