package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/form"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "single token",
			value:    "Resort",
			expected: []string{"Resort"},
		},
		{
			name:     "trims around commas and keeps order",
			value:    " Hotel , Resort ,Inn",
			expected: []string{"Hotel", "Resort", "Inn"},
		},
		{
			name:     "keeps empty tokens",
			value:    "Wifi,,Parking,",
			expected: []string{"Wifi", "", "Parking", ""},
		},
		{
			name:     "keeps duplicates",
			value:    "Pool,Pool",
			expected: []string{"Pool", "Pool"},
		},
		{
			name:     "empty value yields one empty token",
			value:    "",
			expected: []string{""},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, form.SplitTags(test.value))
		})
	}
}

func TestJoinTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected string
	}{
		{
			name:     "joins with comma and space",
			tags:     []string{"Hotel", "Resort"},
			expected: "Hotel, Resort",
		},
		{
			name:     "single tag",
			tags:     []string{"Inn"},
			expected: "Inn",
		},
		{
			name:     "nil tags",
			tags:     nil,
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, form.JoinTags(test.tags))
		})
	}
}

func TestState_SelectMunicipality(t *testing.T) {
	municipalities := []form.Option{
		{Code: "050502000", Name: "Camalig"},
		{Code: "050506000", Name: "Legazpi City"},
	}

	t.Run("resolves the name and clears the barangay selection", func(t *testing.T) {
		state := &form.State{
			Location:  "Bagumbayan",
			Barangays: []form.Option{{Code: "050506001", Name: "Bagumbayan"}},
		}
		state.SetMunicipalities(municipalities)

		state.SelectMunicipality("050502000")

		assert.Equal(t, "Camalig", state.Municipality)
		assert.Equal(t, "050502000", state.MunicipalityCode)
		assert.Empty(t, state.Location)
		assert.Nil(t, state.Barangays)
	})

	t.Run("unknown code clears the selection but still resets the cascade", func(t *testing.T) {
		state := &form.State{
			Municipality:     "Camalig",
			MunicipalityCode: "050502000",
			Location:         "Tagaytay",
			Barangays:        []form.Option{{Code: "050502040", Name: "Tagaytay"}},
		}
		state.SetMunicipalities(municipalities)

		state.SelectMunicipality("999999999")

		assert.Empty(t, state.Municipality)
		assert.Empty(t, state.MunicipalityCode)
		assert.Empty(t, state.Location)
		assert.Nil(t, state.Barangays)
	})
}

func TestState_SelectBarangay(t *testing.T) {
	state := &form.State{}
	state.SetBarangays([]form.Option{
		{Code: "050506001", Name: "Bagumbayan"},
		{Code: "050506010", Name: "Rawis"},
	})

	state.SelectBarangay("050506010")
	assert.Equal(t, "Rawis", state.Location)

	state.SelectBarangay("000000000")
	assert.Empty(t, state.Location)
}

func TestState_HydrateRecord(t *testing.T) {
	municipalities := []form.Option{
		{Code: "050502000", Name: "Camalig"},
		{Code: "050506000", Name: "Legazpi City"},
	}

	rec := model.Accommodation{
		Name:          "Mayon View Resort",
		Description:   "Resort with a volcano view",
		Category:      []string{"Resort", "Hotel"},
		Location:      "Bagumbayan",
		Municipality:  "Legazpi City",
		Image:         "https://cdn.example.com/mayon.jpg",
		ContactNumber: "+63 52 123 4567",
		Email:         "stay@mayonview.ph",
		PriceRange:    "PHP 2,500 - 4,000",
		Amenities:     []string{"Wifi", "Pool"},
		Rating:        4.5,
	}

	t.Run("fills display fields and resolves the municipality code", func(t *testing.T) {
		state := &form.State{}

		needBarangays := state.HydrateRecord(rec, municipalities)

		assert.True(t, needBarangays)
		assert.Equal(t, "Mayon View Resort", state.Name)
		assert.Equal(t, "Resort, Hotel", state.Category)
		assert.Equal(t, "Wifi, Pool", state.Amenities)
		assert.Equal(t, "Bagumbayan", state.Location)
		assert.Equal(t, "Legazpi City", state.Municipality)
		assert.Equal(t, "050506000", state.MunicipalityCode)
		assert.Equal(t, 4.5, state.Rating)
		assert.Nil(t, state.Barangays)
	})

	t.Run("unresolvable municipality reports no barangay load", func(t *testing.T) {
		stale := rec
		stale.Municipality = "Tabaco City"

		state := &form.State{}

		needBarangays := state.HydrateRecord(stale, municipalities)

		assert.False(t, needBarangays)
		assert.Empty(t, state.MunicipalityCode)
		assert.Equal(t, "Tabaco City", state.Municipality)
		assert.Equal(t, "Bagumbayan", state.Location)
	})
}

func TestState_Reset(t *testing.T) {
	municipalities := []form.Option{{Code: "050502000", Name: "Camalig"}}

	state := &form.State{
		Name:             "Mayon View Resort",
		Category:         "Resort",
		Location:         "Bagumbayan",
		Municipality:     "Camalig",
		MunicipalityCode: "050502000",
		Rating:           4.5,
		Barangays:        []form.Option{{Code: "050502001", Name: "Anoling"}},
	}
	state.SetMunicipalities(municipalities)

	state.Reset()

	assert.Empty(t, state.Name)
	assert.Empty(t, state.Category)
	assert.Empty(t, state.Location)
	assert.Empty(t, state.Municipality)
	assert.Empty(t, state.MunicipalityCode)
	assert.Zero(t, state.Rating)
	assert.Nil(t, state.Barangays)
	assert.Equal(t, municipalities, state.Municipalities)
}
