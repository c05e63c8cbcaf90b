package domain

import "time"

// Category classifies a listing. The set is fixed; anything else fails validation.
type Category string

const (
	CategoryBooks       Category = "books"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHome        Category = "home"
	CategoryVehicles    Category = "vehicles"
	CategorySports      Category = "sports"
	CategoryOther       Category = "other"
)

var categories = map[Category]struct{}{
	CategoryBooks:       {},
	CategoryElectronics: {},
	CategoryClothing:    {},
	CategoryHome:        {},
	CategoryVehicles:    {},
	CategorySports:      {},
	CategoryOther:       {},
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Region is the coarse geographic area a listing is published in.
type Region string

const (
	RegionNorth   Region = "north"
	RegionSouth   Region = "south"
	RegionEast    Region = "east"
	RegionWest    Region = "west"
	RegionCentral Region = "central"
)

// Valid reports whether r is one of the five supported regions.
func (r Region) Valid() bool {
	switch r {
	case RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral:
		return true
	}
	return false
}

const (
	MaxProductNameLen        = 50
	MaxProductDescriptionLen = 500
)

// Image is a stored reference to an externally hosted listing picture.
type Image struct {
	URL        string `json:"url" bson:"url"`
	ExternalID string `json:"external_id,omitempty" bson:"external_id,omitempty"`
}

// Product is a published listing. OwnerID is set at creation and never changes.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     Category  `json:"category"`
	Region       Region    `json:"region"`
	State        string    `json:"state,omitempty"`
	City         string    `json:"city,omitempty"`
	Images       []Image   `json:"images,omitempty"`
	ContactEmail string    `json:"contact_email"`
	OwnerID      string    `json:"owner_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
