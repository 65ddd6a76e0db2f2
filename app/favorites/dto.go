package favorites

import (
	"time"

	"github.com/joefazee/atlas/models"
)

// AddFavoriteRequest names the country to bookmark. Name and flag are looked
// up when omitted.
type AddFavoriteRequest struct {
	CountryCode string `json:"country_code" binding:"required"`
	CountryName string `json:"country_name,omitempty"`
	FlagURL     string `json:"flag_url,omitempty"`
}

// FavoriteResponse is a favorite as returned to its owner.
type FavoriteResponse struct {
	CountryCode string    `json:"country_code"`
	CountryName string    `json:"country_name"`
	FlagURL     string    `json:"flag_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CheckResponse answers whether a country is a favorite.
type CheckResponse struct {
	CountryCode string `json:"country_code"`
	IsFavorite  bool   `json:"is_favorite"`
}

// ToFavoriteResponse converts a models.Favorite to FavoriteResponse
func ToFavoriteResponse(f *models.Favorite) FavoriteResponse {
	return FavoriteResponse{
		CountryCode: f.CountryCode,
		CountryName: f.CountryName,
		FlagURL:     f.FlagURL,
		CreatedAt:   f.CreatedAt,
	}
}

// ToFavoriteResponseList converts a slice, never returning nil.
func ToFavoriteResponseList(favorites []models.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, ToFavoriteResponse(&favorites[i]))
	}
	return out
}
