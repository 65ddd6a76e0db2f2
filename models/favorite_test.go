package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFavorite_TableName(t *testing.T) {
	assert.Equal(t, "favorites", (&Favorite{}).TableName())
}

func TestFavorite_BeforeCreate(t *testing.T) {
	t.Run("assigns an id when missing", func(t *testing.T) {
		f := &Favorite{}
		assert.NoError(t, f.BeforeCreate(nil))
		assert.NotEqual(t, uuid.Nil, f.ID)
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		id := uuid.New()
		f := &Favorite{ID: id}
		assert.NoError(t, f.BeforeCreate(nil))
		assert.Equal(t, id, f.ID)
	})
}

func TestFavorite_Validate(t *testing.T) {
	tests := []struct {
		name     string
		favorite Favorite
		wantErr  error
	}{
		{"valid", Favorite{UserEmail: "jane@example.com", CountryCode: "DEU"}, nil},
		{"missing email", Favorite{CountryCode: "DEU"}, ErrInvalidEmail},
		{"short code", Favorite{UserEmail: "jane@example.com", CountryCode: "DE"}, ErrInvalidCountryCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.favorite.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
