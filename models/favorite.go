package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a country a user has bookmarked, keyed by (UserEmail, CountryCode).
type Favorite struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserEmail   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_country" json:"-"`
	CountryCode string    `gorm:"type:varchar(3);not null;uniqueIndex:idx_favorites_user_country" json:"country_code"` // ISO 3166-1 alpha-3
	CountryName string    `gorm:"type:varchar(150)" json:"country_name"`
	FlagURL     string    `gorm:"type:varchar(500)" json:"flag_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Favorite model
func (*Favorite) TableName() string {
	return "favorites"
}

// BeforeCreate sets up the model before creation
func (f *Favorite) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the favorite model
func (f *Favorite) Validate() error {
	if f.UserEmail == "" {
		return ErrInvalidEmail
	}
	if len(f.CountryCode) != 3 {
		return ErrInvalidCountryCode
	}
	return nil
}
