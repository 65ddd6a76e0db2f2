package favorites

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joefazee/atlas/models"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, favorite *models.Favorite) error {
	err := r.db.WithContext(ctx).Create(favorite).Error
	if isUniqueViolation(err) {
		return models.ErrFavoriteExists
	}
	return err
}

func (r *repository) ListByUser(ctx context.Context, email string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at ASC").
		Find(&favorites).Error
	return favorites, err
}

func (r *repository) Get(ctx context.Context, email, code string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND country_code = ?", email, code).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *repository) Delete(ctx context.Context, email, code string) error {
	result := r.db.WithContext(ctx).
		Where("user_email = ? AND country_code = ?", email, code).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
