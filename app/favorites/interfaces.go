package favorites

import (
	"context"

	"github.com/joefazee/atlas/app/auth"
	"github.com/joefazee/atlas/models"
)

// Repository persists favorites keyed by (user email, country code).
type Repository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	ListByUser(ctx context.Context, email string) ([]models.Favorite, error)
	Get(ctx context.Context, email, code string) (*models.Favorite, error)
	Delete(ctx context.Context, email, code string) error
}

// Service is the favorites boundary. Every call takes the caller's session.
type Service interface {
	Add(ctx context.Context, sess *auth.Session, req *AddFavoriteRequest) (*FavoriteResponse, error)
	List(ctx context.Context, sess *auth.Session) ([]FavoriteResponse, error)
	IsFavorite(ctx context.Context, sess *auth.Session, code string) (bool, error)
	Remove(ctx context.Context, sess *auth.Session, code string) error
}
