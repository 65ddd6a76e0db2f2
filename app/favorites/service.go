package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joefazee/atlas/app/auth"
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

// CountryLookup resolves a country by alpha-3 code.
type CountryLookup interface {
	FetchByCode(ctx context.Context, code string) (*models.Country, error)
}

type service struct {
	repo      Repository
	countries CountryLookup
	sanitizer sanitizer.HTMLStripperer
	log       logger.Logger
}

// NewService creates a new favorites service
func NewService(repo Repository, lookup CountryLookup, s sanitizer.HTMLStripperer, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{repo: repo, countries: lookup, sanitizer: s, log: log}
}

func owner(sess *auth.Session) (string, error) {
	if sess == nil || sess.User.Email == "" {
		return "", models.ErrUnauthorized
	}
	return sess.User.Email, nil
}

func normalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validator.IsAlpha3(code) {
		return "", models.ErrInvalidCountryCode
	}
	return code, nil
}

func (s *service) Add(ctx context.Context, sess *auth.Session, req *AddFavoriteRequest) (*FavoriteResponse, error) {
	email, err := owner(sess)
	if err != nil {
		return nil, err
	}
	code, err := normalizeCode(req.CountryCode)
	if err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		UserEmail:   email,
		CountryCode: code,
		CountryName: strings.TrimSpace(s.sanitizer.StripHTML(req.CountryName)),
		FlagURL:     strings.TrimSpace(req.FlagURL),
	}
	if favorite.FlagURL != "" && !validator.IsURL(favorite.FlagURL) {
		favorite.FlagURL = ""
	}

	if favorite.CountryName == "" || favorite.FlagURL == "" {
		if err := s.fillFromSource(ctx, favorite); err != nil {
			return nil, err
		}
	}
	if err := favorite.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	s.log.Info("favorite added", map[string]interface{}{"user": sess.User.Name, "country_code": code})
	resp := ToFavoriteResponse(favorite)
	return &resp, nil
}

// fillFromSource completes the name and flag from the country source.
func (s *service) fillFromSource(ctx context.Context, favorite *models.Favorite) error {
	country, err := s.countries.FetchByCode(ctx, favorite.CountryCode)
	switch {
	case errors.Is(err, models.ErrRecordNotFound), countries.IsValidation(err):
		return models.ErrInvalidCountryCode
	case err != nil:
		return fmt.Errorf("lookup %s: %w", favorite.CountryCode, err)
	}

	if favorite.CountryName == "" {
		if name, ok := country.DisplayName(); ok {
			favorite.CountryName = name
		} else {
			favorite.CountryName = favorite.CountryCode
		}
	}
	if favorite.FlagURL == "" {
		favorite.FlagURL, _ = country.FlagURL()
	}
	return nil
}

func (s *service) List(ctx context.Context, sess *auth.Session) ([]FavoriteResponse, error) {
	email, err := owner(sess)
	if err != nil {
		return nil, err
	}

	favorites, err := s.repo.ListByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return ToFavoriteResponseList(favorites), nil
}

func (s *service) IsFavorite(ctx context.Context, sess *auth.Session, code string) (bool, error) {
	email, err := owner(sess)
	if err != nil {
		return false, err
	}
	code, err = normalizeCode(code)
	if err != nil {
		return false, err
	}

	_, err = s.repo.Get(ctx, email, code)
	if errors.Is(err, models.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *service) Remove(ctx context.Context, sess *auth.Session, code string) error {
	email, err := owner(sess)
	if err != nil {
		return err
	}
	code, err = normalizeCode(code)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, email, code)
}
