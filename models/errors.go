package models

import "errors"

var (
	ErrInvalidCountryCode = errors.New("invalid country code")
	ErrInvalidRegion      = errors.New("invalid region")

	ErrInvalidEmail = errors.New("invalid email address")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	ErrFavoriteExists = errors.New("country is already a favorite")

	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrUpstream       = errors.New("upstream request failed")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials are not configured")
)
