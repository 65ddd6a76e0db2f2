package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := New()
	require.NotNil(t, v.Errors)
	assert.True(t, v.Valid())

	v.Check(true, "email", "email is required")
	assert.True(t, v.Valid())

	v.Check(false, "password", "password is too short")
	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"password": "password is too short"}, v.Errors)
}

func TestValidator_AddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("password", "first")
	v.AddError("password", "second")
	assert.Equal(t, "first", v.Errors["password"])
}

func TestNewValidationError(t *testing.T) {
	v := New()
	v.AddError("region", "must be one of africa, asia")

	err := NewValidationError("Unknown region", v.Errors)
	assert.EqualError(t, err, "Unknown region")
	assert.Equal(t, "must be one of africa, asia", err.Fields["region"])
}
