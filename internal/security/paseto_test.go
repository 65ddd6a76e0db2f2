package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdefghijklmnopqrstuv"

func TestNewPasetoMaker_KeySize(t *testing.T) {
	_, err := NewPasetoMaker("short")
	assert.Error(t, err)

	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)
	assert.NotNil(t, maker)
}

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	token, payload, err := maker.CreateToken("session-1", "jane@example.com", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, strings.HasPrefix(token, "v2.local."))

	got, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload.ID, got.ID)
	assert.Equal(t, "session-1", got.SessionID)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.WithinDuration(t, payload.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestPasetoMaker_ExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	token, _, err := maker.CreateToken("session-1", "jane@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoMaker_InvalidToken(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)
	other, err := NewPasetoMaker("vutsrqponmlkjihgfedcba9876543210")
	require.NoError(t, err)

	token, _, err := other.CreateToken("session-1", "jane@example.com", time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = maker.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPayload_Valid(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr error
	}{
		{"valid", Payload{SessionID: "s1", Email: "jane@example.com", ExpiresAt: time.Now().Add(time.Minute)}, nil},
		{"no session", Payload{Email: "jane@example.com", ExpiresAt: time.Now().Add(time.Minute)}, ErrInvalidToken},
		{"no email", Payload{SessionID: "s1", ExpiresAt: time.Now().Add(time.Minute)}, ErrInvalidToken},
		{"expired", Payload{SessionID: "s1", Email: "jane@example.com", ExpiresAt: time.Now().Add(-time.Minute)}, ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Valid()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
