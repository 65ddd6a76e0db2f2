package security

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockMaker lets tests script token issue and verification.
type MockMaker struct {
	mock.Mock
}

var _ Maker = (*MockMaker)(nil)

func (m *MockMaker) CreateToken(sessionID, email string, duration time.Duration) (string, *Payload, error) {
	args := m.Called(sessionID, email, duration)
	payload, _ := args.Get(1).(*Payload)
	return args.String(0), payload, args.Error(2)
}

func (m *MockMaker) VerifyToken(token string) (*Payload, error) {
	args := m.Called(token)
	payload, _ := args.Get(0).(*Payload)
	return payload, args.Error(1)
}
