// Package mocks holds hand-written testify mocks for the service
// interfaces, used by the route handler tests.
package mocks

import (
	"testing"

	"github.com/mealmajor/accountd/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockAccountService is a testify mock of interfaces.AccountService.
type MockAccountService struct {
	mock.Mock
}

// NewMockAccountService creates a mock whose expectations are asserted on
// test cleanup.
func NewMockAccountService(t *testing.T) *MockAccountService {
	m := &MockAccountService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountService) Register(username, password string) models.Result {
	args := m.Called(username, password)
	return args.Get(0).(models.Result)
}

func (m *MockAccountService) Authenticate(username, password string) bool {
	args := m.Called(username, password)
	return args.Bool(0)
}

func (m *MockAccountService) Login(username, password string) models.Result {
	args := m.Called(username, password)
	return args.Get(0).(models.Result)
}

func (m *MockAccountService) UpdateProfile(username string, patch models.Record) models.Result {
	args := m.Called(username, patch)
	return args.Get(0).(models.Result)
}

func (m *MockAccountService) ChangePassword(username, oldPassword, newPassword string) models.Result {
	args := m.Called(username, oldPassword, newPassword)
	return args.Get(0).(models.Result)
}

func (m *MockAccountService) GetUserAttribute(key, username string) (string, error) {
	args := m.Called(key, username)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) GetProfile(username string) (*models.Profile, error) {
	args := m.Called(username)
	if profile, ok := args.Get(0).(*models.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountService) UsernameAvailable(username string) bool {
	args := m.Called(username)
	return args.Bool(0)
}

func (m *MockAccountService) Persist() {
	m.Called()
}
