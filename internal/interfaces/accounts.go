package interfaces

import (
	"github.com/mealmajor/accountd/internal/models"
)

// AccountService is the operation surface the routing/session layer calls
// into. Failures are returned as structured results, never as faults.
type AccountService interface {
	Register(username, password string) models.Result
	Authenticate(username, password string) bool
	Login(username, password string) models.Result
	UpdateProfile(username string, patch models.Record) models.Result
	ChangePassword(username, oldPassword, newPassword string) models.Result
	GetUserAttribute(key, username string) (string, error)
	GetProfile(username string) (*models.Profile, error)
	UsernameAvailable(username string) bool
	Persist()
}
