// Package accounts implements the account operations: registration,
// authentication, login, profile updates, and password rotation. Each
// operation composes the store with the credential policy and returns a
// structured result; no failure here is fatal to the process.
package accounts

import (
	"errors"

	"github.com/mealmajor/accountd/internal/interfaces"
	"github.com/mealmajor/accountd/internal/models"
	"github.com/mealmajor/accountd/internal/policy"
	"github.com/mealmajor/accountd/pkg/helper"
)

// Sentinel errors for attribute reads. An unknown user and an unknown
// attribute are distinct outcomes so the boundary can map them to distinct
// responses.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAttributeNotFound = errors.New("attribute not found")
)

// Service implements the account operations on top of a user store.
type Service struct {
	Store  interfaces.UserStore
	Logger interfaces.Logger
}

// NewService creates a new account Service instance.
func NewService(store interfaces.UserStore, logger interfaces.Logger) *Service {
	return &Service{
		Store:  store,
		Logger: logger,
	}
}

// Register creates a new account. It fails when the username is taken or the
// password misses the strength floor; otherwise the record is created with a
// hashed password, filled out from the schema template, and persisted.
func (s *Service) Register(username, password string) models.Result {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if !s.UsernameAvailable(username) {
		s.Logger.Info("Registration rejected, username taken", "func", funcName, "user", username)
		return models.Fail(MsgUsernameTaken)
	}

	if !policy.IsPasswordStrong(password) {
		s.Logger.Info("Registration rejected, weak password", "func", funcName, "user", username)
		return models.Fail(policy.StrengthMessage)
	}

	hashedPassword, err := policy.HashPassword(password)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return models.Fail(ErrFailedToHashPassword)
	}

	s.Store.AddUser(models.NewRecord(username, hashedPassword))
	s.persist(funcName)

	s.Logger.Info("User registered successfully", "func", funcName, "user", username)
	return models.Ok(MsgUserRegistered)
}

// Authenticate reports whether a record with the exact username exists and
// the password matches its stored hash. This is a building block; Login is
// the user-facing entry point.
func (s *Service) Authenticate(username, password string) bool {
	record, ok := s.Store.GetUser(username)
	if !ok {
		return false
	}
	return policy.CheckPassword(record.Password(), password)
}

// Login validates credentials with distinguishable failures: existence is
// checked before password correctness so the caller can tell an unknown
// username apart from a wrong password.
func (s *Service) Login(username, password string) models.Result {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if s.UsernameAvailable(username) {
		s.Logger.Info("Login failed, unknown user", "func", funcName, "user", username)
		return models.Fail(MsgUnknownUser)
	}

	if !s.Authenticate(username, password) {
		s.Logger.Info("Login failed, wrong password", "func", funcName, "user", username)
		return models.Fail(MsgWrongPassword)
	}

	s.Logger.Info("User logged in", "func", funcName, "user", username)
	return models.Ok(MsgLoginSuccessful)
}

// UpdateProfile merges every key in patch into the user's record, patch
// values fully overwriting existing ones, then persists. The record is
// re-migrated so template completeness holds afterwards. This core
// operation does no key allow-listing; the HTTP boundary filters username
// and password out of patches before calling it.
func (s *Service) UpdateProfile(username string, patch models.Record) models.Result {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if !s.Store.UpdateUser(username, patch) {
		s.Logger.Info("Profile update failed, unknown user", "func", funcName, "user", username)
		return models.Fail(MsgUserNotFound)
	}
	s.persist(funcName)

	s.Logger.Info("Profile updated", "func", funcName, "user", username)
	return models.Ok(MsgProfileUpdated)
}

// ChangePassword rotates a user's password. The old password must match the
// stored hash and the new password must satisfy the same strength floor as
// registration; strength checking lives here rather than only at the
// boundary so no caller can bypass it.
func (s *Service) ChangePassword(username, oldPassword, newPassword string) models.Result {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	record, ok := s.Store.GetUser(username)
	if !ok || !policy.CheckPassword(record.Password(), oldPassword) {
		s.Logger.Info("Password change rejected, wrong old password", "func", funcName, "user", username)
		return models.Fail(MsgWrongOldPassword)
	}

	if !policy.IsPasswordStrong(newPassword) {
		s.Logger.Info("Password change rejected, weak password", "func", funcName, "user", username)
		return models.Fail(policy.StrengthMessage)
	}

	hashedPassword, err := policy.HashPassword(newPassword)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return models.Fail(ErrFailedToHashPassword)
	}

	s.Store.UpdateUser(username, models.Record{models.KeyPassword: hashedPassword})
	s.persist(funcName)

	s.Logger.Info("Password changed", "func", funcName, "user", username)
	return models.Ok(MsgPasswordChanged)
}

// GetUserAttribute reads a single attribute from a user's record. It returns
// ErrUserNotFound when no such user exists and ErrAttributeNotFound when the
// user exists but carries no such key.
func (s *Service) GetUserAttribute(key, username string) (string, error) {
	record, ok := s.Store.GetUser(username)
	if !ok {
		return "", ErrUserNotFound
	}
	value, ok := record[key]
	if !ok {
		return "", ErrAttributeNotFound
	}
	return value, nil
}

// GetProfile returns the typed profile view of a user's record.
func (s *Service) GetProfile(username string) (*models.Profile, error) {
	record, ok := s.Store.GetUser(username)
	if !ok {
		return nil, ErrUserNotFound
	}
	return models.ProfileFromRecord(record)
}

// UsernameAvailable reports whether no record holds the exact username.
func (s *Service) UsernameAvailable(username string) bool {
	_, ok := s.Store.GetUser(username)
	return !ok
}

// RemoveAccount deletes the record only when both username and password
// match. Not exposed over the HTTP boundary; part of the store contract.
func (s *Service) RemoveAccount(username, password string) {
	s.Store.RemoveUser(username, password)
	s.persist(helper.GetFuncName())
}

// Persist flushes the store explicitly, invoked by the boundary at
// logout/session end.
func (s *Service) Persist() {
	s.persist(helper.GetFuncName())
}

// persist saves the store and logs failures. A failed save keeps the
// in-memory state authoritative; the write is retried on the next mutation.
func (s *Service) persist(funcName string) {
	if err := s.Store.Save(); err != nil {
		s.Logger.Error(ErrFailedToPersist, "func", funcName, "error", err)
	}
}
