package accounts

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mealmajor/accountd/internal/models"
	"github.com/mealmajor/accountd/internal/schema"
	"github.com/mealmajor/accountd/internal/store"
	zerologger "github.com/mealmajor/accountd/pkg/zerolog"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := zerologger.NewZerologLogger("accounts-test")
	path := filepath.Join(t.TempDir(), "user_data.json")
	userStore := store.NewFileStore(path, schema.NewTemplate(schema.DefaultAttributes()), logger)
	userStore.Load()
	return NewService(userStore, logger)
}

func TestService_Register(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name        string
		username    string
		password    string
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "successful registration",
			username:    "alice",
			password:    "Valid123",
			wantSuccess: true,
			wantMessage: MsgUserRegistered,
		},
		{
			name:        "duplicate username",
			username:    "alice",
			password:    "Other123",
			wantSuccess: false,
			wantMessage: MsgUsernameTaken,
		},
		{
			name:        "weak password",
			username:    "bob",
			password:    "weak",
			wantSuccess: false,
			wantMessage: "Password must be at least 8 characters with uppercase, lowercase, and a number",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Register(tt.username, tt.password)
			if got.Success != tt.wantSuccess || got.Message != tt.wantMessage {
				t.Errorf("Register() = %+v, want {%v %q}", got, tt.wantSuccess, tt.wantMessage)
			}
		})
	}

	// the failed duplicate left the original record intact
	if !s.Authenticate("alice", "Valid123") {
		t.Error("original credentials no longer authenticate after a duplicate register attempt")
	}
	if s.Authenticate("alice", "Other123") {
		t.Error("duplicate register attempt replaced the stored password")
	}
	if s.Store.Count() != 1 {
		t.Errorf("store holds %d records, want 1", s.Store.Count())
	}
}

func TestService_RegisterStoresHashedPassword(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")

	record, ok := s.Store.GetUser("alice")
	if !ok {
		t.Fatal("record missing after registration")
	}
	if record.Password() == "Valid123" {
		t.Error("password stored in plaintext")
	}
	for _, key := range []string{"fullName", "diet", "allergies", "preferences"} {
		if _, present := record[key]; !present {
			t.Errorf("new record missing template key %q", key)
		}
	}
}

func TestService_Login(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")

	tests := []struct {
		name        string
		username    string
		password    string
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "unknown username",
			username:    "ghost",
			password:    "x",
			wantSuccess: false,
			wantMessage: "Username does not exist",
		},
		{
			name:        "wrong password",
			username:    "alice",
			password:    "wrongpw",
			wantSuccess: false,
			wantMessage: "Incorrect password",
		},
		{
			name:        "correct credentials",
			username:    "alice",
			password:    "Valid123",
			wantSuccess: true,
			wantMessage: "Login successful",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Login(tt.username, tt.password)
			if got.Success != tt.wantSuccess || got.Message != tt.wantMessage {
				t.Errorf("Login() = %+v, want {%v %q}", got, tt.wantSuccess, tt.wantMessage)
			}
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")

	if got := s.UpdateProfile("ghost", models.Record{"diet": "vegan"}); got.Success || got.Message != MsgUserNotFound {
		t.Errorf("UpdateProfile(ghost) = %+v, want {false %q}", got, MsgUserNotFound)
	}

	got := s.UpdateProfile("alice", models.Record{"diet": "vegan", "fullName": "Alice Example"})
	if !got.Success || got.Message != MsgProfileUpdated {
		t.Fatalf("UpdateProfile() = %+v, want {true %q}", got, MsgProfileUpdated)
	}

	record, _ := s.Store.GetUser("alice")
	if record["diet"] != "vegan" || record["fullName"] != "Alice Example" {
		t.Errorf("record = %v, patch not applied", record)
	}
	if _, ok := record["preferences"]; !ok {
		t.Error("record lost template completeness after profile update")
	}
}

func TestService_ChangePassword(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")

	if got := s.ChangePassword("alice", "wrongOld", "NewPass1"); got.Success || got.Message != MsgWrongOldPassword {
		t.Errorf("ChangePassword(wrong old) = %+v, want {false %q}", got, MsgWrongOldPassword)
	}
	if !s.Authenticate("alice", "Valid123") {
		t.Fatal("stored password changed despite a wrong old password")
	}

	if got := s.ChangePassword("alice", "Valid123", "weak"); got.Success {
		t.Errorf("ChangePassword(weak new) = %+v, want failure", got)
	}
	if !s.Authenticate("alice", "Valid123") {
		t.Fatal("stored password changed despite a weak new password")
	}

	got := s.ChangePassword("alice", "Valid123", "NewPass1")
	if !got.Success || got.Message != MsgPasswordChanged {
		t.Fatalf("ChangePassword() = %+v, want {true %q}", got, MsgPasswordChanged)
	}

	if login := s.Login("alice", "NewPass1"); !login.Success {
		t.Error("login with the new password failed after a successful change")
	}
	if login := s.Login("alice", "Valid123"); login.Success {
		t.Error("login with the old password still succeeds after a change")
	}
}

func TestService_GetUserAttribute(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")
	s.UpdateProfile("alice", models.Record{"diet": "vegan"})

	value, err := s.GetUserAttribute("diet", "alice")
	if err != nil || value != "vegan" {
		t.Errorf("GetUserAttribute(diet) = (%q, %v), want (%q, nil)", value, err, "vegan")
	}

	if _, err := s.GetUserAttribute("diet", "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserAttribute for unknown user: err = %v, want ErrUserNotFound", err)
	}

	if _, err := s.GetUserAttribute("shoeSize", "alice"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("GetUserAttribute for unknown key: err = %v, want ErrAttributeNotFound", err)
	}
}

func TestService_GetProfile(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")
	s.UpdateProfile("alice", models.Record{"fullName": "Alice Example", "diet": "vegan"})

	profile, err := s.GetProfile("alice")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Username != "alice" || profile.FullName != "Alice Example" || profile.Diet != "vegan" {
		t.Errorf("GetProfile() = %+v", profile)
	}

	if _, err := s.GetProfile("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetProfile(ghost) err = %v, want ErrUserNotFound", err)
	}
}

func TestService_RemoveAccount(t *testing.T) {
	s := newTestService(t)
	s.Register("alice", "Valid123")

	s.RemoveAccount("alice", "WrongPw1")
	if s.UsernameAvailable("alice") {
		t.Fatal("RemoveAccount() deleted the record despite a wrong password")
	}

	s.RemoveAccount("alice", "Valid123")
	if !s.UsernameAvailable("alice") {
		t.Error("RemoveAccount() kept the record despite matching credentials")
	}
}

func TestService_UniquenessAcrossRegisters(t *testing.T) {
	s := newTestService(t)

	usernames := []string{"alice", "bob", "alice", "carol", "bob", "alice"}
	for _, username := range usernames {
		s.Register(username, "Valid123")
	}

	if s.Store.Count() != 3 {
		t.Errorf("store holds %d records after duplicate registers, want 3", s.Store.Count())
	}
}
