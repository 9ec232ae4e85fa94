package accounts

const (
	// User-visible result messages. The login failure messages deliberately
	// distinguish an unknown username from a wrong password.
	MsgUserRegistered   = "User registered successfully"
	MsgUsernameTaken    = "Username already exists"
	MsgUnknownUser      = "Username does not exist"
	MsgWrongPassword    = "Incorrect password"
	MsgLoginSuccessful  = "Login successful"
	MsgUserNotFound     = "User not found"
	MsgProfileUpdated   = "Profile updated successfully"
	MsgWrongOldPassword = "Incorrect old password"
	MsgPasswordChanged  = "Password changed successfully"

	// Error messages for account operations
	ErrFailedToHashPassword = "failed to hash password" // #nosec G101
	ErrFailedToPersist      = "failed to persist user records"
)
