package routes

var (
	SignupDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	LoginDurationSecondsBuckets  = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	MetricsRouteAPI        = "/metrics"
	SignupRouteAPI         = "/signup"
	LoginRouteAPI          = "/login"
	LogoutRouteAPI         = "/logout"
	ProfileRouteAPI        = "/profile"
	ChangePasswordRouteAPI = "/password"
	UserAttributeRouteAPI  = "/user/"

	// Session cookie established on login
	SessionCookieName = "session_token"

	// Content-Type constants
	ContentType      = "Content-Type"
	ContentTypeJson  = "application/json"
	ContentTypePlain = "text/plain; charset=utf-8"

	// message constants
	MsgLoggedOut        = "Logged out"
	MsgPasswordMismatch = "New password and confirmation do not match"
	MsgPasswordReused   = "New password must differ from the old password"

	// Error messages
	ErrMethodNotAllowed         = "Method not allowed"
	ErrInvalidContentType       = "Request Content-Type must be application/json"
	ErrInvalidRequestBody       = "Invalid request body"
	ErrValidationFailed         = "Request data validation failed"
	ErrFailedToEncodeResponse   = "Failed to encode response"
	ErrFailedToGenerateToken    = "Failed to generate session token"
	ErrNotAuthenticated         = "Not authenticated"
	ErrAttributeNotFound        = "Attribute not found"
	ErrUserNotFound             = "User not found"
	ErrInvalidContentTypeFormat = "invalid content-type: %s"

	// metrics constants
	SignupRequestsTotal       = "signup_requests_total"
	SignupRequestsTotalHelp   = "Total number of signup requests received"
	SignupSuccessTotal        = "signup_success_total"
	SignupSuccessTotalHelp    = "Total number of successful signup requests"
	SignupErrorsTotal         = "signup_errors_total"
	SignupErrorsTotalHelp     = "Total number of errors during signup requests"
	SignupDurationSeconds     = "signup_duration_seconds"
	SignupDurationSecondsHelp = "Duration of signup requests in seconds"
	LoginRequestsTotal        = "login_requests_total"
	LoginRequestsTotalHelp    = "Total number of login requests received"
	LoginSuccessTotal         = "login_success_total"
	LoginSuccessTotalHelp     = "Total number of successful login requests"
	LoginFailedTotal          = "login_failed_total"
	LoginFailedTotalHelp      = "Total number of failed login requests"
	LoginDurationSeconds      = "login_duration_seconds"
	LoginDurationSecondsHelp  = "Duration of login requests in seconds"
	ProfileReadsTotal         = "profile_reads_total"
	ProfileReadsTotalHelp     = "Total number of profile and attribute reads"
	ProfileUpdatesTotal       = "profile_updates_total"
	ProfileUpdatesTotalHelp   = "Total number of profile update requests"
	ProfileErrorsTotal        = "profile_errors_total"
	ProfileErrorsTotalHelp    = "Total number of errors during profile requests"
	PasswordChangesTotal      = "password_changes_total"
	PasswordChangesTotalHelp  = "Total number of password change requests"
	PasswordErrorsTotal       = "password_errors_total"
	PasswordErrorsTotalHelp   = "Total number of errors during password change requests"
	RegisteredUsersGauge      = "registered_users"
	RegisteredUsersGaugeHelp  = "Number of user records currently in the store"
)
