// Package routes is the thin HTTP boundary over the account operations:
// JSON request decoding, DTO validation, session cookies, and metrics. All
// account semantics live below it.
package routes

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mealmajor/accountd/internal/accounts"
	"github.com/mealmajor/accountd/internal/auth"
	"github.com/mealmajor/accountd/internal/interfaces"
	"github.com/mealmajor/accountd/internal/models"
	"github.com/mealmajor/accountd/internal/models/dto"

	structValidator "github.com/go-playground/validator/v10"
)

type Route struct {
	Metrics    interfaces.Metrics
	Accounts   interfaces.AccountService
	PrivateKey *ecdsa.PrivateKey
	Logger     interfaces.Logger
	validator  *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, accountService interfaces.AccountService,
	privateKey *ecdsa.PrivateKey, validator *structValidator.Validate, logger interfaces.Logger,
) *Route {
	return &Route{
		Metrics:    metrics,
		Accounts:   accountService,
		PrivateKey: privateKey,
		Logger:     logger,
		validator:  validator,
	}
}

// Signup handles registration requests.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupRequestsTotal)
	}

	signupRequest := &dto.SignupRequestDTO{}
	if !r.decodeBody(w, req, signupRequest, SignupErrorsTotal) {
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	result := r.Accounts.Register(signupRequest.Username, signupRequest.Password)
	if !result.Success {
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(http.StatusConflict)
		if r.Metrics != nil {
			r.Metrics.IncCounter(SignupErrorsTotal)
		}
		r.encodeResponse(w, &dto.SignupResponseDTO{Message: result.Message})
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupSuccessTotal)
		r.Metrics.ObserveHistogram(SignupDurationSeconds, time.Since(startTime).Seconds())
	}

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusCreated)
	r.encodeResponse(w, &dto.SignupResponseDTO{Message: result.Message})
}

// Login handles login requests. On success a session cookie keyed by the
// username is established; the account core itself stays session-agnostic.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginRequestsTotal)
	}

	loginRequest := &dto.LoginRequestDTO{}
	if !r.decodeBody(w, req, loginRequest, LoginFailedTotal) {
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	result := r.Accounts.Login(loginRequest.Username, loginRequest.Password)
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(LoginDurationSeconds, time.Since(startTime).Seconds())
	}
	if !result.Success {
		// The message distinguishes an unknown username from a wrong
		// password on purpose.
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(http.StatusUnauthorized)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		r.encodeResponse(w, &dto.LoginResponseDTO{Message: result.Message})
		return
	}

	sessionToken, err := auth.CreateToken(loginRequest.Username, r.PrivateKey)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToGenerateToken)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginSuccessTotal)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
	})

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusOK)
	r.encodeResponse(w, &dto.LoginResponseDTO{Message: result.Message})
}

// UserAttribute serves single-field reads of the session user's record, one
// request per field, e.g. GET /user/diet. An unauthenticated request and an
// unknown attribute are distinct failures.
func (r *Route) UserAttribute(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	username, ok := r.sessionUser(w, req)
	if !ok {
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(ProfileReadsTotal)
	}

	key := strings.TrimPrefix(req.URL.Path, UserAttributeRouteAPI)
	value, err := r.Accounts.GetUserAttribute(key, username)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			r.errorResponse(w, err, ErrUserNotFound)
		case errors.Is(err, accounts.ErrAttributeNotFound):
			w.WriteHeader(http.StatusNotFound)
			r.errorResponse(w, err, ErrAttributeNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			r.errorResponse(w, err, ErrFailedToEncodeResponse)
		}
		return
	}

	w.Header().Set(ContentType, ContentTypePlain)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(value))
}

// Profile serves the session user's profile: GET returns the typed profile
// view, POST applies a field patch. The DTO is the allow-list; username and
// password can never enter a patch through this boundary.
func (r *Route) Profile(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		r.profileRead(w, req)
	case http.MethodPost:
		r.profileUpdate(w, req)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
	}
}

func (r *Route) profileRead(w http.ResponseWriter, req *http.Request) {
	username, ok := r.sessionUser(w, req)
	if !ok {
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(ProfileReadsTotal)
	}

	profile, err := r.Accounts.GetProfile(username)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		r.errorResponse(w, err, ErrUserNotFound)
		return
	}

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusOK)
	r.encodeResponse(w, profile)
}

func (r *Route) profileUpdate(w http.ResponseWriter, req *http.Request) {
	username, ok := r.sessionUser(w, req)
	if !ok {
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(ProfileUpdatesTotal)
	}

	updateRequest := &dto.ProfileUpdateRequestDTO{}
	if !r.decodeBody(w, req, updateRequest, ProfileErrorsTotal) {
		return
	}

	patch := models.Record{}
	if updateRequest.FullName != nil {
		patch["fullName"] = *updateRequest.FullName
	}
	if updateRequest.Diet != nil {
		patch["diet"] = *updateRequest.Diet
	}
	if updateRequest.Allergies != nil {
		patch["allergies"] = *updateRequest.Allergies
	}
	if updateRequest.Preferences != nil {
		patch["preferences"] = *updateRequest.Preferences
	}

	result := r.Accounts.UpdateProfile(username, patch)
	w.Header().Set(ContentType, ContentTypeJson)
	if !result.Success {
		w.WriteHeader(http.StatusNotFound)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	r.encodeResponse(w, &dto.ProfileUpdateResponseDTO{Message: result.Message})
}

// ChangePassword handles password rotation for the session user. The
// confirmation match and old/new distinctness are boundary concerns; the
// old-password gate and the strength floor are enforced by the core.
func (r *Route) ChangePassword(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	username, ok := r.sessionUser(w, req)
	if !ok {
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(PasswordChangesTotal)
	}

	changeRequest := &dto.ChangePasswordRequestDTO{}
	if !r.decodeBody(w, req, changeRequest, PasswordErrorsTotal) {
		return
	}

	w.Header().Set(ContentType, ContentTypeJson)

	if changeRequest.NewPassword != changeRequest.ConfirmPassword {
		w.WriteHeader(http.StatusBadRequest)
		r.encodeResponse(w, &dto.ChangePasswordResponseDTO{Message: MsgPasswordMismatch})
		return
	}
	if changeRequest.NewPassword == changeRequest.OldPassword {
		w.WriteHeader(http.StatusBadRequest)
		r.encodeResponse(w, &dto.ChangePasswordResponseDTO{Message: MsgPasswordReused})
		return
	}

	result := r.Accounts.ChangePassword(username, changeRequest.OldPassword, changeRequest.NewPassword)
	if !result.Success {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	r.encodeResponse(w, &dto.ChangePasswordResponseDTO{Message: result.Message})
}

// Logout flushes the store and clears the session cookie. Logout is valid
// even with an expired session; the flush is the point.
func (r *Route) Logout(w http.ResponseWriter, req *http.Request) {
	r.Accounts.Persist()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusOK)
	r.encodeResponse(w, map[string]string{"message": MsgLoggedOut})
}

// sessionUser recovers the username from the session cookie. On failure it
// writes a 401 response and reports false.
func (r *Route) sessionUser(w http.ResponseWriter, req *http.Request) (string, bool) {
	cookie, err := req.Cookie(SessionCookieName)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		r.errorResponse(w, err, ErrNotAuthenticated)
		return "", false
	}

	claims, err := auth.VerifyToken(cookie.Value, &r.PrivateKey.PublicKey)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		r.errorResponse(w, err, ErrNotAuthenticated)
		return "", false
	}

	return claims.Username, true
}

// decodeBody enforces the JSON content type, decodes the request body into
// dest, and validates it. On failure it writes the response, bumps the given
// error counter, and reports false.
func (r *Route) decodeBody(w http.ResponseWriter, req *http.Request, dest interface{}, errCounter string) bool {
	if req.Header.Get(ContentType) != ContentTypeJson {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)), ErrInvalidContentType)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errCounter)
		}
		return false
	}

	if err := json.NewDecoder(req.Body).Decode(dest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidRequestBody)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errCounter)
		}
		return false
	}

	if err := r.validator.Struct(dest); err != nil {
		errors := err.(structValidator.ValidationErrors)
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid request data: %s", errors), ErrValidationFailed)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errCounter)
		}
		return false
	}

	return true
}

func (r *Route) encodeResponse(w http.ResponseWriter, response interface{}) {
	if err := json.NewEncoder(w).Encode(response); err != nil && r.Logger != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "error", err)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, err error, message string) {
	jsonResponse := map[string]string{
		"error":   err.Error(),
		"message": message,
	}
	_ = json.NewEncoder(w).Encode(jsonResponse)
}
