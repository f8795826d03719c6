package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/user/messagely-go/apperror"
)

// Service is the surface the HTTP handlers need from the auth service.
// Declaring it on the consumer side keeps the handlers testable with fakes.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	IssueToken(username string) (string, error)
}

// Handlers wraps the auth service to provide HTTP handlers.
type Handlers struct {
	service Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.TokenResponse "User created, token issued"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or malformed body"
// @Failure 409 {object} apperror.ErrorResponse "Username already taken"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		// Presence checks only
		if req.Username == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" || req.Phone == "" {
			WriteError(w, r, apperror.NewBadRequestError("username, password, first_name, last_name, and phone are required", nil))
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		token, err := h.service.IssueToken(user.Username)
		if err != nil {
			WriteError(w, r, apperror.NewInternalError("failed to issue token", err))
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or invalid username/password"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes a standardized error response for any error. Errors that
// are not *apperror.AppError are wrapped as generic internal errors so the
// response shape stays uniform.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
