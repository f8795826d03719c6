package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/messagely-go/auth"
)

// Service is the surface the HTTP handlers need from the user service.
type Service interface {
	All(ctx context.Context) ([]UserSummary, error)
	Get(ctx context.Context, username string) (*UserDetail, error)
	MessagesFrom(ctx context.Context, username string) ([]MessageSummary, error)
	MessagesTo(ctx context.Context, username string) ([]MessageSummary, error)
}

// UserHandlers provides HTTP handlers for the user listing endpoints.
type UserHandlers struct {
	service Service
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service Service) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleListUsers godoc
// @Summary List all users
// @Description Returns the public fields of every user, ordered by username.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UsersResponse
// @Failure 401 {object} apperror.ErrorResponse "Not logged in"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.All(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		respondJSON(w, UsersResponse{Users: list})
	}
}

// HandleGetUser godoc
// @Summary Get one user
// @Description Returns a user's public fields plus join and last-login timestamps.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} UserResponse
// @Failure 401 {object} apperror.ErrorResponse "Not the same user"
// @Failure 404 {object} apperror.ErrorResponse "No such user"
// @Router /users/{username} [get]
func (h *UserHandlers) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.service.Get(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		respondJSON(w, UserResponse{User: *user})
	}
}

// HandleMessagesTo godoc
// @Summary List messages to a user
// @Description Returns all messages addressed to the user, each with the sender's public profile.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} MessagesToResponse
// @Failure 401 {object} apperror.ErrorResponse "Not the same user"
// @Failure 404 {object} apperror.ErrorResponse "No such user"
// @Router /users/{username}/to [get]
func (h *UserHandlers) HandleMessagesTo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.service.MessagesTo(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		respondJSON(w, MessagesToResponse{MessagesTo: messages})
	}
}

// HandleMessagesFrom godoc
// @Summary List messages from a user
// @Description Returns all messages sent by the user, each with the recipient's public profile.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} MessagesFromResponse
// @Failure 401 {object} apperror.ErrorResponse "Not the same user"
// @Failure 404 {object} apperror.ErrorResponse "No such user"
// @Router /users/{username}/from [get]
func (h *UserHandlers) HandleMessagesFrom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.service.MessagesFrom(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		respondJSON(w, MessagesFromResponse{MessagesFrom: messages})
	}
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}
