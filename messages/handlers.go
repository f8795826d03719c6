package messages

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/messagely-go/apperror"
	"github.com/user/messagely-go/auth"
)

// MessageHandler handles HTTP requests for messages.
type MessageHandler struct {
	service MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// RegisterRoutes registers the message API routes with a chi.Router. The
// router group is expected to already carry the logged-in gate; per-message
// party checks happen in the handlers because they need the row itself.
func (h *MessageHandler) RegisterRoutes(router chi.Router) {
	router.Post("/", h.sendMessage)
	router.Get("/{id}", h.getMessage)
	router.Post("/{id}/read", h.markRead)
}

// messageID parses the {id} path parameter.
func messageID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewBadRequestError("message id must be an integer", err)
	}
	return id, nil
}

// getMessage godoc
// @Summary Get a message
// @Description Returns one message with both parties' public profiles. Only the sender or the recipient may view it.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} apperror.ErrorResponse "Not a party to this message"
// @Failure 404 {object} apperror.ErrorResponse "No such message"
// @Router /messages/{id} [get]
func (h *MessageHandler) getMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("Unauthorized", nil))
		return
	}

	id, err := messageID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	msg, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	if claims.Username != msg.FromUser.Username && claims.Username != msg.ToUser.Username {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("Unauthorized", nil))
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: *msg})
}

// sendMessage godoc
// @Summary Send a message
// @Description Creates a message from the authenticated user to the named recipient.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param messageBody body SendMessageRequest true "Recipient and body"
// @Success 201 {object} SentMessageResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or malformed body"
// @Failure 401 {object} apperror.ErrorResponse "Not logged in"
// @Failure 404 {object} apperror.ErrorResponse "No such recipient"
// @Router /messages [post]
func (h *MessageHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("Unauthorized", nil))
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	if req.ToUsername == "" || req.Body == "" {
		auth.WriteError(w, r, apperror.NewBadRequestError("to_username and body are required", nil))
		return
	}

	msg, err := h.service.Create(r.Context(), claims.Username, req.ToUsername, req.Body)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, SentMessageResponse{Message: *msg})
}

// markRead godoc
// @Summary Mark a message read
// @Description Sets read_at on a message. Only the recipient may mark it read.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} ReadReceiptResponse
// @Failure 401 {object} apperror.ErrorResponse "Not the recipient"
// @Failure 404 {object} apperror.ErrorResponse "No such message"
// @Router /messages/{id}/read [post]
func (h *MessageHandler) markRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("Unauthorized", nil))
		return
	}

	id, err := messageID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	// Fetch first: the recipient check needs the row, and an update must not
	// happen for anyone else.
	msg, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if claims.Username != msg.ToUser.Username {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("Unauthorized", nil))
		return
	}

	receipt, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ReadReceiptResponse{Message: *receipt})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
