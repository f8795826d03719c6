package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/user/messagely-go/apperror"
)

// fakeAuthService implements Service with canned behavior so the handlers can
// be exercised without a database.
type fakeAuthService struct {
	registered map[string]bool
	password   string
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{registered: map[string]bool{}, password: "p1"}
}

func (f *fakeAuthService) Register(_ context.Context, req RegisterRequest) (*User, error) {
	if f.registered[req.Username] {
		return nil, apperror.NewConflictError("username '"+req.Username+"' already exists", nil)
	}
	f.registered[req.Username] = true
	now := time.Now()
	return &User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		JoinAt:    now, LastLoginAt: now,
	}, nil
}

func (f *fakeAuthService) Login(_ context.Context, req LoginRequest) (*TokenResponse, error) {
	if !f.registered[req.Username] || req.Password != f.password {
		return nil, apperror.NewInvalidCredentialsError("invalid username/password", nil)
	}
	return &TokenResponse{Token: "token-for-" + req.Username}, nil
}

func (f *fakeAuthService) IssueToken(username string) (string, error) {
	return "token-for-" + username, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleRegister_IssuesToken(t *testing.T) {
	h := NewHandlers(newFakeAuthService())

	w := postJSON(t, h.HandleRegister(),
		`{"username":"u1","password":"p1","first_name":"A","last_name":"B","phone":"555"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	assert.NotEmpty(t, resp.Token)
}

func TestHandleRegister_DuplicateUsernameConflicts(t *testing.T) {
	h := NewHandlers(newFakeAuthService())
	body := `{"username":"u1","password":"p1","first_name":"A","last_name":"B","phone":"555"}`

	w := postJSON(t, h.HandleRegister(), body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, h.HandleRegister(), body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestHandleRegister_MissingFields(t *testing.T) {
	h := NewHandlers(newFakeAuthService())

	w := postJSON(t, h.HandleRegister(), `{"username":"u1","password":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRegister_MalformedBody(t *testing.T) {
	h := NewHandlers(newFakeAuthService())

	w := postJSON(t, h.HandleRegister(), `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLogin(t *testing.T) {
	svc := newFakeAuthService()
	svc.registered["u1"] = true
	h := NewHandlers(svc)

	// Happy path.
	w := postJSON(t, h.HandleLogin(), `{"username":"u1","password":"p1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	assert.Equal(t, "token-for-u1", resp.Token)

	// Wrong password surfaces as 400, not 401.
	w = postJSON(t, h.HandleLogin(), `{"username":"u1","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username/password")

	// Unknown user looks identical to a wrong password.
	w = postJSON(t, h.HandleLogin(), `{"username":"nobody","password":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Presence check.
	w = postJSON(t, h.HandleLogin(), `{"username":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
