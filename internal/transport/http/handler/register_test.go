package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/moviesir-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockRegisterSvc struct{ mock.Mock }

func (m *mockRegisterSvc) Basic(ctx context.Context, req domain.RegisterBasicRequest) (*domain.RegisterIdentity, error) {
	args := m.Called(ctx, req)
	if id, _ := args.Get(0).(*domain.RegisterIdentity); id != nil {
		return id, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRegisterSvc) CheckEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockRegisterSvc) SendCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockRegisterSvc) VerifyCode(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}
func (m *mockRegisterSvc) Preferences(ctx context.Context, req domain.RegisterPreferencesRequest) (*domain.RegisterPreferences, error) {
	args := m.Called(ctx, req)
	if p, _ := args.Get(0).(*domain.RegisterPreferences); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRegisterSvc) Complete(ctx context.Context, req domain.RegisterCompleteRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func newRegisterRouter(svc *mockRegisterSvc) http.Handler {
	h := NewRegisterHandler(svc)
	r := chi.NewRouter()
	r.Post("/register/basic", h.Basic)
	r.Post("/register/email/check", h.CheckEmail)
	r.Post("/register/email/send-code", h.SendCode)
	r.Post("/register/email/verify-code", h.VerifyCode)
	r.Post("/register/preferences", h.Preferences)
	r.Post("/register/complete", h.Complete)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// --- tests ---

func TestBasicEndpoint_Success(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("Basic", mock.Anything, mock.Anything).Return(&domain.RegisterIdentity{
		Identifier: "alice01", DisplayName: "Alice", Email: "alice@example.com",
	}, nil)

	rec := postJSON(t, newRegisterRouter(svc), "/register/basic", map[string]string{
		"identifier":       "alice01",
		"password":         "abc123",
		"password_confirm": "abc123",
		"display_name":     "Alice",
		"email":            "alice@example.com",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "basic info validated", env.Message)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "alice01", data["identifier"])
}

func TestBasicEndpoint_MissingField(t *testing.T) {
	svc := &mockRegisterSvc{}
	rec := postJSON(t, newRegisterRouter(svc), "/register/basic", map[string]string{
		"identifier": "alice01",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Basic", mock.Anything, mock.Anything)
}

func TestBasicEndpoint_InvalidBody(t *testing.T) {
	svc := &mockRegisterSvc{}
	req := httptest.NewRequest(http.MethodPost, "/register/basic", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	newRegisterRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBasicEndpoint_ConflictMapsTo409(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("Basic", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("identifier already taken: %w", domain.ErrConflict))

	rec := postJSON(t, newRegisterRouter(svc), "/register/basic", map[string]string{
		"identifier":       "alice01",
		"password":         "abc123",
		"password_confirm": "abc124",
		"display_name":     "Alice",
		"email":            "alice@example.com",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "identifier already taken")
}

func TestVerifyCodeEndpoint_NotIssuedMapsTo400(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("VerifyCode", mock.Anything, "x@y.com", "123456").
		Return(fmt.Errorf("no code issued for x@y.com: %w", domain.ErrNotIssued))

	rec := postJSON(t, newRegisterRouter(svc), "/register/email/verify-code", map[string]string{
		"email": "x@y.com",
		"code":  "123456",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendCodeEndpoint_DependencyFailureMapsTo502(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("SendCode", mock.Anything, "x@y.com").
		Return(fmt.Errorf("deliver verification code: smtp refused: %w", domain.ErrDependency))

	rec := postJSON(t, newRegisterRouter(svc), "/register/email/send-code", map[string]string{
		"email": "x@y.com",
	})

	require.Equal(t, http.StatusBadGateway, rec.Code)
	env := decodeEnvelope(t, rec)
	// Infrastructure detail must not leak to the client.
	assert.NotContains(t, env.Error, "smtp")
}

func TestPreferencesEndpoint_Echo(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("Preferences", mock.Anything, domain.RegisterPreferencesRequest{
		PreferredGenres: []string{"drama"},
		OwnedServices:   []string{"netflix"},
	}).Return(&domain.RegisterPreferences{
		PreferredGenres: []string{"drama"},
		OwnedServices:   []string{"netflix"},
	}, nil)

	rec := postJSON(t, newRegisterRouter(svc), "/register/preferences", map[string][]string{
		"preferred_genres": {"drama"},
		"owned_services":   {"netflix"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestCompleteEndpoint_Returns201WithRecord(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("Complete", mock.Anything, mock.Anything).Return(&domain.Account{
		AccountID:  "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Identifier: "alice01",
		Email:      "alice@example.com",
	}, nil)

	rec := postJSON(t, newRegisterRouter(svc), "/register/complete", map[string]interface{}{
		"identifier":       "alice01",
		"password":         "abc123",
		"display_name":     "Alice",
		"email":            "alice@example.com",
		"preferred_genres": []string{"drama"},
		"owned_services":   []string{"netflix"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", data["id"])
}

func TestCheckEmailEndpoint_Available(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("CheckEmail", mock.Anything, "free@example.com").Return(nil)

	rec := postJSON(t, newRegisterRouter(svc), "/register/email/check", map[string]string{
		"email": "free@example.com",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "email is available", env.Message)
}

func TestCheckEmailEndpoint_ValidationErrorContainsReason(t *testing.T) {
	svc := &mockRegisterSvc{}
	svc.On("CheckEmail", mock.Anything, "nope").
		Return(error(&domain.ValidationError{Kind: domain.ValidationEmail, Reason: "email address is malformed"}))

	rec := postJSON(t, newRegisterRouter(svc), "/register/email/check", map[string]string{
		"email": "nope",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, errors.Is(&domain.ValidationError{}, domain.ErrBadRequest))
	assert.Contains(t, env.Error, "malformed")
}
