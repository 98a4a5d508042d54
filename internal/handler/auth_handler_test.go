package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/taskmate/taskmate-go/internal/repository"
	"github.com/taskmate/taskmate-go/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	svc := service.NewAuthService(repository.NewUserRepository(nil), testSecret, time.Hour)
	return NewAuthHandler(svc)
}

func TestHandleRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty username", body: `{"username": "", "email": "a@x.com", "password": "secret123"}`},
		{name: "empty email", body: `{"username": "alice", "email": "", "password": "secret123"}`},
		{name: "empty password", body: `{"username": "alice", "email": "a@x.com", "password": ""}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAuthHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleRegister(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body["message"] == "" {
				t.Error("error body missing message field")
			}
		})
	}
}

func TestHandleRegister_MalformedBody(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email": "", "password": ""}`))
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
