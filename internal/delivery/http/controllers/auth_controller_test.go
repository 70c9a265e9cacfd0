package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artwalls/internal/delivery/http/helpers"
	"artwalls/internal/domain"
)

type mockAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (m *mockAuthService) SignUp(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func (m *mockAuthService) HasRole(ctx context.Context, userID, roleCode string) (bool, error) {
	return false, nil
}

func TestAuthController_SignUp_Validation(t *testing.T) {
	ctrl := NewAuthController(discardLogger(), &mockAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"hunter2hunter2","name":"Ada"}`},
		{"bad email", `{"email":"nope","password":"hunter2hunter2","name":"Ada"}`},
		{"short password", `{"email":"ada@example.com","password":"short","name":"Ada"}`},
		{"unknown role", `{"email":"ada@example.com","password":"hunter2hunter2","role":"admin"}`},
		{"unknown field", `{"email":"ada@example.com","password":"hunter2hunter2","tier":"pro"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			ctrl.SignUp(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthController_SignUp_DuplicateEmail(t *testing.T) {
	ctrl := NewAuthController(discardLogger(), &mockAuthService{err: domain.ErrDuplicateEmail})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"email":"ada@example.com","password":"hunter2hunter2","name":"Ada"}`))
	w := httptest.NewRecorder()

	ctrl.SignUp(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Error == nil || resp.Error.Message != "email already registered" {
		t.Fatalf("expected duplicate email message, got %v", resp.Error)
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success returns bearer token", func(t *testing.T) {
		ctrl := NewAuthController(discardLogger(), &mockAuthService{token: "jwt-token"})

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"ada@example.com","password":"hunter2hunter2"}`))
		w := httptest.NewRecorder()

		ctrl.Login(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		resp := decodeEnvelope(t, w)
		data, ok := resp.Data.(map[string]any)
		if !ok || data["token"] != "jwt-token" || data["token_type"] != "Bearer" {
			t.Fatalf("unexpected login payload: %v", resp.Data)
		}
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		ctrl := NewAuthController(discardLogger(), &mockAuthService{err: errors.New("invalid credentials")})

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
		w := httptest.NewRecorder()

		ctrl.Login(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Error == nil || resp.Error.Code != helpers.ErrCodeUnauthorized {
			t.Fatalf("expected unauthorized error, got %v", resp.Error)
		}
	})
}
