package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		prepareMock  func(m *MockJWTServiceInterface)
		expectedCode int
	}{
		{
			name:         "Missing header",
			prepareMock:  func(m *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic abc",
			prepareMock:  func(m *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("good").Return(&Claims{UserID: 7, Role: "admin"}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := NewMockJWTServiceInterface(ctrl)
			tt.prepareMock(jwtService)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := UserID(r.Context())
				assert.True(t, ok)
				assert.Equal(t, 7, userID)
				assert.Equal(t, "admin", r.Context().Value(RoleKey))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AuthMiddleware(jwtService)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         any
		expectedCode int
	}{
		{name: "Admin", role: "admin", expectedCode: http.StatusOK},
		{name: "User", role: "user", expectedCode: http.StatusForbidden},
		{name: "Case differs", role: "Admin", expectedCode: http.StatusForbidden},
		{name: "Substring", role: "administrator", expectedCode: http.StatusForbidden},
		{name: "No role", role: nil, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", nil)
			if tt.role != nil {
				req = req.WithContext(context.WithValue(req.Context(), RoleKey, tt.role))
			}
			rec := httptest.NewRecorder()
			RequireRole("admin")(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
