package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mpetrenko/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool
	}{
		{
			name:     "success",
			email:    "a@x.com",
			password: "pw1",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "a@x.com", "pw1").
					Return("tok123", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"success": true, "message": "Login successful", "token": "tok123"},
		},
		{
			name:  "missing password",
			email: "a@x.com",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "a@x.com", "").
					Return("", services.ErrEmptyCredentials)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"success": false, "message": "Email and password are required"},
		},
		{
			name:     "invalid credentials",
			email:    "a@x.com",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "a@x.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]any{"success": false, "message": "Invalid email or password"},
		},
		{
			name:     "internal server error",
			email:    "a@x.com",
			password: "pw1",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "a@x.com", "pw1").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"success": false, "message": "Server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]any{"success": false, "message": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(LoginRequest{
					Email:    tt.email,
					Password: tt.password,
				})
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
