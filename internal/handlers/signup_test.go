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

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type requestBody struct {
		username string
		email    string
		password string
	}

	tests := []struct {
		name         string
		reqBody      requestBody
		mockSetup    func(m *MockSignuper)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: requestBody{
				username: "al",
				email:    "a@x.com",
				password: "pw1",
			},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "al", "a@x.com", "pw1").
					Return("tok123", nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"success": true, "message": "User registered successfully", "token": "tok123"},
		},
		{
			name: "missing fields",
			reqBody: requestBody{
				username: "al",
			},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "al", "", "").
					Return("", services.ErrEmptyCredentials)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"success": false, "message": "Username, email and password are required"},
		},
		{
			name: "email already registered",
			reqBody: requestBody{
				username: "al",
				email:    "a@x.com",
				password: "pw2",
			},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "al", "a@x.com", "pw2").
					Return("", services.ErrEmailAlreadyRegistered)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"success": false, "message": "Already registered"},
		},
		{
			name: "internal server error",
			reqBody: requestBody{
				username: "bob",
				email:    "bob@example.com",
				password: "pass",
			},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "pass").
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
			mockSvc := NewMockSignuper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSignupHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(SignupRequest{
					Username: tt.reqBody.username,
					Email:    tt.reqBody.email,
					Password: tt.reqBody.password,
				})
				req = httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(bodyBytes))
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
