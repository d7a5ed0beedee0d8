package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAffiliateService is a mock implementation of AffiliateService.
type MockAffiliateService struct {
	mock.Mock
}

func (m *MockAffiliateService) Register(ctx context.Context, req *model.AffiliateRegisterRequest) (*model.AffiliateRegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AffiliateRegisterResponse), args.Error(1)
}

func (m *MockAffiliateService) Stats(ctx context.Context, code string) (*model.AffiliateStats, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AffiliateStats), args.Error(1)
}

func (m *MockAffiliateService) Click(ctx context.Context, req *model.AffiliateClickRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func TestAffiliateHandler_Register(t *testing.T) {
	logger := zerolog.Nop()

	testResponse := &model.AffiliateRegisterResponse{
		Success:       true,
		AffiliateCode: "AFF_1A2B3C4D",
		Message:       "Affiliate registered successfully",
	}

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		mockReturn     *model.AffiliateRegisterResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:   "Success",
			method: http.MethodPost,
			requestBody: &model.AffiliateRegisterRequest{
				Name:     "Partner",
				Email:    "partner@example.com",
				Platform: "youtube",
			},
			mockReturn:     testResponse,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Missing required fields",
			method:         http.MethodPost,
			requestBody:    &model.AffiliateRegisterRequest{},
			mockError:      model.ErrMissingRequiredFields,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:   "Invalid commission rate",
			method: http.MethodPost,
			requestBody: &model.AffiliateRegisterRequest{
				Name:  "Partner",
				Email: "partner@example.com",
			},
			mockError:      model.ErrInvalidCommissionRate,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAffiliateService)
			handler := NewAffiliateHandler(mockService, logger)

			var body []byte
			if tt.requestBody != nil {
				if str, ok := tt.requestBody.(string); ok {
					body = []byte(str)
				} else {
					var err error
					body, err = json.Marshal(tt.requestBody)
					require.NoError(t, err)
				}
			}

			if tt.expectService {
				mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.AffiliateRegisterRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/affiliate/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestAffiliateHandler_Stats(t *testing.T) {
	logger := zerolog.Nop()

	testStats := &model.AffiliateStats{
		Affiliate: model.Affiliate{
			ID:             7,
			AffiliateCode:  "AFF_1A2B3C4D",
			AffiliateName:  "Partner",
			AffiliateEmail: "partner@example.com",
			CommissionRate: 5,
		},
		Clicks:          120,
		Sales:           3,
		TotalCommission: 14.85,
	}

	tests := []struct {
		name           string
		method         string
		path           string
		mockReturn     *model.AffiliateStats
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			path:           "/api/affiliate/stats/AFF_1A2B3C4D",
			mockReturn:     testStats,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Affiliate not found",
			method:         http.MethodGet,
			path:           "/api/affiliate/stats/AFF_NOSUCH00",
			mockError:      model.ErrAffiliateNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			path:           "/api/affiliate/stats/AFF_1A2B3C4D",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			path:           "/api/affiliate/stats/AFF_1A2B3C4D",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAffiliateService)
			handler := NewAffiliateHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Stats", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.Stats(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestAffiliateHandler_Click(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    &model.AffiliateClickRequest{AffiliateCode: "AFF_1A2B3C4D"},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Missing code",
			requestBody:    &model.AffiliateClickRequest{},
			mockError:      model.ErrMissingRequiredFields,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAffiliateService)
			handler := NewAffiliateHandler(mockService, logger)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			if tt.expectService {
				mockService.On("Click", mock.Anything, mock.AnythingOfType("*model.AffiliateClickRequest")).
					Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/affiliate/click", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Click(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}
