package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trainpilot/backend/internal/api"
	app_errors "trainpilot/backend/internal/errors"
	"trainpilot/backend/internal/interfaces/mocks"
	"trainpilot/backend/internal/model"
	"trainpilot/backend/internal/service"
)

var testUser = &model.User{ID: "user-123", Email: "runner@example.com", Name: "Alex"}

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService, *mocks.MockPlanService) {
	mockChatSvc := mocks.NewMockChatService(t)
	mockPlanSvc := mocks.NewMockPlanService(t)
	handler := api.NewChatHandler(mockChatSvc, mockPlanSvc)
	return handler, mockChatSvc, mockPlanSvc
}

// withUser simulates the auth middleware having resolved an identity.
func withUser(req *http.Request, user *model.User) *http.Request {
	return req.WithContext(api.ContextWithUser(req.Context(), user))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestChatHandler_HandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		expected := &model.ChatResponse{
			Status:        model.StatusIncompleteProfile,
			Message:       "Tell me more",
			MissingFields: []string{"weekly_schedule", "available_equipment"},
		}
		mockChatSvc.On("HandleMessage", mock.Anything, testUser, mock.MatchedBy(func(req *service.ChatRequest) bool {
			return req.Message == "I want to get fitter"
		})).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"I want to get fitter"}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.ChatResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, expected.Status, got.Status)
		assert.Equal(t, expected.MissingFields, got.MissingFields)
	})

	t.Run("Failure - empty body is a missing message", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Message is required", decodeError(t, rr))
	})

	t.Run("Failure - blank message field", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":""}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Message is required", decodeError(t, rr))
	})

	t.Run("Failure - malformed JSON body", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - no identity in context", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Unauthorized", decodeError(t, rr))
	})

	t.Run("Failure - upstream error is a generic 500", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("HandleMessage", mock.Anything, testUser, mock.Anything).
			Return(nil, app_errors.ErrUpstream).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to communicate with planning service", decodeError(t, rr))
	})

	t.Run("Failure - configuration error names itself", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("HandleMessage", mock.Anything, testUser, mock.Anything).
			Return(nil, app_errors.ErrConfig).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Server configuration error", decodeError(t, rr))
	})

	t.Run("Failure - internal error hides detail from the client", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("HandleMessage", mock.Anything, testUser, mock.Anything).
			Return(nil, fmt.Errorf("%w: plan cache corrupted", app_errors.ErrInternal)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, rr))
	})
}

func TestChatHandler_HandleGetPlan(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _, mockPlanSvc := setupChatHandler(t)
		plan := &model.TrainingPlan{ID: "plan-1", UserID: "user-123"}
		mockPlanSvc.On("CurrentPlan", mock.Anything, testUser, "").Return(plan, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan", nil)
		rr := httptest.NewRecorder()
		handler.HandleGetPlan(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.TrainingPlan
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "user-123", got.UserID)
	})

	t.Run("Failure - cross-user request is forbidden", func(t *testing.T) {
		handler, _, mockPlanSvc := setupChatHandler(t)
		mockPlanSvc.On("CurrentPlan", mock.Anything, testUser, "user-456").
			Return(nil, app_errors.ErrPermission).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan?userId=user-456", nil)
		rr := httptest.NewRecorder()
		handler.HandleGetPlan(rr, withUser(req, testUser))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Access denied: Cannot access another user's plan", decodeError(t, rr))
	})
}
