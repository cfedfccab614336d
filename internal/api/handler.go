package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	app_errors "trainpilot/backend/internal/errors"
	"trainpilot/backend/internal/interfaces"
	"trainpilot/backend/internal/service"
)

// ChatHandler exposes the conversational onboarding endpoints.
type ChatHandler struct {
	chat  interfaces.ChatService
	plans interfaces.PlanService
}

func NewChatHandler(chat interfaces.ChatService, plans interfaces.PlanService) *ChatHandler {
	return &ChatHandler{chat: chat, plans: plans}
}

// HandleChat godoc
// @Summary      Progress the onboarding conversation
// @Description  Sends one user message plus the echoed conversation history and returns the next assistant response, eventually carrying a weekly training plan.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatRequest  body      service.ChatRequest  true  "Message, history, and optional plan parameters"
// @Success      200          {object}  model.ChatResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, app_errors.ErrAuth)
		return
	}

	var req service.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, fmt.Errorf("%w: Invalid request payload", app_errors.ErrValidation))
		return
	}
	// An empty or absent body falls through to field validation, so a
	// missing message is reported the same way either way.
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.chat.HandleMessage(r.Context(), user, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleGetPlan godoc
// @Summary      Get the current training plan
// @Description  Returns the authenticated user's weekly training plan. A userId query parameter naming another user is refused.
// @Tags         Plan
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  false  "Must match the authenticated user when present"
// @Success      200     {object}  model.TrainingPlan
// @Failure      401     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /v1/plan [get]
func (h *ChatHandler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, app_errors.ErrAuth)
		return
	}

	plan, err := h.plans.CurrentPlan(r.Context(), user, r.URL.Query().Get("userId"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}
