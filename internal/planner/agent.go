package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	app_errors "trainpilot/backend/internal/errors"
	"trainpilot/backend/internal/model"
)

const fallbackIncompleteMessage = "I need some more information to create your personalized training plan. Could you provide more details about your fitness goals and experience?"
const fallbackCompleteMessage = "Your personalized training plan is ready! Check out the details below."

// AgentClient calls the hybrid training planning API and reshapes its
// responses into the chat wire format. Upstream responses are often
// sparse, so blank messages are backfilled before they reach the client.
type AgentClient struct {
	client      *http.Client
	planningURL string
	apiKey      string
}

// NewAgentClient builds a client for the planning API. The version
// segment sits between the base URL and the planning routes.
func NewAgentClient(baseURL, apiKey, version string, timeout time.Duration) *AgentClient {
	base := strings.TrimSuffix(baseURL, "/")
	return &AgentClient{
		client:      &http.Client{Timeout: timeout},
		planningURL: base + "/" + version + "/planning/generate-plan-mvp",
		apiKey:      apiKey,
	}
}

func (c *AgentClient) GeneratePlan(ctx context.Context, req *PlanningRequest) (*model.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal planning request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.planningURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create planning request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", app_errors.ErrUpstream, resp.StatusCode, string(bodyBytes))
	}

	var chatResp model.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: could not decode response: %s", app_errors.ErrUpstream, err)
	}

	return c.normalize(&chatResp)
}

// normalize enforces the chat response invariants on upstream data: a
// non-blank message, missing_fields always present, plan attached exactly
// when the profile is complete, and a schedule that actually covers the
// week.
func (c *AgentClient) normalize(resp *model.ChatResponse) (*model.ChatResponse, error) {
	switch resp.Status {
	case model.StatusIncompleteProfile:
		if strings.TrimSpace(resp.Message) == "" {
			if len(resp.FollowUpQuestions) > 0 {
				resp.Message = resp.FollowUpQuestions[0]
			} else {
				resp.Message = fallbackIncompleteMessage
			}
		}
		if resp.Plan != nil {
			// An incomplete profile must not carry a plan.
			slog.Warn("Planning API attached a plan to an incomplete profile, dropping it")
			resp.Plan = nil
		}
	case model.StatusComplete:
		if resp.Message == "" && resp.Guidelines == "" {
			resp.Message = fallbackCompleteMessage
		} else if resp.Message == "" {
			resp.Message = resp.Guidelines
		}
		if err := validatePlan(resp.Plan); err != nil {
			return nil, fmt.Errorf("%w: %s", app_errors.ErrUpstream, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown status %q", app_errors.ErrUpstream, resp.Status)
	}

	if resp.MissingFields == nil {
		resp.MissingFields = []string{}
	}
	return resp, nil
}

func validatePlan(plan *model.TrainingPlan) error {
	if plan == nil {
		return fmt.Errorf("complete response carried no plan")
	}
	if len(plan.WeeklySchedule) != 7 {
		return fmt.Errorf("plan has %d weekly entries, want 7", len(plan.WeeklySchedule))
	}
	for _, daily := range plan.WeeklySchedule {
		switch daily.Session.Type {
		case model.SessionRun, model.SessionStrength, model.SessionRest, model.SessionCrossTraining, model.SessionFlexibility:
		default:
			return fmt.Errorf("plan entry %q has unknown session type %q", daily.Day, daily.Session.Type)
		}
	}
	return nil
}
