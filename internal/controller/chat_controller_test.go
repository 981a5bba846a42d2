package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"account-plan-be/internal/dto"
	"account-plan-be/internal/pkg/serverutils"
	"account-plan-be/pkg/planner"
	"account-plan-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubConversationService struct {
	res *dto.ChatResponse
	err error
}

func (s *stubConversationService) HandleMessage(_ context.Context, _, _, _ string) (*dto.ChatResponse, error) {
	return s.res, s.err
}

func (s *stubConversationService) CreateSession(context.Context) (*dto.CreateSessionResponse, error) {
	return &dto.CreateSessionResponse{Id: "generated-id"}, nil
}

func (s *stubConversationService) GetSession(_ context.Context, sessionID string) (*dto.SessionSnapshotResponse, error) {
	return &dto.SessionSnapshotResponse{Id: sessionID, Mode: store.ModeDiscovery}, nil
}

func (s *stubConversationService) DeleteSession(context.Context, string) error {
	return nil
}

func newTestApp(svc *stubConversationService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app)
	return app
}

func TestChatReturnsFlatContract(t *testing.T) {
	company := "Acme Corp"
	svc := &stubConversationService{
		res: &dto.ChatResponse{
			Reply:   "Great, I'll research **Acme Corp**.",
			Mode:    store.ModeResearch,
			Company: &company,
		},
	}
	app := newTestApp(svc)

	body := `{"session_id": "s1", "message": "Research Acme Corp"}`
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "research", decoded["mode"])
	assert.Equal(t, "Acme Corp", decoded["company"])
	assert.Nil(t, decoded["account_plan"])
	// The contract response is flat, not wrapped in an envelope.
	assert.NotContains(t, decoded, "success")
}

func TestChatRejectsMissingFields(t *testing.T) {
	app := newTestApp(&stubConversationService{})

	body := `{"message": "hello"}`
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatMapsUnparseableToBadGateway(t *testing.T) {
	svc := &stubConversationService{
		err: fmt.Errorf("%w: plan generation", planner.ErrUnparseable),
	}
	app := newTestApp(svc)

	body := `{"session_id": "s1", "message": "generate plan"}`
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, false, decoded["success"])
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubConversationService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]string
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "ok", decoded["status"])
}

func TestSessionLifecycleRoutes(t *testing.T) {
	app := newTestApp(&stubConversationService{})

	resp, err := app.Test(httptest.NewRequest("POST", "/chat/session", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var created struct {
		Success bool `json:"success"`
		Data    struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(raw, &created))
	assert.True(t, created.Success)
	assert.Equal(t, "generated-id", created.Data.Id)

	resp, err = app.Test(httptest.NewRequest("GET", "/chat/session/generated-id", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/chat/session/generated-id", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
