package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatyaSire/corporatepm/internal/service/chat"
)

type stubChatService struct {
	reply      string
	gotInput   string
	gotHistory []chat.Turn
}

func (s *stubChatService) Greeting() string { return "hello from the stub" }

func (s *stubChatService) Reply(input string, history []chat.Turn) string {
	s.gotInput = input
	s.gotHistory = history
	return s.reply
}

// Keep tests fast: no real typing pause.
func (s *stubChatService) TypingDelay() time.Duration { return time.Millisecond }

func newChatApp(svc chat.Service) *fiber.App {
	app := fiber.New()
	h := NewChatHandler(svc)
	app.Post("/api/v1/chat", h.Reply)
	app.Get("/api/v1/chat/greeting", h.Greeting)
	return app
}

func TestChatReply(t *testing.T) {
	svc := &stubChatService{reply: "canned answer"}
	app := newChatApp(svc)

	status, body := postJSON(t, app, "/api/v1/chat", map[string]any{
		"message": "tell me about your experience",
		"history": []map[string]any{
			{"content": "hi", "sender": "user"},
			{"content": "hello!", "sender": "assistant"},
		},
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "canned answer", body["reply"])

	assert.Equal(t, "tell me about your experience", svc.gotInput)
	require.Len(t, svc.gotHistory, 2)
	assert.Equal(t, chat.SenderUser, svc.gotHistory[0].Sender)
	assert.Equal(t, chat.SenderAssistant, svc.gotHistory[1].Sender)
}

func TestChatReply_EmptyMessage(t *testing.T) {
	app := newChatApp(&stubChatService{reply: "unused"})

	for _, msg := range []string{"", "   "} {
		status, body := postJSON(t, app, "/api/v1/chat", map[string]any{"message": msg})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "message is required", body["error"])
	}
}

func TestChatReply_MalformedBody(t *testing.T) {
	app := newChatApp(&stubChatService{})

	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewReader([]byte("[")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatGreeting(t *testing.T) {
	app := newChatApp(&stubChatService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/chat/greeting", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "hello from the stub", body["reply"])
}
