package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatyaSire/corporatepm/internal/service/contact"
	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

type stubContactService struct {
	submitCalls int
	submitSub   *supabase.Submission
	submitErr   error

	listCalls int
	listSubs  []supabase.Submission
	listErr   error
}

func (s *stubContactService) Submit(ctx context.Context, req contact.CreateRequest) (*supabase.Submission, error) {
	s.submitCalls++
	return s.submitSub, s.submitErr
}

func (s *stubContactService) List(ctx context.Context) ([]supabase.Submission, error) {
	s.listCalls++
	return s.listSubs, s.listErr
}

func newContactApp(svc contact.Service, adminKey string) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(svc, adminKey)
	app.Post("/api/v1/contact", h.Submit)
	app.Get("/api/v1/contact", h.List)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return resp.StatusCode, decoded
}

func TestSubmit_Success(t *testing.T) {
	svc := &stubContactService{submitSub: &supabase.Submission{ID: "sub-42", Name: "Jane Doe"}}
	app := newContactApp(svc, "secret")

	status, body := postJSON(t, app, "/api/v1/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"mobile":  "+1 555 000 1111",
		"message": "hello",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Form submitted successfully! I'll get back to you within 24 hours.", body["message"])
	assert.Equal(t, "sub-42", body["id"])
}

func TestSubmit_ValidationErrorSurfacesMessage(t *testing.T) {
	svc := &stubContactService{
		submitErr: &contact.ValidationError{Message: contact.MsgInvalidEmail},
	}
	app := newContactApp(svc, "secret")

	status, body := postJSON(t, app, "/api/v1/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "not-an-email",
		"mobile":  "+1 555 000 1111",
		"message": "hello",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, contact.MsgInvalidEmail, body["error"])
}

func TestSubmit_StoreFailureHidesDetails(t *testing.T) {
	svc := &stubContactService{submitErr: contact.ErrStore}
	app := newContactApp(svc, "secret")

	status, body := postJSON(t, app, "/api/v1/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"mobile":  "+1 555 000 1111",
		"message": "hello",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to submit form. Please try again.", body["error"])
}

func TestSubmit_MalformedBody(t *testing.T) {
	svc := &stubContactService{}
	app := newContactApp(svc, "secret")

	req := httptest.NewRequest("POST", "/api/v1/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, svc.submitCalls)
}

func TestList_RequiresAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		query      string
		wantStatus int
	}{
		{"correct key", "secret", "?admin_key=secret", fiber.StatusOK},
		{"wrong key", "secret", "?admin_key=guess", fiber.StatusUnauthorized},
		{"missing key", "secret", "", fiber.StatusUnauthorized},
		{"unconfigured key locks endpoint", "", "?admin_key=", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubContactService{listSubs: []supabase.Submission{{ID: "a"}}}
			app := newContactApp(svc, tt.configured)

			resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/contact"+tt.query, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == fiber.StatusUnauthorized {
				assert.Zero(t, svc.listCalls, "rejected requests must never reach the store")

				data, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, string(data))
			}
		})
	}
}

func TestList_ReturnsRows(t *testing.T) {
	svc := &stubContactService{listSubs: []supabase.Submission{{ID: "b"}, {ID: "a"}}}
	app := newContactApp(svc, "secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/contact?admin_key=secret", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []supabase.Submission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].ID)
}

func TestList_StoreFailure(t *testing.T) {
	svc := &stubContactService{listErr: contact.ErrStore}
	app := newContactApp(svc, "secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/contact?admin_key=secret", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to fetch submissions"}`, string(data))
}
