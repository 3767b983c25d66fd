package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nullkernel/AI-Chatbot/chatbot/controllers"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/dao"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"
	"github.com/Nullkernel/AI-Chatbot/chatbot/utils/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

type stubGenerator struct {
	reply string
}

func (s *stubGenerator) Generate(ctx context.Context, sessionID, prompt string) (string, error) {
	return s.reply, nil
}

// newTestAPI wires the router the same way main does, on an in-memory DB.
func newTestAPI(t *testing.T, apiKey string) http.Handler {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.StatusCheck{}, &models.ChatSession{}, &models.ChatMessage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	chatCtrl := controllers.NewChatController(
		dao.NewSessionDAO(db),
		dao.NewMessageDAO(db),
		&stubGenerator{reply: "stub reply"},
		apiKey,
	)
	statusCtrl := controllers.NewStatusController(dao.NewStatusDAO(db))
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://app.example"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	api := chi.NewRouter()
	api.Mount("/status", StatusRoutes(statusCtrl))
	api.Mount("/chat", ChatRoutes(chatCtrl))
	api.Mount("/", HealthRoutes(healthCtrl))
	r.Mount("/api", api)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRootRoute(t *testing.T) {
	h := newTestAPI(t, "test-key")
	rr := doJSON(t, h, "GET", "/api/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body types.MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Hello World" {
		t.Errorf("unexpected probe message %q", body.Message)
	}
}

func TestChatRouteHappyPath(t *testing.T) {
	h := newTestAPI(t, "test-key")

	rr := doJSON(t, h, "POST", "/api/chat", types.ChatRequest{Message: strPtr("hi")})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp types.ChatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID == "" || resp.UserMessage != "hi" || resp.AssistantMessage != "stub reply" {
		t.Errorf("unexpected response %+v", resp)
	}

	// both sides of the exchange are listed oldest first
	rr = doJSON(t, h, "GET", "/api/chat/sessions/"+resp.SessionID+"/messages", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleAssistant {
		t.Errorf("unexpected messages %+v", msgs)
	}
}

func TestChatRouteValidation(t *testing.T) {
	h := newTestAPI(t, "test-key")
	rr := doJSON(t, h, "POST", "/api/chat", map[string]string{"session_id": "s1"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing message, got %d", rr.Code)
	}
}

func TestChatRouteAcceptsEmptyMessage(t *testing.T) {
	h := newTestAPI(t, "test-key")

	// the message key must be present, but an empty string is a valid turn
	rr := doJSON(t, h, "POST", "/api/chat", types.ChatRequest{Message: strPtr("")})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty message, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp types.ChatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserMessage != "" || resp.AssistantMessage != "stub reply" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestAPI(t, "test-key")

	req := httptest.NewRequest("OPTIONS", "/api/chat", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 preflight, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://app.example" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected Access-Control-Allow-Methods on preflight")
	}

	// a disallowed origin gets no CORS allowance at all
	req = httptest.NewRequest("OPTIONS", "/api/chat", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin for disallowed origin, got %q", got)
	}
}

func TestChatRouteMissingAPIKey(t *testing.T) {
	h := newTestAPI(t, "")
	rr := doJSON(t, h, "POST", "/api/chat", types.ChatRequest{Message: strPtr("hi")})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	// nothing persisted either
	rr = doJSON(t, h, "GET", "/api/chat/sessions", nil)
	var sessions []models.ChatSession
	if err := json.Unmarshal(rr.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := newTestAPI(t, "test-key")

	rr := doJSON(t, h, "POST", "/api/chat/sessions", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var session models.ChatSession
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.SessionID == "" || session.Title != "New Chat" {
		t.Errorf("unexpected session %+v", session)
	}

	rr = doJSON(t, h, "POST", "/api/chat", types.ChatRequest{Message: strPtr("hi"), SessionID: session.SessionID})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp types.ChatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID != session.SessionID {
		t.Errorf("expected chat to stay on session %s, got %s", session.SessionID, resp.SessionID)
	}

	// delete cascades and stays successful on repeat
	for i := 0; i < 2; i++ {
		rr = doJSON(t, h, "DELETE", "/api/chat/sessions/"+session.SessionID, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("delete attempt %d: expected 200, got %d", i+1, rr.Code)
		}
	}
	rr = doJSON(t, h, "GET", "/api/chat/sessions/"+session.SessionID+"/messages", nil)
	var msgs []models.ChatMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected empty message list after delete, got %d", len(msgs))
	}
}

func TestStatusRoutes(t *testing.T) {
	h := newTestAPI(t, "test-key")

	rr := doJSON(t, h, "POST", "/api/status", types.StatusCheckCreate{ClientName: strPtr("probe")})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var created models.StatusCheck
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode status check: %v", err)
	}
	if created.ID == "" || created.ClientName != "probe" {
		t.Errorf("unexpected status check %+v", created)
	}

	rr = doJSON(t, h, "POST", "/api/status", map[string]string{})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing client_name, got %d", rr.Code)
	}

	rr = doJSON(t, h, "GET", "/api/status", nil)
	var checks []models.StatusCheck
	if err := json.Unmarshal(rr.Body.Bytes(), &checks); err != nil {
		t.Fatalf("decode status list: %v", err)
	}
	if len(checks) != 1 {
		t.Errorf("expected 1 status check, got %d", len(checks))
	}
}
