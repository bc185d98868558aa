package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard/internal/assistant"

	"github.com/gin-gonic/gin"
)

// testRouter wires the chat routes with a stub auth middleware so handler
// behavior can be exercised without a database or real tokens.
func testRouter(h *Handler, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
	r.POST("/api/chat", auth, h.Chat)
	r.GET("/api/chat/history/:conversation_id", auth, h.ChatHistory)
	r.DELETE("/api/chat/clear/:conversation_id", auth, h.ChatClear)
	r.GET("/api/chat/health", auth, h.ChatHealth)
	return r
}

func TestChatRequiresMessage(t *testing.T) {
	h := &Handler{Conversations: assistant.NewStore(time.Hour)}
	r := testRouter(h, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "message is required") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestChatHistoryOwnership(t *testing.T) {
	store := assistant.NewStore(time.Hour)
	store.Append("conv-1", 1, "user", "hello")
	h := &Handler{Conversations: store}

	// owner reads it back
	w := httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/history/conv-1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("owner read status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "hello") {
		t.Errorf("body = %s", w.Body.String())
	}

	// another user is denied
	w = httptest.NewRecorder()
	testRouter(h, 2).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/history/conv-1", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("other user read status = %d, want 403", w.Code)
	}

	// unknown conversation
	w = httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/history/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing conversation status = %d, want 404", w.Code)
	}
}

func TestChatClear(t *testing.T) {
	store := assistant.NewStore(time.Hour)
	store.Append("conv-1", 1, "user", "hello")
	h := &Handler{Conversations: store}

	w := httptest.NewRecorder()
	testRouter(h, 2).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/chat/clear/conv-1", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("other user clear status = %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/chat/clear/conv-1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("owner clear status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/chat/clear/conv-1", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("second clear status = %d, want 404", w.Code)
	}
}

func TestChatHealth(t *testing.T) {
	store := assistant.NewStore(time.Hour)

	h := &Handler{Conversations: store}
	w := httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/health", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("missing key status = %d, want 500", w.Code)
	}

	h = &Handler{Conversations: store, OpenAIKey: "bogus"}
	w = httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/health", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("malformed key status = %d, want 500", w.Code)
	}

	h = &Handler{Conversations: store, OpenAIKey: "sk-test", OpenAIModel: "gpt-4o-mini"}
	w = httptest.NewRecorder()
	testRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("healthy status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "gpt-4o-mini") {
		t.Errorf("body = %s", w.Body.String())
	}
}
