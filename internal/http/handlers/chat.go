package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"taskboard/internal/apperr"
	"taskboard/internal/assistant"
	"taskboard/internal/domain"
	"taskboard/internal/metrics"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message             string                  `json:"message"`
	ConversationHistory []assistant.ChatMessage `json:"conversation_history"`
	ConversationID      string                  `json:"conversation_id"`
	Tasks               []domain.TaskView       `json:"tasks"`
}

// Chat answers a question about the task list via the completion API.
// Flow: sweep stale conversations, build task context, assemble the prompt,
// call the API outside any store lock, sanitize, record both sides of the
// exchange. On a completion failure the already-appended user message stays
// in the conversation; only the assistant reply is missing.
func (h *Handler) Chat(c *gin.Context) {
	metrics.ChatRequests.Inc()

	var req ChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "bad request", err))
		return
	}
	if req.Message == "" {
		h.fail(c, apperr.New(apperr.Validation, "message is required"))
		return
	}

	h.Conversations.Sweep()
	metrics.ActiveConversations.Set(float64(h.Conversations.Len()))

	userID, ok := getUserID(c)
	if !ok {
		h.fail(c, apperr.New(apperr.Unauthorized, "user not found"))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "user not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to process chat request", err))
		return
	}

	// The client may send its current task snapshot; otherwise read it fresh.
	taskViews := req.Tasks
	if len(taskViews) == 0 {
		tasks, err := h.Tasks.List(ctx)
		if err != nil {
			h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to fetch tasks", err))
			return
		}
		taskViews = make([]domain.TaskView, 0, len(tasks))
		for _, t := range tasks {
			taskViews = append(taskViews, t.View())
		}
	}

	today := time.Now()
	summary, lines, err := assistant.BuildTaskContext(taskViews, today)
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "invalid task data", err))
		return
	}

	h.Conversations.Append(req.ConversationID, userID, "user", req.Message)

	msgs := assistant.AssembleMessages(user.Name, summary, assistant.TaskListing(lines), today, req.ConversationHistory, req.Message)

	answer, err := h.Completer.Complete(ctx, msgs)
	if err != nil {
		metrics.CompletionFailures.Inc()
		h.fail(c, apperr.Wrap(apperr.Upstream, "failed to process chat request", err))
		return
	}

	cleaned := assistant.Sanitize(answer)

	h.Conversations.Append(req.ConversationID, userID, "assistant", cleaned)

	c.JSON(http.StatusOK, gin.H{
		"response":        cleaned,
		"status":          "success",
		"task_count":      summary.TotalTasks,
		"conversation_id": req.ConversationID,
		"context_enabled": true,
	})
}

func (h *Handler) ChatHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.fail(c, apperr.New(apperr.Unauthorized, "user not found"))
		return
	}

	conv, err := h.Conversations.Get(c.Param("conversation_id"), userID)
	if err != nil {
		h.fail(c, conversationError(err))
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (h *Handler) ChatClear(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.fail(c, apperr.New(apperr.Unauthorized, "user not found"))
		return
	}

	if err := h.Conversations.Delete(c.Param("conversation_id"), userID); err != nil {
		h.fail(c, conversationError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "conversation cleared successfully"})
}

// ChatHealth reports whether the completion API key looks usable.
func (h *Handler) ChatHealth(c *gin.Context) {
	if h.OpenAIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "OpenAI API key not configured",
		})
		return
	}
	if !strings.HasPrefix(h.OpenAIKey, "sk-") {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "invalid OpenAI API key format",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "healthy",
		"message":              "OpenAI API is working properly",
		"model":                h.OpenAIModel,
		"context_enabled":      true,
		"active_conversations": h.Conversations.Len(),
	})
}

// ChatTest echoes the input without touching the completion API.
func (h *Handler) ChatTest(c *gin.Context) {
	var req ChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "bad request", err))
		return
	}

	userID, ok := getUserID(c)
	if !ok {
		h.fail(c, apperr.New(apperr.Unauthorized, "user not found"))
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "test failed", err))
		return
	}

	contextInfo := ""
	if len(req.ConversationHistory) > 0 {
		contextInfo = fmt.Sprintf(" (I can see %d previous messages)", len(req.ConversationHistory))
	}
	response := fmt.Sprintf("Hello %s! I received your message: '%s'%s. This is a test response without OpenAI.",
		user.Name, req.Message, contextInfo)

	c.JSON(http.StatusOK, gin.H{
		"response":        response,
		"status":          "success",
		"mode":            "test",
		"context_enabled": true,
	})
}

func conversationError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrAccessDenied):
		return apperr.New(apperr.AccessDenied, "access denied")
	case errors.Is(err, assistant.ErrConversationNotFound):
		return apperr.New(apperr.NotFound, "conversation not found")
	default:
		return apperr.Wrap(apperr.Unexpected, "conversation store error", err)
	}
}
