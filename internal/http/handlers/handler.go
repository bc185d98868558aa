package handlers

import (
	"context"

	"taskboard/internal/assistant"
	"taskboard/internal/config"
	"taskboard/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Completer is the completion API dependency of the chat endpoint. Satisfied
// by llm.Client in production and by fakes in tests.
type Completer interface {
	Complete(ctx context.Context, msgs []assistant.ChatMessage) (string, error)
}

type Handler struct {
	DB            *pgxpool.Pool
	Users         *repository.UserRepository
	Tasks         *repository.TaskRepository
	Conversations *assistant.Store
	Completer     Completer

	OpenAIKey   string
	OpenAIModel string
	DebugErrors bool
}

func NewHandler(db *pgxpool.Pool, store *assistant.Store, completer Completer, cfg *config.Config) *Handler {
	return &Handler{
		DB:            db,
		Users:         repository.NewUserRepository(db),
		Tasks:         repository.NewTaskRepository(db),
		Conversations: store,
		Completer:     completer,
		OpenAIKey:     cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		DebugErrors:   cfg.DebugErrors,
	}
}

// getUserID pulls the authenticated user id set by the JWT middleware.
func getUserID(c interface{ Get(any) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
