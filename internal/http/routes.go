package http

import (
	"taskboard/internal/assistant"
	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/llm"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	store := assistant.NewStore(cfg.ConversationTTL)
	completer := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	h := handlers.NewHandler(db, store, completer, cfg)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth: in-process limiter so brute-force protection survives a Redis outage
	authRL := middleware.SimpleRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	auth := api.Group("/auth")
	auth.POST("/login", authRL, h.Login)
	auth.POST("/register", authRL, h.Register)
	auth.GET("/me", middleware.JWT(), h.Me)

	users := api.Group("/users")
	users.Use(middleware.JWT())
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)

	tasks := api.Group("/tasks")
	tasks.Use(middleware.JWT())
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/stats", h.TaskStats)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	// Assistant. Completion calls are the expensive path, so /chat gets a
	// per-user limiter on top of the per-IP one.
	chatRL := middleware.UserRateLimit(cfg.ChatRateLimit, cfg.ChatRateWindow)
	api.POST("/chat", middleware.JWT(), chatRL, h.Chat)
	api.GET("/chat/history/:conversation_id", middleware.JWT(), h.ChatHistory)
	api.DELETE("/chat/clear/:conversation_id", middleware.JWT(), h.ChatClear)
	api.GET("/chat/health", middleware.JWT(), h.ChatHealth)
	api.POST("/chat/test", middleware.JWT(), h.ChatTest)
}
