package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/apperr"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "bad request", err))
		return
	}
	if req.Username == "" || req.Password == "" {
		h.fail(c, apperr.New(apperr.Validation, "username and password required"))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.Unauthorized, "invalid credentials"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "login failed", err))
		return
	}

	if !service.CheckPassword(user.PasswordHash, req.Password) {
		h.fail(c, apperr.New(apperr.Unauthorized, "invalid credentials"))
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "token generation failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.View(),
	})
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "bad request", err))
		return
	}
	if req.Name == "" || req.Username == "" || req.Password == "" {
		h.fail(c, apperr.New(apperr.Validation, "all fields required"))
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "registration failed", err))
		return
	}

	user := &domain.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			h.fail(c, apperr.New(apperr.Validation, "username already exists"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "registration failed", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully"})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.fail(c, apperr.New(apperr.Unauthorized, "user not found"))
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "user not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to get user info", err))
		return
	}

	c.JSON(http.StatusOK, user.View())
}
