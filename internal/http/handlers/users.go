package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/apperr"
	"taskboard/internal/domain"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to fetch users", err))
		return
	}

	views := make([]domain.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, apperr.New(apperr.Validation, "invalid user id"))
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, apperr.New(apperr.NotFound, "user not found"))
			return
		}
		h.fail(c, apperr.Wrap(apperr.Unexpected, "failed to fetch user", err))
		return
	}

	c.JSON(http.StatusOK, user.View())
}
