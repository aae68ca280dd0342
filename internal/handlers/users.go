package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jgrayburn/nc-news-api/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// GetUsers returns all users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
