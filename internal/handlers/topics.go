package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jgrayburn/nc-news-api/internal/store"
)

type TopicHandler struct {
	store *store.Store
}

func NewTopicHandler(st *store.Store) *TopicHandler {
	return &TopicHandler{store: st}
}

// GetTopics returns all topics.
func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.store.ListTopics()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
