package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jgrayburn/nc-news-api/internal/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

// GetComments returns all comments on an article.
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.store.ListComments(c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment creates a comment on an article. Both fields must be present
// strings; pointer binding keeps missing and wrong-typed values apart from
// empty ones. Extra keys are ignored.
func (h *CommentHandler) PostComment(c *gin.Context) {
	var input struct {
		Username *string `json:"username"`
		Body     *string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == nil || input.Body == nil {
		c.Error(store.ErrInvalidBody)
		return
	}

	comment, err := h.store.AddComment(c.Param("article_id"), *input.Username, *input.Body)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes a comment, responding with no content.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.store.RemoveComment(c.Param("comment_id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
