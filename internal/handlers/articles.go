package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jgrayburn/nc-news-api/internal/store"
)

type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(st *store.Store) *ArticleHandler {
	return &ArticleHandler{store: st}
}

// GetArticles returns all articles with comment counts, honouring the
// optional sort_by, order and topic query parameters.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.store.ListArticles(c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle returns a single article with its comment count.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.store.GetArticle(c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticle applies an inc_votes delta to an article.
func (h *ArticleHandler) PatchArticle(c *gin.Context) {
	var input struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(store.ErrBadRequest)
		return
	}

	updated, err := h.store.UpdateArticleVotes(c.Param("article_id"), input.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedArticle": updated})
}
