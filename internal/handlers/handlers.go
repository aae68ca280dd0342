package handlers

import (
	"gorm.io/gorm"

	"github.com/jgrayburn/nc-news-api/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Info    *InfoHandler
	Topic   *TopicHandler
	User    *UserHandler
	Article *ArticleHandler
	Comment *CommentHandler
}

// NewHandler creates a unified handler with all sub-handlers sharing one store.
func NewHandler(db *gorm.DB) *Handler {
	st := store.New(db)

	return &Handler{
		Info:    NewInfoHandler(),
		Topic:   NewTopicHandler(st),
		User:    NewUserHandler(st),
		Article: NewArticleHandler(st),
		Comment: NewCommentHandler(st),
	}
}
