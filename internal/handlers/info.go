package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// GetHealth reports that the server is accepting requests.
func (h *InfoHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server up and running!"})
}

var endpoints = gin.H{
	"GET /api": gin.H{
		"description": "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/health": gin.H{
		"description": "serves a message confirming the server is up",
	},
	"GET /api/topics": gin.H{
		"description": "serves an array of all topics",
		"exampleResponse": gin.H{
			"topics": []gin.H{{"slug": "football", "description": "Footie!"}},
		},
	},
	"GET /api/users": gin.H{
		"description": "serves an array of all users",
		"exampleResponse": gin.H{
			"users": []gin.H{{"username": "butter_bridge", "name": "jonny", "avatar_url": "https://example.com/avatar.jpg"}},
		},
	},
	"GET /api/articles": gin.H{
		"description": "serves an array of all articles with comment counts",
		"queries":     []string{"sort_by", "order", "topic"},
		"exampleResponse": gin.H{
			"articles": []gin.H{{
				"article_id":    1,
				"title":         "Seafood substitutions are increasing",
				"topic":         "cooking",
				"author":        "weegembump",
				"created_at":    "2018-05-30T15:59:13.341Z",
				"votes":         0,
				"comment_count": 6,
			}},
		},
	},
	"GET /api/articles/:article_id": gin.H{
		"description": "serves a single article with its comment count",
	},
	"PATCH /api/articles/:article_id": gin.H{
		"description": "increments an article's votes by inc_votes and serves the updated article",
		"exampleRequest": gin.H{"inc_votes": 5},
	},
	"GET /api/articles/:article_id/comments": gin.H{
		"description": "serves an array of comments for the given article",
	},
	"POST /api/articles/:article_id/comments": gin.H{
		"description":    "adds a comment to the given article and serves the created comment",
		"exampleRequest": gin.H{"username": "butter_bridge", "body": "Test comment"},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes the given comment, serving no content",
	},
}

// GetEndpoints serves the endpoint catalog.
func (h *InfoHandler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, endpoints)
}
