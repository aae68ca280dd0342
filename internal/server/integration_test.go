//go:build integration

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jgrayburn/nc-news-api/internal/database"
	"github.com/jgrayburn/nc-news-api/internal/models"
)

var (
	testDB     *gorm.DB
	testRouter *gin.Engine
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("nc_news_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starting postgres container: %v\n", err)
		os.Exit(1)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "getting connection string: %v\n", err)
		os.Exit(1)
	}

	testDB, err = gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening database: %v\n", err)
		os.Exit(1)
	}
	if err := database.Migrate(testDB); err != nil {
		fmt.Fprintf(os.Stderr, "migrating: %v\n", err)
		os.Exit(1)
	}

	gin.SetMode(gin.TestMode)
	testRouter = NewRouter(testDB)

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// reseed restores the fixture data, mirroring the suite's per-test reset.
func reseed(t *testing.T) {
	t.Helper()
	require.NoError(t, database.Seed(testDB))
}

func request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	testRouter.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder, key string) T {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.Contains(t, envelope, key)
	var out T
	require.NoError(t, json.Unmarshal(envelope[key], &out))
	return out
}

func assertMessage(t *testing.T, resp *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, resp.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"message": %q}`, message), resp.Body.String())
}

func TestGetTopics(t *testing.T) {
	reseed(t)

	resp := request(t, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, resp.Code)

	topics := decode[[]models.Topic](t, resp, "topics")
	require.Len(t, topics, 3)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Slug)
		assert.NotEmpty(t, topic.Description)
	}
}

func TestGetUsers(t *testing.T) {
	reseed(t)

	resp := request(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, resp.Code)

	users := decode[[]models.User](t, resp, "users")
	require.Len(t, users, 4)
	for _, user := range users {
		assert.NotEmpty(t, user.Username)
		assert.NotEmpty(t, user.Name)
		assert.NotEmpty(t, user.AvatarURL)
	}
}

func TestGetArticles(t *testing.T) {
	reseed(t)

	t.Run("default: all articles, newest first", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles", "")
		require.Equal(t, http.StatusOK, resp.Code)

		articles := decode[[]models.ArticleWithCount](t, resp, "articles")
		require.Len(t, articles, 12)
		for i := 1; i < len(articles); i++ {
			assert.False(t, articles[i].CreatedAt.After(articles[i-1].CreatedAt),
				"articles out of order at index %d", i)
		}
	})

	t.Run("comment counts are exact", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles", "")
		require.Equal(t, http.StatusOK, resp.Code)

		counts := map[int]int{}
		for _, a := range decode[[]models.ArticleWithCount](t, resp, "articles") {
			counts[a.ArticleID] = a.CommentCount
		}
		assert.Equal(t, 11, counts[1])
		assert.Equal(t, 0, counts[2])
		assert.Equal(t, 2, counts[3])
		assert.Equal(t, 0, counts[4])
		assert.Equal(t, 2, counts[9])
	})

	t.Run("sort_by=votes", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?sort_by=votes", "")
		require.Equal(t, http.StatusOK, resp.Code)

		articles := decode[[]models.ArticleWithCount](t, resp, "articles")
		require.Len(t, articles, 12)
		assert.Equal(t, 1, articles[0].ArticleID) // the only article with votes
		for i := 1; i < len(articles); i++ {
			assert.GreaterOrEqual(t, articles[i-1].Votes, articles[i].Votes)
		}
	})

	t.Run("order=asc reverses the default sort", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?order=asc", "")
		require.Equal(t, http.StatusOK, resp.Code)

		articles := decode[[]models.ArticleWithCount](t, resp, "articles")
		require.Len(t, articles, 12)
		for i := 1; i < len(articles); i++ {
			assert.False(t, articles[i].CreatedAt.Before(articles[i-1].CreatedAt))
		}
	})

	t.Run("topic filter", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?topic=cats", "")
		require.Equal(t, http.StatusOK, resp.Code)

		articles := decode[[]models.ArticleWithCount](t, resp, "articles")
		require.Len(t, articles, 1)
		assert.Equal(t, "UNCOVERED: catspiracy to bring down democracy", articles[0].Title)
	})

	t.Run("valid topic with no articles is an empty array, not an error", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?topic=paper", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"articles": []}`, resp.Body.String())
	})

	t.Run("invalid sort column", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?sort_by=pizza", "")
		assertMessage(t, resp, http.StatusBadRequest, "Invalid sort query")
	})

	t.Run("invalid order", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?order=pizza", "")
		assertMessage(t, resp, http.StatusBadRequest, "Invalid order query")
	})

	t.Run("unknown topic", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles?topic=pizza", "")
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})
}

func TestGetArticle(t *testing.T) {
	reseed(t)

	t.Run("existing article with comment count", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/1", "")
		require.Equal(t, http.StatusOK, resp.Code)

		article := decode[models.ArticleWithCount](t, resp, "article")
		assert.Equal(t, 1, article.ArticleID)
		assert.Equal(t, "Living in the shadow of a great man", article.Title)
		assert.Equal(t, "mitch", article.Topic)
		assert.Equal(t, "butter_bridge", article.Author)
		assert.Equal(t, "I find this existence challenging", article.Body)
		assert.Equal(t, 100, article.Votes)
		assert.Equal(t, 11, article.CommentCount)

		// count must be a JSON number, not a numeric string
		assert.Contains(t, resp.Body.String(), `"comment_count":11`)
	})

	t.Run("article with zero comments still resolves", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/2", "")
		require.Equal(t, http.StatusOK, resp.Code)

		article := decode[models.ArticleWithCount](t, resp, "article")
		assert.Equal(t, 2, article.ArticleID)
		assert.Equal(t, 0, article.CommentCount)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/invalid_id", "")
		assertMessage(t, resp, http.StatusBadRequest, "Bad Request")
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/999", "")
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})
}

func TestPatchArticle(t *testing.T) {
	reseed(t)

	t.Run("applies the delta and returns the updated row", func(t *testing.T) {
		resp := request(t, http.MethodPatch, "/api/articles/2", `{"inc_votes": 5}`)
		require.Equal(t, http.StatusOK, resp.Code)

		updated := decode[models.Article](t, resp, "updatedArticle")
		assert.Equal(t, 2, updated.ArticleID)
		assert.Equal(t, "Sony Vaio; or, The Laptop", updated.Title)
		assert.Equal(t, "mitch", updated.Topic)
		assert.Equal(t, "icellusedkars", updated.Author)
		assert.Equal(t, 5, updated.Votes)
	})

	t.Run("negative delta", func(t *testing.T) {
		resp := request(t, http.MethodPatch, "/api/articles/1", `{"inc_votes": -10}`)
		require.Equal(t, http.StatusOK, resp.Code)

		updated := decode[models.Article](t, resp, "updatedArticle")
		assert.Equal(t, 90, updated.Votes)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := request(t, http.MethodPatch, "/api/articles/invalid_id", `{"inc_votes": 5}`)
		assertMessage(t, resp, http.StatusBadRequest, "Bad Request")
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := request(t, http.MethodPatch, "/api/articles/999", `{"inc_votes": 5}`)
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})
}

func TestGetComments(t *testing.T) {
	reseed(t)

	t.Run("comments for an article", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/3/comments", "")
		require.Equal(t, http.StatusOK, resp.Code)

		comments := decode[[]models.Comment](t, resp, "comments")
		require.Len(t, comments, 2)
		for _, comment := range comments {
			assert.Equal(t, 3, comment.ArticleID)
			assert.NotZero(t, comment.CommentID)
			assert.NotEmpty(t, comment.Author)
			assert.NotEmpty(t, comment.Body)
		}
	})

	t.Run("article with no comments yields an empty array", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/4/comments", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"comments": []}`, resp.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/invalid_id/comments", "")
		assertMessage(t, resp, http.StatusBadRequest, "Bad Request")
	})

	t.Run("unknown article", func(t *testing.T) {
		resp := request(t, http.MethodGet, "/api/articles/999/comments", "")
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})
}

func TestPostComment(t *testing.T) {
	reseed(t)

	t.Run("creates the comment with server-assigned fields", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Minute)
		resp := request(t, http.MethodPost, "/api/articles/3/comments",
			`{"username": "butter_bridge", "body": "Test comment"}`)
		require.Equal(t, http.StatusCreated, resp.Code)

		var comment models.Comment
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &comment))
		assert.Equal(t, 3, comment.ArticleID)
		assert.Equal(t, "butter_bridge", comment.Author)
		assert.Equal(t, "Test comment", comment.Body)
		assert.Equal(t, 0, comment.Votes)
		assert.Greater(t, comment.CommentID, 18)
		assert.True(t, comment.CreatedAt.After(before))

		listed := decode[[]models.Comment](t, request(t, http.MethodGet, "/api/articles/3/comments", ""), "comments")
		assert.Len(t, listed, 3)
	})

	t.Run("unknown article reported before unknown user", func(t *testing.T) {
		resp := request(t, http.MethodPost, "/api/articles/999/comments",
			`{"username": "not_a_user", "body": "Test comment"}`)
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := request(t, http.MethodPost, "/api/articles/3/comments",
			`{"username": "not_a_user", "body": "Test comment"}`)
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})

	t.Run("non-numeric article id", func(t *testing.T) {
		resp := request(t, http.MethodPost, "/api/articles/invalid_id/comments",
			`{"username": "butter_bridge", "body": "Test comment"}`)
		assertMessage(t, resp, http.StatusBadRequest, "Bad Request")
	})
}

func TestDeleteComment(t *testing.T) {
	reseed(t)

	t.Run("first delete succeeds, repeat reports not found", func(t *testing.T) {
		resp := request(t, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.Empty(t, resp.Body.String())

		resp = request(t, http.MethodDelete, "/api/comments/1", "")
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})

	t.Run("deleted comment no longer counted", func(t *testing.T) {
		reseed(t)
		require.Equal(t, http.StatusNoContent, request(t, http.MethodDelete, "/api/comments/10", "").Code)

		article := decode[models.ArticleWithCount](t, request(t, http.MethodGet, "/api/articles/3", ""), "article")
		assert.Equal(t, 1, article.CommentCount)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := request(t, http.MethodDelete, "/api/comments/invalid_id", "")
		assertMessage(t, resp, http.StatusBadRequest, "Bad Request")
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := request(t, http.MethodDelete, "/api/comments/999", "")
		assertMessage(t, resp, http.StatusNotFound, "Resource not found")
	})
}
