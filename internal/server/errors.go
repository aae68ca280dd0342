package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/jgrayburn/nc-news-api/internal/logger"
	"github.com/jgrayburn/nc-news-api/internal/store"
)

// invalidTextRepresentation is the SQLSTATE Postgres raises when a WHERE
// clause tries to cast malformed text, e.g. a non-numeric id against an
// integer column.
const invalidTextRepresentation = "22P02"

// stage is one classifier in the normalization chain. It either writes the
// response and reports true, or passes the error along to the next stage.
type stage func(c *gin.Context, err error) bool

// ErrorNormalizer turns any error attached to the context into a uniform
// {message} response. Stages run in fixed order: database errors, then
// structured application rejections, then the catch-all.
func ErrorNormalizer() gin.HandlerFunc {
	stages := []stage{handlePostgresErrors, handleAppErrors, handleUnhandledErrors}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		for _, classify := range stages {
			if classify(c, err) {
				return
			}
		}
	}
}

func handlePostgresErrors(c *gin.Context, err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request"})
		return true
	}
	return false
}

func handleAppErrors(c *gin.Context, err error) bool {
	var appErr *store.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"message": appErr.Message})
		return true
	}
	return false
}

func handleUnhandledErrors(c *gin.Context, err error) bool {
	logger.L.Error("unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Sort it out"})
	return true
}
