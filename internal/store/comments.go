package store

import (
	"strconv"

	"github.com/jgrayburn/nc-news-api/internal/models"
)

// ListComments returns every comment on an article, newest first. The
// article must exist; an article with no comments yields an empty slice.
func (s *Store) ListComments(articleID string) ([]models.Comment, error) {
	if err := s.Exists("articles", "article_id", articleID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := s.db.Where("article_id = ?", articleID).Order("created_at desc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// AddComment inserts a new comment with zero votes and a server-assigned id
// and timestamp. The article gate runs before the user gate, so a request
// with both a bad article and an unknown user reports the article first.
// The two checks and the insert are not one transaction; a concurrent
// deletion in between is an accepted race.
func (s *Store) AddComment(articleID, username, body string) (*models.Comment, error) {
	if err := s.Exists("articles", "article_id", articleID); err != nil {
		return nil, err
	}
	if err := s.Exists("users", "username", username); err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(articleID)
	if err != nil {
		// Unreachable after the gate; 22P02 fires there first.
		return nil, err
	}

	comment := models.Comment{
		ArticleID: id,
		Author:    username,
		Body:      body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// RemoveComment deletes a comment permanently. Deleting an id that never
// existed, or was already deleted, reports ErrNotFound.
func (s *Store) RemoveComment(commentID string) error {
	if err := s.Exists("comments", "comment_id", commentID); err != nil {
		return err
	}
	return s.db.Where("comment_id = ?", commentID).Delete(&models.Comment{}).Error
}
