package store

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jgrayburn/nc-news-api/internal/models"
)

const articleAggregate = "articles.*, COUNT(comments.comment_id) AS comment_count"

var sortColumns = map[string]bool{
	"article_id": true,
	"title":      true,
	"topic":      true,
	"author":     true,
	"body":       true,
	"created_at": true,
	"votes":      true,
}

// normalizeSortQuery applies defaults and validates sort_by/order against
// their allow-lists, case-insensitively. The returned identifiers are the
// only structural parts ever interpolated into the listing query.
func normalizeSortQuery(sortBy, order string) (string, string, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortBy = strings.ToLower(sortBy)
	if !sortColumns[sortBy] {
		return "", "", ErrInvalidSort
	}

	if order == "" {
		order = "desc"
	}
	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return "", "", ErrInvalidOrder
	}

	return sortBy, order, nil
}

// ListArticles returns articles with their comment counts, optionally
// filtered by topic. An existing topic with no articles yields an empty
// slice, not an error.
func (s *Store) ListArticles(sortBy, order, topic string) ([]models.ArticleWithCount, error) {
	sortBy, order, err := normalizeSortQuery(sortBy, order)
	if err != nil {
		return nil, err
	}

	query := s.aggregateQuery()
	if topic != "" {
		if err := s.Exists("topics", "slug", topic); err != nil {
			return nil, err
		}
		query = query.Where("articles.topic = ?", topic)
	}

	var articles []models.ArticleWithCount
	err = query.Order("articles." + sortBy + " " + order).Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.ArticleWithCount{}
	}
	return articles, nil
}

// GetArticle fetches one article with its comment count. The existence gate
// runs before the aggregation query: the join alone cannot distinguish a
// missing article from one with zero comments.
func (s *Store) GetArticle(id string) (*models.ArticleWithCount, error) {
	if err := s.Exists("articles", "article_id", id); err != nil {
		return nil, err
	}

	var article models.ArticleWithCount
	err := s.aggregateQuery().Where("articles.article_id = ?", id).Scan(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// UpdateArticleVotes applies a signed delta to an article's votes and
// returns the updated row. A missing or zero delta is rejected outright
// rather than treated as a no-op.
func (s *Store) UpdateArticleVotes(id string, incVotes *int) (*models.Article, error) {
	if incVotes == nil || *incVotes == 0 {
		return nil, ErrBadRequest
	}
	if err := s.Exists("articles", "article_id", id); err != nil {
		return nil, err
	}

	var article models.Article
	err := s.db.Model(&article).
		Clauses(clause.Returning{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", *incVotes)).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *Store) aggregateQuery() *gorm.DB {
	return s.db.Table("articles").
		Select(articleAggregate).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}
