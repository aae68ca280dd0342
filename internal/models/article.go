package models

import "time"

type Article struct {
	ArticleID int       `gorm:"primaryKey" json:"article_id"`
	Title     string    `gorm:"not null" json:"title"`
	Topic     string    `gorm:"not null;index" json:"topic"`
	Author    string    `gorm:"not null" json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `gorm:"default:0" json:"votes"`
}

// ArticleWithCount is the aggregation-join shape served by the listing and
// single-article endpoints. Kept flat so GORM can scan the joined row
// directly; CommentCount is an integer even when the article has no comments.
type ArticleWithCount struct {
	ArticleID    int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}
