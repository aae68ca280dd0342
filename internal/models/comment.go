package models

import "time"

type Comment struct {
	CommentID int       `gorm:"primaryKey" json:"comment_id"`
	ArticleID int       `gorm:"not null;index" json:"article_id"`
	Author    string    `gorm:"not null" json:"author"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `gorm:"default:0" json:"votes"`
}
