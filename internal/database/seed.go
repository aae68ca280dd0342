package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jgrayburn/nc-news-api/internal/models"
)

func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

var seedTopics = []models.Topic{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}

var seedUsers = []models.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

var seedArticles = []models.Article{
	{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09 20:11:00"), Votes: 100},
	{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago, never mind how long precisely, I thought I would get a laptop.", CreatedAt: ts("2020-10-16 05:03:00")},
	{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03 09:12:00")},
	{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY driven one student to extreme measures.", CreatedAt: ts("2020-05-06 01:14:00")},
	{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03 13:14:00")},
	{ArticleID: 6, Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18 01:00:00")},
	{ArticleID: 7, Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts("2020-01-07 14:08:00")},
	{ArticleID: 8, Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch.", CreatedAt: ts("2020-04-17 01:08:00")},
	{ArticleID: 9, Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts("2020-06-06 09:10:00")},
	{ArticleID: 10, Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts("2020-05-14 04:15:00")},
	{ArticleID: 11, Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall blankly, like a cat. Does this make me a cat?", CreatedAt: ts("2020-01-15 22:21:00")},
	{ArticleID: 12, Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts("2020-10-11 11:24:00")},
}

var seedComments = []models.Comment{
	{CommentID: 1, ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Votes: 16, CreatedAt: ts("2020-04-06 12:17:00")},
	{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: ts("2020-10-31 03:03:00")},
	{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", Votes: 100, CreatedAt: ts("2020-03-01 01:13:00")},
	{CommentID: 4, ArticleID: 1, Author: "icellusedkars", Body: "I carry a log — yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: ts("2020-02-23 12:01:00")},
	{CommentID: 5, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: ts("2020-11-03 21:00:00")},
	{CommentID: 6, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", CreatedAt: ts("2020-04-11 21:02:00")},
	{CommentID: 7, ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", CreatedAt: ts("2020-05-15 20:19:00")},
	{CommentID: 8, ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", CreatedAt: ts("2020-04-14 20:19:00")},
	{CommentID: 9, ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", CreatedAt: ts("2020-01-01 03:08:00")},
	{CommentID: 10, ArticleID: 3, Author: "icellusedkars", Body: "git push origin master", CreatedAt: ts("2020-06-20 07:24:00")},
	{CommentID: 11, ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", CreatedAt: ts("2020-09-19 23:10:00")},
	{CommentID: 12, ArticleID: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", CreatedAt: ts("2020-03-02 07:10:00")},
	{CommentID: 13, ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles", CreatedAt: ts("2020-06-15 10:25:00")},
	{CommentID: 14, ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", Votes: 16, CreatedAt: ts("2020-06-09 05:00:00")},
	{CommentID: 15, ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: ts("2020-11-24 00:08:00")},
	{CommentID: 16, ArticleID: 6, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 1, CreatedAt: ts("2020-10-11 15:23:00")},
	{CommentID: 17, ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: ts("2020-03-14 17:02:00")},
	{CommentID: 18, ArticleID: 1, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: ts("2020-10-11 15:23:00")},
}

// Seed wipes the four tables and loads the development fixture set. Rows are
// inserted with explicit ids, so the serial sequences are bumped afterwards
// to keep later inserts from colliding.
func Seed(db *gorm.DB) error {
	if err := db.Exec("TRUNCATE topics, users, articles, comments RESTART IDENTITY CASCADE").Error; err != nil {
		return fmt.Errorf("truncating tables: %w", err)
	}

	if err := db.Create(&seedTopics).Error; err != nil {
		return fmt.Errorf("seeding topics: %w", err)
	}
	if err := db.Create(&seedUsers).Error; err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	if err := db.Create(&seedArticles).Error; err != nil {
		return fmt.Errorf("seeding articles: %w", err)
	}
	if err := db.Create(&seedComments).Error; err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}

	for _, stmt := range []string{
		"SELECT setval(pg_get_serial_sequence('articles', 'article_id'), (SELECT MAX(article_id) FROM articles))",
		"SELECT setval(pg_get_serial_sequence('comments', 'comment_id'), (SELECT MAX(comment_id) FROM comments))",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("resetting sequences: %w", err)
		}
	}

	return nil
}
