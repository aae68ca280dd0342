package store

import "github.com/jgrayburn/nc-news-api/internal/models"

func (s *Store) ListTopics() ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.db.Find(&topics).Error; err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return topics, nil
}
