// Package store holds the entity accessors. Each accessor issues
// parameterized SQL through GORM and raises *AppError for client mistakes;
// anything else propagates untouched for the middleware chain to classify.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
