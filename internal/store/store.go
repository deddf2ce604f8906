// Package store archives rendered documents. Answers are never persisted;
// only render outputs and their summary counts are.
package store

import (
	"context"
	"time"
)

// Render is one archived render output.
type Render struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Document  string    `json:"document"`
	Answered  int       `json:"answered"`
	Visible   int       `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
}

// RenderFilter specifies criteria for listing archived renders.
type RenderFilter struct {
	Title  string `json:"title,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the render archive interface.
type Store interface {
	SaveRender(ctx context.Context, r Render) (*Render, error)
	GetRender(ctx context.Context, id string) (*Render, error)
	ListRenders(ctx context.Context, filter RenderFilter) ([]Render, error)

	Migrate(ctx context.Context) error
	Close() error
}
