package store

import (
	"context"

	"holipass/internal/domains/content/model"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

// Status tags a singleton fetch outcome so "no document yet" and "backend
// down" stay distinguishable without sentinel errors or nil checks.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusUnavailable
)

type Result struct {
	Status  Status
	Content model.EventContent
}

func Found(content model.EventContent) Result {
	return Result{Status: StatusFound, Content: content}
}

func NotFound() Result {
	return Result{Status: StatusNotFound}
}

func Unavailable() Result {
	return Result{Status: StatusUnavailable}
}

// DocumentStore holds the one event-configuration document in the durable
// database. Replace is a whole-document upsert; merging is the repository's
// job.
type DocumentStore interface {
	Fetch(ctx context.Context) Result
	Replace(ctx context.Context, content model.EventContent) error
}

// FileStore is the local JSON fallback for the same document.
type FileStore interface {
	Load() (model.EventContent, bool)
	Save(content model.EventContent) error
}
