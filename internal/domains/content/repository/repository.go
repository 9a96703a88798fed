package repository

import (
	"context"
	"sync"
	"time"

	"holipass/infras/otel"
	"holipass/internal/domains/content/model"
	"holipass/internal/domains/content/store"

	"github.com/rs/zerolog/log"
)

// Content owns the singleton event-configuration document. Reads are served
// through a short in-process TTL cache; writes merge rather than replace,
// so a partial admin payload never blanks configured fields. Like the
// booking repository, no backend failure ever escapes to callers: the worst
// outcome is the built-in default document.
type Content interface {
	GetContent(ctx context.Context) model.EventContent
	SaveContent(ctx context.Context, partial model.EventContent) bool
	InvalidateCache()
}

type repositoryImpl struct {
	documents store.DocumentStore
	file      store.FileStore
	otel      otel.Otel

	mu       sync.Mutex
	cached   model.EventContent
	cachedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func New(documents store.DocumentStore, file store.FileStore, ttl time.Duration, ot otel.Otel) Content {
	return &repositoryImpl{
		documents: documents,
		file:      file,
		otel:      ot,
		ttl:       ttl,
		now:       time.Now,
	}
}

// NewWithClock injects the wall clock, used by tests to step past the TTL.
func NewWithClock(documents store.DocumentStore, file store.FileStore, ttl time.Duration, ot otel.Otel, now func() time.Time) Content {
	return &repositoryImpl{
		documents: documents,
		file:      file,
		otel:      ot,
		ttl:       ttl,
		now:       now,
	}
}

// GetContent returns the current document: cache while fresh, then durable
// DB, then the local file, then the built-in default (persisted so the next
// reader finds it). Staleness up to one TTL after an external edit is an
// accepted trade-off.
func (r *repositoryImpl) GetContent(ctx context.Context) model.EventContent {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".GetContent")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.now().Sub(r.cachedAt) < r.ttl {
		return r.cached
	}

	content := r.fetch(ctx)

	r.cached = content
	r.cachedAt = r.now()

	return content
}

func (r *repositoryImpl) fetch(ctx context.Context) model.EventContent {
	result := r.documents.Fetch(ctx)

	switch result.Status {
	case store.StatusFound:
		return result.Content
	case store.StatusNotFound:
		// Reachable DB with no document yet: seed it so every later
		// reader, including other processes, sees the same defaults.
		seed := model.DefaultContent()
		if err := r.documents.Replace(ctx, seed); err != nil {
			log.Warn().Err(err).Msg("failed to seed default event content")
		}

		return seed
	default:
		if content, ok := r.file.Load(); ok {
			return content
		}

		seed := model.DefaultContent()
		if err := r.file.Save(seed); err != nil {
			log.Warn().Err(err).Msg("failed to persist default event content to file")
		}

		return seed
	}
}

// SaveContent merges the partial payload into the current document and
// writes the result to the durable DB when reachable, the local file
// otherwise. The cache is invalidated synchronously on success.
func (r *repositoryImpl) SaveContent(ctx context.Context, partial model.EventContent) bool {
	ctx, scope := r.otel.NewScope(ctx, otel.ScopeRepository, otel.ScopeRepository+".SaveContent")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	merged := model.Merge(r.fetch(ctx), partial)

	if err := r.documents.Replace(ctx, merged); err != nil {
		log.Warn().Err(err).Msg("durable content save failed, writing fallback file")

		if err = r.file.Save(merged); err != nil {
			log.Error().Err(err).Msg("content save failed in every store")

			return false
		}
	}

	r.cached = nil
	r.cachedAt = time.Time{}

	return true
}

func (r *repositoryImpl) InvalidateCache() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cached = nil
	r.cachedAt = time.Time{}
}
