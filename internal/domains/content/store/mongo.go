package store

import (
	"context"
	"errors"

	infra "holipass/infras/mongo"
	"holipass/infras/otel"
	"holipass/internal/domains/content/model"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type documentStore struct {
	conn *infra.Connection
	otel otel.Otel
}

func NewDocumentStore(conn *infra.Connection, ot otel.Otel) DocumentStore {
	return &documentStore{
		conn: conn,
		otel: ot,
	}
}

func (s *documentStore) Fetch(ctx context.Context) Result {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".FetchContent")
	defer scope.End()

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return Unavailable()
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	var content model.EventContent

	// The collection holds exactly one document, any filter-less find
	// returns it.
	err = coll.FindOne(opCtx, bson.M{}).Decode(&content)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return NotFound()
	}

	if err != nil {
		scope.TraceError(err)
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo content fetch failed")

		return Unavailable()
	}

	delete(content, "_id")

	return Found(content)
}

func (s *documentStore) Replace(ctx context.Context, content model.EventContent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".ReplaceContent")
	defer scope.End()
	defer scope.TraceIfError(err)

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	_, err = coll.ReplaceOne(opCtx, bson.M{}, content, options.Replace().SetUpsert(true))
	if err != nil {
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo content replace failed")

		return err
	}

	return nil
}
