package store

import (
	"context"
	"errors"
	"regexp"

	infra "holipass/infras/mongo"
	"holipass/infras/otel"
	"holipass/internal/domains/booking/model"
	"holipass/shared"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

type documentStore struct {
	conn *infra.Connection
	otel otel.Otel
}

// NewDocumentStore builds the durable store on the process-scoped Mongo
// connection. Reachability is decided per call by the connection's
// availability gate.
func NewDocumentStore(conn *infra.Connection, ot otel.Otel) DocumentStore {
	return &documentStore{
		conn: conn,
		otel: ot,
	}
}

func (s *documentStore) Insert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	if _, err = coll.InsertOne(opCtx, booking); err != nil {
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Str("ticketId", booking.TicketID).Msg("mongo insert failed")

		return err
	}

	return nil
}

func (s *documentStore) FindOne(ctx context.Context, predicate Predicate) Result {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".FindOne")
	defer scope.End()

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return Unavailable()
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	var booking model.Booking

	err = coll.FindOne(opCtx, bsonFilter(predicate)).Decode(&booking)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return NotFound()
	}

	if err != nil {
		scope.TraceError(err)
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo find one failed")

		return Unavailable()
	}

	return Found(booking)
}

func (s *documentStore) FindAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".FindAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	cursor, err := coll.Find(opCtx, bson.M{})
	if err != nil {
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo find all failed")

		return nil, err
	}

	defer cursor.Close(opCtx)

	if err = cursor.All(opCtx, &bookings); err != nil {
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo cursor drain failed")

		return nil, err
	}

	return bookings, nil
}

func (s *documentStore) UpdateOne(ctx context.Context, predicate Predicate, changes map[string]any) (modified int, err error) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".UpdateOne")
	defer scope.End()
	defer scope.TraceIfError(err)

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return 0, err
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	res, err := coll.UpdateOne(opCtx, bsonFilter(predicate), bson.M{"$set": changes})
	if err != nil {
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo update one failed")

		return 0, err
	}

	// A matched document whose fields already carry the requested values
	// counts as modified for the caller: the update is idempotent.
	if res.MatchedCount > 0 {
		return 1, nil
	}

	return 0, nil
}

func (s *documentStore) DeleteOne(ctx context.Context, predicate Predicate) (deleted int, err error) {
	ctx, scope := s.otel.NewScope(ctx, otel.ScopeStore, otel.ScopeStore+".DeleteOne")
	defer scope.End()
	defer scope.TraceIfError(err)

	coll, err := s.conn.Collection(ctx, model.CollectionName)
	if err != nil {
		return 0, err
	}

	opCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	res, err := coll.DeleteOne(opCtx, bsonFilter(predicate))
	if err != nil {
		s.conn.Gate().MarkFailure()
		log.Warn().Err(err).Msg("mongo delete one failed")

		return 0, err
	}

	return int(res.DeletedCount), nil
}

// bsonFilter converts a predicate to a Mongo filter. Ticket and order
// identifiers match case-insensitively so legacy rows imported from the
// spreadsheet with odd casing are still found.
func bsonFilter(predicate Predicate) bson.M {
	filter := bson.M{}

	for field, value := range predicate {
		switch field {
		case model.FieldTicketID, model.FieldOrderID:
			normalized := shared.NormalizeTicketID(value)
			filter[field] = bson.M{
				"$regex":   "^" + regexp.QuoteMeta(normalized) + "$",
				"$options": "i",
			}
		default:
			filter[field] = value
		}
	}

	return filter
}
