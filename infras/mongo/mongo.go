package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"holipass/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	// ErrNotConfigured marks a deployment without a Mongo URI. The store is
	// treated as permanently unavailable for the process lifetime.
	ErrNotConfigured = errors.New("mongo: no URI configured")

	// ErrUnavailable marks a connection that is inside the availability
	// gate cooldown window and must not be attempted.
	ErrUnavailable = errors.New("mongo: database unavailable")
)

// Connection owns the process-scoped client handle and the availability gate
// guarding it. Every caller goes through Collection, which decides whether
// the database should even be attempted for this request.
type Connection struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
	gate     *Gate
}

func New(cfg *config.Config) *Connection {
	conn := &Connection{
		database: cfg.DB.Mongo.Database,
		timeout:  time.Duration(cfg.DB.Mongo.TimeoutSeconds) * time.Second,
		gate:     NewGate(time.Duration(cfg.DB.Mongo.CooldownSeconds) * time.Second),
	}

	uri := cfg.DB.Mongo.URI
	if uri == "" {
		log.Warn().Msg("No Mongo URI configured, durable store disabled for this process")

		return conn
	}

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(conn.timeout).
		SetMaxPoolSize(10))
	if err != nil {
		log.Warn().Err(err).Msg("Mongo client construction failed, durable store disabled for this process")

		return conn
	}

	conn.client = client

	log.Info().Str("database", conn.database).Msg("Mongo client initialized")

	return conn
}

// Collection returns a handle for the named collection after verifying the
// database is reachable. A ping failure opens the gate so subsequent requests
// skip the database until the cooldown elapses.
func (c *Connection) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	if c.client == nil {
		return nil, ErrNotConfigured
	}

	if !c.gate.Allow() {
		return nil, ErrUnavailable
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Ping(pingCtx, readpref.Primary()); err != nil {
		c.gate.MarkFailure()
		log.Warn().Err(err).Msg("Mongo unreachable, gate opened")

		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.gate.MarkSuccess()

	return c.client.Database(c.database).Collection(name), nil
}

// Timeout is the per-operation deadline for database calls.
func (c *Connection) Timeout() time.Duration {
	return c.timeout
}

// Gate exposes the availability gate, mainly for tests that need to force
// the open state.
func (c *Connection) Gate() *Gate {
	return c.gate
}
