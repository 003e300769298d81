// Package archive persists a record of each decode run — its source
// content hash, timing, and the assembled Document — to MongoDB for later
// audit or replay. Archiving is best-effort: a write failure is logged by
// the caller and never blocks the decode result it's archiving.
package archive

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avnlabs/gsgraph/pkg/gsdoc"
	"github.com/avnlabs/gsgraph/pkg/httputil"
)

// Run is one archived decode invocation.
type Run struct {
	ContentHash string         `bson:"content_hash"`
	DecodedAt   time.Time      `bson:"decoded_at"`
	NodeCount   int            `bson:"node_count"`
	EdgeCount   int            `bson:"edge_count"`
	Document    gsdoc.Document `bson:"document"`
}

// Sink writes Runs to a MongoDB collection.
type Sink struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewSink connects to uri and targets database/collection for future
// writes. The connection is verified with Ping, retried with backoff since
// the archive sink is typically dialed once at server startup when the
// database may still be coming up.
func NewSink(ctx context.Context, uri, database, collection string) (*Sink, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingErr := httputil.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return &httputil.RetryableError{Err: err}
		}
		return nil
	})
	if pingErr != nil {
		_ = client.Disconnect(ctx)
		return nil, pingErr
	}

	return &Sink{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Archive inserts run into the sink's collection.
func (s *Sink) Archive(ctx context.Context, run Run) error {
	_, err := s.collection.InsertOne(ctx, run)
	return err
}

// Close disconnects the underlying MongoDB client.
func (s *Sink) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
