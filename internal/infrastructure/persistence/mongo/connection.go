package mongo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"talentboard/internal/config"
	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

var errNoURI = errors.New("MONGO_URI is not set")

// Store owns the client. The client is built on first use when the URI could
// not be resolved at startup, so a DNS outage at boot heals once DNS returns.
type Store struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates the client without waiting for a server. Only a malformed
// URI is an error: an empty URI or an unresolvable SRV seed list is reported
// later by Ping and by every repository call.
func Connect(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	s := &Store{uri: strings.TrimSpace(cfg.MongoURI), dbName: cfg.MongoDatabase}
	if s.uri == "" {
		return s, nil
	}

	if _, err := s.database(ctx); err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

func (s *Store) database(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}
	if s.uri == "" {
		return nil, errNoURI
	}

	cs, err := connstring.ParseAndValidate(s.uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongo uri: %w", err)
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, err
	}

	name := cs.Database
	if name == "" {
		name = s.dbName
	}
	s.client = client
	s.db = client.Database(name)
	return s.db, nil
}

func (s *Store) Name() string { return "MongoDB" }

func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("nil store")
	}
	if _, err := s.database(ctx); err != nil {
		return err
	}
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) func(context.Context) (*mongo.Collection, error) {
	return func(ctx context.Context) (*mongo.Collection, error) {
		db, err := s.database(ctx)
		if err != nil {
			return nil, err
		}
		return db.Collection(name), nil
	}
}

func (s *Store) Freelancers() *FreelancerRepository {
	return &FreelancerRepository{coll: s.collection(freelancer.Collection)}
}

func (s *Store) Recruiters() *RecruiterRepository {
	return &RecruiterRepository{coll: s.collection(recruiter.Collection)}
}

func fixedCollection(db *mongo.Database, name string) func(context.Context) (*mongo.Collection, error) {
	coll := db.Collection(name)
	return func(context.Context) (*mongo.Collection, error) {
		return coll, nil
	}
}
