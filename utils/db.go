package utils

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DBState is the datastore-availability flag passed to request handlers.
// It is constructed once in main and injected where needed instead of
// living as a package global.
type DBState struct {
	mu        sync.RWMutex
	connected bool
}

// NewDBState returns a DBState that starts disconnected.
func NewDBState() *DBState {
	return &DBState{}
}

// SetConnected records whether the datastore is reachable.
func (s *DBState) SetConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

// Connected reports whether the datastore is reachable.
func (s *DBState) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// DatabaseName returns the Mongo database name, defaulting to "foodie".
func DatabaseName() string {
	if name := os.Getenv("MONGODB_DATABASE"); name != "" {
		return name
	}
	return "foodie"
}

// ConnectDB creates a MongoDB client and pings it. The client is returned
// even when the ping fails so the server can start without a database and
// serve 503s until it comes up; the boolean reports reachability.
func ConnectDB() (*mongo.Client, bool, error) {
	uri := os.Getenv("MONGODB_URI")
	configured := uri != ""
	if !configured {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, false, err
	}

	if !configured {
		logrus.Warn("MONGODB_URI is not set; add it to your .env file to connect to a database")
		return client, false, nil
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logrus.WithError(err).Warn("MongoDB connection failed")
		return client, false, nil
	}

	logrus.Info("Connected to MongoDB")
	return client, true, nil
}
