//go:build integration

// Package testutil starts the MongoDB container used by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/rs/xid"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoDB is a running MongoDB container.
type MongoDB struct {
	container *mongodb.MongoDBContainer
	URI       string
}

// StartMongoDB starts a dedicated MongoDB container. Prefer RunWithMongoDB
// in TestMain when several tests in a package need a database.
func StartMongoDB(ctx context.Context) (*MongoDB, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDB{container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDB) Terminate(ctx context.Context) error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Terminate(ctx)
}

var shared struct {
	mu sync.RWMutex
	db *MongoDB
}

// RunWithMongoDB starts one container for the whole package, runs the tests
// and tears the container down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(m))
//	}
func RunWithMongoDB(m *testing.M) int {
	ctx := context.Background()

	db, err := StartMongoDB(ctx)
	if err != nil {
		panic(err)
	}
	shared.mu.Lock()
	shared.db = db
	shared.mu.Unlock()

	code := m.Run()

	if err := db.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: terminate shared mongodb: %v\n", err)
	}
	return code
}

// SharedURI returns the connection string of the package container.
func SharedURI(t testing.TB) string {
	t.Helper()
	shared.mu.RLock()
	defer shared.mu.RUnlock()

	if shared.db == nil {
		t.Fatal("shared mongodb not started; call RunWithMongoDB from TestMain")
	}
	return shared.db.URI
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_")

// DatabaseName derives a unique, valid database name from the test name so
// tests sharing a container never see each other's documents.
func DatabaseName(t testing.TB) string {
	t.Helper()
	name := dbNameReplacer.Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return name + "_" + xid.New().String()
}
