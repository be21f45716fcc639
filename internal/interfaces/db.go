package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]interface{},
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// DBClient defines the interface for a generic database client.
// It abstracts common database operations across different database types (e.g., MongoDB, SQL).
type DBClient interface {
	// Connect establishes a connection to the database.
	// It takes a context for cancellation and timeouts, and a DSN (Data Source Name) string.
	// Returns an error if the connection fails.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	// Returns an error if the disconnection fails.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the specified collection/table.
	// Returns the ID of the inserted document (e.g., MongoDB ObjectID, SQL primary key) and an error.
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// FindOne retrieves a single document from the specified collection/table
	// that matches the provided filter. 'result' is a pointer to the variable
	// where the decoded document will be stored. A miss is not an error; the
	// result is left zero-valued.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves multiple documents from the specified collection/table
	// that match the provided filter. An empty filter matches every document.
	FindMany(ctx context.Context, collectionName string, filter Document) ([]Document, error)

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error

	// EnsureSchema applies backend-specific schema setup for a collection/table:
	// a CREATE TABLE statement for SQL backends, an index model for MongoDB.
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error
}
