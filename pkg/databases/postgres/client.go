package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lmbotha/lea/internal/interfaces"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL databases.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int           // MaxOpenConns is the maximum number of open connections to the database
	MaxIdleConns    int           // MaxIdleConns is the maximum number of idle connections to the database
	ConnMaxLifetime time.Duration // ConnMaxLifetime is the maximum amount of time a connection may be reused
}

func NewPostgresDatabaseClient(maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) interfaces.DBClient {
	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = DefaultMaxIdleConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = DefaultConnMaxLifetime
	}
	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single document into a PostgreSQL table.
// 'document' is expected to be a map[string]interface{}.
// It dynamically builds the INSERT query.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (interface{}, error) {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL InsertOne expects document to be map[string]interface{}")
	}

	// Generate UUID for 'id' if not present in the document
	if _, exists := docMap["id"]; !exists {
		docMap["id"] = uuid.New().String()
	}

	columns := make([]string, 0, len(docMap))
	placeholders := make([]string, 0, len(docMap))
	values := make([]interface{}, 0, len(docMap))

	i := 1
	for col, val := range docMap {
		columns = append(columns, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i))
		values = append(values, val)
		i++
	}

	//This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201

	var insertedID interface{} // Can be string (UUID), int, etc.
	err := p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID)
	if err != nil {
		return nil, err
	}
	return insertedID, nil
}

// FindOne retrieves a single document from a PostgreSQL table.
// 'filter' is expected to be a map[string]interface{} for WHERE clause.
// 'result' is a pointer to a struct that the data will be scanned into.
// Column names come from the struct's `db` tags, falling back to the
// lowercased field name.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return fmt.Errorf("PostgreSQL FindOne expects filter to be map[string]interface{}")
	}
	if len(filterMap) == 0 {
		return fmt.Errorf("PostgreSQL FindOne requires a non-empty filter")
	}

	// Build WHERE clause
	whereClauses := make([]string, 0, len(filterMap))
	whereValues := make([]interface{}, 0, len(filterMap))
	paramCount := 1
	for col, val := range filterMap {
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		whereValues = append(whereValues, val)
		paramCount++
	}
	whereString := strings.Join(whereClauses, " AND ")

	// Use reflection to get fields from the 'result' struct for SELECT and Scan
	resultValue := reflect.ValueOf(result)
	if resultValue.Kind() != reflect.Ptr || resultValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("result must be a pointer to a struct")
	}
	elem := resultValue.Elem()
	numFields := elem.NumField()

	columns := make([]string, numFields)
	fieldPointers := make([]interface{}, numFields) // Pointers to fields in the struct for Scan()

	for i := 0; i < numFields; i++ {
		field := elem.Type().Field(i)
		column := field.Tag.Get("db")
		if column == "" {
			column = strings.ToLower(field.Name)
		}
		columns[i] = column
		fieldPointers[i] = elem.Field(i).Addr().Interface()
	}

	//This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		strings.Join(columns, ", "),
		tableName,
		whereString,
	) // #nosec G201

	row := p.db.QueryRowContext(ctx, query, whereValues...)
	err := row.Scan(fieldPointers...)
	if err == sql.ErrNoRows {
		// Reset the struct if no rows found, so it doesn't contain partial data
		elem.Set(reflect.New(elem.Type()).Elem())
		return nil // Return nil error as per DBClient interface if no document is found
	}
	return err
}

// FindMany retrieves multiple documents from a PostgreSQL table.
// 'filter' is expected to be a map[string]interface{}; an empty map matches
// every row. The result is a slice of map[string]interface{} in the order
// the rows were returned.
func (p *PostgresDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document) ([]interfaces.Document, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL FindMany expects filter to be map[string]interface{}")
	}

	whereClauses := make([]string, 0, len(filterMap))
	whereValues := make([]interface{}, 0, len(filterMap))
	paramCount := 1
	for col, val := range filterMap {
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		whereValues = append(whereValues, val)
		paramCount++
	}
	whereString := ""
	if len(whereClauses) > 0 {
		whereString = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	//This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("SELECT * FROM %s%s", tableName, whereString) // #nosec G201

	rows, err := p.db.QueryContext(ctx, query, whereValues...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			fmt.Printf("failed to close rows: %v", cerr)
		}
	}()

	var results []interfaces.Document
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	for rows.Next() {
		columnPointers := make([]interface{}, len(columns))
		columnValues := make([]interface{}, len(columns))
		for i := range columns {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		rowMap := make(map[string]interface{})
		for i, colName := range columns {
			val := columnValues[i]
			if b, ok := val.([]byte); ok { // Handle byte slices for string-like types
				rowMap[colName] = string(b)
			} else {
				rowMap[colName] = val
			}
		}
		results = append(results, rowMap)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Ping checks the health of the PostgreSQL connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	return p.db.PingContext(ctx)
}

// EnsureSchema runs a CREATE TABLE statement for PostgreSQL-specific schema
// setup. The DBClient interface has no generic schema definition method, so
// the statement is passed through as a string.
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, schema interfaces.Document) error {
	// check if p.db is nil
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	if schema == nil {
		return fmt.Errorf("EnsureSchema expects schema to be a CREATE TABLE statement string")
	}
	// Type assertion to string for CREATE TABLE statement
	createStmt, ok := schema.(string)
	if !ok {
		return fmt.Errorf("EnsureSchema expects schema to be a CREATE TABLE statement string")
	}
	_, err := p.db.ExecContext(ctx, createStmt)
	return err
}
