package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/lmbotha/lea/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*PostgresDatabaseClient, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return &PostgresDatabaseClient{db: db}, mock
}

func TestNewPostgresDatabaseClient_Defaults(t *testing.T) {
	client, ok := NewPostgresDatabaseClient(0, 0, 0).(*PostgresDatabaseClient)
	require.True(t, ok)
	assert.Equal(t, DefaultMaxOpenConns, client.MaxOpenConns)
	assert.Equal(t, DefaultMaxIdleConns, client.MaxIdleConns)
	assert.Equal(t, DefaultConnMaxLifetime, client.ConnMaxLifetime)

	client, ok = NewPostgresDatabaseClient(20, 10, time.Minute).(*PostgresDatabaseClient)
	require.True(t, ok)
	assert.Equal(t, 20, client.MaxOpenConns)
	assert.Equal(t, 10, client.MaxIdleConns)
	assert.Equal(t, time.Minute, client.ConnMaxLifetime)
}

func TestPostgresDatabaseClient_InsertOne(t *testing.T) {
	t.Run("generates an id and returns the inserted id", func(t *testing.T) {
		client, mock := newMockClient(t)

		// Column order follows map iteration and is not deterministic, so the
		// expectation matches on the statement shape only.
		mock.ExpectQuery("INSERT INTO users .+ RETURNING id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("generated-id"))

		doc := map[string]interface{}{
			"external_user_id": "ext-001",
			"name":             "Thandi Nkosi",
			"email":            "thandi@example.com",
			"password_hash":    "$2a$10$hash",
		}
		id, err := client.InsertOne(context.Background(), "users", doc)
		require.NoError(t, err)
		assert.Equal(t, "generated-id", id)

		// InsertOne fills in a UUID id when the document has none.
		assert.NotEmpty(t, doc["id"])
	})

	t.Run("keeps a caller-provided id", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectQuery("INSERT INTO courses .+ RETURNING id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("caller-id"))

		doc := map[string]interface{}{
			"id":          "caller-id",
			"course_name": "Mathematics",
		}
		_, err := client.InsertOne(context.Background(), "courses", doc)
		require.NoError(t, err)
		assert.Equal(t, "caller-id", doc["id"])
	})

	t.Run("rejects non-map documents", func(t *testing.T) {
		client, _ := newMockClient(t)
		_, err := client.InsertOne(context.Background(), "users", "not a map")
		assert.Error(t, err)
	})
}

func TestPostgresDatabaseClient_FindOne(t *testing.T) {
	selectUser := regexp.QuoteMeta(
		"SELECT id, external_user_id, name, email, password_hash FROM users WHERE email = $1 LIMIT 1")

	t.Run("scans a row into the result struct", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectQuery(selectUser).
			WithArgs("thandi@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "external_user_id", "name", "email", "password_hash"}).
				AddRow("user-id-1", "ext-001", "Thandi Nkosi", "thandi@example.com", "$2a$10$hash"))

		var user models.User
		err := client.FindOne(context.Background(), "users",
			map[string]interface{}{"email": "thandi@example.com"}, &user)
		require.NoError(t, err)
		assert.Equal(t, models.User{
			ID:             "user-id-1",
			ExternalUserID: "ext-001",
			Name:           "Thandi Nkosi",
			Email:          "thandi@example.com",
			PasswordHash:   "$2a$10$hash",
		}, user)
	})

	t.Run("no rows leaves a zero struct and no error", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectQuery(selectUser).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user := models.User{ID: "stale"}
		err := client.FindOne(context.Background(), "users",
			map[string]interface{}{"email": "nobody@example.com"}, &user)
		require.NoError(t, err)
		assert.Equal(t, models.User{}, user)
	})

	t.Run("rejects an empty filter", func(t *testing.T) {
		client, _ := newMockClient(t)
		var user models.User
		err := client.FindOne(context.Background(), "users", map[string]interface{}{}, &user)
		assert.Error(t, err)
	})

	t.Run("rejects a non-pointer result", func(t *testing.T) {
		client, _ := newMockClient(t)
		err := client.FindOne(context.Background(), "users",
			map[string]interface{}{"email": "thandi@example.com"}, models.User{})
		assert.Error(t, err)
	})
}

func TestPostgresDatabaseClient_FindMany(t *testing.T) {
	t.Run("empty filter returns every row as a map", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM courses")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "course_name"}).
				AddRow([]byte("course-id-1"), []byte("Mathematics")).
				AddRow([]byte("course-id-2"), []byte("Physics")))

		docs, err := client.FindMany(context.Background(), "courses", map[string]interface{}{})
		require.NoError(t, err)
		require.Len(t, docs, 2)

		// Byte slices come back as strings so callers can decode them.
		first, ok := docs[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "course-id-1", first["id"])
		assert.Equal(t, "Mathematics", first["course_name"])
	})

	t.Run("filter builds a WHERE clause", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM user_courses WHERE user_id = $1")).
			WithArgs("user-id-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "course_id"}))

		docs, err := client.FindMany(context.Background(), "user_courses",
			map[string]interface{}{"user_id": "user-id-1"})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestPostgresDatabaseClient_EnsureSchema(t *testing.T) {
	t.Run("executes the CREATE TABLE statement", func(t *testing.T) {
		client, mock := newMockClient(t)

		stmt := "CREATE TABLE IF NOT EXISTS courses (id UUID PRIMARY KEY, course_name TEXT UNIQUE NOT NULL)"
		mock.ExpectExec(regexp.QuoteMeta(stmt)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := client.EnsureSchema(context.Background(), "courses", stmt)
		assert.NoError(t, err)
	})

	t.Run("rejects a non-string schema", func(t *testing.T) {
		client, _ := newMockClient(t)
		err := client.EnsureSchema(context.Background(), "courses", 42)
		assert.Error(t, err)
	})
}

func TestPostgresDatabaseClient_Ping(t *testing.T) {
	var disconnected PostgresDatabaseClient
	assert.Error(t, disconnected.Ping(context.Background()))
}
