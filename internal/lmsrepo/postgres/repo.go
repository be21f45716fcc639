package postgres

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lib/pq"

	"github.com/lmbotha/lea/internal/interfaces"
	"github.com/lmbotha/lea/internal/lmsrepo/constants"
	"github.com/lmbotha/lea/internal/models"
	postgresClient "github.com/lmbotha/lea/pkg/databases/postgres"
)

const (
	usersSchema = `CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		external_user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL
	)`
	coursesSchema = `CREATE TABLE IF NOT EXISTS courses (
		id UUID PRIMARY KEY,
		course_name TEXT NOT NULL UNIQUE
	)`
	enrollmentsSchema = `CREATE TABLE IF NOT EXISTS user_courses (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		course_id UUID NOT NULL REFERENCES courses(id)
	)`

	uniqueViolation = "23505"
)

// PostgresLMSRepository implements interfaces.Repository for PostgreSQL databases.
type PostgresLMSRepository struct {
	dbClient interfaces.DBClient
}

// NewPostgresLMSRepository creates a new PostgreSQL repository instance.
func NewPostgresLMSRepository(dbClient interfaces.DBClient) (interfaces.Repository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	// Ensure the dbClient is the PostgreSQL implementation
	if _, ok := dbClient.(*postgresClient.PostgresDatabaseClient); !ok {
		return nil, fmt.Errorf("dbClient must be a PostgreSQL client")
	}
	return &PostgresLMSRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user to PostgreSQL via DBClient. No uniqueness check is
// made on email or external_user_id; duplicate registrations are accepted.
func (r *PostgresLMSRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	doc := map[string]interface{}{
		"external_user_id": user.ExternalUserID,
		"name":             user.Name,
		"email":            user.Email,
		"password_hash":    user.PasswordHash,
	}
	// The client's InsertOne generates the ID if not present

	insertedID, err := r.dbClient.InsertOne(ctx, constants.UsersCollection, doc)
	if err != nil {
		return "", fmt.Errorf("failed to add user to PostgreSQL: %w", err)
	}
	return assertStringID(insertedID)
}

// GetUserByEmail retrieves a user from PostgreSQL via DBClient. Returns
// (nil, nil) when no user matches.
func (r *PostgresLMSRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := map[string]interface{}{"email": email}
	err := r.dbClient.FindOne(ctx, constants.UsersCollection, filter, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email from PostgreSQL: %w", err)
	}
	if user.ID == "" { // If ID is empty after FindOne, no user was found.
		return nil, nil
	}
	return &user, nil
}

// GetUserByExternalID retrieves a user from PostgreSQL via DBClient. Returns
// (nil, nil) when no user matches. If duplicates exist, the first match wins.
func (r *PostgresLMSRepository) GetUserByExternalID(ctx context.Context, externalUserID string) (*models.User, error) {
	var user models.User
	filter := map[string]interface{}{"external_user_id": externalUserID}
	err := r.dbClient.FindOne(ctx, constants.UsersCollection, filter, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by external id from PostgreSQL: %w", err)
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

// AddCourse saves a new course to PostgreSQL via DBClient. The unique index on
// course_name backstops the service-level duplicate check.
func (r *PostgresLMSRepository) AddCourse(ctx context.Context, courseName string) (string, error) {
	doc := map[string]interface{}{
		"course_name": courseName,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.CoursesCollection, doc)
	if err != nil {
		// PostgreSQL specific duplicate key error check for the `pq` driver
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == uniqueViolation {
			return "", fmt.Errorf("course '%s' already exists", courseName)
		}
		return "", fmt.Errorf("failed to add course to PostgreSQL: %w", err)
	}
	return assertStringID(insertedID)
}

// GetCourseByName retrieves a course from PostgreSQL via DBClient. Returns
// (nil, nil) when no course matches.
func (r *PostgresLMSRepository) GetCourseByName(ctx context.Context, courseName string) (*models.Course, error) {
	var course models.Course
	filter := map[string]interface{}{"course_name": courseName}
	err := r.dbClient.FindOne(ctx, constants.CoursesCollection, filter, &course)
	if err != nil {
		return nil, fmt.Errorf("failed to get course by name from PostgreSQL: %w", err)
	}
	if course.ID == "" {
		return nil, nil
	}
	return &course, nil
}

// ListCourses retrieves every course from PostgreSQL via DBClient in the order
// the rows were returned.
func (r *PostgresLMSRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.CoursesCollection, map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses from PostgreSQL: %w", err)
	}

	courses := make([]models.Course, 0, len(docs))
	for _, doc := range docs {
		var course models.Course
		if err := mapstructure.Decode(doc, &course); err != nil {
			return nil, fmt.Errorf("failed to decode course row: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// AddEnrollment saves a new user-course enrollment to PostgreSQL via DBClient.
// There is no uniqueness constraint on the pair; repeated assignment is cumulative.
func (r *PostgresLMSRepository) AddEnrollment(ctx context.Context, userID, courseID string) (string, error) {
	doc := map[string]interface{}{
		"user_id":   userID,
		"course_id": courseID,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.EnrollmentsCollection, doc)
	if err != nil {
		return "", fmt.Errorf("failed to add enrollment to PostgreSQL: %w", err)
	}
	return assertStringID(insertedID)
}

// EnsureIndices creates the users, courses and user_courses tables in PostgreSQL.
func (r *PostgresLMSRepository) EnsureIndices(ctx context.Context) error {
	schemas := map[string]string{
		constants.UsersCollection:       usersSchema,
		constants.CoursesCollection:     coursesSchema,
		constants.EnrollmentsCollection: enrollmentsSchema,
	}
	// users and courses must exist before user_courses can reference them
	for _, table := range []string{constants.UsersCollection, constants.CoursesCollection, constants.EnrollmentsCollection} {
		if err := r.dbClient.EnsureSchema(ctx, table, schemas[table]); err != nil {
			return fmt.Errorf("failed to ensure schema for %s: %w", table, err)
		}
	}
	return nil
}

// Close closes the PostgreSQL database connection.
func (r *PostgresLMSRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func assertStringID(insertedID interface{}) (string, error) {
	// lib/pq scans UUID columns into []byte when the destination is interface{}
	switch id := insertedID.(type) {
	case string:
		return id, nil
	case []byte:
		return string(id), nil
	default:
		return "", fmt.Errorf("failed to assert inserted ID to string (expected UUID)")
	}
}
