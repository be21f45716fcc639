package mongo

import (
	"context"
	"fmt"
	"strings"

	"github.com/lmbotha/lea/internal/interfaces"
	"github.com/lmbotha/lea/internal/lmsrepo/constants"
	"github.com/lmbotha/lea/internal/models"

	"github.com/go-viper/mapstructure/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/lmbotha/lea/pkg/databases/mongo"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUser is the BSON shape of a stored user.
type mongoUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ExternalUserID string             `bson:"external_user_id"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	PasswordHash   string             `bson:"password_hash"`
}

// mongoCourse is the BSON shape of a stored course.
type mongoCourse struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CourseName string             `bson:"course_name"`
}

// MongoLMSRepository implements interfaces.Repository using the generic DBClient.
type MongoLMSRepository struct {
	dbClient interfaces.DBClient
}

// NewMongoLMSRepository creates a new MongoDB repository instance.
// It takes a concrete mongo.MongoDBClient.
func NewMongoLMSRepository(dbClient interfaces.DBClient) (interfaces.Repository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	// Ensure the dbClient is of type MongoDBClient
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoLMSRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user to MongoDB via DBClient. No uniqueness check is
// made on email or external_user_id; duplicate registrations are accepted.
func (r *MongoLMSRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	doc := bson.M{
		"external_user_id": user.ExternalUserID,
		"name":             user.Name,
		"email":            user.Email,
		"password_hash":    user.PasswordHash,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.UsersCollection, map[string]interface{}(doc))
	if err != nil {
		return "", fmt.Errorf("failed to add user to MongoDB: %w", err)
	}

	return assertObjectID(insertedID)
}

// GetUserByEmail retrieves a user from MongoDB via DBClient. Returns
// (nil, nil) when no user matches.
func (r *MongoLMSRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

// GetUserByExternalID retrieves a user from MongoDB via DBClient. Returns
// (nil, nil) when no user matches. If duplicates exist, the first match wins.
func (r *MongoLMSRepository) GetUserByExternalID(ctx context.Context, externalUserID string) (*models.User, error) {
	return r.findUser(ctx, bson.M{"external_user_id": externalUserID})
}

func (r *MongoLMSRepository) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc mongoUser
	err := r.dbClient.FindOne(ctx, constants.UsersCollection, map[string]interface{}(filter), &doc)
	if err != nil {
		if err == mongosdk.ErrNoDocuments {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to get user from MongoDB: %w", err)
	}
	if doc.ID.IsZero() {
		return nil, nil
	}

	return &models.User{
		ID:             doc.ID.Hex(),
		ExternalUserID: doc.ExternalUserID,
		Name:           doc.Name,
		Email:          doc.Email,
		PasswordHash:   doc.PasswordHash,
	}, nil
}

// AddCourse saves a new course to MongoDB via DBClient. The unique index on
// course_name backstops the service-level duplicate check.
func (r *MongoLMSRepository) AddCourse(ctx context.Context, courseName string) (string, error) {
	doc := bson.M{"course_name": courseName}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.CoursesCollection, map[string]interface{}(doc))
	if err != nil {
		if strings.Contains(err.Error(), "E11000 duplicate key error") { // MongoDB specific duplicate key error check
			return "", fmt.Errorf("course '%s' already exists", courseName)
		}
		return "", fmt.Errorf("failed to add course to MongoDB: %w", err)
	}

	return assertObjectID(insertedID)
}

// GetCourseByName retrieves a course from MongoDB via DBClient. Returns
// (nil, nil) when no course matches.
func (r *MongoLMSRepository) GetCourseByName(ctx context.Context, courseName string) (*models.Course, error) {
	var doc mongoCourse
	filter := bson.M{"course_name": courseName}
	err := r.dbClient.FindOne(ctx, constants.CoursesCollection, map[string]interface{}(filter), &doc)
	if err != nil {
		if err == mongosdk.ErrNoDocuments {
			return nil, nil // Course not found
		}
		return nil, fmt.Errorf("failed to get course by name from MongoDB: %w", err)
	}
	if doc.ID.IsZero() {
		return nil, nil
	}

	return &models.Course{
		ID:         doc.ID.Hex(),
		CourseName: doc.CourseName,
	}, nil
}

// ListCourses retrieves every course from MongoDB via DBClient.
func (r *MongoLMSRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.CoursesCollection, map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses from MongoDB: %w", err)
	}

	courses := make([]models.Course, 0, len(docs))
	for _, doc := range docs {
		rowMap, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected course document type from MongoDB")
		}
		if oid, ok := rowMap["_id"].(primitive.ObjectID); ok {
			rowMap["id"] = oid.Hex()
			delete(rowMap, "_id")
		}
		var course models.Course
		if err := mapstructure.Decode(rowMap, &course); err != nil {
			return nil, fmt.Errorf("failed to decode course document: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// AddEnrollment saves a new user-course enrollment to MongoDB via DBClient.
// There is no uniqueness constraint on the pair; repeated assignment is cumulative.
func (r *MongoLMSRepository) AddEnrollment(ctx context.Context, userID, courseID string) (string, error) {
	doc := bson.M{
		"user_id":   userID,
		"course_id": courseID,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.EnrollmentsCollection, map[string]interface{}(doc))
	if err != nil {
		return "", fmt.Errorf("failed to add enrollment to MongoDB: %w", err)
	}

	return assertObjectID(insertedID)
}

// EnsureIndices creates a unique index for course_name in MongoDB (uses direct client helper).
// Note: This calls a MongoDB-specific helper via EnsureSchema, as DBClient
// doesn't have a generic index method.
func (r *MongoLMSRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"course_name": 1},
		Options: options.Index().SetUnique(true),
	}
	return r.dbClient.EnsureSchema(ctx, constants.CoursesCollection, indexModel)
}

// Close disconnects the MongoDB client.
func (r *MongoLMSRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func assertObjectID(insertedID interface{}) (string, error) {
	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to assert inserted ID to ObjectID")
	}
	return objID.Hex(), nil
}
