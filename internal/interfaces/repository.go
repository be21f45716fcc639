package interfaces

import (
	"context"

	"github.com/lmbotha/lea/internal/models"
)

// Repository defines the contract for storing and retrieving users, courses
// and enrollments. This interface is database-agnostic.
//
// Lookup misses return (nil, nil), not an error. No uniqueness check is made
// on email or external_user_id at this layer; duplicates are accepted and a
// lookup returns the first match.
type Repository interface {
	AddUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByExternalID(ctx context.Context, externalUserID string) (*models.User, error)
	AddCourse(ctx context.Context, courseName string) (string, error)
	GetCourseByName(ctx context.Context, courseName string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	AddEnrollment(ctx context.Context, userID, courseID string) (string, error)
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
