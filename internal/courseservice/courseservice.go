// courseservice.go
package courseservice

import (
	"context"
	"fmt"

	"github.com/lmbotha/lea/internal/interfaces"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/pkg/helper"
)

type CourseService struct {
	Repo   interfaces.Repository
	Logger interfaces.Logger
}

// NewCourseService creates a new CourseService instance.
func NewCourseService(repo interfaces.Repository, logger interfaces.Logger) *CourseService {
	return &CourseService{
		Repo:   repo,
		Logger: logger,
	}
}

// AddCourse creates a new course. Returns ErrCourseExists if a course with
// the same name is already present. The check happens at this layer, not
// atomically in the store; the store's unique index backstops the race.
func (s *CourseService) AddCourse(ctx context.Context, courseName string) (string, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Adding course", "func", funcName, "course", courseName)

	existing, err := s.Repo.GetCourseByName(ctx, courseName)
	if err != nil {
		s.Logger.Error(ErrRetrievingCourse, "func", funcName, "course", courseName, "error", err)
		return "", fmt.Errorf("%s: %w", ErrRetrievingCourse, err)
	}
	if existing != nil {
		s.Logger.Debug("Course already exists", "func", funcName, "course", courseName)
		return "", ErrCourseExists
	}

	courseID, err := s.Repo.AddCourse(ctx, courseName)
	if err != nil {
		s.Logger.Error(ErrFailedToAddCourse, "func", funcName, "course", courseName, "error", err)
		return "", fmt.Errorf("%s: %w", ErrFailedToAddCourse, err)
	}
	s.Logger.Info("Course added successfully", "func", funcName, "course", courseName, "ID", courseID)
	return courseID, nil
}

// AssignCourse enrolls the user with the given external ID into the named
// course, creating the course first if it does not exist yet. Returns
// ErrUserNotFound when no user matches the external ID; no enrollment is
// created in that case. Repeated assignment of the same pair is cumulative.
func (s *CourseService) AssignCourse(ctx context.Context, externalUserID, courseName string) (*models.User, *models.Course, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Assigning course", "func", funcName, "external_user_id", externalUserID, "course", courseName)

	user, err := s.Repo.GetUserByExternalID(ctx, externalUserID)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "external_user_id", externalUserID, "error", err)
		return nil, nil, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if user == nil {
		s.Logger.Debug("User not found", "func", funcName, "external_user_id", externalUserID)
		return nil, nil, ErrUserNotFound
	}

	course, err := s.Repo.GetCourseByName(ctx, courseName)
	if err != nil {
		s.Logger.Error(ErrRetrievingCourse, "func", funcName, "course", courseName, "error", err)
		return nil, nil, fmt.Errorf("%s: %w", ErrRetrievingCourse, err)
	}
	if course == nil {
		// Assignment auto-creates a course that does not exist yet.
		courseID, err := s.Repo.AddCourse(ctx, courseName)
		if err != nil {
			s.Logger.Error(ErrFailedToAddCourse, "func", funcName, "course", courseName, "error", err)
			return nil, nil, fmt.Errorf("%s: %w", ErrFailedToAddCourse, err)
		}
		course = &models.Course{ID: courseID, CourseName: courseName}
		s.Logger.Info("Course auto-created for assignment", "func", funcName, "course", courseName, "ID", courseID)
	}

	enrollmentID, err := s.Repo.AddEnrollment(ctx, user.ID, course.ID)
	if err != nil {
		s.Logger.Error(ErrFailedToEnrollUser, "func", funcName, "external_user_id", externalUserID, "course", courseName, "error", err)
		return nil, nil, fmt.Errorf("%s: %w", ErrFailedToEnrollUser, err)
	}

	s.Logger.Info("Course assigned successfully", "func", funcName,
		"external_user_id", externalUserID, "course", courseName, "enrollment_id", enrollmentID)
	return user, course, nil
}

// ListCourses returns the names of all courses in insertion order.
func (s *CourseService) ListCourses(ctx context.Context) ([]string, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Listing courses", "func", funcName)

	courses, err := s.Repo.ListCourses(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToListCourses, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToListCourses, err)
	}

	names := make([]string, 0, len(courses))
	for _, course := range courses {
		names = append(names, course.CourseName)
	}
	return names, nil
}
