package courseservice

import "errors"

var (
	// ErrCourseExists is returned when adding a course whose name is already taken.
	ErrCourseExists = errors.New("course already exists")
	// ErrUserNotFound is returned when assigning a course to an unknown external user ID.
	ErrUserNotFound = errors.New("user not found")
)

const (
	// Error messages for course service operations
	ErrFailedToAddCourse    = "failed to add course"
	ErrFailedToListCourses  = "failed to list courses"
	ErrFailedToAssignCourse = "failed to assign course"
	ErrRetrievingCourse     = "error retrieving course"
	ErrRetrievingUser       = "error retrieving user"
	ErrFailedToEnrollUser   = "failed to enroll user"
)
