package courseservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/lmbotha/lea/internal/interfaces/mocks"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/pkg/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourseService_AddCourse(t *testing.T) {
	t.Run("new course", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetCourseByName", mock.Anything, "Mathematics").Return(nil, nil)
		repo.On("AddCourse", mock.Anything, "Mathematics").Return("course-id-1", nil)

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		courseID, err := svc.AddCourse(context.Background(), "Mathematics")
		require.NoError(t, err)
		assert.Equal(t, "course-id-1", courseID)
	})

	t.Run("duplicate course", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetCourseByName", mock.Anything, "Mathematics").
			Return(&models.Course{ID: "course-id-1", CourseName: "Mathematics"}, nil)

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		_, err := svc.AddCourse(context.Background(), "Mathematics")
		assert.ErrorIs(t, err, ErrCourseExists)
		// No second record is created for a duplicate name.
		repo.AssertNotCalled(t, "AddCourse", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetCourseByName", mock.Anything, "Mathematics").Return(nil, fmt.Errorf("connection refused"))

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		_, err := svc.AddCourse(context.Background(), "Mathematics")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCourseExists)
	})
}

func TestCourseService_AssignCourse(t *testing.T) {
	user := &models.User{ID: "user-id-1", ExternalUserID: "ext-001", Name: "Thandi Nkosi"}
	course := &models.Course{ID: "course-id-1", CourseName: "Mathematics"}

	t.Run("existing user and course", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetUserByExternalID", mock.Anything, "ext-001").Return(user, nil)
		repo.On("GetCourseByName", mock.Anything, "Mathematics").Return(course, nil)
		repo.On("AddEnrollment", mock.Anything, "user-id-1", "course-id-1").Return("enrollment-id-1", nil).Once()

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		gotUser, gotCourse, err := svc.AssignCourse(context.Background(), "ext-001", "Mathematics")
		require.NoError(t, err)
		assert.Equal(t, user, gotUser)
		assert.Equal(t, course, gotCourse)
	})

	t.Run("unknown user creates nothing", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetUserByExternalID", mock.Anything, "ext-missing").Return(nil, nil)

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		_, _, err := svc.AssignCourse(context.Background(), "ext-missing", "Mathematics")
		assert.ErrorIs(t, err, ErrUserNotFound)
		repo.AssertNotCalled(t, "AddEnrollment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown course is auto-created", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetUserByExternalID", mock.Anything, "ext-001").Return(user, nil)
		repo.On("GetCourseByName", mock.Anything, "Physics").Return(nil, nil)
		repo.On("AddCourse", mock.Anything, "Physics").Return("course-id-2", nil)
		repo.On("AddEnrollment", mock.Anything, "user-id-1", "course-id-2").Return("enrollment-id-2", nil)

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		_, gotCourse, err := svc.AssignCourse(context.Background(), "ext-001", "Physics")
		require.NoError(t, err)
		assert.Equal(t, "course-id-2", gotCourse.ID)
		assert.Equal(t, "Physics", gotCourse.CourseName)
	})

	t.Run("enrollment failure", func(t *testing.T) {
		repo := mocks.NewMockRepository(t)
		repo.On("GetUserByExternalID", mock.Anything, "ext-001").Return(user, nil)
		repo.On("GetCourseByName", mock.Anything, "Mathematics").Return(course, nil)
		repo.On("AddEnrollment", mock.Anything, "user-id-1", "course-id-1").Return("", fmt.Errorf("connection refused"))

		svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
		_, _, err := svc.AssignCourse(context.Background(), "ext-001", "Mathematics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrFailedToEnrollUser)
	})
}

func TestCourseService_ListCourses(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("ListCourses", mock.Anything).Return([]models.Course{
		{ID: "course-id-1", CourseName: "Mathematics"},
		{ID: "course-id-2", CourseName: "Physics"},
	}, nil)

	svc := NewCourseService(repo, zerolog.NewZerologLogger("test"))
	names, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Mathematics", "Physics"}, names)
}
