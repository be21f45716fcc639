package constants

const (
	// UsersCollection is the table/collection holding registered users.
	UsersCollection = "users"
	// CoursesCollection is the table/collection holding courses.
	CoursesCollection = "courses"
	// EnrollmentsCollection is the table/collection holding user-course enrollments.
	EnrollmentsCollection = "user_courses"
)
