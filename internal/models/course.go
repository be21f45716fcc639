package models

// Course represents a course. CourseName is the natural key: lookups and
// duplicate checks go by name, not by ID.
type Course struct {
	ID         string `bson:"_id,omitempty" mapstructure:"id" db:"id"`
	CourseName string `bson:"course_name" mapstructure:"course_name" db:"course_name"`
}

// NewCourse creates a new Course instance with the given name.
func NewCourse(courseName string) *Course {
	return &Course{
		CourseName: courseName,
	}
}
