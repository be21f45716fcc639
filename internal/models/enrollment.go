package models

// Enrollment associates one user with one course (many-to-many). Repeated
// assignment of the same pair is cumulative; no uniqueness constraint exists
// on (UserID, CourseID).
type Enrollment struct {
	ID       string `bson:"_id,omitempty" mapstructure:"id" db:"id"`
	UserID   string `bson:"user_id" mapstructure:"user_id" db:"user_id"`
	CourseID string `bson:"course_id" mapstructure:"course_id" db:"course_id"`
}
