package dto

type AddCourseRequestDTO struct {
	CourseName string `json:"course_name" validate:"required"`
}

type AddCourseResponseDTO struct {
	Message  string `json:"message"`
	CourseID string `json:"course_id,omitempty"`
}

type AssignCourseRequestDTO struct {
	ExternalUserID string `json:"external_user_id" validate:"required"`
	CourseName     string `json:"course_name" validate:"required"`
}

type AssignCourseResponseDTO struct {
	Message string `json:"message"`
}

type CourseListResponseDTO struct {
	Courses []string `json:"courses"`
}
